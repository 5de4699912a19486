// Package errors provides structured error handling for the cockpit toolkit.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidRange indicates a widget constructed with min > max.
	KindInvalidRange
	// KindRender indicates a rendering backend error.
	KindRender
	// KindDecode indicates an input-device event decoding failure.
	KindDecode
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRange:
		return "invalid_range"
	case KindRender:
		return "render"
	case KindDecode:
		return "decode"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CockpitError represents a structured error in the cockpit toolkit.
type CockpitError struct {
	// Op is the operation that failed (e.g., "widgets.NewGauge").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CockpitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CockpitError) Unwrap() error {
	return e.Err
}

// E constructs a CockpitError for the given operation and kind.
func E(op string, kind ErrorKind, err error) *CockpitError {
	return &CockpitError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// InvalidRange constructs the rejection returned when a ranged widget is
// configured with min > max. Swapping the bounds silently would hide the
// caller bug, so construction fails instead.
func InvalidRange(op string, min, max float64) *CockpitError {
	return E(op, KindInvalidRange, fmt.Errorf("min %v > max %v", min, max))
}

// KindOf returns the kind of err if it is (or wraps) a CockpitError,
// KindUnknown otherwise.
func KindOf(err error) ErrorKind {
	var ce *CockpitError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// IsInvalidRange reports whether err carries the InvalidRange kind.
func IsInvalidRange(err error) bool {
	return KindOf(err) == KindInvalidRange
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scene.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CockpitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
