package errors

import (
	"errors"
	"fmt"
	"testing"
)

// captureHandler records everything reported to it.
type captureHandler struct {
	errs   []*CockpitError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *CockpitError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)   { h.panics = append(h.panics, err) }

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidRange, "invalid_range"},
		{KindRender, "render"},
		{KindDecode, "decode"},
		{KindInit, "init"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestInvalidRange(t *testing.T) {
	err := InvalidRange("widgets.NewGauge", 10, 0)
	if !IsInvalidRange(err) {
		t.Fatalf("IsInvalidRange should match the constructed error")
	}
	if err.Op != "widgets.NewGauge" {
		t.Fatalf("Op = %q", err.Op)
	}
	if err.Timestamp.IsZero() {
		t.Fatalf("Timestamp should be set")
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := InvalidRange("widgets.NewSlider", 1, 0)
	wrapped := fmt.Errorf("building panel: %w", inner)
	if KindOf(wrapped) != KindInvalidRange {
		t.Fatalf("KindOf should see through wrapping")
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatalf("plain errors are KindUnknown")
	}
}

func TestCockpitErrorUnwrap(t *testing.T) {
	underlying := errors.New("surface lost")
	err := E("raster.Flush", KindRender, underlying)
	if !errors.Is(err, underlying) {
		t.Fatalf("Unwrap chain should reach the underlying error")
	}
	want := "raster.Flush [render]: surface lost"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestReportUsesGlobalHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(E("scene.DrawFrame", KindRender, errors.New("boom")))
	Report(nil) // must be a no-op

	if len(h.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errs))
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("scene.Dispatch")
		panic("widget exploded")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("handler received %d panics, want 1", len(h.panics))
	}
	if h.panics[0].Value != "widget exploded" {
		t.Fatalf("panic value = %v", h.panics[0].Value)
	}
	if h.panics[0].Op != "scene.Dispatch" {
		t.Fatalf("panic op = %q", h.panics[0].Op)
	}
}
