package gamepad

import (
	"context"
	"io"
	"os"

	"github.com/go-cockpit/cockpit/pkg/errors"
)

// Reader owns a joystick device and feeds its events into a State.
type Reader struct {
	dev   io.ReadCloser
	state *State
}

// Open opens a joystick device such as /dev/input/js0.
func Open(path string, m Mapping) (*Reader, error) {
	const op = "gamepad.Open"
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E(op, errors.KindInit, err)
	}
	return NewReader(f, m), nil
}

// NewReader wraps an already-open event stream, which tests use with an
// in-memory reader.
func NewReader(dev io.ReadCloser, m Mapping) *Reader {
	return &Reader{dev: dev, state: NewState(m)}
}

// State returns the shared controller state. It is updated by Run and
// safe to poll from other goroutines.
func (r *Reader) State() *State { return r.state }

// Run reads events until the context is canceled, the device reports
// EOF, or a decode error occurs. EOF returns nil.
func (r *Reader) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ev, err := ReadEvent(r.dev)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		r.state.Apply(ev)
	}
}

// Close closes the underlying device, which also unblocks Run.
func (r *Reader) Close() error {
	return r.dev.Close()
}
