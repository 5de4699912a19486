// Package gamepad reads Linux joystick devices (/dev/input/js*) and
// tracks controller state for flight input.
package gamepad

import (
	"encoding/binary"
	"io"

	"github.com/go-cockpit/cockpit/pkg/errors"
)

// Event kinds, matching the Linux joystick API.
const (
	EventButton uint8 = 0x01
	EventAxis   uint8 = 0x02
	// EventInit is OR'd into the type for the synthetic events the
	// kernel sends on open to report initial state.
	EventInit uint8 = 0x80
)

// eventSize is the fixed wire size of one joystick event record.
const eventSize = 8

// Event is one decoded joystick record: a millisecond timestamp, a
// signed value, the event type and the axis or button number.
type Event struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// Kind returns the event type with the init flag stripped.
func (e Event) Kind() uint8 { return e.Type &^ EventInit }

// IsInit reports whether this is a synthetic initial-state event.
func (e Event) IsInit() bool { return e.Type&EventInit != 0 }

// ReadEvent decodes the next 8-byte little-endian joystick record from
// r. It returns io.EOF unwrapped when the stream ends cleanly.
func ReadEvent(r io.Reader) (Event, error) {
	const op = "gamepad.ReadEvent"
	var buf [eventSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			return Event{}, io.EOF
		}
		return Event{}, errors.E(op, errors.KindDecode, err)
	}
	return Event{
		Time:   binary.LittleEndian.Uint32(buf[0:4]),
		Value:  int16(binary.LittleEndian.Uint16(buf[4:6])),
		Type:   buf[6],
		Number: buf[7],
	}, nil
}
