// Package input defines the normalized event model the widget tree routes.
//
// Raw events arrive in device (screen) coordinates from whatever source the
// driving application polls. Normalize converts them to tree-local
// coordinates exactly once at dispatch entry; everything downstream of the
// dispatcher works tree-local. The toolkit never deduplicates or reorders
// events: sources must deliver them in occurrence order, and the Seq field
// exists so drivers can assert that.
package input

import (
	"fmt"

	"github.com/go-cockpit/cockpit/pkg/graphics"
)

// Kind identifies the type of a pointer event.
type Kind int

const (
	// Move is pointer motion, with or without a button held.
	Move Kind = iota
	// Press is a button or touch going down.
	Press
	// Release is a button or touch going up.
	Release
	// Scroll is wheel or two-finger scroll motion.
	Scroll
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Press:
		return "press"
	case Release:
		return "release"
	case Scroll:
		return "scroll"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Button identifies which pointer button or axis an event refers to.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is a single normalized pointer event.
type Event struct {
	// Kind is the event type.
	Kind Kind
	// Position is the pointer location. Raw events carry device
	// coordinates; after Normalize the position is tree-local.
	Position graphics.Offset
	// Button is the button (or scroll axis) the event refers to.
	Button Button
	// Delta carries scroll motion for Scroll events, zero otherwise.
	Delta graphics.Offset
	// Seq is a monotonically increasing sequence number assigned by the
	// event source.
	Seq uint64
}

// Normalize converts a raw device-coordinate event into a tree-local one by
// subtracting the tree's screen origin. It is called once per event at
// dispatch entry; the rest of the pipeline assumes tree-local positions.
func Normalize(raw Event, treeOrigin graphics.Offset) Event {
	raw.Position = raw.Position.Sub(treeOrigin)
	return raw
}
