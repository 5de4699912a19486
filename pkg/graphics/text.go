package graphics

import "fmt"

// FontRef identifies a font by family name and size. The toolkit never
// loads fonts itself; Canvas implementations resolve the reference to
// whatever face their backend provides.
type FontRef struct {
	Family string
	Size   float64
}

// TextAnchor controls how text is positioned horizontally relative to the
// position passed to DrawText. Vertically the position is the baseline.
type TextAnchor int

const (
	// AnchorStart places the position at the start of the text.
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the text on the position.
	AnchorMiddle
	// AnchorEnd places the position at the end of the text.
	AnchorEnd
)

// String returns a human-readable representation of the anchor.
func (a TextAnchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return fmt.Sprintf("TextAnchor(%d)", int(a))
	}
}
