package overlay

import (
	"strconv"
	"strings"
)

// =============================================================================
// Container & Offset
// =============================================================================

// Size is a container's dimensions in pixels. Supplied fresh per layout
// pass and never mutated by the engine.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// DefaultOffset is the inset in pixels from the container edges used when a
// request does not override it.
const DefaultOffset = 12.0

// ResolveOffset parses a caller-supplied offset string into pixels. The
// empty string and bare numbers ("20") or pixel-suffixed values ("20px")
// are accepted; any other unit or unparseable string silently falls back to
// DefaultOffset. The leniency is deliberate: a bad offset should degrade to
// the default inset, not interrupt rendering.
func ResolveOffset(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultOffset
	}
	s = strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultOffset
	}
	return v
}

// =============================================================================
// Base Anchor Coordinates
// =============================================================================

// Centering transforms for edge-midpoint and center anchors. Corner anchors
// need none: their coordinate already is the control's corner.
const (
	transformCenterX = "translateX(-50%)"
	transformCenterY = "translateY(-50%)"
	transformCenter  = "translate(-50%, -50%)"
)

// anchorPoint maps an anchor to its pre-spacing (x, y) point inside a
// container, inset by off pixels from the relevant edges, plus the
// centering transform the anchor requires.
func anchorPoint(pos Position, c Size, off float64) (x, y float64, transform string) {
	switch pos {
	case TopLeft:
		return off, off, ""
	case TopRight:
		return c.Width - off, off, ""
	case TopCenter:
		return c.Width / 2, off, transformCenterX
	case BottomLeft:
		return off, c.Height - off, ""
	case BottomRight:
		return c.Width - off, c.Height - off, ""
	case BottomCenter:
		return c.Width / 2, c.Height - off, transformCenterX
	case CenterLeft:
		return off, c.Height / 2, transformCenterY
	case CenterRight:
		return c.Width - off, c.Height / 2, transformCenterY
	case Center:
		return c.Width / 2, c.Height / 2, transformCenter
	}
	return 0, 0, ""
}
