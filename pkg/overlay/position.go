package overlay

import (
	"strings"

	"github.com/pixelgrid/overlaykit/pkg/errors"
)

// =============================================================================
// Position - Anchor Catalogue
// =============================================================================

// Position is one of the nine named anchor locations on a container:
// the four corners, the four edge midpoints, and the center.
type Position int

// The closed anchor catalogue. The ordering is stable and part of the
// serialized form, so new values must only be appended.
const (
	TopLeft Position = iota
	TopRight
	TopCenter
	BottomLeft
	BottomRight
	BottomCenter
	CenterLeft
	CenterRight
	Center
)

// Positions lists every anchor in catalogue order.
var Positions = []Position{
	TopLeft, TopRight, TopCenter,
	BottomLeft, BottomRight, BottomCenter,
	CenterLeft, CenterRight, Center,
}

var positionNames = map[Position]string{
	TopLeft:      "top-left",
	TopRight:     "top-right",
	TopCenter:    "top-center",
	BottomLeft:   "bottom-left",
	BottomRight:  "bottom-right",
	BottomCenter: "bottom-center",
	CenterLeft:   "center-left",
	CenterRight:  "center-right",
	Center:       "center",
}

// String returns the kebab-case name of the position (e.g. "top-left").
func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether p is one of the nine catalogue values.
func (p Position) Valid() bool {
	_, ok := positionNames[p]
	return ok
}

// ParsePosition parses a position name. Matching is case-insensitive and
// accepts "-", "_" or no separator ("top-left", "TopLeft", "top_left").
func ParsePosition(s string) (Position, error) {
	key := normalizeName(s)
	for p, name := range positionNames {
		if normalizeName(name) == key {
			return p, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidPosition, "unknown position %q", s)
}

// MarshalText renders the position as its kebab-case name, so JSON payloads
// carry "top-left" instead of an opaque ordinal.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a position name.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// =============================================================================
// Direction - Sibling Growth Axis
// =============================================================================

// Direction is the axis and sign along which sibling controls sharing one
// anchor spread apart.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

var directionNames = map[Direction]string{
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether d is one of the four catalogue values.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Ptr returns a pointer to d, for use as an explicit direction on a Request.
func (d Direction) Ptr() *Direction { return &d }

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	key := normalizeName(s)
	for d, name := range directionNames {
		if name == key {
			return d, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q", s)
}

// MarshalText renders the direction as its lowercase name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// normalizeName lowercases s and strips separator characters so that
// "TopLeft", "top-left" and "top_left" compare equal.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, s)
}
