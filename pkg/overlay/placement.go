package overlay

import "github.com/pixelgrid/overlaykit/pkg/errors"

// =============================================================================
// Request / Placement
// =============================================================================

// Defaults applied to zero-valued request fields.
const (
	// DefaultButtonSize is the edge length of an overlay control in pixels.
	DefaultButtonSize = 44.0

	// DefaultGap is the gap between stacked sibling controls in pixels.
	DefaultGap = 4.0
)

// Request describes one control's placement inside a container. A Request
// is built per control per layout pass and discarded after Compute.
type Request struct {
	// Position is the anchor the control is pinned to.
	Position Position `json:"position" bson:"position"`

	// Index is the zero-based ordinal of this control among all controls
	// sharing the same Position in one container. The host assigns
	// consistent ordinals.
	Index int `json:"index" bson:"index"`

	// Direction is the caller's explicit grow direction. Nil means no
	// preference, which is distinct from an explicit Right.
	Direction *Direction `json:"direction,omitempty" bson:"direction,omitempty"`

	// ButtonSize and Gap size one spacing step. Zero means the default
	// (44px and 4px respectively).
	ButtonSize float64 `json:"button_size,omitempty" bson:"button_size,omitempty"`
	Gap        float64 `json:"gap,omitempty" bson:"gap,omitempty"`

	// Offset is the inset from the container edges, as a bare number or a
	// pixel-suffixed string ("20px"). Empty or unparseable values fall back
	// to the 12px default (see ResolveOffset).
	Offset string `json:"offset,omitempty" bson:"offset,omitempty"`
}

// withDefaults returns a copy of r with zero-valued sizing fields replaced
// by the package defaults and a negative index clamped to zero.
func (r Request) withDefaults() Request {
	if r.ButtonSize == 0 {
		r.ButtonSize = DefaultButtonSize
	}
	if r.Gap == 0 {
		r.Gap = DefaultGap
	}
	if r.Index < 0 {
		r.Index = 0
	}
	return r
}

// Placement is the computed result for one control. It is never mutated
// after construction; every Compute call returns a fresh value.
type Placement struct {
	// X, Y is the anchor point in pixels, before any centering transform.
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`

	// Transform is the CSS centering transform, or "" for corner anchors.
	Transform string `json:"transform,omitempty" bson:"transform,omitempty"`

	// Style is the equivalent declarative CSS positioning string.
	Style string `json:"style" bson:"style"`

	// Direction is the effective grow direction the resolver chose.
	Direction Direction `json:"direction" bson:"direction"`

	// Constrained reports whether the constrained-space override applied.
	Constrained bool `json:"constrained" bson:"constrained"`
}

// =============================================================================
// Compute
// =============================================================================

// Compute resolves a placement request against a container. The pipeline is
// resolve → anchor → space → emit; see the package documentation. Compute
// is pure and never fails on catalogue-valid input.
func Compute(req Request, container Size) Placement {
	req = req.withDefaults()

	constrained := Constrained(req.Position, req.Index)
	dir := effectiveDirection(req.Position, req.Index, req.Direction)
	off := ResolveOffset(req.Offset)

	x, y, transform := anchorPoint(req.Position, container, off)
	delta := float64(req.Index) * (req.ButtonSize + req.Gap)
	x, y = applySpacing(req.Position, dir, x, y, delta)

	return Placement{
		X:           x,
		Y:           y,
		Transform:   transform,
		Style:       emitStyle(req.Position, dir, off, delta, transform),
		Direction:   dir,
		Constrained: constrained,
	}
}

// Validate checks a request and container at the call boundary. The engine
// itself is lenient; hosts accepting untrusted input should validate before
// Compute.
func Validate(req Request, container Size) error {
	if !req.Position.Valid() {
		return errors.New(errors.ErrCodeInvalidPosition, "position %d is not in the anchor catalogue", int(req.Position))
	}
	if req.Direction != nil && !req.Direction.Valid() {
		return errors.New(errors.ErrCodeInvalidDirection, "direction %d is not in the catalogue", int(*req.Direction))
	}
	if req.Index < 0 {
		return errors.New(errors.ErrCodeInvalidIndex, "spacing index cannot be negative: %d", req.Index)
	}
	if req.ButtonSize < 0 || req.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "button size and gap cannot be negative")
	}
	return errors.ValidateDimensions(container.Width, container.Height)
}
