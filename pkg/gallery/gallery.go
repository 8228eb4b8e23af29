// Package gallery models a photo gallery's overlay declarations and turns
// them into concrete placements via pkg/overlay.
//
// A Gallery holds the tile container size, the entries shown in the grid,
// and the overlay controls declared for real image tiles. Entries form a
// small discriminated union: a real item (an image with a source) or a
// placeholder (an empty upload slot). Placeholder tiles never receive
// overlay controls.
//
// Planning is deterministic: controls sharing an anchor are assigned
// spacing ordinals in declaration order, so identical declarations always
// produce identical placements.
package gallery

import (
	"github.com/pixelgrid/overlaykit/pkg/errors"
	"github.com/pixelgrid/overlaykit/pkg/overlay"
)

// =============================================================================
// Entry - Discriminated Gallery Tile
// =============================================================================

// Entry kinds. EntryKind discriminates the union; check it before reading
// kind-specific fields.
const (
	EntryItem        = "item"
	EntryPlaceholder = "placeholder"
)

// Entry is one tile in the gallery grid.
//
// This is a discriminated union type - check Kind to determine which fields
// are populated:
//
//	Item ("item"):
//	  - Source: the image URL or path
//	  - Alt: alternative text for the image
//
//	Placeholder ("placeholder"): no further fields; the host renders an
//	upload slot in its place.
type Entry struct {
	Kind   string `json:"kind" toml:"kind" bson:"kind"`
	Source string `json:"source,omitempty" toml:"source,omitempty" bson:"source,omitempty"`
	Alt    string `json:"alt,omitempty" toml:"alt,omitempty" bson:"alt,omitempty"`
}

// Item creates a real image entry.
func Item(source, alt string) Entry {
	return Entry{Kind: EntryItem, Source: source, Alt: alt}
}

// Placeholder creates an empty upload-slot entry.
func Placeholder() Entry {
	return Entry{Kind: EntryPlaceholder}
}

// IsItem returns true if this entry is a real image.
func (e Entry) IsItem() bool { return e.Kind == EntryItem }

// IsPlaceholder returns true if this entry is an upload slot.
func (e Entry) IsPlaceholder() bool { return e.Kind == EntryPlaceholder }

// Validate checks the discriminator and kind-specific fields.
func (e Entry) Validate() error {
	switch e.Kind {
	case EntryItem:
		if e.Source == "" {
			return errors.New(errors.ErrCodeInvalidInput, "item entry requires a source")
		}
		return nil
	case EntryPlaceholder:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown entry kind %q", e.Kind)
	}
}

// =============================================================================
// Control - Overlay Declaration
// =============================================================================

// ControlKind identifies what an overlay control does. The catalogue is
// closed; hosts switch on it to pick an icon and a click handler.
type ControlKind string

const (
	ControlFavorite ControlKind = "favorite"
	ControlShare    ControlKind = "share"
	ControlDelete   ControlKind = "delete"
	ControlRating   ControlKind = "rating"
	ControlIndex    ControlKind = "index"
	ControlReorder  ControlKind = "reorder"
)

var controlKinds = map[ControlKind]bool{
	ControlFavorite: true,
	ControlShare:    true,
	ControlDelete:   true,
	ControlRating:   true,
	ControlIndex:    true,
	ControlReorder:  true,
}

// Valid reports whether k is in the catalogue.
func (k ControlKind) Valid() bool { return controlKinds[k] }

// Control declares one overlay control on a tile. Sizing fields follow
// overlay.Request semantics: zero values take the engine defaults.
type Control struct {
	Kind       ControlKind        `json:"kind" bson:"kind"`
	Position   overlay.Position   `json:"position" bson:"position"`
	Direction  *overlay.Direction `json:"direction,omitempty" bson:"direction,omitempty"`
	ButtonSize float64            `json:"button_size,omitempty" bson:"button_size,omitempty"`
	Gap        float64            `json:"gap,omitempty" bson:"gap,omitempty"`
	Offset     string             `json:"offset,omitempty" bson:"offset,omitempty"`
}

// Validate checks the declaration against the catalogues.
func (c Control) Validate() error {
	if !c.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidControl, "unknown control kind %q", string(c.Kind))
	}
	if !c.Position.Valid() {
		return errors.New(errors.ErrCodeInvalidControl, "control %q: invalid position", string(c.Kind))
	}
	if c.Direction != nil && !c.Direction.Valid() {
		return errors.New(errors.ErrCodeInvalidControl, "control %q: invalid direction", string(c.Kind))
	}
	return nil
}

// =============================================================================
// Gallery
// =============================================================================

// Gallery is a declared gallery: a tile container, its entries, and the
// controls overlaid on every real item tile.
type Gallery struct {
	Container overlay.Size `json:"container" bson:"container"`
	Entries   []Entry      `json:"entries,omitempty" bson:"entries,omitempty"`
	Controls  []Control    `json:"controls" bson:"controls"`
}

// Validate checks the container, entries, and control declarations.
func (g Gallery) Validate() error {
	if err := errors.ValidateDimensions(g.Container.Width, g.Container.Height); err != nil {
		return err
	}
	for _, e := range g.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	for _, c := range g.Controls {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
