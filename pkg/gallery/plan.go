package gallery

import (
	"fmt"

	"github.com/pixelgrid/overlaykit/pkg/overlay"
)

// =============================================================================
// Plan - Computed Placements
// =============================================================================

// MarkerAttribute is the boolean attribute every planned control carries.
// The host's click-routing layer inspects it to suppress the gallery's
// open-lightbox behavior when a click lands on a control instead of the
// image underneath. The routing itself is the host's concern; the planner
// only guarantees each control is identifiable.
const MarkerAttribute = "data-gallery-control"

// PlannedControl is one control with its assigned ordinal and computed
// placement.
type PlannedControl struct {
	Control   Control           `json:"control" bson:"control"`
	Index     int               `json:"index" bson:"index"`
	Placement overlay.Placement `json:"placement" bson:"placement"`

	// Marker uniquely identifies the control within its tile, e.g.
	// "data-gallery-control:delete". Hosts attach it to the rendered
	// element alongside MarkerAttribute.
	Marker string `json:"marker" bson:"marker"`
}

// Plan is the computed overlay layout for one tile.
type Plan struct {
	Container overlay.Size     `json:"container" bson:"container"`
	Controls  []PlannedControl `json:"controls" bson:"controls"`
}

// BuildPlan assigns spacing ordinals and computes a placement for every
// control. Ordinals are assigned per shared anchor in declaration order, so
// the host gets consistent, deterministic stacking: the first control
// declared at an anchor sits at the anchor's base point, the second one
// spacing step away, and so on.
func BuildPlan(container overlay.Size, controls []Control) (Plan, error) {
	plan := Plan{Container: container, Controls: make([]PlannedControl, 0, len(controls))}

	nextIndex := make(map[overlay.Position]int, len(controls))
	for _, c := range controls {
		if err := c.Validate(); err != nil {
			return Plan{}, err
		}

		index := nextIndex[c.Position]
		nextIndex[c.Position] = index + 1

		req := overlay.Request{
			Position:   c.Position,
			Index:      index,
			Direction:  c.Direction,
			ButtonSize: c.ButtonSize,
			Gap:        c.Gap,
			Offset:     c.Offset,
		}
		if err := overlay.Validate(req, container); err != nil {
			return Plan{}, err
		}

		plan.Controls = append(plan.Controls, PlannedControl{
			Control:   c,
			Index:     index,
			Placement: overlay.Compute(req, container),
			Marker:    fmt.Sprintf("%s:%s", MarkerAttribute, c.Kind),
		})
	}

	return plan, nil
}

// =============================================================================
// GalleryPlan - Per-Tile Plans
// =============================================================================

// TilePlan pairs an entry with its computed controls. Placeholder tiles
// carry no controls.
type TilePlan struct {
	Entry    Entry            `json:"entry" bson:"entry"`
	Controls []PlannedControl `json:"controls,omitempty" bson:"controls,omitempty"`
}

// GalleryPlan is the computed layout for a whole gallery.
type GalleryPlan struct {
	Container overlay.Size `json:"container" bson:"container"`
	Tiles     []TilePlan   `json:"tiles" bson:"tiles"`
}

// Plan computes placements for every entry in the gallery. Real item tiles
// share the gallery's control declarations; placeholder tiles get none.
func (g Gallery) Plan() (GalleryPlan, error) {
	if err := g.Validate(); err != nil {
		return GalleryPlan{}, err
	}

	// One tile plan is computed once and shared by value across item
	// tiles; the engine is pure, so every tile gets identical placements.
	base, err := BuildPlan(g.Container, g.Controls)
	if err != nil {
		return GalleryPlan{}, err
	}

	gp := GalleryPlan{Container: g.Container, Tiles: make([]TilePlan, 0, len(g.Entries))}
	for _, e := range g.Entries {
		tile := TilePlan{Entry: e}
		if e.IsItem() {
			tile.Controls = base.Controls
		}
		gp.Tiles = append(gp.Tiles, tile)
	}
	return gp, nil
}
