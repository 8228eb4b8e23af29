// Package overlay computes pixel placements for small interactive controls
// (favorite, share, delete, rating, index, reorder) anchored on top of
// rectangular gallery tiles.
//
// The engine is a linear, pure pipeline:
//
//  1. Resolve: pick the effective grow direction for the anchor, applying a
//     constrained-space override for trailing-edge anchors.
//  2. Anchor: map the position to a base (x, y) point inside the container,
//     inset by the configured offset, plus any centering transform.
//  3. Space: shift the base point along one axis so siblings sharing the
//     anchor do not overlap.
//  4. Emit: render the final placement as a declarative CSS positioning
//     string for hosts that prefer styles over raw coordinates.
//
// Every call is O(1), side-effect free, and safe for concurrent use; a host
// re-invokes the engine on every layout pass (render, resize, rotation) for
// every visible control.
//
// # Usage
//
//	p := overlay.Compute(overlay.Request{
//	    Position: overlay.BottomRight,
//	    Index:    1,
//	}, overlay.Size{Width: 400, Height: 300})
//	// p.X == 388, p.Y == 240, p.Style == "bottom: calc(12px + 48px); right: 12px;"
//
// Input validation is a boundary concern: Compute never fails on valid
// input, and callers that accept untrusted data should parse positions and
// directions through ParsePosition/ParseDirection first.
package overlay
