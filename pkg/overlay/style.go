package overlay

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// Style Emitter - Declarative Positioning Strings
// =============================================================================

// edgeProps maps each anchor to the CSS properties that pin it: the
// vertical edge (top/bottom, or top at 50% for the center row) and the
// horizontal edge (left/right, or left at 50% for the center column).
// A percent value marks the centered axis, which always pairs with the
// anchor's translate transform.
type edgeProps struct {
	vProp, vVal string // vertical property and value ("" value means use offset)
	hProp, hVal string
}

var positionEdges = map[Position]edgeProps{
	TopLeft:      {vProp: "top", hProp: "left"},
	TopRight:     {vProp: "top", hProp: "right"},
	TopCenter:    {vProp: "top", hProp: "left", hVal: "50%"},
	BottomLeft:   {vProp: "bottom", hProp: "left"},
	BottomRight:  {vProp: "bottom", hProp: "right"},
	BottomCenter: {vProp: "bottom", hProp: "left", hVal: "50%"},
	CenterLeft:   {vProp: "top", vVal: "50%", hProp: "left"},
	CenterRight:  {vProp: "top", vVal: "50%", hProp: "right"},
	Center:       {vProp: "top", vVal: "50%", hProp: "left", hVal: "50%"},
}

// emitStyle renders the placement as a declarative CSS positioning string.
// With no spacing delta it emits the literal per-position rule; with a
// nonzero delta on a pair that carries spacing, the stacked edge property
// becomes a calc() of the offset plus the cumulative delta. The calc form
// is derived from the same axis/sign table the coordinate path uses, so the
// two renderings always agree.
func emitStyle(pos Position, dir Direction, off, delta float64, transform string) string {
	edges, ok := positionEdges[pos]
	if !ok {
		return ""
	}

	vVal := edges.vVal
	if vVal == "" {
		vVal = formatPx(off)
	}
	hVal := edges.hVal
	if hVal == "" {
		hVal = formatPx(off)
	}

	if delta > 0 {
		if rule, ok := spacingFor(pos, dir); ok {
			calc := fmt.Sprintf("calc(%s + %s)", formatPx(off), formatPx(delta))
			switch rule.edge {
			case edges.vProp:
				vVal = calc
			case edges.hProp:
				hVal = calc
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s; %s: %s;", edges.vProp, vVal, edges.hProp, hVal)
	if transform != "" {
		fmt.Fprintf(&b, " transform: %s;", transform)
	}
	return b.String()
}

// formatPx renders a pixel quantity without trailing zeros ("12px", "7.5px").
func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
