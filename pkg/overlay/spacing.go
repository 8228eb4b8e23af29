package overlay

// =============================================================================
// Spacing - Cumulative Sibling Offsets
// =============================================================================

// axis identifies which coordinate a spacing delta shifts.
type axis int

const (
	axisX axis = iota
	axisY
)

// spacingRule describes how one (position, direction) pair carries spacing:
// which axis moves, with what sign, and which CSS edge property grows when
// the placement is emitted declaratively.
type spacingRule struct {
	axis axis
	sign float64
	edge string
}

// spacingRules is the closed table of (position, direction) pairs that can
// carry a nonzero spacing delta. Pairs outside the table receive no
// adjustment; in particular Center and the edge-midpoint anchors only stack
// along their single listed direction.
var spacingRules = map[Position]map[Direction]spacingRule{
	TopLeft: {
		Right: {axisX, +1, "left"},
		Down:  {axisY, +1, "top"},
	},
	TopRight: {
		Left: {axisX, -1, "right"},
		Down: {axisY, +1, "top"},
	},
	BottomLeft: {
		Right: {axisX, +1, "left"},
		Up:    {axisY, -1, "bottom"},
	},
	BottomRight: {
		Left: {axisX, -1, "right"},
		Up:   {axisY, -1, "bottom"},
	},
	TopCenter: {
		Down: {axisY, +1, "top"},
	},
	BottomCenter: {
		Up: {axisY, -1, "bottom"},
	},
	CenterLeft: {
		Right: {axisX, +1, "left"},
	},
	CenterRight: {
		Left: {axisX, -1, "right"},
	},
}

// spacingFor looks up the spacing rule for a (position, direction) pair.
func spacingFor(pos Position, dir Direction) (spacingRule, bool) {
	rule, ok := spacingRules[pos][dir]
	return rule, ok
}

// applySpacing shifts the base anchor point by delta pixels along the axis
// the (position, direction) pair stacks on. A zero delta, or a pair with no
// spacing rule, leaves the point untouched.
func applySpacing(pos Position, dir Direction, x, y, delta float64) (float64, float64) {
	if delta == 0 {
		return x, y
	}
	rule, ok := spacingFor(pos, dir)
	if !ok {
		return x, y
	}
	if rule.axis == axisX {
		return x + rule.sign*delta, y
	}
	return x, y + rule.sign*delta
}
