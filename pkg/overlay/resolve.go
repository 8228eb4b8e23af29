package overlay

// =============================================================================
// Direction Resolution
// =============================================================================

// Constrained reports whether the anchor sits in constrained space for the
// given spacing index. Only the two trailing-edge anchors (TopRight,
// BottomRight) are ever constrained: horizontal stacking there is the most
// likely to overflow a narrow container, so nonzero spacing forces a
// vertical override. All other anchors are assumed to have room to grow in
// their default direction.
func Constrained(pos Position, index int) bool {
	return index > 0 && (pos == BottomRight || pos == TopRight)
}

// IntelligentDirection returns the engine's own direction preference for an
// anchor. When constrained, the two right-edge anchors flip from horizontal
// to vertical stacking (TopRight grows Down, BottomRight grows Up) so the
// column stays inside the container.
func IntelligentDirection(pos Position, constrained bool) Direction {
	if constrained {
		switch pos {
		case TopRight:
			return Down
		case BottomRight:
			return Up
		}
	}

	switch pos {
	case TopLeft, BottomLeft, CenterLeft, Center:
		return Right
	case TopRight, BottomRight, CenterRight:
		return Left
	case TopCenter:
		return Down
	case BottomCenter:
		return Up
	}
	return Right
}

// effectiveDirection picks exactly one direction per request. A constrained
// anchor always uses the intelligent override, even against an explicit
// caller preference; otherwise an explicit direction wins, and a nil
// explicit direction (no preference) falls back to the intelligent default.
func effectiveDirection(pos Position, index int, explicit *Direction) Direction {
	if Constrained(pos, index) {
		return IntelligentDirection(pos, true)
	}
	if explicit != nil && explicit.Valid() {
		return *explicit
	}
	return IntelligentDirection(pos, false)
}
