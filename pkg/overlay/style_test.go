package overlay

import (
	"strings"
	"testing"
)

func TestStyleIndexZero(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{TopLeft, "top: 12px; left: 12px;"},
		{TopRight, "top: 12px; right: 12px;"},
		{TopCenter, "top: 12px; left: 50%; transform: translateX(-50%);"},
		{BottomLeft, "bottom: 12px; left: 12px;"},
		{BottomRight, "bottom: 12px; right: 12px;"},
		{BottomCenter, "bottom: 12px; left: 50%; transform: translateX(-50%);"},
		{CenterLeft, "top: 50%; left: 12px; transform: translateY(-50%);"},
		{CenterRight, "top: 50%; right: 12px; transform: translateY(-50%);"},
		{Center, "top: 50%; left: 50%; transform: translate(-50%, -50%);"},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			p := Compute(Request{Position: tt.pos}, testContainer)
			if p.Style != tt.want {
				t.Errorf("Style = %q, want %q", p.Style, tt.want)
			}
			if strings.Contains(p.Style, "calc(") {
				t.Errorf("index 0 style contains calc(): %q", p.Style)
			}
		})
	}
}

func TestStyleSpacedCalc(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		// The two combinations the resolver forces in constrained space.
		{
			"BottomRightUp",
			Request{Position: BottomRight, Index: 1},
			"bottom: calc(12px + 48px); right: 12px;",
		},
		{
			"TopRightDown",
			Request{Position: TopRight, Index: 2},
			"top: calc(12px + 96px); right: 12px;",
		},
		// Generalized pairs, derived from the spacing axis table.
		{
			"TopLeftRight",
			Request{Position: TopLeft, Index: 1},
			"top: 12px; left: calc(12px + 48px);",
		},
		{
			"TopLeftDown",
			Request{Position: TopLeft, Index: 1, Direction: Down.Ptr()},
			"top: calc(12px + 48px); left: 12px;",
		},
		{
			"BottomLeftUp",
			Request{Position: BottomLeft, Index: 2, Direction: Up.Ptr()},
			"bottom: calc(12px + 96px); left: 12px;",
		},
		{
			"TopCenterDown",
			Request{Position: TopCenter, Index: 1},
			"top: calc(12px + 48px); left: 50%; transform: translateX(-50%);",
		},
		{
			"BottomCenterUp",
			Request{Position: BottomCenter, Index: 1},
			"bottom: calc(12px + 48px); left: 50%; transform: translateX(-50%);",
		},
		{
			"CenterLeftRight",
			Request{Position: CenterLeft, Index: 1},
			"top: 50%; left: calc(12px + 48px); transform: translateY(-50%);",
		},
		{
			"CenterRightLeft",
			Request{Position: CenterRight, Index: 1},
			"top: 50%; right: calc(12px + 48px); transform: translateY(-50%);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compute(tt.req, testContainer)
			if p.Style != tt.want {
				t.Errorf("Style = %q, want %q", p.Style, tt.want)
			}
		})
	}
}

func TestStyleCustomOffsetInCalc(t *testing.T) {
	p := Compute(Request{Position: BottomRight, Index: 1, Offset: "20px"}, testContainer)
	if want := "bottom: calc(20px + 48px); right: 20px;"; p.Style != want {
		t.Errorf("Style = %q, want %q", p.Style, want)
	}
}

func TestStyleUnlistedPairFallsBackToBase(t *testing.T) {
	// (Center, any direction) carries no spacing, so the spaced style is
	// the plain base rule.
	p := Compute(Request{Position: Center, Index: 2}, testContainer)
	if want := "top: 50%; left: 50%; transform: translate(-50%, -50%);"; p.Style != want {
		t.Errorf("Style = %q, want %q", p.Style, want)
	}
}

func TestFormatPx(t *testing.T) {
	if got := formatPx(48); got != "48px" {
		t.Errorf("formatPx(48) = %q", got)
	}
	if got := formatPx(7.5); got != "7.5px" {
		t.Errorf("formatPx(7.5) = %q", got)
	}
}
