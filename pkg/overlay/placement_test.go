package overlay

import (
	"reflect"
	"strings"
	"testing"
)

// container used by most fixtures.
var testContainer = Size{Width: 400, Height: 300}

func TestComputeBaseAnchors(t *testing.T) {
	tests := []struct {
		name          string
		pos           Position
		wantX, wantY  float64
		wantTransform string
	}{
		{"TopLeft", TopLeft, 12, 12, ""},
		{"TopRight", TopRight, 388, 12, ""},
		{"TopCenter", TopCenter, 200, 12, "translateX(-50%)"},
		{"BottomLeft", BottomLeft, 12, 288, ""},
		{"BottomRight", BottomRight, 388, 288, ""},
		{"BottomCenter", BottomCenter, 200, 288, "translateX(-50%)"},
		{"CenterLeft", CenterLeft, 12, 150, "translateY(-50%)"},
		{"CenterRight", CenterRight, 388, 150, "translateY(-50%)"},
		{"Center", Center, 200, 150, "translate(-50%, -50%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compute(Request{Position: tt.pos}, testContainer)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("Compute(%v) = (%g, %g), want (%g, %g)", tt.pos, p.X, p.Y, tt.wantX, tt.wantY)
			}
			if p.Transform != tt.wantTransform {
				t.Errorf("Transform = %q, want %q", p.Transform, tt.wantTransform)
			}
			if p.Constrained {
				t.Error("Constrained = true for index 0, want false")
			}
		})
	}
}

func TestComputeConstrainedAnchors(t *testing.T) {
	tests := []struct {
		name         string
		pos          Position
		index        int
		wantDir      Direction
		wantX, wantY float64
	}{
		// BottomRight flips to vertical stacking and grows up.
		{"BottomRightIndex1", BottomRight, 1, Up, 388, 240},
		// TopRight flips to vertical stacking and grows down.
		{"TopRightIndex2", TopRight, 2, Down, 388, 108},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compute(Request{Position: tt.pos, Index: tt.index}, testContainer)
			if !p.Constrained {
				t.Error("Constrained = false, want true")
			}
			if p.Direction != tt.wantDir {
				t.Errorf("Direction = %v, want %v", p.Direction, tt.wantDir)
			}
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("(X, Y) = (%g, %g), want (%g, %g)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestComputeExplicitDirection(t *testing.T) {
	// TopLeft is never constrained, so an explicit Down wins over the
	// intelligent Right default.
	p := Compute(Request{Position: TopLeft, Index: 1, Direction: Down.Ptr()}, testContainer)

	if p.Constrained {
		t.Error("Constrained = true, want false")
	}
	if p.Direction != Down {
		t.Errorf("Direction = %v, want %v", p.Direction, Down)
	}
	if p.Y != 60 {
		t.Errorf("Y = %g, want 60", p.Y)
	}
	if p.X != 12 {
		t.Errorf("X = %g, want 12 (x axis untouched)", p.X)
	}
}

func TestComputeExplicitDirectionIgnoredWhenConstrained(t *testing.T) {
	// The constrained override beats an explicit preference.
	p := Compute(Request{Position: BottomRight, Index: 1, Direction: Left.Ptr()}, testContainer)

	if p.Direction != Up {
		t.Errorf("Direction = %v, want %v", p.Direction, Up)
	}
	if p.X != 388 || p.Y != 240 {
		t.Errorf("(X, Y) = (%g, %g), want (388, 240)", p.X, p.Y)
	}
}

func TestComputeNilDirectionDistinctFromRight(t *testing.T) {
	// CenterRight defaults to Left; an explicit Right must produce a
	// different placement than no preference at all.
	base := Compute(Request{Position: CenterRight, Index: 1}, testContainer)
	explicit := Compute(Request{Position: CenterRight, Index: 1, Direction: Right.Ptr()}, testContainer)

	if base.Direction != Left {
		t.Errorf("default Direction = %v, want %v", base.Direction, Left)
	}
	if explicit.Direction != Right {
		t.Errorf("explicit Direction = %v, want %v", explicit.Direction, Right)
	}
	// (CenterRight, Right) carries no spacing rule, so the explicit
	// variant stays at the base anchor while the default shifts left.
	if base.X == explicit.X {
		t.Errorf("base.X == explicit.X == %g, want different placements", base.X)
	}
}

func TestComputePurity(t *testing.T) {
	req := Request{Position: BottomRight, Index: 3, Offset: "20px"}

	first := Compute(req, testContainer)
	for i := 0; i < 10; i++ {
		if got := Compute(req, testContainer); !reflect.DeepEqual(got, first) {
			t.Fatalf("Compute not pure: call %d = %+v, first = %+v", i, got, first)
		}
	}
}

func TestComputeSpacingMonotonicity(t *testing.T) {
	tests := []struct {
		pos Position
		dir *Direction
	}{
		{TopLeft, nil},
		{TopLeft, Down.Ptr()},
		{BottomRight, nil},
		{TopRight, nil},
		{BottomCenter, nil},
		{CenterLeft, nil},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			base := Compute(Request{Position: tt.pos, Direction: tt.dir}, testContainer)
			prev := 0.0
			for index := 1; index <= 5; index++ {
				p := Compute(Request{Position: tt.pos, Index: index, Direction: tt.dir}, testContainer)
				dx := p.X - base.X
				dy := p.Y - base.Y
				mag := dx*dx + dy*dy
				if mag <= prev {
					t.Fatalf("index %d: delta magnitude %g not strictly increasing (prev %g)", index, mag, prev)
				}
				prev = mag
			}
		})
	}
}

func TestComputeIndexZeroStaysInBounds(t *testing.T) {
	containers := []Size{
		{Width: 400, Height: 300},
		{Width: 100, Height: 100},
		{Width: 50, Height: 200},
	}

	for _, c := range containers {
		for _, pos := range Positions {
			p := Compute(Request{Position: pos}, c)
			if p.X < 0 || p.X > c.Width || p.Y < 0 || p.Y > c.Height {
				t.Errorf("%v in %gx%g: (%g, %g) outside container", pos, c.Width, c.Height, p.X, p.Y)
			}
		}
	}
}

func TestComputeSpacingStep(t *testing.T) {
	// One step is buttonSize+gap; custom sizes change the stride.
	p := Compute(Request{Position: TopLeft, Index: 2, ButtonSize: 30, Gap: 10}, testContainer)
	if want := 12 + 2*40.0; p.X != want {
		t.Errorf("X = %g, want %g", p.X, want)
	}

	// Defaults: 44 + 4 = 48 per step.
	p = Compute(Request{Position: TopLeft, Index: 2}, testContainer)
	if want := 12 + 2*48.0; p.X != want {
		t.Errorf("X = %g, want %g", p.X, want)
	}
}

func TestComputeUnlistedPairNoAdjustment(t *testing.T) {
	// Center has no spacing rule for any direction; nonzero indexes stay
	// at the base anchor.
	base := Compute(Request{Position: Center}, testContainer)
	spaced := Compute(Request{Position: Center, Index: 3}, testContainer)

	if base.X != spaced.X || base.Y != spaced.Y {
		t.Errorf("Center index 3 moved to (%g, %g), want (%g, %g)", spaced.X, spaced.Y, base.X, base.Y)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		container Size
		wantErr   bool
	}{
		{"valid", Request{Position: TopLeft}, testContainer, false},
		{"valid with direction", Request{Position: TopLeft, Direction: Down.Ptr()}, testContainer, false},
		{"unknown position", Request{Position: Position(42)}, testContainer, true},
		{"unknown direction", Request{Position: TopLeft, Direction: Direction(42).Ptr()}, testContainer, true},
		{"negative index", Request{Position: TopLeft, Index: -1}, testContainer, true},
		{"negative button size", Request{Position: TopLeft, ButtonSize: -1}, testContainer, true},
		{"negative container", Request{Position: TopLeft}, Size{Width: -1, Height: 300}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req, tt.container)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStyleAndCoordinatesAgree(t *testing.T) {
	// Spot-check that a calc() style and the numeric coordinate describe
	// the same placement for a stacked control.
	p := Compute(Request{Position: BottomRight, Index: 1}, testContainer)

	if !strings.Contains(p.Style, "calc(12px + 48px)") {
		t.Errorf("Style = %q, want calc(12px + 48px)", p.Style)
	}
	// bottom: calc(12+48) == y of height-60.
	if want := testContainer.Height - 60; p.Y != want {
		t.Errorf("Y = %g, want %g", p.Y, want)
	}
}
