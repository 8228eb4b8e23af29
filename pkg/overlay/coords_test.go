package overlay

import "testing"

func TestResolveOffset(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty uses default", "", 12},
		{"pixel suffix", "20px", 20},
		{"bare number", "20", 20},
		{"fractional", "7.5px", 7.5},
		{"whitespace tolerated", "  16px ", 16},
		// Lenient fallback: bad input degrades to the default instead of
		// failing the render.
		{"other unit falls back", "1.5rem", 12},
		{"percent falls back", "10%", 12},
		{"garbage falls back", "abc", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveOffset(tt.in); got != tt.want {
				t.Errorf("ResolveOffset(%q) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnchorPointCustomOffset(t *testing.T) {
	c := Size{Width: 400, Height: 300}

	x, y, _ := anchorPoint(TopLeft, c, 20)
	if x != 20 || y != 20 {
		t.Errorf("TopLeft with offset 20 = (%g, %g), want (20, 20)", x, y)
	}

	x, y, _ = anchorPoint(BottomRight, c, 20)
	if x != 380 || y != 280 {
		t.Errorf("BottomRight with offset 20 = (%g, %g), want (380, 280)", x, y)
	}

	// Centered axes ignore the offset entirely.
	x, y, transform := anchorPoint(Center, c, 20)
	if x != 200 || y != 150 || transform != "translate(-50%, -50%)" {
		t.Errorf("Center = (%g, %g, %q)", x, y, transform)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"top-left", TopLeft, false},
		{"TopLeft", TopLeft, false},
		{"bottom_right", BottomRight, false},
		{"CENTER", Center, false},
		{"center-right", CenterRight, false},
		{"middle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePosition(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Right, Left, Up, Down} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) = nil error, want error")
	}
}
