package cli

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelgrid/overlaykit/pkg/gallery"
	"github.com/pixelgrid/overlaykit/pkg/overlay"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    overlay.Size
		wantErr bool
	}{
		{"400x300", overlay.Size{Width: 400, Height: 300}, false},
		{"400X300", overlay.Size{Width: 400, Height: 300}, false},
		{" 120.5 x 80 ", overlay.Size{Width: 120.5, Height: 80}, false},
		{"400", overlay.Size{}, true},
		{"x300", overlay.Size{}, true},
		{"400x", overlay.Size{}, true},
		{"axb", overlay.Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSize(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScaleCoord(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		max   float64
		cells int
		want  int
	}{
		{"origin", 0, 400, 48, 0},
		{"far edge", 400, 400, 48, 47},
		{"midpoint", 200, 400, 48, 23},
		{"beyond edge clamps", 500, 400, 48, 47},
		{"negative clamps", -10, 400, 48, 0},
		{"zero container", 10, 0, 48, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleCoord(tt.v, tt.max, tt.cells); got != tt.want {
				t.Errorf("scaleCoord(%g, %g, %d) = %d, want %d", tt.v, tt.max, tt.cells, got, tt.want)
			}
		})
	}
}

func TestControlGlyph(t *testing.T) {
	if got := controlGlyph(gallery.ControlDelete); got != "D" {
		t.Errorf("controlGlyph(delete) = %q, want %q", got, "D")
	}
	if got := controlGlyph(""); got != "?" {
		t.Errorf("controlGlyph(empty) = %q, want %q", got, "?")
	}
}

func TestPreviewModelNavigation(t *testing.T) {
	plan := gallery.GalleryPlan{
		Container: overlay.Size{Width: 400, Height: 300},
		Tiles: []gallery.TilePlan{
			{Entry: gallery.Item("a.jpg", "")},
			{Entry: gallery.Item("b.jpg", "")},
		},
	}
	m := NewPreviewModel(plan)

	key := func(s string) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	next, _ := m.Update(key("l"))
	m = next.(PreviewModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor after right = %d, want 1", m.Cursor)
	}

	// Moving past the last tile stays put.
	next, _ = m.Update(key("l"))
	m = next.(PreviewModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor past end = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(key("h"))
	m = next.(PreviewModel)
	if m.Cursor != 0 {
		t.Fatalf("Cursor after left = %d, want 0", m.Cursor)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command on q")
	}
}

func TestPlaceCommandComputes(t *testing.T) {
	c := New(testWriter{t}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"place", "bottom-right", "--index", "1", "--container", "400x300", "--output", "css"})
	if err := root.Execute(); err != nil {
		t.Fatalf("place command error = %v", err)
	}
}

func TestPlanCommandFromManifest(t *testing.T) {
	manifest := `
[container]
width = 400
height = 300

[[entries]]
kind = "item"
source = "a.jpg"

[[controls]]
kind = "favorite"
position = "top-right"
`
	path := filepath.Join(t.TempDir(), "gallery.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	c := New(testWriter{t}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"plan", path, "--no-cache", "--output", "json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("plan command error = %v", err)
	}
}

// testWriter routes logger output through the test log.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
