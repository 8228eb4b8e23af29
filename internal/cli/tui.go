package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pixelgrid/overlaykit/pkg/gallery"
)

// canvasCols and canvasRows fix the character grid a tile is scaled into.
// Terminal cells are roughly twice as tall as wide, so the row count is
// halved to keep the tile's aspect visually plausible.
const (
	canvasCols = 48
	canvasRows = 14
)

// =============================================================================
// PreviewModel - Interactive Plan Preview
// =============================================================================

// PreviewModel is the bubbletea model for the plan preview. It shows one
// tile at a time with its controls marked at their scaled anchor points;
// left/right switch tiles.
type PreviewModel struct {
	Plan   gallery.GalleryPlan
	Cursor int
}

// NewPreviewModel creates a preview model positioned on the first tile.
func NewPreviewModel(plan gallery.GalleryPlan) PreviewModel {
	return PreviewModel{Plan: plan}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l":
			if m.Cursor < len(m.Plan.Tiles)-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Overlay Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ switch tile  q quit"))
	b.WriteString("\n\n")

	tile := m.Plan.Tiles[m.Cursor]
	b.WriteString(m.renderTile(tile))
	b.WriteString("\n")

	if tile.Entry.IsPlaceholder() {
		b.WriteString(StyleDim.Render("  placeholder tile: no controls"))
		b.WriteString("\n")
	} else {
		for _, pc := range tile.Controls {
			line := fmt.Sprintf("  %s %s  %s",
				StyleHighlight.Render(controlGlyph(pc.Control.Kind)),
				StyleValue.Render(string(pc.Control.Kind)),
				StyleDim.Render(pc.Placement.Style))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.Plan.Tiles), tileLabel(tile.Entry))))

	return b.String()
}

// renderTile draws the tile as a bordered character grid with each control's
// glyph placed at its anchor point, scaled from container coordinates.
func (m PreviewModel) renderTile(tile gallery.TilePlan) string {
	grid := make([][]rune, canvasRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", canvasCols))
	}

	if tile.Entry.IsPlaceholder() {
		label := []rune("+ upload")
		row := canvasRows / 2
		col := (canvasCols - len(label)) / 2
		copy(grid[row][col:], label)
	}

	w, h := m.Plan.Container.Width, m.Plan.Container.Height
	for _, pc := range tile.Controls {
		col := scaleCoord(pc.Placement.X, w, canvasCols)
		row := scaleCoord(pc.Placement.Y, h, canvasRows)
		grid[row][col] = []rune(controlGlyph(pc.Control.Kind))[0]
	}

	lines := make([]string, canvasRows)
	for i, row := range grid {
		lines[i] = string(row)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim)
	return box.Render(strings.Join(lines, "\n"))
}

// scaleCoord maps a container coordinate onto a grid cells wide, clamped
// to the grid.
func scaleCoord(v, max float64, cells int) int {
	if max <= 0 {
		return 0
	}
	c := int(v / max * float64(cells-1))
	if c < 0 {
		c = 0
	}
	if c > cells-1 {
		c = cells - 1
	}
	return c
}

// controlGlyph returns the single-character marker drawn for a control kind.
func controlGlyph(k gallery.ControlKind) string {
	if k == "" {
		return "?"
	}
	return strings.ToUpper(string(k[0]))
}

// tileLabel describes an entry for the status line.
func tileLabel(e gallery.Entry) string {
	if e.IsPlaceholder() {
		return "placeholder"
	}
	if e.Source != "" {
		return e.Source
	}
	return "item"
}
