package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pixelgrid/overlaykit/pkg/gallery"
)

// previewCommand creates the preview command for inspecting a plan in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [manifest.toml]",
		Short: "Preview a gallery plan in the terminal",
		Long: `Render the computed overlay plan as an interactive terminal view. Each tile
is drawn as a scaled box with its controls marked at their anchor points.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gallery.LoadManifest(args[0])
			if err != nil {
				return err
			}
			plan, err := g.Plan()
			if err != nil {
				return err
			}
			if len(plan.Tiles) == 0 {
				printInfo("Manifest declares no entries; nothing to preview")
				return nil
			}

			model := NewPreviewModel(plan)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
