package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pixelgrid/overlaykit/pkg/cache"
	"github.com/pixelgrid/overlaykit/pkg/gallery"
)

// planCacheTTL bounds how long a memoized manifest plan stays valid on disk.
const planCacheTTL = 24 * time.Hour

const outputTable = "table"

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	output  string // output format: table or json
	noCache bool   // skip the on-disk plan cache
}

// planCommand creates the plan command for computing a full gallery plan.
func (c *CLI) planCommand() *cobra.Command {
	opts := planOpts{output: outputTable}

	cmd := &cobra.Command{
		Use:   "plan [manifest.toml]",
		Short: "Compute the overlay plan for a gallery manifest",
		Long: `Load a gallery manifest, assign stacking ordinals to its controls, and
compute a placement for every control on every tile. Identical manifests are
served from the plan cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gallery.LoadManifest(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			plan, cached, err := c.loadPlan(cmd, g, opts.noCache)
			if err != nil {
				return err
			}

			controls := 0
			for _, t := range plan.Tiles {
				controls += len(t.Controls)
			}
			prog.done(fmt.Sprintf("Planned %d controls across %d tiles", controls, len(plan.Tiles)))

			if opts.output == outputJSON {
				data, err := json.MarshalIndent(plan, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			renderPlanTable(plan)
			printPlanStats(len(plan.Tiles), controls, cached)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output format: table or json")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the plan cache")

	return cmd
}

// loadPlan computes the plan for g, memoized by the manifest's content hash.
func (c *CLI) loadPlan(cmd *cobra.Command, g gallery.Gallery, noCache bool) (gallery.GalleryPlan, bool, error) {
	ctx := cmd.Context()
	store := newCache(noCache)
	defer store.Close()

	declaration, err := json.Marshal(g)
	if err != nil {
		return gallery.GalleryPlan{}, false, err
	}
	key := cache.NewDefaultKeyer().PlanKey(cache.Hash(declaration))

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		var plan gallery.GalleryPlan
		if err := json.Unmarshal(data, &plan); err == nil {
			c.Logger.Debug("Plan served from cache", "key", key)
			return plan, true, nil
		}
	}

	plan, err := g.Plan()
	if err != nil {
		return gallery.GalleryPlan{}, false, err
	}

	if data, err := json.Marshal(plan); err == nil {
		if err := store.Set(ctx, key, data, planCacheTTL); err != nil {
			c.Logger.Warn("Failed to cache plan", "error", err)
		}
	}
	return plan, false, nil
}

// renderPlanTable prints the shared per-tile control layout as a table,
// followed by a summary of the tiles it applies to.
func renderPlanTable(plan gallery.GalleryPlan) {
	var base []gallery.PlannedControl
	items, placeholders := 0, 0
	for _, t := range plan.Tiles {
		if t.Entry.IsPlaceholder() {
			placeholders++
			continue
		}
		items++
		if base == nil {
			base = t.Controls
		}
	}

	fmt.Println(StyleTitle.Render("Overlay Plan"))
	printDetail("container %gx%g", plan.Container.Width, plan.Container.Height)
	fmt.Println()

	if len(base) == 0 {
		printInfo("No controls declared")
	} else {
		headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

		rows := make([][]string, 0, len(base))
		for _, pc := range base {
			constrained := ""
			if pc.Placement.Constrained {
				constrained = iconSuccess
			}
			rows = append(rows, []string{
				string(pc.Control.Kind),
				pc.Control.Position.String(),
				fmt.Sprintf("%d", pc.Index),
				pc.Placement.Direction.String(),
				fmt.Sprintf("%g, %g", pc.Placement.X, pc.Placement.Y),
				constrained,
				pc.Placement.Style,
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("Control", "Position", "Ord", "Direction", "Anchor", "Pinned", "Style").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				if col == 6 {
					return StyleDim
				}
				return lipgloss.NewStyle().Foreground(colorWhite)
			})
		fmt.Println(t.Render())
	}

	if placeholders > 0 {
		printDetail("%d item tiles share this layout, %d placeholder tiles carry no controls", items, placeholders)
	} else {
		printDetail("%d item tiles share this layout", items)
	}
}
