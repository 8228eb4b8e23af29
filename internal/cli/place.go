package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixelgrid/overlaykit/pkg/overlay"
)

const (
	outputPlain = "plain" // labeled key-value lines
	outputJSON  = "json"  // the full placement as JSON
	outputCSS   = "css"   // only the CSS declaration string
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	index      int     // spacing ordinal among controls sharing the anchor
	direction  string  // explicit stacking direction, empty for intelligent
	container  string  // tile size as "WIDTHxHEIGHT"
	offset     string  // edge offset, e.g. "12px"
	buttonSize float64 // control diameter in pixels
	gap        float64 // gap between stacked controls in pixels
	output     string  // output format: plain, json, or css
}

// placeCommand creates the place command for computing one control placement.
func (c *CLI) placeCommand() *cobra.Command {
	opts := placeOpts{
		container: "400x300",
		output:    outputPlain,
	}

	cmd := &cobra.Command{
		Use:   "place [position]",
		Short: "Compute one overlay control placement",
		Long: `Compute the coordinates, stacking direction, and CSS style for a single
overlay control anchored at the given position, e.g.:

  overlaykit place bottom-right --index 1 --container 400x300`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := overlay.ParsePosition(args[0])
			if err != nil {
				return err
			}

			var dir *overlay.Direction
			if opts.direction != "" {
				d, err := overlay.ParseDirection(opts.direction)
				if err != nil {
					return err
				}
				dir = &d
			}

			container, err := parseSize(opts.container)
			if err != nil {
				return err
			}

			req := overlay.Request{
				Position:   pos,
				Index:      opts.index,
				Direction:  dir,
				ButtonSize: opts.buttonSize,
				Gap:        opts.gap,
				Offset:     opts.offset,
			}
			if err := overlay.Validate(req, container); err != nil {
				return err
			}

			return writePlacement(overlay.Compute(req, container), opts.output)
		},
	}

	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "spacing ordinal among controls sharing the anchor")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "", "stacking direction (right, left, up, down); intelligent when omitted")
	cmd.Flags().StringVarP(&opts.container, "container", "c", opts.container, "tile container size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&opts.offset, "offset", "", "edge offset (e.g. 12px)")
	cmd.Flags().Float64Var(&opts.buttonSize, "button-size", 0, "control diameter in pixels")
	cmd.Flags().Float64Var(&opts.gap, "gap", 0, "gap between stacked controls in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output format: plain, json, or css")

	return cmd
}

// writePlacement renders a computed placement in the requested format.
func writePlacement(p overlay.Placement, format string) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case outputCSS:
		fmt.Println(p.Style)
	case outputPlain:
		printKeyValue("Anchor", fmt.Sprintf("(%g, %g)", p.X, p.Y))
		printKeyValue("Direction", p.Direction.String())
		printKeyValue("Constrained", strconv.FormatBool(p.Constrained))
		if p.Transform != "" {
			printKeyValue("Transform", p.Transform)
		}
		printKeyValue("Style", p.Style)
	default:
		return fmt.Errorf("unknown output format %q (expected plain, json, or css)", format)
	}
	return nil
}

// parseSize parses a "WIDTHxHEIGHT" string into a container size.
func parseSize(s string) (overlay.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return overlay.Size{}, fmt.Errorf("invalid container size %q (expected WIDTHxHEIGHT)", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return overlay.Size{}, fmt.Errorf("invalid container width %q", w)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return overlay.Size{}, fmt.Errorf("invalid container height %q", h)
	}
	return overlay.Size{Width: width, Height: height}, nil
}
