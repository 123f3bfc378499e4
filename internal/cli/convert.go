package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/tilegrid/geom"
	"github.com/milk9111/tilegrid/location"
)

// convertCommand creates the "convert" command.
func (c *CLI) convertCommand() *cobra.Command {
	var from, to string
	var exact bool

	cmd := &cobra.Command{
		Use:   "convert X Y",
		Short: "Show where a point on one layer lands on another",
		Long: `Convert places a location on the --from layer and reports its cell,
exact local coordinates and world position as seen by the --to layer.

Without --exact, X and Y are integer cell coordinates and the location sits
at that cell's centre. With --exact they are fractional local coordinates.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := c.loadStack()
			if err != nil {
				return err
			}
			src, err := stack.Get(from)
			if err != nil {
				return err
			}
			dst := src
			if to != "" {
				if dst, err = stack.Get(to); err != nil {
					return err
				}
			}

			loc := location.New(src)
			if exact {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				err = loc.SetExactLayerCoordinates(geom.Point{X: x, Y: y})
				if err != nil {
					return err
				}
			} else {
				x, y, err := parseCell(args)
				if err != nil {
					return err
				}
				if err := loc.SetLayerCoordinates(geom.Cell{X: x, Y: y}); err != nil {
					return err
				}
			}

			world, err := loc.ElevationCoordinates()
			if err != nil {
				return err
			}
			cell, err := loc.LayerCoordinatesOn(dst)
			if err != nil {
				return err
			}
			local, err := loc.ExactLayerCoordinatesOn(dst)
			if err != nil {
				return err
			}
			c.Logger.Debug("converted", "from", src.Name(), "to", dst.Name(), "world", world)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "world: %s\n", world)
			fmt.Fprintf(out, "%s cell: %s\n", dst.Name(), cell)
			fmt.Fprintf(out, "%s exact: %s\n", dst.Name(), local)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "layer the point is given on (required)")
	cmd.Flags().StringVar(&to, "to", "", "layer to express the point on (defaults to --from)")
	cmd.Flags().BoolVar(&exact, "exact", false, "treat X Y as fractional local coordinates")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
