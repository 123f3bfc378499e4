package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/tilegrid/geom"
)

// cellCommand creates the "cell" command.
func (c *CLI) cellCommand() *cobra.Command {
	var layerName string

	cmd := &cobra.Command{
		Use:   "cell WX WY",
		Short: "Find the cell of a layer containing a world point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			stack, err := c.loadStack()
			if err != nil {
				return err
			}
			l, err := stack.Get(layerName)
			if err != nil {
				return err
			}
			w := geom.WorldPoint{X: x, Y: y}
			g := l.Grid()
			fmt.Fprintf(cmd.OutOrStdout(), "%s cell: %s\n", l.Name(), g.WorldToCell(w))
			fmt.Fprintf(cmd.OutOrStdout(), "%s exact: %s\n", l.Name(), g.WorldToLocal(w))
			return nil
		},
	}

	cmd.Flags().StringVarP(&layerName, "layer", "l", "", "layer to resolve against (required)")
	_ = cmd.MarkFlagRequired("layer")

	return cmd
}

// worldCommand creates the "world" command.
func (c *CLI) worldCommand() *cobra.Command {
	var layerName string

	cmd := &cobra.Command{
		Use:   "world X Y",
		Short: "Map layer-local coordinates to world space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			stack, err := c.loadStack()
			if err != nil {
				return err
			}
			l, err := stack.Get(layerName)
			if err != nil {
				return err
			}
			w := l.Grid().LocalToWorld(geom.Point{X: x, Y: y})
			fmt.Fprintf(cmd.OutOrStdout(), "world: %s\n", w)
			return nil
		},
	}

	cmd.Flags().StringVarP(&layerName, "layer", "l", "", "layer the point is given on (required)")
	_ = cmd.MarkFlagRequired("layer")

	return cmd
}
