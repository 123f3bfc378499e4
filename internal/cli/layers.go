package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/milk9111/tilegrid/config"
)

// layersCommand creates the "layers" command.
func (c *CLI) layersCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "layers",
		Short: "List the configured layers and their grid transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := c.loadStack()
			if err != nil {
				return err
			}
			if format != "" {
				data, err := config.FromStack(stack).Marshal(config.Format(format))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tSCALE\tROTATION\tSHIFT")
			for _, l := range stack.Layers() {
				t := l.Grid().Transform()
				fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t(%g, %g)\n",
					l.Name(), l.Grid().Kind(), t.Scale(), t.Rotation(), t.XShift(), t.YShift())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "", "print the layers as config (yaml or toml)")

	return cmd
}
