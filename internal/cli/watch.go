package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/tilegrid/config"
)

// watchCommand creates the "watch" command.
func (c *CLI) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow a config file and apply its transforms as it changes",
		Long: `Watch loads the layers from --config, then re-reads the file on every
change and applies the new transforms to the live layers. Invalid edits are
reported and the last good transforms stay in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath == "" {
				return errors.New("watch needs --config")
			}
			stack, err := c.loadStack()
			if err != nil {
				return err
			}
			r := config.NewReloader(c.configPath, stack, config.WithLogger(c.Logger))
			r.OnApply = func(*config.Config) {
				for _, l := range stack.Layers() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", l.Name(), l.Grid().Transform())
				}
			}
			err = r.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
