// Package cli implements the gridconv command-line interface.
//
// Commands load a layer stack from a config file (or the built-in default)
// and answer coordinate questions against it:
//   - convert: a point on one layer as seen by another
//   - cell: the cell under a world point
//   - world: the world position of a layer-local point
//   - layers: the configured layers and their transforms
//   - watch: follow a config file and report each applied reload
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/tilegrid/config"
	"github.com/milk9111/tilegrid/layer"
)

const appName = "gridconv"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
	verbose    bool
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gridconv converts coordinates between map layers",
		Long:         `gridconv maps points between the square and hexagonal grids of a layered map and the shared world space they sit in.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "layer config file (.yaml, .yml or .toml); built-in layers when empty")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.cellCommand())
	root.AddCommand(c.worldCommand())
	root.AddCommand(c.layersCommand())
	root.AddCommand(c.watchCommand())

	return root
}

// loadStack builds the layer stack from --config or the default config.
func (c *CLI) loadStack() (*layer.Stack, error) {
	cfg := config.Default()
	source := "built-in"
	if c.configPath != "" {
		var err error
		cfg, err = config.Load(c.configPath)
		if err != nil {
			return nil, err
		}
		source = c.configPath
	}
	stack, err := config.Build(cfg)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("layers loaded", "source", source, "count", stack.Len())
	return stack, nil
}

// parsePair parses two positional float arguments.
func parsePair(args []string) (float64, float64, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse x %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse y %q: %w", args[1], err)
	}
	return x, y, nil
}

// parseCell parses two positional integer arguments.
func parseCell(args []string) (int, int, error) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse cell x %q: %w", args[0], err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse cell y %q: %w", args[1], err)
	}
	return x, y, nil
}
