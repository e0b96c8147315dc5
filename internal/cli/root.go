package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/nodescape/pkg/buildinfo"
	"github.com/matzehuels/nodescape/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Log level precedence, lowest first: the config file's [log] level,
// NODESCAPE_LOG_LEVEL, then --verbose.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Nodescape lays out large graphs in 2D",
		Long: `Nodescape computes 2D layouts for large node-link graphs.

Nodes can be placed at random, on a grid, on a circle, by a force-directed
simulation, or by two chosen node parameters with labelled axes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			level := LogInfo
			if l, ok := ParseLevel(cfg.Log.Level); ok {
				level = l
			}
			if l, ok := ParseLevel(config.EnvLogLevelValue()); ok {
				level = l
			}
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml or .yaml; default $"+config.EnvConfig+")")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.axesCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
