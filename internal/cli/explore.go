package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nodescape/pkg/graph"
)

// exploreCommand creates the explore command for interactive viewing.
func (c *CLI) exploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [layout.json]",
		Short: "Pan and zoom a layout in the terminal",
		Long: `Pan and zoom a layout in the terminal.

The input is a JSON layout written by 'layout'. Parameter layouts show
labelled axes that follow the viewport: tick spacing adapts as you zoom.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := graph.ReadLayoutFile(args[0])
			if err != nil {
				return fmt.Errorf("read layout %s: %w", args[0], err)
			}
			loggerFromContext(cmd.Context()).Debug("exploring layout",
				"mode", l.Mode, "nodes", len(l.Positions), "axes", l.Axis != nil)

			p := tea.NewProgram(NewExploreModel(l), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
	return cmd
}
