package cli

import (
	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a shell completion script. Flag values such as
// --mode and --format complete from the same lists the commands validate
// against.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for nodescape.

  bash:        source <(nodescape completion bash)
  zsh:         nodescape completion zsh > "${fpath[1]}/_nodescape"
  fish:        nodescape completion fish > ~/.config/fish/completions/nodescape.fish
  powershell:  nodescape completion powershell | Out-String | Invoke-Expression

Start a new shell afterwards. Completion covers subcommands, layout modes,
export formats and parameter names found in the input graph.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
