package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nodescape/pkg/core/synth"
	"github.com/matzehuels/nodescape/pkg/graph"
	"github.com/matzehuels/nodescape/pkg/pipeline"
)

// generateCommand creates the generate command for synthetic demo graphs.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		nodes  int
		seed   uint64
		output string
		params string
	)
	opts := synth.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic demo graph",
		Long: `Write a synthetic demo graph.

Nodes are grouped into clusters that share parameter centers, so parameter
layouts show visible structure and force layouts pull clusters together.`,
		Example: `  nodescape generate -n 10000 -o demo.json
  nodescape generate -n 500 --params cpu,memory | nodescape layout -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if params != "" {
				opts.Params = strings.Split(params, ",")
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			g, err := pipeline.Synthesize(nodes, seed, opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return graph.WriteGraph(g, os.Stdout)
			}
			if err := graph.WriteGraphFile(g, output); err != nil {
				return fmt.Errorf("write graph %s: %w", output, err)
			}

			prog.done("Generated graph", "nodes", humanize.Comma(int64(len(g.Nodes))), "edges", len(g.Edges))
			printFile(output)
			printStats(len(g.Nodes), len(g.Edges), 0, nil)
			printKeyValue("parameters", strings.Join(graph.ParamNames(g.Nodes), ", "))
			printNewline()
			printNextStep("Lay out", fmt.Sprintf("%s layout %s", appName, output))
			return nil
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 1000, "number of nodes")
	cmd.Flags().Uint64Var(&seed, "seed", pipeline.DefaultSeed, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&params, "params", "", "comma-separated numeric parameter names")
	cmd.Flags().IntVar(&opts.Clusters, "clusters", 0, "number of clusters (default 10)")
	cmd.Flags().Float64Var(&opts.EdgesPerNode, "edges-per-node", 0, "average out-degree (default 2)")
	cmd.Flags().Float64Var(&opts.CrossClusterRatio, "cross-cluster", 0, "share of edges leaving their cluster (default 0.05)")
	cmd.Flags().Float64Var(&opts.Noise, "noise", 0, "parameter noise around cluster centers (default 8)")

	return cmd
}
