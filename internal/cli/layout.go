package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodescape/pkg/graph"
	"github.com/matzehuels/nodescape/pkg/pipeline"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		format  string
		inPlace bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a graph",
		Long: `Compute node positions for a graph.

The layout command reads a graph.json file ("-" for stdin) and writes a
layout document with one position per node. Modes:

  random      uniform in the world square
  grid        row-major grid
  circular    evenly spaced on a circle
  force       force-directed simulation (default)
  parameters  x and y from two node parameters, with axis info

Flags override values from the config file.`,
		Example: `  nodescape layout graph.json
  nodescape layout graph.json -m parameters --x cpu --y latency
  nodescape layout graph.json -f csv -o positions.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := c.layoutOptions(cmd, opts)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], merged, output, format, inPlace)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.<format>, - for stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatJSON, "output format: json, csv, tsv")
	cmd.Flags().BoolVar(&inPlace, "write-graph", false, "also write positions back into the graph file")

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "layout mode: random, grid, circular, force, parameters")
	cmd.Flags().StringVar(&opts.XParam, "x", "", "parameter for the x axis (parameters mode)")
	cmd.Flags().StringVar(&opts.YParam, "y", "", "parameter for the y axis (parameters mode)")
	cmd.Flags().Float64Var(&opts.Spread, "spread", 0, "world half-width (default: scale * sqrt(nodes))")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&opts.Solver.MaxIterations, "max-iterations", 0, "cap solver iterations")

	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return graph.Modes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("x", completeParams)
	_ = cmd.RegisterFlagCompletionFunc("y", completeParams)

	return cmd
}

// layoutOptions overlays explicitly set flags onto the config file's layout
// options.
func (c *CLI) layoutOptions(cmd *cobra.Command, flags pipeline.Options) (pipeline.Options, error) {
	opts, err := c.layoutOptionsFromConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	set := cmd.Flags().Changed
	if set("mode") {
		opts.Mode = flags.Mode
	}
	if set("x") {
		opts.XParam = flags.XParam
	}
	if set("y") {
		opts.YParam = flags.YParam
	}
	if set("spread") {
		opts.Spread = flags.Spread
	}
	if set("seed") {
		opts.Seed = flags.Seed
	}
	if set("max-iterations") {
		opts.Solver.MaxIterations = flags.Solver.MaxIterations
	}
	return opts, nil
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output, format string, writeGraph bool) error {
	if err := pipeline.ValidateFormat(format); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := pipeline.ParseFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debug("loaded graph", "nodes", len(g.Nodes), "edges", len(g.Edges))

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Mode))
	spinner.Start()

	res, err := c.newRunner(spinner).Layout(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	data, err := pipeline.Export(res.Layout, format)
	if err != nil {
		return err
	}

	outputPath := output
	if outputPath == "" {
		if input == "-" {
			outputPath = "-"
		} else {
			base := strings.TrimSuffix(input, filepath.Ext(input))
			outputPath = base + ".layout." + format
		}
	}
	if outputPath == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	if writeGraph && input != "-" {
		if err := graph.WriteGraphFile(g, input); err != nil {
			return fmt.Errorf("write graph %s: %w", input, err)
		}
	}

	prog.done("Layout complete", "mode", opts.Mode, "nodes", res.Stats.NodeCount)
	for _, msg := range spinner.Messages() {
		printDetail("%s", msg)
	}
	printFile(outputPath)
	var converged *bool
	if res.Solve != nil {
		converged = &res.Solve.Converged
	}
	printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.DroppedEdges, converged)
	if converged != nil && !*converged {
		printWarning("solver stopped at the iteration cap; raise --max-iterations for a tighter layout")
	}
	if res.Axis != nil && format == pipeline.FormatJSON {
		printNewline()
		printNextStep("Axes", fmt.Sprintf("%s axes %s", appName, outputPath))
	}
	return nil
}

// completeParams offers the parameter names of the graph named by the first
// argument.
func completeParams(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 || args[0] == "-" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	g, err := pipeline.ParseFile(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return graph.ParamNames(g.Nodes), cobra.ShellCompDirectiveNoFileComp
}
