package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
	"github.com/matzehuels/nodescape/pkg/pipeline"
)

type axesFlags struct {
	xParam   string
	yParam   string
	viewport string
	pan      string
	zoom     float64
	maxTicks int
	asJSON   bool
}

// axesCommand creates the axes command for printing axis ticks.
func (c *CLI) axesCommand() *cobra.Command {
	var f axesFlags

	cmd := &cobra.Command{
		Use:   "axes [layout.json | graph.json]",
		Short: "Print axis ticks for a parameter layout",
		Long: `Print axis ticks for a parameter layout.

The input is either a layout written by 'layout -m parameters', or a graph
file together with --x and --y. Ticks are computed for the viewport, which
defaults to the whole world and can be panned and zoomed.`,
		Example: `  nodescape axes graph.layout.json
  nodescape axes graph.layout.json --zoom 0.25 --pan 10,-5
  nodescape axes graph.json --x cpu --y latency --viewport -50,50,-50,50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAxes(cmd.Context(), args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.xParam, "x", "", "x parameter (graph input)")
	cmd.Flags().StringVar(&f.yParam, "y", "", "y parameter (graph input)")
	cmd.Flags().StringVar(&f.viewport, "viewport", "", "visible world rectangle: left,right,bottom,top")
	cmd.Flags().StringVar(&f.pan, "pan", "", "shift the viewport by dx,dy world units")
	cmd.Flags().Float64Var(&f.zoom, "zoom", 1, "scale the viewport around its center (< 1 zooms in)")
	cmd.Flags().IntVar(&f.maxTicks, "max-ticks", 0, "cap ticks per axis (default from config)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print axes as JSON")

	return cmd
}

func (c *CLI) runAxes(ctx context.Context, input string, f axesFlags) error {
	info, err := c.axisInfo(ctx, input, f)
	if err != nil {
		return err
	}

	vp := axis.ViewportFor(info.Spread)
	if f.viewport != "" {
		v, err := parseFloats(f.viewport, 4)
		if err != nil {
			return fmt.Errorf("--viewport: %w", err)
		}
		vp = axis.Viewport{Left: v[0], Right: v[1], Bottom: v[2], Top: v[3]}
	}
	if f.pan != "" {
		d, err := parseFloats(f.pan, 2)
		if err != nil {
			return fmt.Errorf("--pan: %w", err)
		}
		vp = vp.Pan(d[0], d[1])
	}
	if f.zoom <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--zoom must be positive")
	}
	vp = vp.Zoom(f.zoom)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	p := axis.NewProjector(info)
	p.MaxTicks = cfg.Axis.MaxTicks
	if f.maxTicks > 0 {
		p.MaxTicks = f.maxTicks
	}
	axes, _ := p.Project(vp)

	if f.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(axes)
	}
	printAxes(os.Stdout, axes)
	return nil
}

// axisInfo reads cached axis info from a layout file, or computes it from a
// graph file when --x and --y are given.
func (c *CLI) axisInfo(ctx context.Context, input string, f axesFlags) (axis.Info, error) {
	if f.xParam == "" && f.yParam == "" {
		l, err := graph.ReadLayoutFile(input)
		if err != nil {
			return axis.Info{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read layout %s", input)
		}
		if l.Axis == nil {
			return axis.Info{}, errors.New(errors.ErrCodeMissingParameter,
				"%s is a %s layout without axes; use a parameters layout or pass --x and --y", input, l.Mode)
		}
		return *l.Axis, nil
	}

	g, err := pipeline.ParseFile(input)
	if err != nil {
		return axis.Info{}, err
	}
	opts, err := c.layoutOptionsFromConfig()
	if err != nil {
		return axis.Info{}, err
	}
	opts.Mode = graph.ModeParameters
	opts.XParam, opts.YParam = f.xParam, f.yParam
	res, err := c.newRunner(pipeline.LogStatus(loggerFromContext(ctx))).Layout(ctx, g, opts)
	if err != nil {
		return axis.Info{}, err
	}
	return *res.Axis, nil
}

func (c *CLI) layoutOptionsFromConfig() (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := cfg.LayoutOptions()
	opts.Logger = c.Logger
	return opts, nil
}

// parseFloats parses exactly n comma-separated finite numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "want %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	named := make(map[string]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "not a number: %q", p)
		}
		out[i] = v
		named[fmt.Sprintf("value %d", i+1)] = v
	}
	if err := errors.ValidateFinite(named); err != nil {
		return nil, err
	}
	return out, nil
}
