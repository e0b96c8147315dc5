package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodescape/pkg/metrics"
	"github.com/matzehuels/nodescape/pkg/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noMetrics bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

Routes:
  POST /v1/layout   lay out a graph
  POST /v1/axes     compute axis ticks for a viewport
  GET  /healthz     health and version
  GET  /metrics     Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Server.RequestTimeout = timeout
			}

			var reg *metrics.Registry
			if !noMetrics {
				reg = metrics.DefaultRegistry()
				reg.Install()
			}

			logger := loggerFromContext(cmd.Context())
			logger.Info("starting server",
				"addr", cfg.Server.Addr,
				"timeout", cfg.Server.RequestTimeout,
				"metrics", reg != nil)
			return server.New(cfg, logger, reg).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request layout timeout")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable /metrics and instrumentation")

	return cmd
}
