// Package cli implements the nodescape command-line interface.
//
// # Commands
//
//   - layout: compute node positions for a graph file
//   - axes: print axis ticks for a parameter layout and viewport
//   - generate: write a synthetic demo graph
//   - explore: pan and zoom a layout in the terminal
//   - serve: run the HTTP API
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The level can
// also come from NODESCAPE_LOG_LEVEL or the [log] section of the config file.
// Loggers are passed through context.Context.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nodescape/pkg/config"
	"github.com/matzehuels/nodescape/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "nodescape"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ParseLevel converts a level name into a log level. Unknown names return
// false.
func ParseLevel(s string) (log.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, true
	case "info":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}

// =============================================================================
// Config & Runner Factory
// =============================================================================

// loadConfig reads the config file named by --config or NODESCAPE_CONFIG,
// once per process.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := config.ResolvePath(c.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	c.cfg = cfg
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(status pipeline.StatusSink) *pipeline.Runner {
	return pipeline.NewRunner(c.Logger, status, nil)
}
