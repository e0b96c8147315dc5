// Package config loads nodescape configuration files.
//
// A configuration file is TOML or YAML, chosen by extension (.toml, .yaml,
// .yml). Every field is optional: zero values fall back to the same
// defaults the CLI and API use. A minimal TOML file:
//
//	[layout]
//	mode = "parameters"
//	x_param = "cpu"
//	y_param = "latency"
//
//	[solver]
//	damping = 0.8
//
//	[server]
//	addr = ":9090"
//
// # Environment
//
// [LoadEnv] reads a .env file if present. NODESCAPE_CONFIG names the config
// file when no --config flag is given; NODESCAPE_LOG_LEVEL sets the log level.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/core/force"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/pipeline"
)

// Environment variables.
const (
	EnvConfig   = "NODESCAPE_CONFIG"
	EnvLogLevel = "NODESCAPE_LOG_LEVEL"
)

// Server defaults.
const (
	DefaultAddr           = ":8080"
	DefaultRequestTimeout = 2 * time.Minute
	DefaultMaxBodyBytes   = 64 << 20
)

// Config is the top-level configuration document.
type Config struct {
	Layout LayoutConfig `toml:"layout" yaml:"layout"`
	Solver force.Config `toml:"solver" yaml:"solver"`
	Axis   AxisConfig   `toml:"axis" yaml:"axis"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// LayoutConfig mirrors pipeline.Options.
type LayoutConfig struct {
	Mode        string  `toml:"mode" yaml:"mode" validate:"omitempty,oneof=random grid circular force parameters"`
	XParam      string  `toml:"x_param" yaml:"x_param" validate:"omitempty,max=256"`
	YParam      string  `toml:"y_param" yaml:"y_param" validate:"omitempty,max=256"`
	Spread      float64 `toml:"spread" yaml:"spread" validate:"gte=0"`
	SpreadScale float64 `toml:"spread_scale" yaml:"spread_scale" validate:"gte=0"`
	Seed        uint64  `toml:"seed" yaml:"seed"`
	BatchSize   int     `toml:"batch_size" yaml:"batch_size" validate:"gte=0"`
	MaxNodes    int     `toml:"max_nodes" yaml:"max_nodes" validate:"gte=0"`
}

// AxisConfig controls tick generation.
type AxisConfig struct {
	MaxTicks int `toml:"max_ticks" yaml:"max_ticks" validate:"gte=0"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr           string        `toml:"addr" yaml:"addr"`
	RequestTimeout time.Duration `toml:"request_timeout" yaml:"request_timeout" validate:"gte=0"`
	MaxBodyBytes   int64         `toml:"max_body_bytes" yaml:"max_body_bytes" validate:"gte=0"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns a configuration with every default filled in.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults replaces zero values with defaults.
func (c *Config) SetDefaults() {
	if c.Layout.Mode == "" {
		c.Layout.Mode = pipeline.DefaultMode
	}
	if c.Layout.SpreadScale == 0 {
		c.Layout.SpreadScale = pipeline.DefaultSpreadScale
	}
	if c.Layout.Seed == 0 {
		c.Layout.Seed = pipeline.DefaultSeed
	}
	if c.Layout.BatchSize == 0 {
		c.Layout.BatchSize = pipeline.DefaultBatchSize
	}
	if c.Layout.MaxNodes == 0 {
		c.Layout.MaxNodes = pipeline.DefaultMaxNodes
	}
	c.Solver.SetDefaults()
	if c.Axis.MaxTicks == 0 {
		c.Axis.MaxTicks = axis.DefaultMaxTicks
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks struct constraints. Failures carry INVALID_CONFIG.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, formatValidationError(err), "invalid configuration")
	}
	return nil
}

// LayoutOptions converts the layout and solver sections into pipeline options.
func (c *Config) LayoutOptions() pipeline.Options {
	return pipeline.Options{
		Mode:        c.Layout.Mode,
		XParam:      c.Layout.XParam,
		YParam:      c.Layout.YParam,
		Spread:      c.Layout.Spread,
		SpreadScale: c.Layout.SpreadScale,
		Seed:        c.Layout.Seed,
		BatchSize:   c.Layout.BatchSize,
		MaxNodes:    c.Layout.MaxNodes,
		Solver:      c.Solver,
	}
}

// =============================================================================
// Loading
// =============================================================================

// Load reads, defaults, and validates the file at path. An empty path
// returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, formatOf(path))
}

// Parse decodes data in the given format ("toml" or "yaml").
func Parse(data []byte, format string) (*Config, error) {
	c := &Config{}
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid TOML")
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid YAML")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format: %q (use .toml or .yaml)", format)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// =============================================================================
// Environment
// =============================================================================

// LoadEnv loads .env files into the process environment. Missing files are
// ignored; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ResolvePath returns flag if set, else $NODESCAPE_CONFIG.
func ResolvePath(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(EnvConfig)
}

// EnvLogLevelValue returns $NODESCAPE_LOG_LEVEL, lowercased.
func EnvLogLevelValue() string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}
	for _, e := range verrs {
		field, tag, param := e.Namespace(), e.Tag(), e.Param()
		switch tag {
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s characters", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}
	return err
}
