package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/nodescape/pkg/core/force"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Layout.Mode != graph.ModeForce {
		t.Errorf("Mode = %q", c.Layout.Mode)
	}
	if c.Solver.Damping != force.DefaultDamping {
		t.Errorf("Damping = %v, want %v", c.Solver.Damping, force.DefaultDamping)
	}
	if c.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q", c.Server.Addr)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "nodescape.toml", `
[layout]
mode = "parameters"
x_param = "cpu"
y_param = "latency"

[solver]
damping = 0.5
max_iterations = 100

[server]
addr = ":9090"
request_timeout = "30s"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Layout.Mode != graph.ModeParameters || c.Layout.XParam != "cpu" || c.Layout.YParam != "latency" {
		t.Errorf("layout = %+v", c.Layout)
	}
	if c.Solver.Damping != 0.5 || c.Solver.MaxIterations != 100 {
		t.Errorf("solver = %+v", c.Solver)
	}
	if c.Solver.AttractionStrength != force.DefaultAttractionStrength {
		t.Errorf("unset solver field not defaulted: %v", c.Solver.AttractionStrength)
	}
	if c.Server.Addr != ":9090" || c.Server.RequestTimeout != 30*time.Second {
		t.Errorf("server = %+v", c.Server)
	}

	opts := c.LayoutOptions()
	if opts.Mode != graph.ModeParameters || opts.Solver.Damping != 0.5 {
		t.Errorf("LayoutOptions = %+v", opts)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "nodescape.yml", `
layout:
  mode: grid
  spread: 250
axis:
  max_ticks: 40
log:
  level: debug
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Layout.Mode != graph.ModeGrid || c.Layout.Spread != 250 {
		t.Errorf("layout = %+v", c.Layout)
	}
	if c.Axis.MaxTicks != 40 || c.Log.Level != "debug" {
		t.Errorf("axis = %+v, log = %+v", c.Axis, c.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.Code
	}{
		{"bad mode", "c.toml", "[layout]\nmode = \"spiral\"\n", errors.ErrCodeInvalidConfig},
		{"negative damping", "c.yaml", "solver:\n  damping: -1\n", errors.ErrCodeInvalidConfig},
		{"damping above one", "c.toml", "[solver]\ndamping = 1.5\n", errors.ErrCodeInvalidConfig},
		{"cooling above one", "c.toml", "[solver]\nsampled_cooling = 1.5\n", errors.ErrCodeInvalidConfig},
		{"negative sample size", "c.yaml", "solver:\n  sample_size: -5\n", errors.ErrCodeInvalidConfig},
		{"unknown yaml key", "c.yaml", "layout:\n  colour: red\n", errors.ErrCodeInvalidConfig},
		{"malformed toml", "c.toml", "[layout\n", errors.ErrCodeInvalidConfig},
		{"bad level", "c.toml", "[log]\nlevel = \"loud\"\n", errors.ErrCodeInvalidConfig},
		{"unsupported extension", "c.ini", "mode=grid", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want code %s", err, tt.code)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Layout.Mode != graph.ModeForce {
		t.Errorf("Mode = %q", c.Layout.Mode)
	}

	c, err = Load(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("empty yaml: %v", err)
	}
	if c.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q", c.Server.Addr)
	}
}

func TestEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("NODESCAPE_LOG_LEVEL=DEBUG\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	if err := LoadEnv(envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := EnvLogLevelValue(); got != "debug" {
		t.Errorf("EnvLogLevelValue = %q, want debug", got)
	}

	t.Setenv(EnvConfig, "/etc/nodescape.toml")
	if got := ResolvePath(""); got != "/etc/nodescape.toml" {
		t.Errorf("ResolvePath(\"\") = %q", got)
	}
	if got := ResolvePath("local.toml"); got != "local.toml" {
		t.Errorf("ResolvePath(flag) = %q", got)
	}
}
