package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("solve") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("iteration", "n", 50) }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("iteration", "n", 50) }, true},
		{"warn at error", log.ErrorLevel, func(l *log.Logger) { l.Warn("dropped edges", "dropped", 2) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLogStylesHighlightKeys(t *testing.T) {
	s := logStyles()
	for _, key := range []string{"err", "dropped", "converged"} {
		if _, ok := s.Keys[key]; !ok {
			t.Errorf("no key style for %q", key)
		}
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(10 * time.Millisecond)

	prog.done("Layout complete", "mode", "force", "nodes", 500)

	out := buf.String()
	for _, want := range []string{"Layout complete", "mode=force", "nodes=500", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if prog.elapsed() < 10*time.Millisecond {
		t.Errorf("elapsed() = %v, want >= 10ms", prog.elapsed())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should yield log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if got := loggerFromContext(ctx); got != custom {
		t.Fatal("loggerFromContext did not return the attached logger")
	}
	loggerFromContext(ctx).Info("placed", "nodes", 3)
	if !strings.Contains(buf.String(), "nodes=3") {
		t.Errorf("attached logger output = %q", buf.String())
	}
}
