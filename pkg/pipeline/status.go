package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/nodescape/pkg/core/force"
)

// StatusSink receives human-readable progress messages. The messages are
// informational and have no stable format.
type StatusSink interface {
	Status(msg string)
}

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(msg string)

// Status implements StatusSink.
func (f StatusFunc) Status(msg string) { f(msg) }

// LogStatus returns a sink writing messages to logger at info level.
func LogStatus(logger *log.Logger) StatusSink {
	return StatusFunc(func(msg string) { logger.Info(msg) })
}

// Discard is a sink that drops every message.
var Discard StatusSink = StatusFunc(func(string) {})

func solveMessage(res force.Result) string {
	if res.Converged {
		return fmt.Sprintf("converged after %s iterations", humanize.Comma(int64(res.Iterations)))
	}
	return fmt.Sprintf("stopped after %s iterations (max movement %.3f)",
		humanize.Comma(int64(res.Iterations)), res.MaxMovement)
}

func droppedMessage(n int) string {
	return fmt.Sprintf("dropped %s %s with unknown endpoints",
		humanize.Comma(int64(n)), plural(n, "edge", "edges"))
}

func recoveredMessage(n int) string {
	return fmt.Sprintf("reset %s non-finite %s near the center",
		humanize.Comma(int64(n)), plural(n, "position", "positions"))
}

func placedMessage(n int, mode string) string {
	return fmt.Sprintf("placed %s %s (%s)", humanize.Comma(int64(n)), plural(n, "node", "nodes"), mode)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
