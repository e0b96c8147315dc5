package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/nodescape/pkg/core/axis"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleConverged = lipgloss.NewStyle().Foreground(colorGreen)
	styleStopped   = lipgloss.NewStyle().Foreground(colorYellow)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints layout statistics on a single line.
// converged is nil for layouts that did not run the solver.
func printStats(nodeCount, edgeCount, dropped int, converged *bool) {
	var parts []string
	parts = append(parts, StyleDim.Render(humanize.Comma(int64(nodeCount))+" nodes"))
	if edgeCount > 0 {
		parts = append(parts, StyleDim.Render(humanize.Comma(int64(edgeCount))+" edges"))
	}
	if dropped > 0 {
		parts = append(parts, StyleWarning.Render(humanize.Comma(int64(dropped))+" dropped"))
	}
	if converged != nil {
		if *converged {
			parts = append(parts, styleConverged.Render("converged"))
		} else {
			parts = append(parts, styleStopped.Render("iteration cap"))
		}
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// =============================================================================
// Tick Tables
// =============================================================================

// renderTicks renders both axes of a projection side by side, one tick per
// row.
func renderTicks(axes axis.Axes) string {
	n := max(len(axes.X.Ticks), len(axes.Y.Ticks))
	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, 4)
		if i < len(axes.X.Ticks) {
			t := axes.X.Ticks[i]
			row[0], row[1] = t.Label, humanize.FtoaWithDigits(t.World, 3)
		}
		if i < len(axes.Y.Ticks) {
			t := axes.Y.Ticks[i]
			row[2], row[3] = t.Label, humanize.FtoaWithDigits(t.World, 3)
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(axes.X.Param, "x", axes.Y.Param, "y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col%2 == 0:
				return StyleNumber
			default:
				return StyleDim
			}
		})
	return t.Render()
}

// printAxes writes the interval summary and tick table.
func printAxes(w io.Writer, axes axis.Axes) {
	fmt.Fprintf(w, "%s %s  %s %d\n",
		StyleDim.Render("interval"), StyleValue.Render(axis.FormatTick(axes.Interval, axes.Decimals)),
		StyleDim.Render("decimals"), axes.Decimals)
	for _, a := range []axis.Axis{axes.X, axes.Y} {
		if !a.Anchored {
			fmt.Fprintln(w, StyleWarning.Render(fmt.Sprintf("%s axis is off screen, pinned to the viewport edge", a.Param)))
		}
	}
	fmt.Fprintln(w, renderTicks(axes))
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
