package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/graph"
)

// Plot styles
var (
	plotPointStyle = lipgloss.NewStyle().Foreground(colorCyan)
	plotDenseStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	plotAxisStyle  = lipgloss.NewStyle().Foreground(colorDim)
	plotLabelStyle = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	// panStep is the fraction of the viewport moved per key press.
	panStep = 0.1

	// zoomStep is the viewport scale per zoom key press.
	zoomStep = 0.8

	// chrome is the number of terminal rows used outside the plot.
	chrome = 6
)

// =============================================================================
// ExploreModel - Interactive layout viewer
// =============================================================================

// ExploreModel is the bubbletea model for panning and zooming a layout.
// Axes are shown for parameter layouts; they are recomputed from the cached
// axis info on every viewport change.
type ExploreModel struct {
	Layout    graph.Layout
	Viewport  axis.Viewport
	Width     int
	Height    int
	projector *axis.Projector
	info      *axis.Info
}

// NewExploreModel creates a model framing the whole layout.
func NewExploreModel(l graph.Layout) ExploreModel {
	m := ExploreModel{
		Layout:    l,
		Viewport:  axis.ViewportFor(l.Spread),
		Width:     80,
		Height:    24,
		projector: &axis.Projector{},
		info:      l.Axis,
	}
	if l.Axis != nil {
		m.projector.SetInfo(*l.Axis)
	}
	return m
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		w := m.Viewport.Right - m.Viewport.Left
		h := m.Viewport.Top - m.Viewport.Bottom
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Viewport = m.Viewport.Pan(-w*panStep, 0)
		case "right", "l":
			m.Viewport = m.Viewport.Pan(w*panStep, 0)
		case "up", "k":
			m.Viewport = m.Viewport.Pan(0, h*panStep)
		case "down", "j":
			m.Viewport = m.Viewport.Pan(0, -h*panStep)
		case "+", "=":
			m.Viewport = m.Viewport.Zoom(zoomStep)
		case "-", "_":
			m.Viewport = m.Viewport.Zoom(1 / zoomStep)
		case "0", "r":
			m.Viewport = axis.ViewportFor(m.Layout.Spread)
		case "a":
			m.toggleAxes()
		}
	case tea.WindowSizeMsg:
		m.Width = max(msg.Width, 20)
		m.Height = max(msg.Height, chrome+5)
	}
	return m, nil
}

// toggleAxes hides or restores the axes of a parameter layout.
func (m *ExploreModel) toggleAxes() {
	if m.info == nil {
		return
	}
	if _, ok := m.projector.Info(); ok {
		m.projector.Reset()
	} else {
		m.projector.SetInfo(*m.info)
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s layout", m.Layout.Mode)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d nodes  spread %.4g", len(m.Layout.Positions), m.Layout.Spread)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↓↑→ pan  +/- zoom  r reset  a axes  q quit"))
	b.WriteString("\n\n")

	axes, ok := m.projector.Project(m.Viewport)
	for _, line := range m.plot(axes, ok) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if ok {
		b.WriteString(tickLine("x "+axes.X.Param, axes.X.Ticks, m.Width))
		b.WriteString("\n")
		b.WriteString(tickLine("y "+axes.Y.Param, axes.Y.Ticks, m.Width))
	}
	return b.String()
}

// cells counts nodes per terminal cell for the current viewport.
func (m ExploreModel) cells(w, h int) [][]int {
	grid := make([][]int, h)
	for i := range grid {
		grid[i] = make([]int, w)
	}
	vp := m.Viewport
	for _, p := range m.Layout.Positions {
		col, row, ok := project(vp, p.X, p.Y, w, h)
		if ok {
			grid[row][col]++
		}
	}
	return grid
}

// plot renders the scatter plot, with axis lines and tick marks when axes
// are available.
func (m ExploreModel) plot(axes axis.Axes, withAxes bool) []string {
	w, h := m.Width, m.Height-chrome
	if withAxes {
		h -= 2
	}
	h = max(h, 3)
	grid := m.cells(w, h)

	marks := make([][]string, h)
	for i := range marks {
		marks[i] = make([]string, w)
	}
	if withAxes {
		xLine, yLine := axes.X.Line, axes.Y.Line
		if _, row, ok := project(m.Viewport, m.Viewport.Left, xLine.Y1, w, h); ok {
			for c := range marks[row] {
				marks[row][c] = "─"
			}
			for _, t := range axes.X.Ticks {
				if col, _, ok := project(m.Viewport, t.World, xLine.Y1, w, h); ok {
					marks[row][col] = "┼"
				}
			}
		}
		if col, _, ok := project(m.Viewport, yLine.X1, m.Viewport.Bottom, w, h); ok {
			for r := range marks {
				if marks[r][col] == "" {
					marks[r][col] = "│"
				} else {
					marks[r][col] = "┼"
				}
			}
			for _, t := range axes.Y.Ticks {
				if _, row, ok := project(m.Viewport, yLine.X1, t.World, w, h); ok {
					marks[row][col] = "┼"
				}
			}
		}
	}

	lines := make([]string, h)
	for r := range grid {
		var sb strings.Builder
		for c, n := range grid[r] {
			switch {
			case n > 4:
				sb.WriteString(plotDenseStyle.Render("●"))
			case n > 1:
				sb.WriteString(plotPointStyle.Render("•"))
			case n == 1:
				sb.WriteString(plotPointStyle.Render("·"))
			case marks[r][c] != "":
				sb.WriteString(plotAxisStyle.Render(marks[r][c]))
			default:
				sb.WriteByte(' ')
			}
		}
		lines[r] = sb.String()
	}
	return lines
}

// project maps a world point to a cell of a w by h grid. Points outside the
// viewport are reported with ok false.
func project(vp axis.Viewport, x, y float64, w, h int) (col, row int, ok bool) {
	if vp.Right == vp.Left || vp.Top == vp.Bottom {
		return 0, 0, false
	}
	fx := (x - vp.Left) / (vp.Right - vp.Left)
	fy := (vp.Top - y) / (vp.Top - vp.Bottom)
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	col = min(int(fx*float64(w)), w-1)
	row = min(int(fy*float64(h)), h-1)
	return col, row, true
}

// tickLine lists tick labels after a caption, truncated to width.
func tickLine(caption string, ticks []axis.Tick, width int) string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = t.Label
	}
	line := strings.Join(labels, "  ")
	room := width - len(caption) - 2
	if room < 4 {
		return plotLabelStyle.Render(caption)
	}
	if len(line) > room {
		line = line[:room-1] + "…"
	}
	return plotLabelStyle.Render(caption) + "  " + StyleNumber.Render(line)
}
