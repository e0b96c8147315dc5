package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/core/coords"
	"github.com/matzehuels/nodescape/pkg/graph"
)

func paramLayout() graph.Layout {
	info := axis.Info{
		XParam: "cpu",
		YParam: "latency",
		X:      coords.Range{Min: 0, Max: 100},
		Y:      coords.Range{Min: 0, Max: 100},
		Spread: 50,
	}
	return graph.Layout{
		Mode:   graph.ModeParameters,
		Spread: 50,
		Axis:   &info,
		Positions: []graph.Position{
			{ID: "a", X: -50, Y: -50},
			{ID: "b", X: 0, Y: 0},
			{ID: "c", X: 50, Y: 50},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m ExploreModel, msgs ...tea.Msg) ExploreModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(ExploreModel)
	}
	return m
}

func TestExploreZoomAndPan(t *testing.T) {
	m := NewExploreModel(paramLayout())
	if m.Viewport != axis.ViewportFor(50) {
		t.Fatalf("initial viewport = %+v", m.Viewport)
	}

	m = update(m, key("+"))
	if w := m.Viewport.Right - m.Viewport.Left; w != 80 {
		t.Errorf("zoomed width = %v, want 80", w)
	}

	m = update(m, key("left"))
	if m.Viewport.Left != -48 {
		t.Errorf("panned left = %v, want -48", m.Viewport.Left)
	}

	m = update(m, key("up"))
	if m.Viewport.Top != 48 {
		t.Errorf("panned top = %v, want 48", m.Viewport.Top)
	}

	m = update(m, key("r"))
	if m.Viewport != axis.ViewportFor(50) {
		t.Errorf("reset viewport = %+v", m.Viewport)
	}
}

func TestExploreAxesFollowViewport(t *testing.T) {
	m := NewExploreModel(paramLayout())
	full, ok := m.projector.Project(m.Viewport)
	if !ok {
		t.Fatal("parameter layout should have axes")
	}

	m = update(m, key("+"), key("+"), key("+"), key("+"))
	zoomed, _ := m.projector.Project(m.Viewport)
	if zoomed.Interval >= full.Interval {
		t.Errorf("zoomed interval %v should be finer than %v", zoomed.Interval, full.Interval)
	}
}

func TestExploreToggleAxes(t *testing.T) {
	m := update(NewExploreModel(paramLayout()), key("a"))
	if _, ok := m.projector.Info(); ok {
		t.Fatal("axes should be hidden after toggle")
	}
	if strings.Contains(m.View(), "x cpu") {
		t.Error("view should not list ticks with axes hidden")
	}

	m = update(m, key("a"))
	if _, ok := m.projector.Info(); !ok {
		t.Fatal("axes should be restored")
	}
	if !strings.Contains(m.View(), "x cpu") {
		t.Error("view should list x ticks")
	}
}

func TestExploreNonParameterLayout(t *testing.T) {
	l := paramLayout()
	l.Mode = graph.ModeGrid
	l.Axis = nil
	m := update(NewExploreModel(l), key("a"))

	if _, ok := m.projector.Info(); ok {
		t.Error("grid layout should have no axes")
	}
	view := m.View()
	if !strings.Contains(view, "grid layout") {
		t.Errorf("view header missing: %q", view)
	}
}

func TestExploreWindowSize(t *testing.T) {
	m := update(NewExploreModel(paramLayout()), tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.Width != 40 || m.Height != 20 {
		t.Errorf("size = %dx%d", m.Width, m.Height)
	}
	lines := m.plot(axis.Axes{}, false)
	if len(lines) != 20-chrome {
		t.Errorf("plot rows = %d, want %d", len(lines), 20-chrome)
	}
}

func TestExploreCells(t *testing.T) {
	m := NewExploreModel(paramLayout())
	grid := m.cells(10, 10)
	total := 0
	for _, row := range grid {
		for _, n := range row {
			total += n
		}
	}
	if total != 3 {
		t.Errorf("plotted %d nodes, want 3", total)
	}
	if grid[9][0] != 1 || grid[0][9] != 1 {
		t.Errorf("corner nodes not in corner cells: %v", grid)
	}
}

func TestProject(t *testing.T) {
	vp := axis.Viewport{Left: 0, Right: 10, Bottom: 0, Top: 10}
	tests := []struct {
		x, y     float64
		col, row int
		ok       bool
	}{
		{0, 10, 0, 0, true},
		{10, 0, 9, 9, true},
		{5, 5, 5, 5, true},
		{-1, 5, 0, 0, false},
		{5, 11, 0, 0, false},
	}
	for _, tt := range tests {
		col, row, ok := project(vp, tt.x, tt.y, 10, 10)
		if ok != tt.ok || (ok && (col != tt.col || row != tt.row)) {
			t.Errorf("project(%v, %v) = %d, %d, %v; want %d, %d, %v", tt.x, tt.y, col, row, ok, tt.col, tt.row, tt.ok)
		}
	}
}

func TestTickLine(t *testing.T) {
	ticks := []axis.Tick{{Label: "0"}, {Label: "25"}, {Label: "50"}}
	if got := tickLine("x cpu", ticks, 80); !strings.Contains(got, "0  25  50") {
		t.Errorf("tickLine = %q", got)
	}
	if got := tickLine("x cpu", ticks, 12); strings.Contains(got, "50") {
		t.Errorf("tickLine should truncate: %q", got)
	}
}

func TestRenderTicks(t *testing.T) {
	axes := axis.Compute(*paramLayout().Axis, axis.ViewportFor(50), 3)
	out := renderTicks(axes)
	for _, want := range []string{"cpu", "latency", "0", "5"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderTicks missing %q:\n%s", want, out)
		}
	}
}
