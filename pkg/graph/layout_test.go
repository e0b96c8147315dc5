package graph

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/nodescape/pkg/core/axis"
	"github.com/matzehuels/nodescape/pkg/core/coords"
)

func TestLayoutRoundTrip(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}}
	l := Layout{
		Mode:      ModeParameters,
		Spread:    50,
		Positions: NewPositions(nodes, []float64{-50, 0, 50, 10}),
		Axis: &axis.Info{
			XParam: "latency", YParam: "cpu",
			X: coords.Range{Min: 0, Max: 100}, Y: coords.Range{Min: 1, Max: 2},
			Spread: 50,
		},
		RunID: "run-1",
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if got.Mode != ModeParameters || got.RunID != "run-1" || len(got.Positions) != 2 {
		t.Errorf("layout mismatch: %+v", got)
	}
	if got.Axis == nil || got.Axis.X.Max != 100 || got.Axis.YParam != "cpu" {
		t.Errorf("axis mismatch: %+v", got.Axis)
	}
	if got.Positions[1] != (Position{ID: "b", X: 50, Y: 10}) {
		t.Errorf("Positions[1] = %+v", got.Positions[1])
	}
}

func TestUnmarshalLayoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Force", `{"mode": "force", "spread": 10, "positions": []}`, false},
		{"UnknownMode", `{"mode": "spiral", "positions": []}`, true},
		{"ParametersWithoutAxis", `{"mode": "parameters", "positions": []}`, true},
		{"InvalidJSON", `{"mode":`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLayoutApply(t *testing.T) {
	g := &Graph{Nodes: []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	l := Layout{Positions: []Position{{ID: "c", X: 1, Y: 2}, {ID: "a", X: 3, Y: 4}, {ID: "z", X: 9, Y: 9}}}
	if n := l.Apply(g); n != 2 {
		t.Errorf("Apply updated %d nodes, want 2", n)
	}
	if g.Nodes[0].X != 3 || g.Nodes[2].Y != 2 || g.Nodes[1].X != 0 {
		t.Errorf("nodes after Apply: %+v", g.Nodes)
	}
}
