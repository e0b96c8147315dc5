package graph

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/nodescape/pkg/core/coords"
)

func paramNode(id string, params map[string]map[string]Value, order ...string) Node {
	n := Node{ID: NodeID(id)}
	for _, cat := range order {
		for name, v := range params[cat] {
			n.SetParam(cat, name, v)
		}
	}
	return n
}

func TestParam(t *testing.T) {
	n := paramNode("a", map[string]map[string]Value{
		"perf":  {"latency": Number(12.5), "cached": Bool(true), "warm": Bool(false)},
		"meta":  {"region": Nominal("eu"), "latency": Number(99)},
		"empty": {},
	}, "perf", "meta", "empty")

	tests := []struct {
		name   string
		want   float64
		wantOK bool
	}{
		{"latency", 12.5, true}, // first category wins
		{"cached", 1, true},
		{"warm", 0, true},
		{"region", math.NaN(), false},
		{"missing", math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Param(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Param = %v, want %v", got, tt.want)
			}
			if !ok && !math.IsNaN(got) {
				t.Errorf("absent Param = %v, want NaN", got)
			}
		})
	}
}

func TestParamCategoryOrder(t *testing.T) {
	n := paramNode("a", map[string]map[string]Value{
		"meta": {"latency": Number(99)},
		"perf": {"latency": Number(12.5)},
	}, "meta", "perf")
	if v, _ := n.Param("latency"); v != 99 {
		t.Errorf("Param = %v, want 99 from the first category", v)
	}
}

func TestParamNilSafety(t *testing.T) {
	var nilNode *Node
	if _, ok := nilNode.Param("x"); ok {
		t.Error("nil node reported a value")
	}
	if _, ok := (&Node{}).Param("x"); ok {
		t.Error("node without parameters reported a value")
	}
	n := Node{Parameters: NewParameters()}
	n.Parameters.Set("broken", nil)
	if _, ok := n.Param("x"); ok {
		t.Error("nil category reported a value")
	}
}

func TestParamRange(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	nodes[0].SetParam("p", "size", Number(4))
	nodes[1].SetParam("p", "size", Number(-2))
	nodes[2].SetParam("p", "size", Nominal("large"))
	nodes[3].SetParam("q", "size", Number(10))

	r, count := ParamRange(nodes, "size")
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if r != (coords.Range{Min: -2, Max: 10}) {
		t.Errorf("range = %+v, want [-2, 10]", r)
	}

	r, count = ParamRange(nodes, "nothing")
	if count != 0 || r.Valid() {
		t.Errorf("absent parameter: range %+v, count %d", r, count)
	}
}

func TestParamNames(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}}
	nodes[0].SetParam("perf", "latency", Number(1))
	nodes[0].SetParam("perf", "region", Nominal("eu"))
	nodes[1].SetParam("perf", "latency", Number(2))
	nodes[1].SetParam("load", "cpu", Number(0.5))
	nodes[1].SetParam("load", "hot", Bool(true))

	got := ParamNames(nodes)
	want := []string{"latency", "cpu", "hot"}
	if !slices.Equal(got, want) {
		t.Errorf("ParamNames = %v, want %v", got, want)
	}
}
