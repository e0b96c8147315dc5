package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleGraph = `{
  "nodes": [
    {"id": 1, "cluster": 0, "type": "service",
     "parameters": {"perf": {"latency": 12.5, "cached": true}, "meta": {"region": "eu"}}},
    {"id": "two", "cluster": 1, "parameters": {"perf": {"latency": 40}}},
    {"id": 3, "cluster": 1}
  ],
  "edges": [
    {"from": 1, "to": "two", "weight": 2},
    {"from": "3", "to": 1, "label": "calls"}
  ]
}`

func TestReadGraph(t *testing.T) {
	g, err := ReadGraph(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if len(g.Nodes) != 3 || len(g.Edges) != 2 {
		t.Fatalf("got %d nodes, %d edges; want 3, 2", len(g.Nodes), len(g.Edges))
	}

	wantIDs := []NodeID{"1", "two", "3"}
	for i, want := range wantIDs {
		if g.Nodes[i].ID != want {
			t.Errorf("Nodes[%d].ID = %q, want %q", i, g.Nodes[i].ID, want)
		}
	}
	if g.Edges[1].From != "3" || g.Edges[1].To != "1" {
		t.Errorf("Edges[1] = %+v, want 3 -> 1", g.Edges[1])
	}
	if g.Edges[0].Weight != 2 || g.Edges[1].Label != "calls" {
		t.Errorf("edge attributes lost: %+v", g.Edges)
	}
	if g.Nodes[0].Type != "service" || g.Nodes[1].Cluster != 1 {
		t.Errorf("node attributes lost: %+v", g.Nodes[:2])
	}
}

func TestReadGraphErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"InvalidJSON", `{"nodes": [`},
		{"NullID", `{"nodes": [{"id": null}]}`},
		{"ObjectID", `{"nodes": [{"id": {"a": 1}}]}`},
		{"ArrayParam", `{"nodes": [{"id": 1, "parameters": {"c": {"p": [1, 2]}}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadGraph(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGraphRoundTrip(t *testing.T) {
	g, err := UnmarshalGraph([]byte(sampleGraph))
	if err != nil {
		t.Fatalf("UnmarshalGraph: %v", err)
	}
	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	back, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph(round trip): %v", err)
	}

	for _, name := range []string{"latency", "cached", "region"} {
		a, okA := g.Nodes[0].Param(name)
		b, okB := back.Nodes[0].Param(name)
		if okA != okB || (okA && a != b) {
			t.Errorf("Param(%q): before (%v, %v), after (%v, %v)", name, a, okA, b, okB)
		}
	}

	// Category order survives the round trip.
	var cats []string
	for p := back.Nodes[0].Parameters.Oldest(); p != nil; p = p.Next() {
		cats = append(cats, p.Key)
	}
	if strings.Join(cats, ",") != "perf,meta" {
		t.Errorf("categories = %v, want [perf meta]", cats)
	}
}

func TestWriteReadGraphFile(t *testing.T) {
	g := &Graph{
		Nodes: []Node{{ID: "a"}, {ID: "b", Cluster: 2}},
		Edges: []Edge{{From: "a", To: "b"}},
	}
	g.Nodes[0].SetParam("stats", "size", Number(3))

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if v, ok := got.Nodes[0].Param("size"); !ok || v != 3 {
		t.Errorf("Param(size) = %v, %v; want 3, true", v, ok)
	}
	if got.Nodes[1].Cluster != 2 {
		t.Errorf("Cluster = %d, want 2", got.Nodes[1].Cluster)
	}

	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
}

func TestNodeIDJSON(t *testing.T) {
	tests := []struct {
		input string
		want  NodeID
	}{
		{`7`, "7"},
		{`"7"`, "7"},
		{`"alpha"`, "alpha"},
		{`-12`, "-12"},
		{`1e3`, "1e3"},
	}
	for _, tt := range tests {
		var id NodeID
		if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.input, err)
			continue
		}
		if id != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, id, tt.want)
		}
	}

	out, err := json.Marshal(IntID(42))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"42"` {
		t.Errorf("Marshal(IntID(42)) = %s, want \"42\"", out)
	}
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		input     string
		kind      ValueKind
		wantF     float64
		wantOK    bool
		roundTrip string
	}{
		{`12.5`, KindNumber, 12.5, true, `12.5`},
		{`true`, KindBool, 1, true, `true`},
		{`false`, KindBool, 0, true, `false`},
		{`"eu"`, KindNominal, 0, false, `"eu"`},
		{`null`, KindMissing, 0, false, `null`},
	}
	for _, tt := range tests {
		var v Value
		if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.input, err)
		}
		if v.Kind != tt.kind {
			t.Errorf("Unmarshal(%s).Kind = %d, want %d", tt.input, v.Kind, tt.kind)
		}
		f, ok := v.Float()
		if ok != tt.wantOK || f != tt.wantF {
			t.Errorf("Float(%s) = %v, %v; want %v, %v", tt.input, f, ok, tt.wantF, tt.wantOK)
		}
		out, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out, []byte(tt.roundTrip)) {
			t.Errorf("Marshal = %s, want %s", out, tt.roundTrip)
		}
	}
}

func TestValidMode(t *testing.T) {
	for _, m := range Modes {
		if !ValidMode(m) {
			t.Errorf("ValidMode(%q) = false", m)
		}
	}
	if ValidMode("spiral") {
		t.Error("ValidMode(spiral) = true")
	}
}
