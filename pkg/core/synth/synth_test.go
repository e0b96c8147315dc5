package synth

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/nodescape/pkg/graph"
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))
}

func TestGenerate(t *testing.T) {
	g := newTestGenerator(1)
	out := g.Generate(200, Options{})

	if len(out.Nodes) != 200 {
		t.Fatalf("len(Nodes) = %d, want 200", len(out.Nodes))
	}
	r := out.Resolve()
	if r.Dropped != 0 || r.Duplicates != 0 {
		t.Errorf("generated graph has dropped=%d duplicates=%d", r.Dropped, r.Duplicates)
	}
	if len(out.Edges) == 0 || len(out.Edges) > 400 {
		t.Errorf("len(Edges) = %d, want (0, 400]", len(out.Edges))
	}
	for _, e := range out.Edges {
		if e.From == e.To {
			t.Errorf("self loop on %s", e.From)
		}
	}

	for _, name := range DefaultParams {
		if _, count := graph.ParamRange(out.Nodes, name); count != 200 {
			t.Errorf("ParamRange(%s) count = %d, want 200", name, count)
		}
	}
	if _, ok := out.Nodes[0].Param("active"); !ok {
		t.Error("boolean flag not readable as a number")
	}
	if _, ok := out.Nodes[0].Param("group"); ok {
		t.Error("nominal group should not be numeric")
	}
}

func TestGenerateClustersShareCenters(t *testing.T) {
	g := newTestGenerator(2)
	out := g.Generate(1000, Options{Clusters: 3, Noise: 1})
	centers := g.Centers()

	for _, n := range out.Nodes {
		v, _ := n.Param("cpu")
		if c := centers[n.Cluster%NumCenters]; math.Abs(v-c) > 6 {
			t.Fatalf("node %s cpu %.2f far from cluster center %.2f", n.ID, v, c)
		}
		if n.Type != Types[n.Cluster%len(Types)] {
			t.Errorf("node %s type %q does not match cluster %d", n.ID, n.Type, n.Cluster)
		}
	}
}

func TestGenerateResetsCenters(t *testing.T) {
	g := newTestGenerator(3)
	g.Generate(10, Options{})
	first := g.Centers()
	g.Generate(10, Options{})
	second := g.Centers()

	if len(first) != NumCenters {
		t.Fatalf("len(Centers) = %d, want %d", len(first), NumCenters)
	}
	if slices.Equal(first, second) {
		t.Error("centers not re-drawn between graphs")
	}

	// Centers returns a copy.
	first[0] = -1
	if g.Centers()[0] == -1 {
		t.Error("Centers exposes internal state")
	}
}

func TestGenerateSmall(t *testing.T) {
	g := newTestGenerator(4)
	if out := g.Generate(0, Options{}); len(out.Nodes) != 0 || len(out.Edges) != 0 {
		t.Errorf("Generate(0) = %+v", out)
	}
	if out := g.Generate(1, Options{}); len(out.Edges) != 0 {
		t.Errorf("Generate(1) produced edges: %v", out.Edges)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestGenerator(9).Generate(50, Options{})
	b := newTestGenerator(9).Generate(50, Options{})
	if len(a.Edges) != len(b.Edges) {
		t.Fatalf("edge counts differ: %d vs %d", len(a.Edges), len(b.Edges))
	}
	for i := range a.Nodes {
		va, _ := a.Nodes[i].Param("latency")
		vb, _ := b.Nodes[i].Param("latency")
		if va != vb {
			t.Fatalf("node %d latency differs: %v vs %v", i, va, vb)
		}
	}
}
