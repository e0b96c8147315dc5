// Package synth generates synthetic demo graphs.
//
// Generated nodes belong to clusters, and each cluster draws its numeric
// parameters around shared centers, so nodes of one cluster land close
// together when positioned by parameters. The ten centers are owned by the
// [Generator] and re-drawn for every generated graph.
package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/nodescape/pkg/graph"
)

// NumCenters is the number of shared parameter centers.
const NumCenters = 10

// Parameter categories written by Generate.
const (
	CategoryMetrics = "metrics"
	CategoryFlags   = "flags"
	CategoryMeta    = "meta"
)

// DefaultParams are the numeric parameters generated under CategoryMetrics.
var DefaultParams = []string{"cpu", "memory", "latency", "throughput", "errors"}

// Types are the node type tags, assigned by cluster.
var Types = []string{"service", "database", "cache", "queue", "gateway"}

// Options controls graph generation. Zero fields take defaults.
type Options struct {
	// Clusters is the number of node clusters. Default: 10.
	Clusters int `json:"clusters,omitempty" validate:"gte=0"`

	// EdgesPerNode is the average out-degree. Default: 2.
	EdgesPerNode float64 `json:"edges_per_node,omitempty" validate:"gte=0"`

	// CrossClusterRatio is the share of edges leaving their cluster.
	// Default: 0.05.
	CrossClusterRatio float64 `json:"cross_cluster_ratio,omitempty" validate:"gte=0,lte=1"`

	// Noise is the standard deviation of parameter values around their
	// center. Default: 8.
	Noise float64 `json:"noise,omitempty" validate:"gte=0"`

	// Params names the numeric parameters. Default: DefaultParams.
	Params []string `json:"params,omitempty"`
}

func (o *Options) setDefaults() {
	if o.Clusters <= 0 {
		o.Clusters = 10
	}
	if o.EdgesPerNode == 0 {
		o.EdgesPerNode = 2
	}
	if o.CrossClusterRatio == 0 {
		o.CrossClusterRatio = 0.05
	}
	if o.Noise == 0 {
		o.Noise = 8
	}
	if len(o.Params) == 0 {
		o.Params = DefaultParams
	}
}

// Generator produces synthetic graphs from one random source. It is not
// safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	centers [NumCenters]float64
}

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	g := &Generator{rng: rng}
	g.resetCenters()
	return g
}

// Centers returns a copy of the current parameter centers.
func (g *Generator) Centers() []float64 {
	out := make([]float64, NumCenters)
	copy(out, g.centers[:])
	return out
}

func (g *Generator) resetCenters() {
	for i := range g.centers {
		g.centers[i] = g.rng.Float64() * 100
	}
}

// Generate returns a graph of n nodes. Centers are re-drawn first, so
// successive graphs do not share structure.
func (g *Generator) Generate(n int, opts Options) *graph.Graph {
	opts.setDefaults()
	g.resetCenters()

	out := &graph.Graph{Nodes: make([]graph.Node, n)}
	members := make([][]int, opts.Clusters)

	for i := range out.Nodes {
		cluster := g.rng.IntN(opts.Clusters)
		members[cluster] = append(members[cluster], i)

		node := &out.Nodes[i]
		node.ID = graph.IntID(i)
		node.Cluster = cluster
		node.Type = Types[cluster%len(Types)]
		for p, name := range opts.Params {
			center := g.centers[(cluster+p)%NumCenters]
			node.SetParam(CategoryMetrics, name, graph.Number(center+g.rng.NormFloat64()*opts.Noise))
		}
		node.SetParam(CategoryFlags, "active", graph.Bool(g.rng.Float64() < 0.8))
		node.SetParam(CategoryMeta, "group", graph.Nominal(fmt.Sprintf("group-%d", cluster)))
	}

	if n < 2 {
		return out
	}
	edgeCount := int(float64(n) * opts.EdgesPerNode)
	out.Edges = make([]graph.Edge, 0, edgeCount)
	for range edgeCount {
		from := g.rng.IntN(n)
		to := g.pickTarget(from, out.Nodes[from].Cluster, members, n, opts.CrossClusterRatio)
		if to == from {
			continue
		}
		out.Edges = append(out.Edges, graph.Edge{From: out.Nodes[from].ID, To: out.Nodes[to].ID})
	}
	return out
}

func (g *Generator) pickTarget(from, cluster int, members [][]int, n int, cross float64) int {
	peers := members[cluster]
	if len(peers) < 2 || g.rng.Float64() < cross {
		return g.rng.IntN(n)
	}
	return peers[g.rng.IntN(len(peers))]
}
