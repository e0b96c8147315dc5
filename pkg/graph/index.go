package graph

// IndexEdge is an edge expressed as node array indices.
type IndexEdge struct {
	From   int
	To     int
	Weight float64
}

// Resolved holds the index form of a graph's edges.
type Resolved struct {
	// Index maps each node ID to its position in Graph.Nodes. For duplicate
	// IDs the first node wins.
	Index map[NodeID]int

	// Edges are the edges whose endpoints both resolved.
	Edges []IndexEdge

	// Dropped counts edges naming an unknown node.
	Dropped int

	// Duplicates counts nodes whose ID was already taken.
	Duplicates int
}

// Resolve builds the ID-to-index map once and converts every edge to index
// form. Edges with an unknown endpoint are dropped and counted, never
// returned.
func (g *Graph) Resolve() Resolved {
	res := Resolved{Index: make(map[NodeID]int, len(g.Nodes))}
	for i, n := range g.Nodes {
		if _, dup := res.Index[n.ID]; dup {
			res.Duplicates++
			continue
		}
		res.Index[n.ID] = i
	}

	res.Edges = make([]IndexEdge, 0, len(g.Edges))
	for _, e := range g.Edges {
		from, ok1 := res.Index[e.From]
		to, ok2 := res.Index[e.To]
		if !ok1 || !ok2 {
			res.Dropped++
			continue
		}
		res.Edges = append(res.Edges, IndexEdge{From: from, To: to, Weight: e.Weight})
	}
	return res
}

// Positions returns the nodes' X/Y as an interleaved buffer
// (x0, y0, x1, y1, ...).
func (g *Graph) Positions() []float64 {
	pos := make([]float64, 2*len(g.Nodes))
	for i, n := range g.Nodes {
		pos[2*i] = n.X
		pos[2*i+1] = n.Y
	}
	return pos
}

// SetPositions copies an interleaved buffer back into the nodes. Extra
// values are ignored; missing ones leave nodes untouched.
func (g *Graph) SetPositions(pos []float64) {
	for i := range g.Nodes {
		if 2*i+1 >= len(pos) {
			return
		}
		g.Nodes[i].X = pos[2*i]
		g.Nodes[i].Y = pos[2*i+1]
	}
}
