package graph

import (
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/matzehuels/nodescape/pkg/core/coords"
)

// Param returns the numeric value of the named parameter, searching the
// node's categories in order and returning the first match. Booleans read
// as 1 or 0. A missing or nominal parameter returns (NaN, false); absence
// is routine and never an error.
func (n *Node) Param(name string) (float64, bool) {
	if n == nil || n.Parameters == nil {
		return math.NaN(), false
	}
	for cat := n.Parameters.Oldest(); cat != nil; cat = cat.Next() {
		if cat.Value == nil {
			continue
		}
		v, ok := cat.Value.Get(name)
		if !ok {
			continue
		}
		if f, ok := v.Float(); ok && !math.IsNaN(f) {
			return f, true
		}
		return math.NaN(), false
	}
	return math.NaN(), false
}

// SetParam stores a parameter under category, creating the category if
// needed.
func (n *Node) SetParam(category, name string, v Value) {
	if n.Parameters == nil {
		n.Parameters = NewParameters()
	}
	cat, ok := n.Parameters.Get(category)
	if !ok || cat == nil {
		cat = orderedmap.New[string, Value]()
		n.Parameters.Set(category, cat)
	}
	cat.Set(name, v)
}

// ParamRange returns the [min, max] of the named parameter over all nodes
// that have a numeric value for it, and how many nodes did. When no node
// has the parameter the range is empty (see [coords.EmptyRange]) and the
// count is 0.
func ParamRange(nodes []Node, name string) (coords.Range, int) {
	r := coords.EmptyRange()
	count := 0
	for i := range nodes {
		v, ok := nodes[i].Param(name)
		if !ok || math.IsInf(v, 0) {
			continue
		}
		r = r.Extend(v)
		count++
	}
	return r, count
}

// ParamNames lists every numeric parameter name found on any node, in
// first-seen order.
func ParamNames(nodes []Node) []string {
	seen := make(map[string]bool)
	var names []string
	for i := range nodes {
		p := nodes[i].Parameters
		if p == nil {
			continue
		}
		for cat := p.Oldest(); cat != nil; cat = cat.Next() {
			if cat.Value == nil {
				continue
			}
			for kv := cat.Value.Oldest(); kv != nil; kv = kv.Next() {
				if _, ok := kv.Value.Float(); !ok || seen[kv.Key] {
					continue
				}
				seen[kv.Key] = true
				names = append(names, kv.Key)
			}
		}
	}
	return names
}
