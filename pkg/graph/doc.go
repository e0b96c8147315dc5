// Package graph provides the node-link data model and its serialization.
//
// This package defines nodescape's wire format for graphs and finished
// layouts, used for JSON files, HTTP requests and responses.
//
// # Core Types
//
//   - [Graph]: nodes plus edges between node IDs
//   - [Node]: identifier, cluster, type tag, optional start position and
//     categorized [Parameters]
//   - [Edge]: link by external ID with optional label and weight
//   - [Layout]: final positions of one layout run, with axis info for
//     parameter layouts and solver statistics for force layouts
//
// # Identifiers
//
// Data sources use integer or string node IDs. [NodeID] accepts both in
// JSON and normalizes them to a string, so 7 and "7" are the same node.
// [Graph.Resolve] builds the ID-to-index map once per load and converts
// edges to array indices, dropping (and counting) edges that name an
// unknown node.
//
// # Parameters
//
// Parameters are grouped by category:
//
//	"parameters": {
//	  "performance": {"latency": 12.5, "cached": true},
//	  "meta":        {"region": "eu-west"}
//	}
//
// [Node.Param] searches every category in input order and returns the
// first match. Numbers are returned as-is, booleans as 1 or 0. Nominal
// strings and missing names return (NaN, false):
//
//	v, ok := node.Param("latency") // 12.5, true
//	_, ok = node.Param("region")   // NaN, false
//
// [ParamRange] aggregates the numeric [min, max] of a parameter across
// nodes, skipping nodes without it.
//
// # Layout Modes
//
// This package is the single source of truth for mode names:
//
//	graph.ModeRandom      // "random"
//	graph.ModeGrid        // "grid"
//	graph.ModeCircular    // "circular"
//	graph.ModeForce       // "force"
//	graph.ModeParameters  // "parameters"
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
