// Package pkg provides the core libraries for nodescape graph layout.
//
// # Overview
//
// Nodescape computes 2D positions for large node-link graphs. The pkg
// directory is organized into these areas:
//
//  1. [core] - Domain logic (coordinate mapping, axes, force simulation, placements)
//  2. [graph] - Data model and serialization for graphs and layouts
//  3. [pipeline] - Orchestration (load → layout → export)
//  4. [server], [config], [metrics], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through nodescape:
//
//	graph.json (nodes, edges, parameters)
//	         ↓
//	    [graph] package (resolve edge ids to indices)
//	         ↓
//	    [core/layout] or [core/force] (positions)
//	         ↓
//	    [core/axis] package (ticks for parameter layouts)
//	         ↓
//	    layout JSON / CSV, HTTP response, terminal view
//
// # Quick Start
//
// Lay out a graph with the force-directed solver:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/nodescape/pkg/pipeline"
//	)
//
//	g, _ := pipeline.ParseFile("graph.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Layout(context.Background(), g, pipeline.Options{})
//	data, _ := pipeline.Export(res.Layout, pipeline.FormatJSON)
//
// Position nodes by two parameters and compute axis ticks for a viewport:
//
//	res, _ := runner.Layout(ctx, g, pipeline.Options{
//	    Mode:   graph.ModeParameters,
//	    XParam: "cpu",
//	    YParam: "latency",
//	})
//	axes := axis.Compute(*res.Axis, axis.ViewportFor(res.Layout.Spread), 0)
//
// # Package Organization
//
//	core/
//	  coords/   - Parameter ↔ world coordinate mapping
//	  axis/     - Nice tick intervals and viewport axis projection
//	  force/    - Force-directed solver with exact and sampled repulsion
//	  layout/   - Random, grid, circular, and parameter placements
//	  synth/    - Synthetic demo graphs
//
//	graph/          - Graph, node parameters, layout wire format
//	pipeline/       - Layout orchestration, status messages, export
//	server/         - HTTP API
//	config/         - TOML/YAML configuration and environment
//	metrics/        - Prometheus instrumentation
//	observability/  - Hook interfaces for instrumentation
//	errors/         - Structured error codes
//	buildinfo/      - Version information
package pkg
