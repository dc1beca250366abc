// Package render writes an assembled dependency graph in machine- and
// human-readable formats.
//
// # Formats
//
//   - [WriteJSON]: node-link JSON with the records behind every node
//   - [ToDOT]: Graphviz DOT source, one edge per export
//   - [RenderSVG]: DOT laid out and rendered to SVG with Graphviz
//
// # Highlighting Cycles
//
// Pass the result of analyze.Cycles in [Options.Cycles] to mark the stacks
// and edges taking part in a cycle. DOT output colors them red; JSON output
// lists the cycles next to the graph.
//
//	cycles := analyze.Cycles(g)
//	dot := render.ToDOT(g, render.Options{Cycles: cycles})
//	svg, err := render.RenderSVG(ctx, dot)
package render

import "github.com/matzehuels/cycl/pkg/graph"

// Options configures rendering.
type Options struct {
	// Cycles to highlight. Each cycle is a node key list as returned by
	// analyze.Cycles.
	Cycles [][]string

	// Detailed adds the exports of each node to its DOT label.
	Detailed bool
}

// cycleMembers returns the node keys and directed edges that lie on one of
// the cycles.
func cycleMembers(cycles [][]string) (map[string]bool, map[graph.Pair]bool) {
	nodes := make(map[string]bool)
	edges := make(map[graph.Pair]bool)
	for _, c := range cycles {
		for i, k := range c {
			nodes[k] = true
			edges[graph.Pair{From: k, To: c[(i+1)%len(c)]}] = true
		}
	}
	return nodes, edges
}
