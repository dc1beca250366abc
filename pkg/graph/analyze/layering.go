package analyze

import (
	"slices"

	"github.com/matzehuels/cycl/pkg/errors"
	"github.com/matzehuels/cycl/pkg/graph"
)

// ErrCyclicGraph is returned by [Generations] when g contains a cycle.
var ErrCyclicGraph = errors.New(errors.ErrCodeCyclicGraph,
	"graph is cyclic, topological generations can only be computed on an acyclic graph")

// Generations layers g into topological generations.
//
// Generation 0 contains every node without incoming edges. Removing a
// generation and its outgoing edges exposes the next one. Keys within a
// generation are sorted. An empty graph yields an empty, non-nil list.
//
// # Algorithm
//
// Kahn's algorithm, processed one frontier at a time:
//  1. Count incoming edges per node, parallel edges included
//  2. The nodes at zero form the current generation
//  3. Decrement the count of every edge target leaving the generation
//  4. Repeat with the nodes that reached zero
//
// Nodes that never reach zero sit on or behind a cycle; in that case
// ErrCyclicGraph is returned and no partial result.
func Generations(g *graph.Graph) ([][]string, error) {
	keys := g.Keys()
	inDegree := make(map[string]int, len(keys))
	children := make(map[string][]string, len(keys))
	for _, e := range g.Edges() {
		inDegree[e.To]++
		children[e.From] = append(children[e.From], e.To)
	}

	var frontier []string
	for _, k := range keys {
		if inDegree[k] == 0 {
			frontier = append(frontier, k)
		}
	}

	gens := [][]string{}
	processed := 0
	for len(frontier) > 0 {
		slices.Sort(frontier)
		gens = append(gens, frontier)
		processed += len(frontier)

		var next []string
		for _, k := range frontier {
			for _, c := range children[k] {
				inDegree[c]--
				if inDegree[c] == 0 {
					next = append(next, c)
				}
			}
		}
		frontier = next
	}

	if processed != len(keys) {
		return nil, ErrCyclicGraph
	}
	return gens, nil
}
