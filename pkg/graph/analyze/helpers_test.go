package analyze

import (
	"testing"

	"github.com/matzehuels/cycl/pkg/graph"
)

// build creates a graph from "from->to" edge specs plus extra isolated keys.
func build(t *testing.T, edges [][2]string, isolated ...string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, k := range isolated {
		g.AddNode(k)
	}
	for _, e := range edges {
		g.AddNode(e[0])
		g.AddNode(e[1])
		if err := g.AddEdge(graph.Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%v) error = %v", e, err)
		}
	}
	return g
}

// containsCycle reports whether cycles holds a cycle equivalent to want.
func containsCycle(cycles [][]string, want []string) bool {
	for _, c := range cycles {
		if Equivalent(c, want) {
			return true
		}
	}
	return false
}
