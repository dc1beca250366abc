package graph

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/cycl/pkg/node"
)

func TestAddNodeIdempotent(t *testing.T) {
	g := New()
	a := g.AddNode("a")
	b := g.AddNode("a")
	if a != b {
		t.Error("AddNode() returned a different node for an existing key")
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
}

func TestAddNodeEmptyKey(t *testing.T) {
	g := New()
	g.AddNode("")
	if !g.HasNode("") {
		t.Error("empty key should be a valid node")
	}
}

func TestAddRecordDeduplicates(t *testing.T) {
	g := New()
	r := node.Record{StackName: "S1", ExportName: "e1"}
	g.AddRecord("S1", r)
	g.AddRecord("S1", r)
	g.AddRecord("S1", node.Record{StackName: "S1", ExportName: "e2"})

	n, ok := g.Node("S1")
	if !ok {
		t.Fatal("Node(S1) not found")
	}
	if len(n.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(n.Records))
	}
}

func TestAddEdgeUnknownNodes(t *testing.T) {
	g := New()
	g.AddNode("a")

	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge() error = %v, want %v", err, ErrUnknownSourceNode)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge() error = %v, want %v", err, ErrUnknownTargetNode)
	}
}

func TestParallelEdges(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	_ = g.AddEdge(Edge{From: "a", To: "b", Export: "e1"})
	_ = g.AddEdge(Edge{From: "a", To: "b", Export: "e2"})

	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if g.OutDegree("a") != 2 || g.InDegree("b") != 2 {
		t.Errorf("degrees = (%d, %d), want (2, 2)", g.OutDegree("a"), g.InDegree("b"))
	}
	if got := g.Successors("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Successors(a) = %v, want [b]", got)
	}
	if got := g.Predecessors("b"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Predecessors(b) = %v, want [a]", got)
	}
}

func TestRemoveSelfLoops(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	_ = g.AddEdge(Edge{From: "a", To: "a"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "b"})

	if removed := g.RemoveSelfLoops(); removed != 2 {
		t.Errorf("RemoveSelfLoops() = %d, want 2", removed)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if g.HasEdge("a", "a") || g.HasEdge("b", "b") {
		t.Error("self loop survived RemoveSelfLoops()")
	}
	if g.InDegree("a") != 0 || g.OutDegree("b") != 0 {
		t.Error("adjacency still references removed self loops")
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
}

func TestSourcesSinks(t *testing.T) {
	g := New()
	for _, k := range []string{"c", "a", "b"} {
		g.AddNode(k)
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	if got := g.Sources(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Sources() = %v, want [a c]", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Sinks() = %v, want [b c]", got)
	}
	if got := g.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v, want [a b c]", got)
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	edges := g.Edges()
	edges[0].To = "x"
	if g.Edges()[0].To != "b" {
		t.Error("Edges() exposes internal storage")
	}
}
