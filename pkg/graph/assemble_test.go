package graph

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/cycl/pkg/node"
)

func importers(names ...string) []node.Record {
	out := make([]node.Record, len(names))
	for i, n := range names {
		out[i] = node.Record{StackName: n}
	}
	return out
}

func exporter(stack, export string, imps ...string) node.Record {
	return node.Record{StackName: stack, ExportName: export, ImportingStacks: importers(imps...)}
}

func edgePairs(g *Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.From+"->"+e.To)
	}
	slices.Sort(out)
	return out
}

func TestAssembleSingleEdge(t *testing.T) {
	data := node.GraphData{"e1": exporter("S1", "e1", "S2")}
	g := Assemble(data, Options{})

	if got := g.Keys(); !slices.Equal(got, []string{"S1", "S2"}) {
		t.Errorf("Keys() = %v, want [S1 S2]", got)
	}
	if got := edgePairs(g); !slices.Equal(got, []string{"S1->S2"}) {
		t.Errorf("edges = %v, want [S1->S2]", got)
	}
	if e := g.Edges()[0]; e.Export != "e1" {
		t.Errorf("edge export = %q, want e1", e.Export)
	}
	n, _ := g.Node("S2")
	if len(n.Records) != 1 || n.Records[0].StackName != "S2" {
		t.Errorf("S2 records = %v, want importer record", n.Records)
	}
}

func TestAssembleIsolatedExporter(t *testing.T) {
	data := node.GraphData{"e1": exporter("S1", "e1")}
	g := Assemble(data, Options{})

	if !g.HasNode("S1") {
		t.Error("exporter without importers should remain as a node")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestAssembleNoImportersOnlyIsolatedNodes(t *testing.T) {
	data := node.GraphData{
		"e1": exporter("S1", "e1"),
		"e2": exporter("S2", "e2"),
		"e3": exporter("S1", "e3"),
	}
	g := Assemble(data, Options{})

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	n, _ := g.Node("S1")
	if len(n.Records) != 2 {
		t.Errorf("S1 records = %d, want 2 (one per export)", len(n.Records))
	}
}

func TestAssembleParallelEdges(t *testing.T) {
	data := node.GraphData{
		"e1": exporter("A", "e1", "B"),
		"e2": exporter("A", "e2", "B"),
	}
	g := Assemble(data, Options{})
	if got := edgePairs(g); !slices.Equal(got, []string{"A->B", "A->B"}) {
		t.Errorf("edges = %v, want two parallel A->B edges", got)
	}
}

func TestAssembleIgnoreNodes(t *testing.T) {
	data := node.GraphData{
		"e1": exporter("A", "e1", "B", "C"),
		"e2": exporter("B", "e2", "A"),
		"e3": exporter("C", "e3", "B"),
	}

	tests := []struct {
		name      string
		ignore    []string
		wantNodes []string
		wantEdges []string
	}{
		{
			name:      "none",
			wantNodes: []string{"A", "B", "C"},
			wantEdges: []string{"A->B", "A->C", "B->A", "C->B"},
		},
		{
			name:      "importer and exporter",
			ignore:    []string{"B"},
			wantNodes: []string{"A", "C"},
			wantEdges: []string{"A->C"},
		},
		{
			name:      "all",
			ignore:    []string{"A", "B", "C"},
			wantNodes: []string{},
			wantEdges: nil,
		},
		{
			name:      "case sensitive",
			ignore:    []string{"b"},
			wantNodes: []string{"A", "B", "C"},
			wantEdges: []string{"A->B", "A->C", "B->A", "C->B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Assemble(data, Options{IgnoreNodes: tt.ignore})
			if got := g.Keys(); !slices.Equal(got, tt.wantNodes) {
				t.Errorf("Keys() = %v, want %v", got, tt.wantNodes)
			}
			if got := edgePairs(g); !slices.Equal(got, tt.wantEdges) {
				t.Errorf("edges = %v, want %v", got, tt.wantEdges)
			}
			for _, ignored := range tt.ignore {
				for _, e := range g.Edges() {
					if e.From == ignored || e.To == ignored {
						t.Errorf("ignored node %q is an endpoint of %v", ignored, e)
					}
				}
			}
		})
	}
}

func TestAssembleIgnoreEdgesDirectional(t *testing.T) {
	data := node.GraphData{
		"e1": exporter("A", "e1", "B"),
		"e2": exporter("B", "e2", "A"),
		"e3": exporter("C", "e3", "A", "B"),
	}
	g := Assemble(data, Options{IgnoreEdges: []Pair{{From: "A", To: "B"}}})

	if g.HasEdge("A", "B") {
		t.Error("ignored edge A->B is present")
	}
	if !g.HasEdge("B", "A") {
		t.Error("reverse edge B->A should not be ignored")
	}
	if !g.HasNode("A") || !g.HasNode("B") {
		t.Error("endpoints of an ignored edge should remain when reachable otherwise")
	}
}

func TestAssembleRemoveSelfLoops(t *testing.T) {
	data := node.GraphData{"e1": exporter("A", "e1", "A", "B")}

	kept := Assemble(data, Options{})
	if !kept.HasEdge("A", "A") {
		t.Error("self loop should be kept by default")
	}

	removed := Assemble(data, Options{RemoveSelfLoops: true})
	if removed.HasEdge("A", "A") {
		t.Error("self loop should be removed")
	}
	if !removed.HasEdge("A", "B") {
		t.Error("A->B should survive self loop removal")
	}
}

func TestAssembleEmptyKey(t *testing.T) {
	data := node.GraphData{"e1": exporter("", "e1", "S2")}
	g := Assemble(data, Options{})
	if !g.HasNode("") || !g.HasEdge("", "S2") {
		t.Errorf("empty key should produce a node: keys %v edges %v", g.Keys(), edgePairs(g))
	}
}

func TestAssembleCustomKey(t *testing.T) {
	data := node.GraphData{
		"e1": exporter("Network", "e1", "app"),
		"e2": exporter("App", "e2", "network"),
	}
	g := Assemble(data, Options{Key: func(r node.Record) string { return strings.ToLower(r.StackName) }})

	if got := g.Keys(); !slices.Equal(got, []string{"app", "network"}) {
		t.Errorf("Keys() = %v, want [app network]", got)
	}
	if got := edgePairs(g); !slices.Equal(got, []string{"app->network", "network->app"}) {
		t.Errorf("edges = %v", got)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	data := node.GraphData{
		"e1": exporter("A", "e1", "B", "C"),
		"e2": exporter("B", "e2", "C"),
		"e3": exporter("C", "e3", "A"),
		"e4": exporter("A", "e4", "B"),
	}
	opts := Options{IgnoreEdges: []Pair{{From: "B", To: "C"}}}

	g1 := Assemble(data, opts)
	g2 := Assemble(data, opts)

	if !slices.Equal(g1.Keys(), g2.Keys()) {
		t.Errorf("node sets differ: %v vs %v", g1.Keys(), g2.Keys())
	}
	if !slices.Equal(edgePairs(g1), edgePairs(g2)) {
		t.Errorf("edge multisets differ: %v vs %v", edgePairs(g1), edgePairs(g2))
	}
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	data := node.GraphData{"e1": exporter("A", "e1", "B")}
	want := data.Clone()
	g := Assemble(data, Options{})

	n, _ := g.Node("A")
	n.Records[0].ImportingStacks[0].StackName = "changed"

	if !data["e1"].Equal(want["e1"]) {
		t.Error("Assemble() shares record storage with its input")
	}
}
