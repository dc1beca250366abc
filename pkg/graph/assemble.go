package graph

import (
	"github.com/matzehuels/cycl/pkg/node"
)

// KeyFunc maps a record to its node key.
type KeyFunc func(node.Record) string

// ByStackName keys nodes by stack name.
func ByStackName(r node.Record) string { return r.StackName }

// Pair is a directed (From, To) node key pair.
type Pair struct {
	From string
	To   string
}

// Options configures [Assemble].
type Options struct {
	// Key computes node keys. Nil means ByStackName.
	Key KeyFunc

	// IgnoreNodes lists keys that must not appear in the graph at all.
	IgnoreNodes []string

	// IgnoreEdges lists directed pairs that must not become edges.
	IgnoreEdges []Pair

	// RemoveSelfLoops drops edges from a node to itself after assembly.
	RemoveSelfLoops bool
}

// Assemble builds the dependency graph for data.
//
// Records are visited in sorted export-name order. An exporter whose key is
// ignored contributes nothing. An importer whose key is ignored is skipped
// without affecting its exporter, which stays in the graph even when it ends
// up without edges. Ignored pairs suppress only the literal From→To edge.
// Keys are used as-is, so an empty key yields a node keyed "".
func Assemble(data node.GraphData, opts Options) *Graph {
	key := opts.Key
	if key == nil {
		key = ByStackName
	}
	ignoreNode := make(map[string]bool, len(opts.IgnoreNodes))
	for _, k := range opts.IgnoreNodes {
		ignoreNode[k] = true
	}
	ignoreEdge := make(map[Pair]bool, len(opts.IgnoreEdges))
	for _, p := range opts.IgnoreEdges {
		ignoreEdge[p] = true
	}

	g := New()
	for _, name := range data.ExportNames() {
		r := data[name]
		exportKey := key(r)
		if ignoreNode[exportKey] {
			continue
		}
		g.AddRecord(exportKey, r)

		for _, imp := range r.ImportingStacks {
			importKey := key(imp)
			if ignoreNode[importKey] {
				continue
			}
			if ignoreEdge[Pair{From: exportKey, To: importKey}] {
				continue
			}
			g.AddRecord(importKey, imp)
			// Both endpoints were just registered.
			_ = g.AddEdge(Edge{From: exportKey, To: importKey, Export: name})
		}
	}

	if opts.RemoveSelfLoops {
		g.RemoveSelfLoops()
	}
	return g
}
