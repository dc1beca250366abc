package graph

import (
	"errors"
	"maps"
	"slices"

	"github.com/matzehuels/cycl/pkg/node"
)

var (
	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node is a vertex of the dependency graph.
type Node struct {
	Key     string        // Node key, usually the stack name
	Records []node.Record // Distinct records sharing Key, in insertion order
}

// Edge is a directed exporter → importer relationship.
type Edge struct {
	From   string // Exporter key
	To     string // Importer key
	Export string // Export name carried by this edge
}

// IsSelfLoop reports whether the edge starts and ends at the same node.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }

// Graph is a directed multigraph over string keys.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]string // key -> importer keys, one per edge
	incoming map[string][]string // key -> exporter keys, one per edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode registers key as a node and returns it. Adding an existing key
// returns the existing node unchanged. The empty string is a valid key.
func (g *Graph) AddNode(key string) *Node {
	if n, ok := g.nodes[key]; ok {
		return n
	}
	n := &Node{Key: key}
	g.nodes[key] = n
	return n
}

// AddRecord registers key as a node and merges r into its record set.
// A record equal to one already present is not added twice.
func (g *Graph) AddRecord(key string, r node.Record) *Node {
	n := g.AddNode(key)
	if !slices.ContainsFunc(n.Records, r.Equal) {
		n.Records = append(n.Records, r.Clone())
	}
	return n
}

// AddEdge adds a directed edge between two existing nodes.
// Parallel edges, including ones with the same export, are kept.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// RemoveSelfLoops deletes every edge whose endpoints are equal and returns
// the number of edges removed. Nodes are kept.
func (g *Graph) RemoveSelfLoops() int {
	before := len(g.edges)
	g.edges = slices.DeleteFunc(g.edges, Edge.IsSelfLoop)
	for key := range g.nodes {
		self := func(s string) bool { return s == key }
		if out := g.outgoing[key]; len(out) > 0 {
			g.outgoing[key] = slices.DeleteFunc(out, self)
		}
		if in := g.incoming[key]; len(in) > 0 {
			g.incoming[key] = slices.DeleteFunc(in, self)
		}
	}
	return before - len(g.edges)
}

// Node returns the node with the given key and true, or nil and false.
func (g *Graph) Node(key string) (*Node, bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// HasNode reports whether key is a node of g.
func (g *Graph) HasNode(key string) bool {
	_, ok := g.nodes[key]
	return ok
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	return slices.Contains(g.outgoing[from], to)
}

// Keys returns all node keys in sorted order.
func (g *Graph) Keys() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Nodes returns all nodes sorted by key. The returned pointers refer to the
// graph's own nodes.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, k := range g.Keys() {
		nodes = append(nodes, g.nodes[k])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, counting parallel edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Successors returns the distinct importer keys of key in sorted order.
// Parallel edges are collapsed.
func (g *Graph) Successors(key string) []string {
	return distinctSorted(g.outgoing[key])
}

// Predecessors returns the distinct exporter keys of key in sorted order.
func (g *Graph) Predecessors(key string) []string {
	return distinctSorted(g.incoming[key])
}

// OutDegree returns the number of outgoing edges, counting parallel edges.
func (g *Graph) OutDegree(key string) int { return len(g.outgoing[key]) }

// InDegree returns the number of incoming edges, counting parallel edges.
func (g *Graph) InDegree(key string) int { return len(g.incoming[key]) }

// Sources returns the sorted keys of nodes without incoming edges.
func (g *Graph) Sources() []string {
	var out []string
	for _, k := range g.Keys() {
		if len(g.incoming[k]) == 0 {
			out = append(out, k)
		}
	}
	return out
}

// Sinks returns the sorted keys of nodes without outgoing edges.
func (g *Graph) Sinks() []string {
	var out []string
	for _, k := range g.Keys() {
		if len(g.outgoing[k]) == 0 {
			out = append(out, k)
		}
	}
	return out
}

func distinctSorted(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}
