package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/cycl/pkg/graph"
	"github.com/matzehuels/cycl/pkg/node"
)

type jsonGraph struct {
	Nodes  []jsonNode `json:"nodes"`
	Edges  []jsonEdge `json:"edges"`
	Cycles [][]string `json:"cycles,omitempty"`
}

type jsonNode struct {
	ID      string        `json:"id"`
	Records []node.Record `json:"records,omitempty"`
	InCycle bool          `json:"in_cycle,omitempty"`
}

type jsonEdge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Export  string `json:"export,omitempty"`
	InCycle bool   `json:"in_cycle,omitempty"`
}

// WriteJSON encodes g as indented node-link JSON and writes it to w.
// Nodes are sorted by key; edges keep insertion order.
func WriteJSON(g *graph.Graph, w io.Writer, opts Options) error {
	inNode, inEdge := cycleMembers(opts.Cycles)

	nodes := g.Nodes()
	edges := g.Edges()
	out := jsonGraph{
		Nodes:  make([]jsonNode, len(nodes)),
		Edges:  make([]jsonEdge, len(edges)),
		Cycles: opts.Cycles,
	}
	for i, n := range nodes {
		out.Nodes[i] = jsonNode{ID: n.Key, Records: n.Records, InCycle: inNode[n.Key]}
	}
	for i, e := range edges {
		out.Edges[i] = jsonEdge{
			From:    e.From,
			To:      e.To,
			Export:  e.Export,
			InCycle: inEdge[graph.Pair{From: e.From, To: e.To}],
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
