// Package graph provides the directed multigraph of cross-stack dependencies.
//
// # Overview
//
// Every node is keyed by a string (the stack name by default) and carries the
// set of [node.Record] values that map to that key. Several exports of the
// same stack therefore collapse onto one node, while each export/import
// relationship is kept as its own [Edge]:
//
//	network ──network-VpcId──▶ app
//	network ──network-SubnetA─▶ app
//
// Parallel edges are preserved because two exports imported by the same
// stack are distinct relationships. Analyses that only care about topology
// (cycle enumeration) look at [Graph.Successors], which collapses them.
//
// # Assembling
//
// [Assemble] turns [node.GraphData] into a Graph, applying the node and edge
// filters from [Options]:
//
//	g := graph.Assemble(data, graph.Options{
//	    IgnoreNodes:     []string{"legacy"},
//	    IgnoreEdges:     []graph.Pair{{From: "network", To: "app"}},
//	    RemoveSelfLoops: true,
//	})
//
// The node key is chosen by a [KeyFunc]; [ByStackName] is the default.
// Matching against ignore lists is exact and case-sensitive, and ignored
// edge pairs are directional: ignoring network→app leaves app→network alone.
//
// # Concurrency
//
// A Graph has a single writer. Once assembled it is treated as read-only and
// may be shared by readers.
package graph
