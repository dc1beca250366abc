// Package analyze runs cycle enumeration and topological layering over a
// dependency graph.
//
// Both analyses are pure, single-threaded traversals of an assembled
// [graph.Graph]; they never mutate it.
//
// # Cycles
//
// [Cycles] enumerates every elementary cycle of the graph's topology:
// parallel edges between two stacks count once, and a stack importing its
// own export is reported as a one-node cycle. Strongly connected components
// are found with Tarjan's algorithm and circuits inside each component with
// Johnson's algorithm, so the cost is O((V+E)(C+1)) for C cycles.
//
// A cycle is reported once, as a node list starting at its smallest key.
// Use [Equivalent] to compare cycles independently of rotation and
// direction:
//
//	analyze.Equivalent([]string{"a", "b", "c"}, []string{"c", "b", "a"}) // true
//
// # Generations
//
// [Generations] groups an acyclic graph into deployment waves using Kahn's
// algorithm. Generation 0 holds stacks that import nothing from other nodes;
// every later stack depends only on stacks in earlier generations. A graph
// with a cycle yields [ErrCyclicGraph].
package analyze
