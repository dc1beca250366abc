package analyze

import (
	"slices"

	"github.com/matzehuels/cycl/pkg/graph"
)

// Cycles returns every elementary cycle of g.
//
// Parallel edges are collapsed. Self-loops yield single-node cycles. Each
// cycle starts at its smallest key and the result is sorted by length, then
// lexicographically. An acyclic graph yields nil.
func Cycles(g *graph.Graph) [][]string {
	keys := g.Keys()
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}

	var cycles [][]string
	adj := make([][]int, len(keys))
	for i, k := range keys {
		for _, s := range g.Successors(k) {
			if s == k {
				cycles = append(cycles, []string{k})
				continue
			}
			adj[i] = append(adj[i], index[s])
		}
	}

	j := newJohnson(adj)
	for _, c := range j.run() {
		cycle := make([]string, len(c))
		for i, v := range c {
			cycle[i] = keys[v]
		}
		cycles = append(cycles, cycle)
	}

	slices.SortFunc(cycles, func(a, b []string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return slices.Compare(a, b)
	})
	return cycles
}

// johnson enumerates elementary circuits of a simple digraph without
// self-loops. Vertices are ints; lower ints are chosen as circuit roots
// first, so every circuit starts at its smallest vertex.
type johnson struct {
	adj [][]int

	// member marks the vertices of the component being searched.
	member []bool
	// blocked marks vertices on the stack or unable to reach the root.
	blocked []bool
	// b[w] holds the vertices to unblock together with w.
	b []map[int]bool

	stack []int
	out   [][]int
}

func newJohnson(adj [][]int) *johnson {
	n := len(adj)
	j := &johnson{
		adj:     adj,
		member:  make([]bool, n),
		blocked: make([]bool, n),
		b:       make([]map[int]bool, n),
	}
	for i := range j.b {
		j.b[i] = make(map[int]bool)
	}
	return j
}

func (j *johnson) run() [][]int {
	all := make([]bool, len(j.adj))
	for i := range all {
		all[i] = true
	}
	queue := nontrivial(stronglyConnected(j.adj, all))

	for len(queue) > 0 {
		comp := queue[0]
		queue = queue[1:]
		root := slices.Min(comp)

		clear(j.member)
		for _, v := range comp {
			j.member[v] = true
			j.blocked[v] = false
			clear(j.b[v])
		}
		j.circuit(root, root)

		j.member[root] = false
		queue = append(queue, nontrivial(stronglyConnected(j.adj, j.member))...)
	}
	return j.out
}

func (j *johnson) circuit(v, root int) bool {
	found := false
	j.stack = append(j.stack, v)
	j.blocked[v] = true

	for _, w := range j.adj[v] {
		if !j.member[w] {
			continue
		}
		if w == root {
			j.out = append(j.out, slices.Clone(j.stack))
			found = true
		} else if !j.blocked[w] && j.circuit(w, root) {
			found = true
		}
	}

	if found {
		j.unblock(v)
	} else {
		for _, w := range j.adj[v] {
			if j.member[w] {
				j.b[w][v] = true
			}
		}
	}
	j.stack = j.stack[:len(j.stack)-1]
	return found
}

func (j *johnson) unblock(u int) {
	j.blocked[u] = false
	for w := range j.b[u] {
		delete(j.b[u], w)
		if j.blocked[w] {
			j.unblock(w)
		}
	}
}

// stronglyConnected returns the strongly connected components of the
// subgraph induced by the vertices with member[v] set, using Tarjan's
// algorithm. Components come out in reverse topological order.
func stronglyConnected(adj [][]int, member []bool) [][]int {
	n := len(adj)
	idx := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range idx {
		idx[i] = -1
	}

	var (
		counter int
		stack   []int
		comps   [][]int
	)

	var visit func(v int)
	visit = func(v int) {
		idx[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			if !member[w] {
				continue
			}
			if idx[w] < 0 {
				visit(w)
				low[v] = min(low[v], low[w])
			} else if onStack[w] {
				low[v] = min(low[v], idx[w])
			}
		}

		if low[v] == idx[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			comps = append(comps, comp)
		}
	}

	for v := range n {
		if member[v] && idx[v] < 0 {
			visit(v)
		}
	}
	return comps
}

// nontrivial keeps components that can contain a circuit. Self-loops are
// handled before the search, so single vertices never qualify.
func nontrivial(comps [][]int) [][]int {
	var out [][]int
	for _, c := range comps {
		if len(c) > 1 {
			out = append(out, c)
		}
	}
	return out
}
