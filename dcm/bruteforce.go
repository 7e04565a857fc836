package dcm

import (
	"github.com/katalvlaran/bandwidth/graph"
)

// maxBruteForceSize bounds BruteForce to component sizes whose full
// permutation space is still reachable in a test run. 10! is about 3.6
// million permutations; past that the oracle stops being a sanity check and
// starts being a timeout.
const maxBruteForceSize = 10

// bruteForceWalker mirrors the recursive visited-set traversal shape used
// elsewhere in this codebase for exhaustive search, generating permutations
// of the component by recursive choice-then-backtrack instead of a graph
// traversal order.
type bruteForceWalker struct {
	localAdj  [][]int
	m         int
	visited   []bool
	prefix    []int
	bestOrder []int
	bestBW    int
	found     bool
}

// BruteForce finds the true minimum bandwidth of a component by exhaustive
// search over all m! orderings. It exists as a ground-truth oracle for
// testing Search and SearchWithPerimeter against small inputs, not as a
// production solver; components larger than maxBruteForceSize are rejected.
func BruteForce(adj *graph.Adjacency, component []int) ([]int, int, error) {
	if adj == nil {
		return nil, 0, ErrAdjacencyNil
	}
	if len(component) == 0 {
		return nil, 0, ErrComponentEmpty
	}
	if len(component) > maxBruteForceSize {
		return nil, 0, ErrComponentTooLarge
	}

	e := buildEngine(adj, component, 0)
	if e.m == 1 {
		return append([]int(nil), component...), 0, nil
	}

	w := &bruteForceWalker{
		localAdj: e.localAdj,
		m:        e.m,
		visited:  make([]bool, e.m),
		prefix:   make([]int, e.m),
	}
	w.visit(0)

	return toOriginal(component, w.bestOrder), w.bestBW, nil
}

// visit extends the current prefix at depth with every unplaced vertex in
// turn, and at depth == m scores the completed permutation against the
// running best.
func (w *bruteForceWalker) visit(depth int) {
	if depth == w.m {
		bw := w.bandwidthOf()
		if !w.found || bw < w.bestBW {
			w.found = true
			w.bestBW = bw
			w.bestOrder = append([]int(nil), w.prefix...)
		}
		return
	}

	for v := 0; v < w.m; v++ {
		if w.visited[v] {
			continue
		}
		w.visited[v] = true
		w.prefix[depth] = v
		w.visit(depth + 1)
		w.visited[v] = false
	}
}

// bandwidthOf computes the bandwidth of the permutation currently held in
// w.prefix, where prefix[d] is the local vertex placed at position d.
func (w *bruteForceWalker) bandwidthOf() int {
	pos := make([]int, w.m)
	for d, v := range w.prefix {
		pos[v] = d
	}

	bw := 0
	for u := 0; u < w.m; u++ {
		for _, v := range w.localAdj[u] {
			d := pos[u] - pos[v]
			if d < 0 {
				d = -d
			}
			if d > bw {
				bw = d
			}
		}
	}
	return bw
}
