package dcm

import (
	"sort"

	"github.com/katalvlaran/bandwidth/graph"
)

// Search runs exact Del Corso-Manzini branch-and-bound over a single
// connected component and returns the component's local vertex ordering
// (values are original vertex indices, not positions in the full matrix)
// together with the exact bandwidth it achieves. The outer loop tries
// candidate bandwidths k = ceil(maxDegree/2), ceil(maxDegree/2)+1, ... and
// returns the first k admitting a full placement; that k is provably the
// component's exact bandwidth, since no ordering can do better than half its
// maximum degree and the search is exhaustive at each k.
func Search(adj *graph.Adjacency, component []int) ([]int, int, error) {
	if adj == nil {
		return nil, 0, ErrAdjacencyNil
	}
	if len(component) == 0 {
		return nil, 0, ErrComponentEmpty
	}

	e := buildEngine(adj, component, 0)
	local, bandwidth := e.solve()

	return toOriginal(component, local), bandwidth, nil
}

// SearchWithPerimeter runs DCM augmented with a perimeter-search lookahead:
// before accepting a candidate placement, it greedily simulates up to depth
// further placements and rejects the candidate if the simulation dead-ends.
// This prunes branches the plain frontier test admits but that have no
// completion, at the cost of the simulation itself. depth must be positive;
// DefaultPerimeterDepth offers a reasonable value sized to the component.
func SearchWithPerimeter(adj *graph.Adjacency, component []int, depth int) ([]int, int, error) {
	if adj == nil {
		return nil, 0, ErrAdjacencyNil
	}
	if len(component) == 0 {
		return nil, 0, ErrComponentEmpty
	}
	if depth <= 0 {
		return nil, 0, ErrInvalidPerimeterDepth
	}

	e := buildEngine(adj, component, depth)
	local, bandwidth := e.solve()

	return toOriginal(component, local), bandwidth, nil
}

// toOriginal maps an engine's local placement back to the component's
// original vertex indices. local[d] is the local vertex placed at position
// d; sorted[local[d]] is its original vertex index.
func toOriginal(component []int, local []int) []int {
	sorted := append([]int(nil), component...)
	sort.Ints(sorted)

	out := make([]int, len(local))
	for d, lv := range local {
		out[d] = sorted[lv]
	}
	return out
}
