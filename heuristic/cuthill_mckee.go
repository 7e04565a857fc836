package heuristic

import (
	"sort"

	"github.com/katalvlaran/bandwidth/graph"
	"github.com/katalvlaran/bandwidth/levels"
)

// CuthillMcKee computes a bandwidth-reducing ordering of adj by the
// Cuthill-McKee algorithm, processing connected components in the order
// graph.ConnectedComponents returns them. selector chooses each component's
// root; a nil selector defaults to levels.PseudoPeripheral.
//
// Per component:
//  1. root r = selector(component).
//  2. Initialize a FIFO queue with r, mark it visited.
//  3. Dequeue v; for each unvisited neighbor u of v in ascending-degree order
//     (ties broken by ascending vertex index), enqueue u and mark it
//     visited. Emit v to the component ordering.
//  4. Repeat until the queue is empty.
//
// Per-component orderings are concatenated in component order.
// Complexity: O(n + E log Δ) where Δ is the maximum degree (sorting
// neighbors by degree at each dequeue).
func CuthillMcKee(adj *graph.Adjacency, selector levels.NodeSelector) ([]int, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	if selector == nil {
		selector = levels.PseudoPeripheral
	}

	ordering := make([]int, 0, adj.N())
	for _, component := range graph.ConnectedComponents(adj) {
		compOrdering, err := cuthillMcKeeComponent(adj, component, selector)
		if err != nil {
			return nil, err
		}
		ordering = append(ordering, compOrdering...)
	}

	return ordering, nil
}

// ReverseCuthillMcKee computes the RCM ordering: each component's CM
// ordering is individually reversed before concatenation. Reversing never
// increases bandwidth and typically reduces profile, which is why RCM is
// the operationally preferred variant.
func ReverseCuthillMcKee(adj *graph.Adjacency, selector levels.NodeSelector) ([]int, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	if selector == nil {
		selector = levels.PseudoPeripheral
	}

	ordering := make([]int, 0, adj.N())
	for _, component := range graph.ConnectedComponents(adj) {
		compOrdering, err := cuthillMcKeeComponent(adj, component, selector)
		if err != nil {
			return nil, err
		}
		reverse(compOrdering)
		ordering = append(ordering, compOrdering...)
	}

	return ordering, nil
}

// cuthillMcKeeComponent runs the CM neighbor-expansion rule seeded at
// selector(component), confined to the given component's vertex set.
func cuthillMcKeeComponent(adj *graph.Adjacency, component []int, selector levels.NodeSelector) ([]int, error) {
	root, err := selector(adj, component)
	if err != nil {
		return nil, err
	}

	visited := make(map[int]bool, len(component))
	queue := []int{root}
	visited[root] = true
	ordering := make([]int, 0, len(component))

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		ordering = append(ordering, v)

		neighbors := ascendingByDegree(adj, unvisitedNeighbors(adj, v, visited))
		for _, u := range neighbors {
			visited[u] = true
			queue = append(queue, u)
		}
	}

	return ordering, nil
}

// unvisitedNeighbors returns v's neighbors not yet in visited.
func unvisitedNeighbors(adj *graph.Adjacency, v int, visited map[int]bool) []int {
	out := make([]int, 0, adj.Degree(v))
	for _, u := range adj.Neighbors(v) {
		if !visited[u] {
			out = append(out, u)
		}
	}
	return out
}

// ascendingByDegree sorts vertices by ascending degree, ties broken by
// ascending vertex index. The input must already be free of duplicates.
func ascendingByDegree(adj *graph.Adjacency, vertices []int) []int {
	sort.Slice(vertices, func(i, j int) bool {
		di, dj := adj.Degree(vertices[i]), adj.Degree(vertices[j])
		if di != dj {
			return di < dj
		}
		return vertices[i] < vertices[j]
	})
	return vertices
}

// reverse reverses s in place.
func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
