package levels

import "github.com/katalvlaran/bandwidth/graph"

// NodeSelector picks a root vertex for a level-structure-based solver, given
// the graph's adjacency and the vertex list of the connected component under
// consideration. Both the heuristic solvers (Cuthill-McKee, Gibbs-Poole-
// Stockmeyer) accept an injected NodeSelector in place of PseudoPeripheral.
type NodeSelector func(adj *graph.Adjacency, component []int) (int, error)

// PseudoPeripheral is the default NodeSelector: it returns a vertex whose
// eccentricity is close to the component's diameter.
//
// Algorithm (single component of size n > 1):
//  1. Pick v0, the first vertex of component.
//  2. Build L(v0); let depth = eccentricity, F = last tier.
//  3. Among F, pick v1 of minimum degree (ties broken by smallest index).
//  4. Build L(v1); if its depth exceeds the running depth, v0 <- v1 and
//     repeat from step 3 with the new last tier; otherwise return v0.
//
// For a singleton component, returns its only vertex. Terminates because
// depth is bounded by n and strictly increases on every replacement.
func PseudoPeripheral(adj *graph.Adjacency, component []int) (int, error) {
	if adj == nil {
		return 0, ErrAdjacencyNil
	}
	if len(component) == 0 {
		return 0, ErrEmptyComponent
	}
	if len(component) == 1 {
		return component[0], nil
	}

	v0 := component[0]
	str, err := Build(adj, v0)
	if err != nil {
		return 0, err
	}
	depth := str.Depth
	frontier := str.Tiers[len(str.Tiers)-1]

	for {
		v1 := minDegreeVertex(adj, frontier)
		next, err := Build(adj, v1)
		if err != nil {
			return 0, err
		}
		if next.Depth > depth {
			v0 = v1
			depth = next.Depth
			frontier = next.Tiers[len(next.Tiers)-1]
			continue
		}
		return v0, nil
	}
}

// minDegreeVertex returns the vertex of minimum degree in candidates,
// breaking ties by smallest index.
func minDegreeVertex(adj *graph.Adjacency, candidates []int) int {
	best := candidates[0]
	bestDeg := adj.Degree(best)
	for _, v := range candidates[1:] {
		d := adj.Degree(v)
		if d < bestDeg || (d == bestDeg && v < best) {
			best = v
			bestDeg = d
		}
	}
	return best
}
