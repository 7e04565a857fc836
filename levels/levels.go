package levels

import "github.com/katalvlaran/bandwidth/graph"

// Structure is a rooted BFS level structure: Tiers[0] = {root}, Tiers[i+1] =
// N(Tiers[i]) minus all vertices in earlier tiers. Depth is the eccentricity
// of the root (len(Tiers)-1); Width is the largest tier size.
type Structure struct {
	Root  int
	Tiers [][]int
	Depth int
	Width int

	levelOf map[int]int // vertex -> tier index, precomputed for O(1) lookup
}

// Build runs a standard BFS from root over adj and returns the resulting
// level structure. Within a tier, vertices are appended in the order their
// parents were dequeued, and for a given parent in ascending neighbor-index
// order (graph.Adjacency already stores neighbor lists sorted ascending),
// making the result fully deterministic.
//
// Complexity: O(n + E) where n, E are restricted to root's component.
func Build(adj *graph.Adjacency, root int) (*Structure, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	if root < 0 || root >= adj.N() {
		return nil, ErrRootOutOfRange
	}

	visited := make([]bool, adj.N())
	visited[root] = true
	tiers := [][]int{{root}}

	for {
		current := tiers[len(tiers)-1]
		next := make([]int, 0)
		for _, v := range current {
			for _, u := range adj.Neighbors(v) {
				if !visited[u] {
					visited[u] = true
					next = append(next, u)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		tiers = append(tiers, next)
	}

	width := 0
	levelOf := make(map[int]int, adj.N())
	for i, tier := range tiers {
		if len(tier) > width {
			width = len(tier)
		}
		for _, v := range tier {
			levelOf[v] = i
		}
	}

	return &Structure{Root: root, Tiers: tiers, Depth: len(tiers) - 1, Width: width, levelOf: levelOf}, nil
}

// LevelOf returns the tier index of v within s, or -1 if v never appeared
// (v lies outside the root's component, or is not a vertex index at all).
// Complexity: O(1).
func (s *Structure) LevelOf(v int) int {
	if i, ok := s.levelOf[v]; ok {
		return i
	}
	return -1
}
