package heuristic

import (
	"sort"

	"github.com/katalvlaran/bandwidth/graph"
	"github.com/katalvlaran/bandwidth/levels"
)

// GibbsPooleStockmeyer computes a bandwidth-reducing ordering by the
// Gibbs-Poole-Stockmeyer algorithm: a double-ended pseudo-diameter search
// followed by a minimum-width combined level structure, labeled within
// levels by the Cuthill-McKee neighbor-expansion rule and emitted reversed
// (RCM-style) per component. selector seeds the pseudo-diameter search; a
// nil selector defaults to levels.PseudoPeripheral.
func GibbsPooleStockmeyer(adj *graph.Adjacency, selector levels.NodeSelector) ([]int, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	if selector == nil {
		selector = levels.PseudoPeripheral
	}

	ordering := make([]int, 0, adj.N())
	for _, component := range graph.ConnectedComponents(adj) {
		compOrdering, err := gpsComponent(adj, component, selector)
		if err != nil {
			return nil, err
		}
		reverse(compOrdering)
		ordering = append(ordering, compOrdering...)
	}

	return ordering, nil
}

func gpsComponent(adj *graph.Adjacency, component []int, selector levels.NodeSelector) ([]int, error) {
	if len(component) == 1 {
		return []int{component[0]}, nil
	}

	s, t, err := pseudoDiameter(adj, component, selector)
	if err != nil {
		return nil, err
	}

	comboLevel, h, err := combinedLevelStructure(adj, component, s, t)
	if err != nil {
		return nil, err
	}

	return labelWithinLevels(adj, component, comboLevel, h), nil
}

// pseudoDiameter finds a (s, t) pair with a large BFS distance by iterative
// endpoint refinement (spec.md §4.5 step 1).
func pseudoDiameter(adj *graph.Adjacency, component []int, selector levels.NodeSelector) (int, int, error) {
	v, err := selector(adj, component)
	if err != nil {
		return 0, 0, err
	}

	for {
		lv, err := levels.Build(adj, v)
		if err != nil {
			return 0, 0, err
		}
		frontier := ascendingByDegree(adj, append([]int(nil), lv.Tiers[len(lv.Tiers)-1]...))

		var bestU int
		bestDepth, bestWidth := -1, 0
		haveBest := false
		for _, u := range frontier {
			lu, err := levels.Build(adj, u)
			if err != nil {
				return 0, 0, err
			}
			if !haveBest || better(lu.Depth, lu.Width, u, bestDepth, bestWidth, bestU) {
				bestU, bestDepth, bestWidth, haveBest = u, lu.Depth, lu.Width, true
			}
		}

		if bestDepth > lv.Depth {
			v = bestU
			continue
		}

		return v, bestU, nil
	}
}

// better reports whether (depth, width, idx) improves on the running best
// under the (greatest depth, then smallest width, then smallest index) rule.
func better(depth, width, idx, bestDepth, bestWidth, bestIdx int) bool {
	if depth != bestDepth {
		return depth > bestDepth
	}
	if width != bestWidth {
		return width < bestWidth
	}
	return idx < bestIdx
}

// combinedLevelStructure assigns each vertex in component a level index in
// [0, h] by combining the layering from s with the reversed layering from t,
// resolving disagreements by a width-minimizing pass (spec.md §4.5 step 2).
func combinedLevelStructure(adj *graph.Adjacency, component []int, s, t int) (map[int]int, int, error) {
	ls, err := levels.Build(adj, s)
	if err != nil {
		return nil, 0, err
	}
	lt, err := levels.Build(adj, t)
	if err != nil {
		return nil, 0, err
	}

	h := ls.Depth
	if lt.Depth > h {
		h = lt.Depth
	}

	sorted := append([]int(nil), component...)
	sort.Ints(sorted)

	comboLevel := make(map[int]int, len(component))
	runningWidth := make([]int, h+1)
	for _, v := range sorted {
		a := ls.LevelOf(v)
		b := h - lt.LevelOf(v)
		var level int
		switch {
		case a == b:
			level = a
		case runningWidth[a] < runningWidth[b]:
			level = a
		case runningWidth[b] < runningWidth[a]:
			level = b
		default:
			level = minInt(a, b)
		}
		comboLevel[v] = level
		runningWidth[level]++
	}

	return comboLevel, h, nil
}

// labelWithinLevels emits vertices level by level (0..h, level 0 anchored at
// the pseudo-diameter source s via comboLevel), with vertices inside each
// level ordered by the same ascending-degree, ascending-index rule Cuthill-
// McKee uses when expanding a neighbor set (spec.md §4.5 step 3).
func labelWithinLevels(adj *graph.Adjacency, component []int, comboLevel map[int]int, h int) []int {
	byLevel := make([][]int, h+1)
	for _, v := range component {
		lvl := comboLevel[v]
		byLevel[lvl] = append(byLevel[lvl], v)
	}

	ordering := make([]int, 0, len(component))
	for lvl := 0; lvl <= h; lvl++ {
		tier := ascendingByDegree(adj, append([]int(nil), byLevel[lvl]...))
		ordering = append(ordering, tier...)
	}

	return ordering
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
