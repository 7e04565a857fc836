package dcm

import (
	"sort"

	"github.com/katalvlaran/bandwidth/graph"
)

// engine holds the dense, pre-remapped state for one component's
// branch-and-bound search. Vertices of the component are remapped to local
// indices 0..m-1, preserving their relative ascending order in the original
// adjacency, so that "ascending index order" in the placement rule and the
// anchor symmetry break can be expressed as plain integer comparisons over
// slice indices instead of map lookups. This mirrors tsp's bbEngine, which
// remaps city IDs to a dense 0..n-1 range once up front and runs its whole
// search over slice indices.
type engine struct {
	m              int     // component size
	localAdj       [][]int // localAdj[v] = sorted ascending local neighbors of v
	perimeterDepth int     // 0 disables the DCM-PS lookahead

	k          int   // current bandwidth candidate under test
	unplaced   []bool
	placedPos  []int // placedPos[v] = position assigned to v, or -1
	prefix     []int // prefix[d] = local vertex placed at depth d
}

// buildEngine remaps component (original vertex indices, any order) into a
// dense local engine. perimeterDepth of 0 means plain DCM.
func buildEngine(adj *graph.Adjacency, component []int, perimeterDepth int) *engine {
	sorted := append([]int(nil), component...)
	sort.Ints(sorted)

	m := len(sorted)
	localOf := make(map[int]int, m)
	for i, v := range sorted {
		localOf[v] = i
	}

	localAdj := make([][]int, m)
	for i, v := range sorted {
		row := make([]int, 0, adj.Degree(v))
		for _, u := range adj.Neighbors(v) {
			if lu, ok := localOf[u]; ok {
				row = append(row, lu)
			}
		}
		sort.Ints(row)
		localAdj[i] = row
	}

	return &engine{
		m:              m,
		localAdj:       localAdj,
		perimeterDepth: perimeterDepth,
		unplaced:       make([]bool, m),
		placedPos:      make([]int, m),
		prefix:         make([]int, m),
	}
}

// maxDegree returns the maximum vertex degree within the component, used to
// seed the outer iterative-deepening loop at ceil(maxDegree/2).
func (e *engine) maxDegree() int {
	d := 0
	for _, row := range e.localAdj {
		if len(row) > d {
			d = len(row)
		}
	}
	return d
}

// solve runs the outer iterative-deepening loop: for k starting at
// ceil(maxDegree/2) and increasing by 1, attempt a full placement respecting
// bandwidth k. The first k for which place succeeds is the exact bandwidth
// of this component, and e.prefix holds the local placement (prefix[d] is
// the local vertex at position d).
func (e *engine) solve() (ordering []int, bandwidth int) {
	if e.m <= 1 {
		if e.m == 1 {
			return []int{0}, 0
		}
		return nil, 0
	}

	for k := (e.maxDegree() + 1) / 2; ; k++ {
		e.reset(k)
		if e.place(0) {
			return append([]int(nil), e.prefix...), k
		}
	}
}

// reset clears placement state for a fresh attempt at bandwidth k.
func (e *engine) reset(k int) {
	e.k = k
	for i := range e.unplaced {
		e.unplaced[i] = true
		e.placedPos[i] = -1
	}
}

// place attempts to extend the current prefix to depth d, trying candidates
// in ascending local-index order and backtracking on failure. It implements
// the anchor symmetry break, the per-neighbor compatibility test, and the
// frontier deadline-feasibility test, in that order, exactly as laid out for
// the DCM placement rule.
func (e *engine) place(d int) bool {
	if d == e.m {
		return true
	}

	for v := 0; v < e.m; v++ {
		if !e.unplaced[v] {
			continue
		}
		// Anchor symmetry break: at depth 0, a matrix and its reversal have
		// identical bandwidth, so fixing the first vertex to never be the
		// largest remaining index eliminates that mirrored half of the
		// search space. Since local indices are dense 0..m-1, "the largest
		// remaining index at depth 0" is always m-1.
		if d == 0 && v == e.m-1 {
			continue
		}
		if !e.compatible(v, d) {
			continue
		}

		e.commit(v, d)
		if e.feasible(d) && e.lookaheadOK(d) && e.place(d+1) {
			return true
		}
		e.undo(v)
	}

	return false
}

// compatible reports whether placing v at depth d keeps every already-placed
// neighbor of v within bandwidth k: for each placed neighbor at position j,
// requires k + j >= d.
func (e *engine) compatible(v, d int) bool {
	for _, w := range e.localAdj[v] {
		if j := e.placedPos[w]; j >= 0 && e.k+j < d {
			return false
		}
	}
	return true
}

func (e *engine) commit(v, d int) {
	e.unplaced[v] = false
	e.placedPos[v] = d
	e.prefix[d] = v
}

func (e *engine) undo(v int) {
	e.unplaced[v] = true
	e.placedPos[v] = -1
}

// frontier returns, in ascending local-index order, every unplaced vertex
// adjacent to at least one placed vertex.
func (e *engine) frontier() []int {
	out := make([]int, 0)
	for v := 0; v < e.m; v++ {
		if !e.unplaced[v] {
			continue
		}
		for _, w := range e.localAdj[v] {
			if e.placedPos[w] >= 0 {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// latest returns the smallest k+j over u's placed neighbors at position j:
// the last depth at which u could still be placed without violating
// bandwidth k against an already-placed neighbor.
func (e *engine) latest(u int) int {
	best := -1
	for _, w := range e.localAdj[u] {
		if j := e.placedPos[w]; j >= 0 {
			cand := e.k + j
			if best == -1 || cand < best {
				best = cand
			}
		}
	}
	return best
}

// feasible runs the Hall-style frontier deadline test at depth d (the depth
// of the vertex just committed): reject if the frontier already exceeds k,
// or if the sorted vector of per-vertex deadlines can't admit the frontier
// in time.
func (e *engine) feasible(d int) bool {
	f := e.frontier()
	if len(f) > e.k {
		return false
	}

	deadlines := make([]int, len(f))
	for i, u := range f {
		deadlines[i] = e.latest(u)
	}
	sort.Ints(deadlines)
	for i, lv := range deadlines {
		if lv < d+i+1 {
			return false
		}
	}

	return true
}

// lookaheadOK runs the DCM-PS perimeter simulation when enabled: a greedy,
// non-backtracking attempt to extend the placement for perimeterDepth
// further steps, operating on a private copy of the placement state so it
// never disturbs the real search. If the greedy simulation gets stuck before
// exhausting its horizon, the candidate that triggered it is pruned early,
// before the real recursive search would have discovered the same dead end
// many branches later. perimeterDepth of 0 disables the check.
func (e *engine) lookaheadOK(d int) bool {
	if e.perimeterDepth <= 0 {
		return true
	}

	unplaced := append([]bool(nil), e.unplaced...)
	placedPos := append([]int(nil), e.placedPos...)
	depth := d + 1

	for steps := 0; steps < e.perimeterDepth && depth < e.m; steps++ {
		if !e.greedyStep(depth, unplaced, placedPos) {
			return false
		}
		depth++
	}

	return true
}

// greedyStep tries to place one vertex at depth on the given scratch state,
// picking the first candidate (ascending local index) that passes the same
// compatibility and frontier tests as the real search. It mutates unplaced
// and placedPos in place and reports whether a placement was found.
func (e *engine) greedyStep(depth int, unplaced []bool, placedPos []int) bool {
	for v := 0; v < e.m; v++ {
		if !unplaced[v] {
			continue
		}
		if depth == 0 && v == e.m-1 {
			continue
		}

		compatible := true
		for _, w := range e.localAdj[v] {
			if j := placedPos[w]; j >= 0 && e.k+j < depth {
				compatible = false
				break
			}
		}
		if !compatible {
			continue
		}

		unplaced[v] = false
		placedPos[v] = depth
		if e.feasibleOn(depth, unplaced, placedPos) {
			return true
		}
		unplaced[v] = true
		placedPos[v] = -1
	}

	return false
}

// feasibleOn runs the same frontier deadline test as feasible, against an
// arbitrary (unplaced, placedPos) pair rather than the engine's own state;
// used by the perimeter simulation to probe scratch copies.
func (e *engine) feasibleOn(d int, unplaced []bool, placedPos []int) bool {
	f := make([]int, 0)
	for v := 0; v < e.m; v++ {
		if !unplaced[v] {
			continue
		}
		for _, w := range e.localAdj[v] {
			if placedPos[w] >= 0 {
				f = append(f, v)
				break
			}
		}
	}
	if len(f) > e.k {
		return false
	}

	deadlines := make([]int, len(f))
	for i, u := range f {
		best := -1
		for _, w := range e.localAdj[u] {
			if j := placedPos[w]; j >= 0 {
				cand := e.k + j
				if best == -1 || cand < best {
					best = cand
				}
			}
		}
		deadlines[i] = best
	}
	sort.Ints(deadlines)
	for i, lv := range deadlines {
		if lv < d+i+1 {
			return false
		}
	}

	return true
}

// DefaultPerimeterDepth picks a lookahead horizon proportional to component
// size for callers of SearchWithPerimeter that don't have a more specific
// value in mind: deep enough to catch dead ends the plain frontier test
// misses, shallow enough that the simulation cost stays well under the cost
// of the branch it's trying to avoid.
func DefaultPerimeterDepth(componentSize int) int {
	d := componentSize / 4
	if d < 1 {
		d = 1
	}
	return d
}
