package graph

import "github.com/katalvlaran/bandwidth/matrix"

// Adjacency is the symmetric boolean structural-support graph of a square
// matrix: vertex set {0..n-1}, edge (u,v) iff the matrix has a nonzero at
// (u,v) or (v,u) with u != v. Self-loops are never represented.
//
// Neighbor lists are stored sorted in ascending vertex-index order, which
// every downstream traversal (levels, heuristic, dcm) relies on for
// deterministic, reproducible tie-breaking.
type Adjacency struct {
	n    int
	adj  [][]int
	deg  []int
}

// N returns the number of vertices.
func (a *Adjacency) N() int { return a.n }

// Neighbors returns the sorted neighbor list of v. The returned slice must
// not be mutated by callers.
func (a *Adjacency) Neighbors(v int) []int { return a.adj[v] }

// Degree returns |N(v)|.
func (a *Adjacency) Degree(v int) int { return a.deg[v] }

// HasEdge reports whether (u,v) is an edge. Complexity: O(deg(u)).
func (a *Adjacency) HasEdge(u, v int) bool {
	for _, w := range a.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

// Symmetrize builds the symmetric boolean adjacency of a's structural
// support: Â[i,j] = (A[i,j] != 0) || (A[j,i] != 0), self-loops ignored.
// Complexity: O(n^2) time, O(n^2) worst-case space for the neighbor lists.
func Symmetrize(a matrix.Matrix) (*Adjacency, error) {
	if a == nil {
		return nil, ErrMatrixNil
	}
	n := a.Rows()
	if n != a.Cols() {
		return nil, ErrNonSquare
	}

	present := make([][]bool, n)
	for i := range present {
		present[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			vij, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			if vij != 0 {
				present[i][j] = true
				present[j][i] = true
			}
		}
	}

	out := &Adjacency{n: n, adj: make([][]int, n), deg: make([]int, n)}
	for i := 0; i < n; i++ {
		row := make([]int, 0)
		for j := 0; j < n; j++ {
			if present[i][j] {
				row = append(row, j)
			}
		}
		out.adj[i] = row
		out.deg[i] = len(row)
	}

	return out, nil
}

// IsStructurallySymmetric reports whether a's nonzero pattern equals its
// transpose: (A[i,j] != 0) <=> (A[j,i] != 0) for all i,j. Complexity: O(n^2).
func IsStructurallySymmetric(a matrix.Matrix) (bool, error) {
	if a == nil {
		return false, ErrMatrixNil
	}
	n := a.Rows()
	if n != a.Cols() {
		return false, ErrNonSquare
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			vij, err := a.At(i, j)
			if err != nil {
				return false, err
			}
			vji, err := a.At(j, i)
			if err != nil {
				return false, err
			}
			if (vij != 0) != (vji != 0) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ConnectedComponents partitions the adjacency into maximal connected vertex
// sets via BFS from every unvisited vertex, processed in ascending index
// order. Components are returned in discovery order; within a component,
// vertices are in BFS-discovery order. An n=0 adjacency returns an empty
// list. Complexity: O(n + E).
func ConnectedComponents(adj *Adjacency) [][]int {
	n := adj.N()
	visited := make([]bool, n)
	components := make([][]int, 0)

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		comp := make([]int, 0)
		queue := []int{root}
		visited[root] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, u := range adj.Neighbors(v) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		components = append(components, comp)
	}

	return components
}
