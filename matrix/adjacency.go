// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/bandwidth/core"

// AdjacencyMatrix renders a core.Graph into a Dense matrix plus the bijection
// between matrix index and vertex ID needed to translate permutations back
// into vertex orderings.
type AdjacencyMatrix struct {
	*Dense

	// Index holds the vertex ID at each matrix row/column position, in the
	// order it was assigned (lexicographic by Vertex.ID).
	Index []string

	// pos is the inverse of Index: vertex ID -> matrix position.
	pos map[string]int
}

// PositionOf returns the matrix row/column assigned to the given vertex ID.
// The second return is false if id is not part of this adjacency matrix.
func (a *AdjacencyMatrix) PositionOf(id string) (int, bool) {
	p, ok := a.pos[id]

	return p, ok
}

// NewAdjacencyMatrix renders g into a square Dense matrix.
//
// Vertices are assigned positions in lexicographic ID order, matching
// core.Graph.Vertices, so the resulting matrix and permutation vectors are
// deterministic across runs for the same graph. Edges are walked in
// core.Graph.Edges order (Edge.ID asc) for the same reason.
//
// With WithUnweighted (the default), a[i][j] is 1 for each edge and 0
// otherwise. With WithWeighted, a[i][j] holds the edge's Weight cast to
// float64; a zero-weight edge is indistinguishable from "no edge" under
// this policy, matching core's own zero-weight convention for unweighted
// graphs.
//
// With WithUndirected (the default), every edge is mirrored into both
// a[from][to] and a[to][from] (unless it's a loop). With WithDirected, each
// edge follows its own Edge.Directed flag: a directed edge sets only
// a[from][to], an undirected edge is still mirrored.
//
// Returns ErrGraphNil if g is nil.
func NewAdjacencyMatrix(g *core.Graph, opts ...Option) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := gatherOptions(opts...)

	ids := g.Vertices() // lexicographically sorted, deterministic
	n := len(ids)

	pos := make(map[string]int, n)
	for i, id := range ids {
		pos[id] = i
	}

	var dense *Dense
	if n == 0 {
		dense = &Dense{r: 0, c: 0, data: nil}
	} else {
		var err error
		dense, err = NewDense(n, n)
		if err != nil {
			return nil, err
		}
	}

	for _, e := range g.Edges() {
		if e.From == e.To && !o.allowLoops {
			continue
		}

		fromIdx, ok := pos[e.From]
		if !ok {
			return nil, ErrUnknownVertex
		}
		toIdx, ok := pos[e.To]
		if !ok {
			return nil, ErrUnknownVertex
		}

		v := 1.0
		if o.weighted {
			v = float64(e.Weight)
		}

		if err := dense.Set(fromIdx, toIdx, v); err != nil {
			return nil, err
		}

		directed := e.Directed
		if !o.directed {
			directed = false
		}
		if !directed && fromIdx != toIdx {
			if err := dense.Set(toIdx, fromIdx, v); err != nil {
				return nil, err
			}
		}
	}

	return &AdjacencyMatrix{Dense: dense, Index: ids, pos: pos}, nil
}
