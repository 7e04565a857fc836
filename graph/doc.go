// Package graph builds the symmetric boolean adjacency view of a square
// matrix's structural support and partitions it into connected components.
//
// Adjacency identifies vertices by the dense integer indices 0..n-1 of the
// input matrix.Matrix's row/column order (matrix.NewAdjacencyMatrix is where
// core.Graph's string IDs become those indices), so that the bandwidth
// search hot path (dcm) can use slice indexing instead of map lookups.
package graph
