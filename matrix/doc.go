// Package matrix provides the numeric matrix representation bandwidth
// algorithms operate on, plus the thin bridge from a core.Graph fixture to
// a dense adjacency matrix.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over a two-dimensional array of float64
//     values (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by a flat slice.
//   - NewAdjacencyMatrix, which renders a core.Graph into a Dense matrix
//     suitable for bandwidth minimization or measurement.
//
// Only structural nonzero-ness matters to the bandwidth algorithms built on
// top of this package (see the graph package); numeric magnitudes are
// otherwise inert.
package matrix
