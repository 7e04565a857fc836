// Package dcm implements the exact Del Corso-Manzini branch-and-bound search
// for minimum matrix bandwidth (DCM), its perimeter-search-augmented variant
// (DCM-PS), and a brute-force permutation oracle used as a ground-truth
// reference in tests.
//
// All three operate on a single connected component at a time: the caller
// (the bandwidth package's dispatcher) partitions the input via
// graph.ConnectedComponents and concatenates the per-component results.
package dcm
