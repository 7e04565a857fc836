// Package bandwidth computes row/column permutations of a square matrix
// that minimize its bandwidth: the maximum distance |i-j| between a row and
// column index at which the permuted matrix has a nonzero off-diagonal
// entry.
//
// Two families of solver are available, selected through the Solver tagged
// variant and dispatched by MinimizeBandwidth:
//
//   - Exact: Del Corso-Manzini branch-and-bound (DelCorsoManzini), its
//     perimeter-search-augmented variant (DelCorsoManziniWithPS), and a
//     brute-force oracle (BruteForceSearch) suitable only for small inputs.
//   - Heuristic: Cuthill-McKee, Reverse Cuthill-McKee, and
//     Gibbs-Poole-Stockmeyer, all built on pseudo-peripheral root selection
//     over rooted BFS level structures. These run in low-polynomial time and
//     do not guarantee an optimal ordering.
//
// Every solver decomposes its input into connected components first (via
// graph.ConnectedComponents) and solves each independently, since no
// off-diagonal nonzero ever connects two different components under any
// permutation.
//
// Subpackages:
//
//	matrix/    — the Matrix interface and Dense/AdjacencyMatrix views
//	core/      — thread-safe Graph/Vertex/Edge primitives
//	builder/   — deterministic topology constructors, used by this package's
//	             own test fixtures
//	graph/     — symmetric boolean adjacency over a Matrix, connected
//	             components
//	levels/    — rooted BFS level structures, pseudo-peripheral root search
//	heuristic/ — Cuthill-McKee, Reverse Cuthill-McKee, Gibbs-Poole-Stockmeyer
//	dcm/       — exact Del Corso-Manzini search and the brute-force oracle
package bandwidth
