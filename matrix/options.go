// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the core.Graph → matrix
// adapter. This file defines:
//   - Option / MatrixOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior.
//   - Reusability: MatrixOptions fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Bandwidth minimization only cares about structural nonzero-ness, so this
//     package carries none of the numeric policy (epsilon tolerance, NaN/Inf
//     admission modes, metric-closure/APSP distance policy) that a general
//     linear-algebra matrix package would need. Weight magnitudes never affect
//     which permutation minimizes bandwidth; only the zero/nonzero pattern does.
//   - Directedness mapping (core → matrix):
//   - core can be uniform-directed or mixed-mode per-edge (Edge.Directed).
//   - the adapter remains deterministic: vertex order is stable (ID asc), and
//     edge iteration is stable (Edge.ID asc) before writing into the matrix.
//   - Loops:
//   - self-loops land on the diagonal and never affect off-diagonal bandwidth.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDirected controls whether edges are treated as directed.
	// false ⇒ undirected (mirror [u,v] into [v,u], except loops).
	DefaultDirected = false

	// DefaultWeighted controls whether actual edge weights are written into
	// the matrix. false ⇒ build a binary {0,1} adjacency matrix.
	DefaultWeighted = false

	// DefaultAllowLoops includes self-loops on the diagonal when true.
	DefaultAllowLoops = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal configuration. Safe to apply repeatedly (idempotent).
type Option func(*MatrixOptions)

// MatrixOptions stores the effective configuration after applying Option
// setters. Its fields are unexported; public entry points accept
// ...Option and internally resolve them via gatherOptions.
type MatrixOptions struct {
	directed   bool // DefaultDirected
	weighted   bool // DefaultWeighted
	allowLoops bool // DefaultAllowLoops
}

// ---------- Constructors (WithX) ----------

// WithDirected lets each edge's Edge.Directed flag decide mirroring: directed
// edges set only [u,v], undirected edges are still mirrored into [v,u].
func WithDirected() Option {
	return func(o *MatrixOptions) { o.directed = true }
}

// WithUndirected builds an undirected adjacency matrix (mirror [u,v]→[v,u],
// except loops). This is the default.
func WithUndirected() Option {
	return func(o *MatrixOptions) { o.directed = false }
}

// WithWeighted preserves actual edge weights in the matrix instead of a
// binary {0,1} pattern. Bandwidth is unaffected either way; this only
// changes what Profile/measurement consumers read back from At.
func WithWeighted() Option {
	return func(o *MatrixOptions) { o.weighted = true }
}

// WithUnweighted forces a binary {0,1} adjacency matrix. This is the default.
func WithUnweighted() Option {
	return func(o *MatrixOptions) { o.weighted = false }
}

// WithAllowLoops includes self-loops (u==v) on the diagonal during ingestion.
func WithAllowLoops() Option {
	return func(o *MatrixOptions) { o.allowLoops = true }
}

// WithDisallowLoops ignores self-loops during ingestion. This is the default.
func WithDisallowLoops() Option {
	return func(o *MatrixOptions) { o.allowLoops = false }
}

// ---------- Option Resolution ---------

// NewMatrixOptions resolves option setters against documented defaults.
func NewMatrixOptions(opts ...Option) MatrixOptions {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry point used by NewAdjacencyMatrix.
func gatherOptions(user ...Option) MatrixOptions {
	o := MatrixOptions{
		directed:   DefaultDirected,
		weighted:   DefaultWeighted,
		allowLoops: DefaultAllowLoops,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
