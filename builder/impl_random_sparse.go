// SPDX-License-Identifier: MIT
// impl_random_sparse.go builds an Erdos-Renyi-style graph: each admissible
// edge is included independently with probability p. Undirected graphs
// trial unordered pairs {i,j}, i<j; directed graphs trial every ordered pair
// (i,j), skipping i==j unless loops are allowed.
package builder

import (
	"fmt"

	"github.com/katalvlaran/bandwidth/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling n vertices with independent
// edge probability p. An RNG is required unless p is 0 or 1, which have a
// deterministic outcome (no edges, or the complete graph) regardless of rng.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		loops := g.Looped()
		directed := g.Directed()

		// include reports whether the trial at (i,j) keeps the edge: a
		// deterministic outcome when rng is nil (p is 0 or 1), a Bernoulli
		// trial otherwise.
		include := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}

			return cfg.rng.Float64() < p
		}

		addTrial := func(i, j int) error {
			if !include() {
				return nil
			}
			u, v := cfg.idFn(i), cfg.idFn(j)
			w := edgeWeight(g, cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomSparse, u, v, w, err)
			}

			return nil
		}

		if directed {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == j && !loops {
						continue
					}
					if err := addTrial(i, j); err != nil {
						return err
					}
				}
			}
		} else {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if err := addTrial(i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
