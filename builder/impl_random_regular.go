// SPDX-License-Identifier: MIT
// impl_random_regular.go builds an undirected d-regular graph by the classic
// stub-matching construction: n*d stubs (vertex i repeated d times) are
// shuffled and paired consecutively. A pairing is accepted only if it
// respects the graph's loop/multi-edge mode; otherwise the stubs are
// reshuffled, up to maxStubMatchingAttempts times.
package builder

import (
	"fmt"

	"github.com/katalvlaran/bandwidth/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 3
)

// RandomRegular returns a Constructor for an undirected d-regular graph on n
// vertices. Requires n >= 1, 0 <= d < n, n*d even, and a non-nil cfg.rng.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomRegular, id, err)
			}
		}

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		allowLoops := g.Looped()
		allowMulti := g.Multigraph()
		rng := cfg.rng

		// validPairing reports whether the current stub arrangement respects
		// the graph's loop/multi-edge mode, without mutating the graph.
		validPairing := func() bool {
			var seen map[[2]int]struct{}
			if !allowMulti {
				seen = make(map[[2]int]struct{}, stubCount/2)
			}
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if !allowLoops && u == v {
					return false
				}
				if !allowMulti {
					if u > v {
						u, v = v, u
					}
					key := [2]int{u, v}
					if _, dup := seen[key]; dup {
						return false
					}
					seen[key] = struct{}{}
				}
			}

			return true
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing() {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				u, v := cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1])
				w := edgeWeight(g, cfg)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w",
						methodRandomRegular, u, v, w, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
