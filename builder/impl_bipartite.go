// SPDX-License-Identifier: MIT
// impl_bipartite.go builds the complete bipartite graph K_{n1,n2}: every
// left vertex connects to every right vertex, mirrored when the graph is
// directed. Partition prefixes (default "L"/"R") come from cfg.
package builder

import (
	"fmt"

	"github.com/katalvlaran/bandwidth/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}. n1 and n2 must each
// be >= 1.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		lp, rp := cfg.leftPrefix, cfg.rightPrefix

		leftIDs := make([]string, n1)
		for i := 0; i < n1; i++ {
			id := fmt.Sprintf("%s%d", lp, i)
			leftIDs[i] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}

		rightIDs := make([]string, n2)
		for j := 0; j < n2; j++ {
			id := fmt.Sprintf("%s%d", rp, j)
			rightIDs[j] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}

		for i := 0; i < n1; i++ {
			u := leftIDs[i]
			for j := 0; j < n2; j++ {
				v := rightIDs[j]
				w := edgeWeight(g, cfg)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCompleteBipartite, u, v, w, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCompleteBipartite, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
