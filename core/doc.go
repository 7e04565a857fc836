// Package core provides a thread-safe, in-memory Graph implementation with a
// small, composable option surface.
//
// The graph G = (V,E) combines:
//
//   - directed vs. undirected edges (WithDirected)
//   - weighted vs. unweighted edges (WithWeighted)
//   - parallel edges (WithMultiEdges)
//   - self-loops (WithLoops)
//
// Edges are indexed twice: once in a flat edges map keyed by a generated
// textual ID ("e1", "e2", ...), and once in a nested adjacencyList keyed
// [from][to][edgeID], which makes HasEdge/neighbor lookups O(1) regardless
// of total edge count. Vertices() and Edges() both return results sorted by
// ID, so algorithms built on top of this package get reproducible traversal
// order without sorting themselves.
//
// Two separate RWMutexes (muVert, muEdgeAdj) protect the vertex catalog and
// the edge/adjacency state. AddEdge first registers its endpoints through
// AddVertex, which takes muVert, so an edge insertion can wait on readers of
// the vertex catalog.
package core
