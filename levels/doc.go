// Package levels builds rooted BFS level structures over a graph.Adjacency
// and selects pseudo-peripheral root vertices from them.
//
// A level structure is the input both the Cuthill-McKee family and the
// Gibbs-Poole-Stockmeyer solver use to seed and label a component; this
// package is shared, deterministic infrastructure for both.
package levels
