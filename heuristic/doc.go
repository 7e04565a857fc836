// Package heuristic implements the Cuthill-McKee family of bandwidth-
// reducing orderings: Cuthill-McKee (CM), Reverse Cuthill-McKee (RCM), and
// Gibbs-Poole-Stockmeyer (GPS). All three are greedy level-structure
// labelings seeded by a pseudo-peripheral (or caller-supplied) root vertex;
// none guarantee optimal bandwidth, but they run in low-polynomial time and
// typically land within a small constant factor of the exact optimum.
package heuristic
