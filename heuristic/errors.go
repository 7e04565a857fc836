// SPDX-License-Identifier: MIT
package heuristic

import "errors"

// ErrAdjacencyNil indicates a nil graph.Adjacency was passed.
var ErrAdjacencyNil = errors.New("heuristic: adjacency is nil")
