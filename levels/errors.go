// SPDX-License-Identifier: MIT
package levels

import "errors"

// ErrAdjacencyNil indicates a nil graph.Adjacency was passed.
var ErrAdjacencyNil = errors.New("levels: adjacency is nil")

// ErrEmptyComponent indicates an empty component vertex list was passed
// where at least one vertex was required.
var ErrEmptyComponent = errors.New("levels: component is empty")

// ErrRootOutOfRange indicates a root vertex index outside [0, n).
var ErrRootOutOfRange = errors.New("levels: root index out of range")
