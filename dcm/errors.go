// SPDX-License-Identifier: MIT
package dcm

import "errors"

// ErrAdjacencyNil indicates a nil graph.Adjacency was passed.
var ErrAdjacencyNil = errors.New("dcm: adjacency is nil")

// ErrComponentEmpty indicates an empty component slice was passed.
var ErrComponentEmpty = errors.New("dcm: component is empty")

// ErrComponentTooLarge indicates BruteForce was asked to enumerate more
// permutations than is practical; it exists to fail fast in tests and
// callers rather than hang for hours on a moderately sized component.
var ErrComponentTooLarge = errors.New("dcm: component too large for brute force")

// ErrInvalidPerimeterDepth indicates a non-positive perimeter lookahead
// depth was passed to SearchWithPerimeter.
var ErrInvalidPerimeterDepth = errors.New("dcm: perimeter depth must be positive")
