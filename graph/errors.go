// SPDX-License-Identifier: MIT
package graph

import "errors"

// ErrMatrixNil indicates a nil matrix.Matrix was passed where a concrete
// input was required.
var ErrMatrixNil = errors.New("graph: matrix is nil")

// ErrNonSquare indicates the input matrix is not square; only square
// matrices have a structural-support graph in this domain.
var ErrNonSquare = errors.New("graph: matrix is not square")
