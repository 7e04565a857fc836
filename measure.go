package bandwidth

import (
	"github.com/katalvlaran/bandwidth/graph"
	"github.com/katalvlaran/bandwidth/matrix"
)

// validateSquare returns a's order, or ErrNonSquareInput if it isn't square.
func validateSquare(a matrix.Matrix) (int, error) {
	if a == nil {
		return 0, graph.ErrMatrixNil
	}
	n := a.Rows()
	if n != a.Cols() {
		return 0, ErrNonSquareInput
	}
	return n, nil
}

// Bandwidth returns max |i-j| over off-diagonal nonzero entries of a, or 0
// if a has none. Complexity: O(n^2).
func Bandwidth(a matrix.Matrix) (int, error) {
	n, err := validateSquare(a)
	if err != nil {
		return 0, err
	}

	bw := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := a.At(i, j)
			if err != nil {
				return 0, err
			}
			if v != 0 {
				if d := abs(i - j); d > bw {
					bw = d
				}
			}
		}
	}

	return bw, nil
}

// bandwidthOfOrdering computes the bandwidth a achieves when permuted by
// ordering: max |i-j| such that a.At(ordering[i], ordering[j]) is nonzero
// and ordering[i] != ordering[j].
func bandwidthOfOrdering(a matrix.Matrix, ordering []int) (int, error) {
	n := len(ordering)
	bw := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := a.At(ordering[i], ordering[j])
			if err != nil {
				return 0, err
			}
			if v != 0 {
				if d := abs(i - j); d > bw {
					bw = d
				}
			}
		}
	}

	return bw, nil
}

// Profile sums, per row or column, the distance from the diagonal to the
// farthest off-diagonal nonzero (topmost in a column, leftmost in a row) on
// the triangle dim selects. Diagonal entries never contribute.
// Complexity: O(n^2).
func Profile(a matrix.Matrix, dim Dimension) (int, error) {
	n, err := validateSquare(a)
	if err != nil {
		return 0, err
	}

	switch dim {
	case ColumnProfile:
		total := 0
		for j := 0; j < n; j++ {
			for i := 0; i < j; i++ {
				v, err := a.At(i, j)
				if err != nil {
					return 0, err
				}
				if v != 0 {
					total += j - i
					break
				}
			}
		}
		return total, nil

	case RowProfile:
		total := 0
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				v, err := a.At(i, j)
				if err != nil {
					return 0, err
				}
				if v != 0 {
					total += i - j
					break
				}
			}
		}
		return total, nil

	default:
		return 0, ErrUnknownProfileDimension
	}
}

// BandwidthLowerBound returns max_v ceil((deg(v)+1)/2) - 1 over a's
// structural-support graph (that is, floor(deg(v)/2)), clamped to [0, n-1].
// No solver can achieve a bandwidth k below this bound: the d neighbors of
// a vertex must fit in the at most 2k positions within distance k of it, so
// k >= ceil(d/2) >= floor(d/2). Complexity: O(n^2).
func BandwidthLowerBound(a matrix.Matrix) (int, error) {
	n, err := validateSquare(a)
	if err != nil {
		return 0, err
	}
	if n <= 1 {
		return 0, nil
	}

	adj, err := graph.Symmetrize(a)
	if err != nil {
		return 0, err
	}

	lb := 0
	for v := 0; v < n; v++ {
		deg := adj.Degree(v)
		vlb := (deg+2)/2 - 1
		if vlb > lb {
			lb = vlb
		}
	}
	if lb > n-1 {
		lb = n - 1
	}
	if lb < 0 {
		lb = 0
	}

	return lb, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
