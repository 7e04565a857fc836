package bandwidth

import (
	"github.com/katalvlaran/bandwidth/dcm"
	"github.com/katalvlaran/bandwidth/graph"
	"github.com/katalvlaran/bandwidth/heuristic"
	"github.com/katalvlaran/bandwidth/matrix"
)

// MinimizeBandwidth computes a row/column permutation of a that minimizes
// (DCM family) or heuristically reduces (CM/RCM/GPS family) its bandwidth.
//
// a is validated square; if solver requires structural symmetry (the exact
// family does) and a's nonzero pattern isn't symmetric, ErrStructuralAsymmetry
// is returned. a is reduced to its structural support and partitioned into
// connected components; each component is solved independently and the
// per-component orderings are concatenated in component-discovery order,
// since no permutation can ever move a nonzero across components.
func MinimizeBandwidth(a matrix.Matrix, solver Solver) (Result, error) {
	if _, err := validateSquare(a); err != nil {
		return Result{}, err
	}
	if err := validateSolver(solver); err != nil {
		return Result{}, err
	}
	if solver.RequiresStructuralSymmetry() {
		symmetric, err := graph.IsStructurallySymmetric(a)
		if err != nil {
			return Result{}, err
		}
		if !symmetric {
			return Result{}, ErrStructuralAsymmetry
		}
	}

	adj, err := graph.Symmetrize(a)
	if err != nil {
		return Result{}, err
	}

	ordering, err := dispatch(adj, solver)
	if err != nil {
		return Result{}, err
	}

	bw, err := bandwidthOfOrdering(a, ordering)
	if err != nil {
		return Result{}, err
	}

	return Result{Input: a, Bandwidth: bw, Ordering: ordering, Solver: solver.Tag}, nil
}

// HasBandwidthKOrdering is the decision-problem sibling of MinimizeBandwidth:
// it runs solver to completion and reports whether the bandwidth it finds is
// at most k, returning the witnessing ordering on success.
func HasBandwidthKOrdering(a matrix.Matrix, k int, solver Solver) (Recognition, error) {
	result, err := MinimizeBandwidth(a, solver)
	if err != nil {
		return Recognition{}, err
	}
	if result.Bandwidth > k {
		return Recognition{HasOrdering: false}, nil
	}

	return Recognition{HasOrdering: true, Ordering: result.Ordering}, nil
}

// validateSolver rejects usage-level mismatches a type-checked Solver value
// can still express: a selector attached to a tag that doesn't take one.
func validateSolver(solver Solver) error {
	switch solver.Tag {
	case CuthillMcKeeTag, ReverseCuthillMcKeeTag, GibbsPooleStockmeyerTag:
		return nil
	default:
		if solver.Selector != nil {
			return ErrInvalidSelector
		}
		return nil
	}
}

// dispatch routes to the requested solver and returns a full-graph ordering.
// The heuristic family already decomposes into components internally (each
// accepts the whole adjacency); the DCM family does not, so dispatch drives
// the per-component loop itself here.
func dispatch(adj *graph.Adjacency, solver Solver) ([]int, error) {
	switch solver.Tag {
	case CuthillMcKeeTag:
		return heuristic.CuthillMcKee(adj, solver.Selector)

	case ReverseCuthillMcKeeTag:
		return heuristic.ReverseCuthillMcKee(adj, solver.Selector)

	case GibbsPooleStockmeyerTag:
		return heuristic.GibbsPooleStockmeyer(adj, solver.Selector)

	case BruteForceSearch, DelCorsoManzini, DelCorsoManziniWithPS:
		ordering := make([]int, 0, adj.N())
		for _, component := range graph.ConnectedComponents(adj) {
			compOrdering, err := dispatchComponent(adj, component, solver)
			if err != nil {
				return nil, err
			}
			ordering = append(ordering, compOrdering...)
		}
		return ordering, nil

	default:
		return nil, &NotImplementedError{Tag: solver.Tag}
	}
}

// dispatchComponent runs the requested DCM-family solver over a single
// component.
func dispatchComponent(adj *graph.Adjacency, component []int, solver Solver) ([]int, error) {
	switch solver.Tag {
	case BruteForceSearch:
		ordering, _, err := dcm.BruteForce(adj, component)
		return ordering, err

	case DelCorsoManzini:
		ordering, _, err := dcm.Search(adj, component)
		return ordering, err

	case DelCorsoManziniWithPS:
		depth := solver.PerimeterDepth
		if depth <= 0 {
			depth = dcm.DefaultPerimeterDepth(len(component))
		}
		ordering, _, err := dcm.SearchWithPerimeter(adj, component, depth)
		return ordering, err

	default:
		return nil, &NotImplementedError{Tag: solver.Tag}
	}
}
