package bandwidth

import (
	"github.com/katalvlaran/bandwidth/levels"
	"github.com/katalvlaran/bandwidth/matrix"
)

// SolverTag enumerates the solvers MinimizeBandwidth and
// HasBandwidthKOrdering can dispatch to.
type SolverTag int

const (
	// BruteForceSearch tries all permutations of each component and keeps
	// the best; an exact ground-truth oracle, not a production solver.
	BruteForceSearch SolverTag = iota

	// DelCorsoManzini is the exact branch-and-bound search (DCM).
	DelCorsoManzini

	// DelCorsoManziniWithPS is DCM augmented with perimeter-search
	// lookahead pruning (DCM-PS).
	DelCorsoManziniWithPS

	// CapraraSalazarGonzalez is declared for API completeness; no backend
	// is provided. Dispatching it returns a *NotImplementedError.
	CapraraSalazarGonzalez

	// SaxeGurariSudborough is declared for API completeness; no backend is
	// provided. Dispatching it returns a *NotImplementedError.
	SaxeGurariSudborough

	// CuthillMcKeeTag selects the Cuthill-McKee heuristic.
	CuthillMcKeeTag

	// ReverseCuthillMcKeeTag selects the Reverse Cuthill-McKee heuristic.
	ReverseCuthillMcKeeTag

	// GibbsPooleStockmeyerTag selects the Gibbs-Poole-Stockmeyer heuristic.
	GibbsPooleStockmeyerTag
)

// String renders a SolverTag by name, used in NotImplementedError messages.
func (t SolverTag) String() string {
	switch t {
	case BruteForceSearch:
		return "BruteForceSearch"
	case DelCorsoManzini:
		return "DelCorsoManzini"
	case DelCorsoManziniWithPS:
		return "DelCorsoManziniWithPS"
	case CapraraSalazarGonzalez:
		return "CapraraSalazarGonzalez"
	case SaxeGurariSudborough:
		return "SaxeGurariSudborough"
	case CuthillMcKeeTag:
		return "CuthillMcKee"
	case ReverseCuthillMcKeeTag:
		return "ReverseCuthillMcKee"
	case GibbsPooleStockmeyerTag:
		return "GibbsPooleStockmeyer"
	default:
		return "unknown solver tag"
	}
}

// Solver is the tagged-variant request passed to MinimizeBandwidth and
// HasBandwidthKOrdering. Only fields relevant to Tag are read:
// PerimeterDepth applies to DelCorsoManziniWithPS, Selector applies to the
// three heuristic tags.
type Solver struct {
	Tag SolverTag

	// PerimeterDepth is the DCM-PS lookahead depth. Zero selects
	// dcm.DefaultPerimeterDepth per component.
	PerimeterDepth int

	// Selector overrides the default pseudo-peripheral root choice for the
	// heuristic solvers. Nil selects levels.PseudoPeripheral.
	Selector levels.NodeSelector
}

// RequiresStructuralSymmetry reports whether this solver's tag demands a
// structurally symmetric input. Exact solvers measure bandwidth directly
// against the adjacency they search over and would silently search the
// wrong graph on an asymmetric input; the heuristic family tolerates
// asymmetry because it always symmetrizes internally first.
func (s Solver) RequiresStructuralSymmetry() bool {
	switch s.Tag {
	case BruteForceSearch, DelCorsoManzini, DelCorsoManziniWithPS:
		return true
	default:
		return false
	}
}

// BruteForce builds a Solver requesting the brute-force oracle.
func BruteForce() Solver { return Solver{Tag: BruteForceSearch} }

// DCM builds a Solver requesting exact Del Corso-Manzini search.
func DCM() Solver { return Solver{Tag: DelCorsoManzini} }

// DCMWithPS builds a Solver requesting DCM-PS with the given lookahead
// depth. depth <= 0 defers to dcm.DefaultPerimeterDepth per component.
func DCMWithPS(depth int) Solver { return Solver{Tag: DelCorsoManziniWithPS, PerimeterDepth: depth} }

// CuthillMcKee builds a Solver requesting the Cuthill-McKee heuristic. A nil
// selector defaults to levels.PseudoPeripheral.
func CuthillMcKee(selector levels.NodeSelector) Solver {
	return Solver{Tag: CuthillMcKeeTag, Selector: selector}
}

// ReverseCuthillMcKee builds a Solver requesting the Reverse Cuthill-McKee
// heuristic. A nil selector defaults to levels.PseudoPeripheral.
func ReverseCuthillMcKee(selector levels.NodeSelector) Solver {
	return Solver{Tag: ReverseCuthillMcKeeTag, Selector: selector}
}

// GibbsPooleStockmeyer builds a Solver requesting the GPS heuristic. A nil
// selector defaults to levels.PseudoPeripheral.
func GibbsPooleStockmeyer(selector levels.NodeSelector) Solver {
	return Solver{Tag: GibbsPooleStockmeyerTag, Selector: selector}
}

// Result is the outcome of MinimizeBandwidth: the matrix it was computed
// from, the achieved bandwidth, the permutation that achieves it, and the
// solver tag that produced it. Ordering[i] is the original row/column index
// placed at position i.
type Result struct {
	Input     matrix.Matrix
	Bandwidth int
	Ordering  []int
	Solver    SolverTag
}

// Recognition is the outcome of HasBandwidthKOrdering: whether an ordering
// of bandwidth <= k exists (as found by the given solver), and that
// ordering if so.
type Recognition struct {
	HasOrdering bool
	Ordering    []int
}

// Dimension selects which profile HasBandwidthKOrdering's sibling, Profile,
// computes.
type Dimension int

const (
	// ColumnProfile sums, over each column, the distance from the diagonal
	// to the topmost off-diagonal nonzero at or above it.
	ColumnProfile Dimension = iota

	// RowProfile sums, over each row, the distance from the diagonal to the
	// leftmost off-diagonal nonzero at or before it.
	RowProfile
)
