package mapping

// Mode selects the target lattice and weighting regime.
type Mode int

const (
	// KSGUnweighted targets the 8-connected King's-subgraph lattice with
	// unit node weights; copy-line overhead is floor(count/2).
	KSGUnweighted Mode = iota
	// KSGWeighted targets the King's-subgraph lattice with weighted
	// nodes; copy-line overhead is 2x the unweighted figure.
	KSGWeighted
	// TriangularWeighted targets the triangular lattice with weighted
	// nodes and the closed-form copy-line overhead of §4.2.
	TriangularWeighted
)

func (m Mode) String() string {
	switch m {
	case KSGUnweighted:
		return "ksg-unweighted"
	case KSGWeighted:
		return "ksg-weighted"
	case TriangularWeighted:
		return "triangular-weighted"
	default:
		return "unknown"
	}
}

func (m Mode) spacing() int {
	if m == TriangularWeighted {
		return 6
	}
	return 4
}

const defaultPadding = 2

func (m Mode) triangular() bool { return m == TriangularWeighted }
