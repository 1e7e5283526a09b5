// Package rv: Space arena, node kinds, and constructors.
// Moment evaluation lives in moments.go, the covariance engine in
// covariance.go, the scalar max-moment helpers in maxmoments.go, and the
// symbolic μ/σ views in symbolic.go.

package rv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ssta/expr"
)

// MinVariance is the positive floor applied to every observable variance.
// It keeps correlations finite for deterministic signals (primary inputs,
// const delays) and bounds drift-clamping decisions.
const MinVariance = 1e-6

// ID addresses a node inside its Space. IDs are dense, stable, and only
// meaningful together with the Space that issued them.
type ID int

// None is the sentinel for "no node"; the zero ID is a valid node.
const None ID = -1

// Kind tags the five node variants of the algebra.
type Kind uint8

const (
	// KindNormal is a Gaussian leaf N(μ, σ²).
	KindNormal Kind = iota

	// KindAdd is left + right.
	KindAdd

	// KindSub is left - right.
	KindSub

	// KindMax is max(left, right), carrying its Max0(right-left) helper.
	KindMax

	// KindMax0 is max(left, 0).
	KindMax0
)

// String returns a short tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindAdd:
		return "add"
	case KindSub:
		return "sub"
	case KindMax:
		return "max"
	case KindMax0:
		return "max0"
	default:
		return "?"
	}
}

// node is one arena slot. left/right/max0 reference children by ID; Normal
// leaves keep their parameters in mu/sigma2 and own the two expression
// variables sensitivity reads gradients from.
type node struct {
	kind  Kind
	name  string
	level int

	left  ID
	right ID
	max0  ID

	// Normal parameters (leaves only).
	mu     float64
	sigma2 float64

	// Lazy numeric moments.
	mean    float64
	meanSet bool
	varr    float64
	varSet  bool

	// Normal leaves: the mutable μ and σ variables.
	muVar    *expr.Expr
	sigmaVar *expr.Expr

	// Lazy symbolic moments (all kinds).
	meanExpr *expr.Expr
	stdExpr  *expr.Expr
}

// pair is an unordered ID pair, the covariance cache key.
type pair struct{ lo, hi ID }

func pairOf(a, b ID) pair {
	if a > b {
		a, b = b, a
	}

	return pair{lo: a, hi: b}
}

// Space is the arena every node of one analysis lives in.
//
// It owns the covariance cache and the shared expression graph; passing a
// *Space explicitly replaces the process-wide singletons a naive port
// would carry. All methods are single-threaded.
type Space struct {
	nodes []node
	cov   map[pair]float64
	graph *expr.Graph
}

// NewSpace creates an empty arena with its own expression graph.
// Complexity: O(1)
func NewSpace() *Space {
	return &Space{
		cov:   make(map[pair]float64),
		graph: expr.NewGraph(),
	}
}

// Graph exposes the expression graph shared by every node's symbolic
// moments; sensitivity analysis needs it for ZeroAllGrad.
func (s *Space) Graph() *expr.Graph { return s.graph }

// Len reports the number of nodes in the arena.
func (s *Space) Len() int { return len(s.nodes) }

// node returns the slot for id; an out-of-range id is a programmer error.
func (s *Space) node(id ID) *node {
	if id < 0 || int(id) >= len(s.nodes) {
		panic(fmt.Sprintf("rv: invalid node id %d", id))
	}

	return &s.nodes[int(id)]
}

func (s *Space) push(n node) ID {
	s.nodes = append(s.nodes, n)

	return ID(len(s.nodes) - 1)
}

// Normal creates a Gaussian leaf N(mean, variance).
//
// A variance below MinVariance (including exactly 0, the "const" delay
// case) is clamped up to MinVariance; a negative variance or a NaN
// parameter is rejected. Two Normals created separately are independent.
func (s *Space) Normal(mean, variance float64) (ID, error) {
	if math.IsNaN(mean) || math.IsNaN(variance) {
		return None, fmt.Errorf("Normal(%g, %g): %w", mean, variance, ErrNumericInstability)
	}
	if variance < 0.0 {
		return None, fmt.Errorf("Normal(%g, %g): %w", mean, variance, ErrNegativeVariance)
	}
	if variance < MinVariance {
		variance = MinVariance
	}

	muVar := s.graph.Variable()
	if err := muVar.Set(mean); err != nil {
		return None, err
	}
	sigmaVar := s.graph.Variable()
	if err := sigmaVar.Set(math.Sqrt(variance)); err != nil {
		return None, err
	}

	return s.push(node{
		kind:     KindNormal,
		left:     None,
		right:    None,
		max0:     None,
		mu:       mean,
		sigma2:   variance,
		muVar:    muVar,
		sigmaVar: sigmaVar,
	}), nil
}

// Clone duplicates a Normal leaf into a fresh, independent ID with its own
// expression variables. Any other kind returns ErrNotCloneable.
func (s *Space) Clone(id ID) (ID, error) {
	n := s.node(id)
	if n.kind != KindNormal {
		return None, fmt.Errorf("clone of %s node: %w", n.kind, ErrNotCloneable)
	}

	return s.Normal(n.mu, n.sigma2)
}

// Add returns the node left + right.
func (s *Space) Add(left, right ID) ID {
	lvl := max(s.node(left).level, s.node(right).level)

	return s.push(node{kind: KindAdd, left: left, right: right, max0: None, level: lvl})
}

// Sub returns the node left - right.
func (s *Space) Sub(left, right ID) ID {
	lvl := max(s.node(left).level, s.node(right).level)

	return s.push(node{kind: KindSub, left: left, right: right, max0: None, level: lvl})
}

// Max returns the node max(left, right).
//
// The decomposition MAX(a,b) = a + MAX0(b-a) is materialized eagerly: the
// Max node owns a Max0(right-left) helper child that both the moment
// formulas and the covariance engine traverse.
func (s *Space) Max(left, right ID) ID {
	z := s.Max0(s.Sub(right, left))
	lvl := max(s.node(left).level, s.node(right).level) + 1

	return s.push(node{kind: KindMax, left: left, right: right, max0: z, level: lvl})
}

// Max0 returns the node max(left, 0).
func (s *Space) Max0(left ID) ID {
	lvl := s.node(left).level + 1

	return s.push(node{kind: KindMax0, left: left, right: None, max0: None, level: lvl})
}

// Kind reports the node's variant.
func (s *Space) Kind(id ID) Kind { return s.node(id).kind }

// Level reports the node's Max/Max0 nesting depth.
func (s *Space) Level(id ID) int { return s.node(id).level }

// Left returns the node's first child (None for Normal leaves).
func (s *Space) Left(id ID) ID { return s.node(id).left }

// Right returns the node's second child (None for unary kinds).
func (s *Space) Right(id ID) ID { return s.node(id).right }

// Max0Child returns a Max node's helper child, None for other kinds.
func (s *Space) Max0Child(id ID) ID { return s.node(id).max0 }

// Name returns the reporting name installed by the circuit builder.
func (s *Space) Name(id ID) string { return s.node(id).name }

// SetName installs the reporting name for id.
func (s *Space) SetName(id ID, name string) { s.node(id).name = name }

// MuVar returns the μ expression variable of a Normal leaf, nil otherwise.
// Sensitivity analysis reads ∂F/∂μ from its Gradient after a backward pass.
func (s *Space) MuVar(id ID) *expr.Expr {
	n := s.node(id)
	if n.kind != KindNormal {
		return nil
	}

	return n.muVar
}

// SigmaVar returns the σ expression variable of a Normal leaf, nil
// otherwise.
func (s *Space) SigmaVar(id ID) *expr.Expr {
	n := s.node(id)
	if n.kind != KindNormal {
		return nil
	}

	return n.sigmaVar
}
