// Package linsys: equation and system containers plus sentinel errors.
package linsys

import (
	"errors"
	"sort"

	"github.com/slamtools/lago/posegraph"
)

// Sentinel errors for system assembly and solving.
var (
	// ErrBadEquation indicates an equation with no terms, more than two
	// terms, a zero coefficient, or a non-positive sigma.
	ErrBadEquation = errors.New("linsys: malformed equation")

	// ErrEmptySystem indicates Solve was called on a system with no
	// equations.
	ErrEmptySystem = errors.New("linsys: system has no equations")

	// ErrSingular indicates the normal equations are rank deficient and no
	// unique least-squares solution exists.
	ErrSingular = errors.New("linsys: singular system")
)

// Term is one coefficient on one unknown.
type Term struct {
	// Unknown identifies the scalar variable this term multiplies.
	Unknown posegraph.Key

	// Coeff is the coefficient; always non-zero in a valid equation.
	Coeff float64
}

// Equation is one weighted scalar equation: sum of Terms equals RHS, with
// measurement standard deviation Sigma.
type Equation struct {
	Terms []Term
	RHS   float64
	Sigma float64
}

// Between builds the difference equation x_b − x_a = rhs with standard
// deviation sigma: the shape of every relative-rotation measurement.
func Between(a, b posegraph.Key, rhs, sigma float64) Equation {
	return Equation{
		Terms: []Term{{Unknown: a, Coeff: -1}, {Unknown: b, Coeff: +1}},
		RHS:   rhs,
		Sigma: sigma,
	}
}

// Anchor builds the single-unknown equation x_k = rhs with standard
// deviation sigma: the shape of the gauge-fixing prior.
func Anchor(k posegraph.Key, rhs, sigma float64) Equation {
	return Equation{
		Terms: []Term{{Unknown: k, Coeff: +1}},
		RHS:   rhs,
		Sigma: sigma,
	}
}

// System is an ordered list of equations over a shared unknown set.
// The zero value is ready to use.
type System struct {
	eqs []Equation
}

// Append validates eq and adds it to the system.
// Returns ErrBadEquation on a malformed equation; the system is unchanged.
func (s *System) Append(eq Equation) error {
	if len(eq.Terms) == 0 || len(eq.Terms) > 2 || eq.Sigma <= 0 {
		return ErrBadEquation
	}
	for _, t := range eq.Terms {
		if t.Coeff == 0 {
			return ErrBadEquation
		}
	}
	s.eqs = append(s.eqs, eq)

	return nil
}

// Len returns the number of equations.
func (s *System) Len() int { return len(s.eqs) }

// Equations returns the equations in append order. The slice is a copy.
func (s *System) Equations() []Equation {
	out := make([]Equation, len(s.eqs))
	copy(out, s.eqs)

	return out
}

// Unknowns returns the sorted set of unknowns referenced by any equation.
// This ordering defines the column indexing used by Solve.
func (s *System) Unknowns() []posegraph.Key {
	seen := make(map[posegraph.Key]struct{})
	for _, eq := range s.eqs {
		for _, t := range eq.Terms {
			seen[t.Unknown] = struct{}{}
		}
	}
	out := make([]posegraph.Key, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
