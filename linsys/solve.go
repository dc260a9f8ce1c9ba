// Package linsys: weighted least-squares solve over the assembled system.
package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/slamtools/lago/posegraph"
)

// Solve computes the weighted least-squares solution of the system,
// minimizing Σ ((Σ terms − rhs) / sigma)² over all equations.
//
// Steps:
//  1. Index unknowns in ascending key order.
//  2. Accumulate the normal equations A = GᵀWG and b = GᵀWr directly from
//     the sparse rows (at most two non-zeros each), with W = diag(1/σ²).
//  3. Solve A x = b with gonum; a rank-deficient A surfaces as ErrSingular.
//
// The solver is deterministic: a fixed system always yields the same map.
func Solve(s *System) (map[posegraph.Key]float64, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptySystem
	}

	// 1. Column index per unknown.
	unknowns := s.Unknowns()
	index := make(map[posegraph.Key]int, len(unknowns))
	for i, k := range unknowns {
		index[k] = i
	}
	n := len(unknowns)

	// 2. Normal equations, accumulated row by row. Each row touches at most
	// two columns, so the accumulation is O(m) rather than a dense GᵀG.
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for _, eq := range s.eqs {
		w := 1 / (eq.Sigma * eq.Sigma)
		for _, ti := range eq.Terms {
			i := index[ti.Unknown]
			b.SetVec(i, b.AtVec(i)+w*ti.Coeff*eq.RHS)
			for _, tj := range eq.Terms {
				j := index[tj.Unknown]
				a.Set(i, j, a.At(i, j)+w*ti.Coeff*tj.Coeff)
			}
		}
	}

	// 3. Dense solve of A x = b.
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("linsys: normal equations solve failed: %w", ErrSingular)
	}

	out := make(map[posegraph.Key]float64, n)
	for i, k := range unknowns {
		out[k] = x.AtVec(i)
	}

	return out, nil
}
