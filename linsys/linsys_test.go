package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slamtools/lago/linsys"
	"github.com/slamtools/lago/posegraph"
)

const eps = 1e-9

// TestAppend_Validation rejects malformed equations without mutating the
// system.
func TestAppend_Validation(t *testing.T) {
	var s linsys.System

	assert.ErrorIs(t, s.Append(linsys.Equation{}), linsys.ErrBadEquation)
	assert.ErrorIs(t, s.Append(linsys.Equation{
		Terms: []linsys.Term{{Unknown: 1, Coeff: 1}},
		Sigma: 0, // non-positive sigma
	}), linsys.ErrBadEquation)
	assert.ErrorIs(t, s.Append(linsys.Equation{
		Terms: []linsys.Term{{Unknown: 1, Coeff: 0}}, // zero coefficient
		Sigma: 0.1,
	}), linsys.ErrBadEquation)
	assert.ErrorIs(t, s.Append(linsys.Equation{
		Terms: []linsys.Term{{Unknown: 1, Coeff: 1}, {Unknown: 2, Coeff: 1}, {Unknown: 3, Coeff: 1}},
		Sigma: 0.1,
	}), linsys.ErrBadEquation)

	assert.Zero(t, s.Len())
}

// TestSolve_Empty verifies the empty-system sentinel.
func TestSolve_Empty(t *testing.T) {
	_, err := linsys.Solve(nil)
	assert.ErrorIs(t, err, linsys.ErrEmptySystem)
	_, err = linsys.Solve(&linsys.System{})
	assert.ErrorIs(t, err, linsys.ErrEmptySystem)
}

// TestSolve_Chain solves an exactly determined anchored difference chain:
// x0 = 0, x1 − x0 = 1, x2 − x1 = 2 → x = (0, 1, 3).
func TestSolve_Chain(t *testing.T) {
	var s linsys.System
	require.NoError(t, s.Append(linsys.Between(0, 1, 1, 0.1)))
	require.NoError(t, s.Append(linsys.Between(1, 2, 2, 0.1)))
	require.NoError(t, s.Append(linsys.Anchor(0, 0, 1e-4)))

	assert.Equal(t, []posegraph.Key{0, 1, 2}, s.Unknowns())

	x, err := linsys.Solve(&s)
	require.NoError(t, err)
	assert.InDelta(t, 0, x[0], 1e-6)
	assert.InDelta(t, 1, x[1], 1e-6)
	assert.InDelta(t, 3, x[2], 1e-6)
}

// TestSolve_WeightedRedundancy verifies that weights steer an
// overdetermined system: two conflicting measurements of the same
// difference combine by inverse variance.
func TestSolve_WeightedRedundancy(t *testing.T) {
	var s linsys.System
	require.NoError(t, s.Append(linsys.Anchor(0, 0, 1e-4)))
	// Sigma 0.1 carries 100x the weight of sigma 1.0.
	require.NoError(t, s.Append(linsys.Between(0, 1, 1.0, 0.1)))
	require.NoError(t, s.Append(linsys.Between(0, 1, 2.0, 1.0)))

	x, err := linsys.Solve(&s)
	require.NoError(t, err)
	// Inverse-variance combination: (100·1 + 1·2) / 101.
	assert.InDelta(t, 102.0/101.0, x[1], 1e-6)
}

// TestSolve_UnanchoredIsSingular verifies that a pure difference system,
// which fixes only relative values, is reported as singular.
func TestSolve_UnanchoredIsSingular(t *testing.T) {
	var s linsys.System
	require.NoError(t, s.Append(linsys.Between(0, 1, 1, 0.1)))
	require.NoError(t, s.Append(linsys.Between(1, 2, 1, 0.1)))

	_, err := linsys.Solve(&s)
	assert.ErrorIs(t, err, linsys.ErrSingular)
}

// TestSolve_Deterministic verifies repeated solves agree bit for bit.
func TestSolve_Deterministic(t *testing.T) {
	var s linsys.System
	require.NoError(t, s.Append(linsys.Anchor(3, 0.5, 1e-4)))
	require.NoError(t, s.Append(linsys.Between(3, 7, 0.25, 0.2)))
	require.NoError(t, s.Append(linsys.Between(7, 9, -1.5, 0.3)))
	require.NoError(t, s.Append(linsys.Between(3, 9, -1.2, 0.4)))

	first, err := linsys.Solve(&s)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := linsys.Solve(&s)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
