package posegraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slamtools/lago/posegraph"
)

const eps = 1e-9

// TestPose2_ComposeInverse verifies that p ∘ p⁻¹ is the identity for a
// representative set of poses, including headings beyond π.
func TestPose2_ComposeInverse(t *testing.T) {
	poses := []posegraph.Pose2{
		{},
		{X: 1, Y: 1, Theta: math.Pi / 2},
		{X: 0, Y: 2, Theta: math.Pi},
		{X: -1, Y: 1, Theta: 1.5 * math.Pi}, // wraps to -π/2
		{X: 3.5, Y: -2.25, Theta: -0.3},
	}
	for _, p := range poses {
		id := p.Compose(p.Inverse())
		assert.InDelta(t, 0, id.X, eps)
		assert.InDelta(t, 0, id.Y, eps)
		assert.InDelta(t, 0, id.Theta, eps)
	}
}

// TestPose2_BetweenNormalizesAngle verifies that Between reduces the relative
// heading to (-π, π], the range a relative-rotation sensor actually reports.
func TestPose2_BetweenNormalizesAngle(t *testing.T) {
	a := posegraph.NewPose2(0, 0, 0)
	b := posegraph.NewPose2(-1, 1, 1.5*math.Pi) // heading three quarter-turns

	rel := a.Between(b)
	assert.InDelta(t, -math.Pi/2, rel.Theta, eps) // 1.5π wraps to -π/2
	assert.InDelta(t, -1, rel.X, eps)
	assert.InDelta(t, 1, rel.Y, eps)
}

// TestPose2_BetweenComposeRoundTrip verifies a.Compose(a.Between(b)) == b,
// up to heading normalization.
func TestPose2_BetweenComposeRoundTrip(t *testing.T) {
	a := posegraph.NewPose2(1, 1, math.Pi/2)
	b := posegraph.NewPose2(0, 2, math.Pi)

	got := a.Compose(a.Between(b))
	assert.InDelta(t, b.X, got.X, eps)
	assert.InDelta(t, b.Y, got.Y, eps)
	assert.InDelta(t, b.Theta, got.Theta, eps)
}

// TestSigmas_Validation covers the noise-model constructors and accessors.
func TestSigmas_Validation(t *testing.T) {
	// Empty and non-positive inputs are rejected.
	_, err := posegraph.Sigmas()
	assert.ErrorIs(t, err, posegraph.ErrNilNoise)
	_, err = posegraph.Sigmas(0.1, 0, 0.1)
	assert.ErrorIs(t, err, posegraph.ErrBadSigma)
	_, err = posegraph.Isotropic(3, -1)
	assert.ErrorIs(t, err, posegraph.ErrBadSigma)
	_, err = posegraph.Isotropic(0, 0.1)
	assert.ErrorIs(t, err, posegraph.ErrBadSigma)

	// A valid model exposes its components by index.
	model, err := posegraph.Isotropic(3, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 3, model.Dim())
	s, err := model.Sigma(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, s, eps)

	// Out-of-range components are a sentinel, not a panic.
	_, err = model.Sigma(3)
	assert.ErrorIs(t, err, posegraph.ErrComponentRange)
	_, err = model.Sigma(-1)
	assert.ErrorIs(t, err, posegraph.ErrComponentRange)
}

// TestGraph_BuilderValidation covers reserved-key, self-edge and nil-noise
// rejection across the Add* builders.
func TestGraph_BuilderValidation(t *testing.T) {
	model, err := posegraph.Isotropic(3, 0.1)
	require.NoError(t, err)
	g := posegraph.NewGraph()

	// Self edges are meaningless for relative measurements.
	assert.ErrorIs(t, g.AddBetweenPose(1, 1, posegraph.Pose2{}, model), posegraph.ErrSelfEdge)

	// Reserved keys other than the anchor itself are rejected everywhere.
	reserved := posegraph.AnchorKey | 7
	assert.ErrorIs(t, g.AddBetweenPose(reserved, 1, posegraph.Pose2{}, model), posegraph.ErrReservedKey)
	assert.ErrorIs(t, g.AddBetweenRot(1, reserved, 0, model), posegraph.ErrReservedKey)
	assert.ErrorIs(t, g.AddPriorPose(reserved, posegraph.Pose2{}, model), posegraph.ErrReservedKey)
	assert.ErrorIs(t, g.AddPriorRot(reserved, 0, model), posegraph.ErrReservedKey)

	// The anchor key itself passes: the constraint filter appends anchored
	// between factors through the same builder.
	assert.NoError(t, g.AddBetweenPose(posegraph.AnchorKey, 1, posegraph.Pose2{}, model))

	// Nil noise is rejected before the factor is recorded.
	assert.ErrorIs(t, g.AddBetweenPose(1, 2, posegraph.Pose2{}, nil), posegraph.ErrNilNoise)
	assert.ErrorIs(t, g.AddPriorRot(1, 0, nil), posegraph.ErrNilNoise)

	// Only the one valid factor made it in.
	assert.Equal(t, 1, g.Len())
}

// TestGraph_OrderAndKeys verifies insertion-order factors and sorted keys.
func TestGraph_OrderAndKeys(t *testing.T) {
	model, err := posegraph.Isotropic(3, 0.1)
	require.NoError(t, err)

	g := posegraph.NewGraph()
	require.NoError(t, g.AddBetweenPose(3, 1, posegraph.Pose2{}, model))
	require.NoError(t, g.AddPriorRot(2, 0.5, model))
	g.AddUnsupported(9)
	require.NoError(t, g.AddBetweenRot(1, 2, 0.25, model))

	fs := g.Factors()
	require.Len(t, fs, 4)
	assert.Equal(t, posegraph.KindBetweenPose, fs[0].Kind)
	assert.Equal(t, posegraph.KindPriorRot, fs[1].Kind)
	assert.Equal(t, posegraph.KindUnsupported, fs[2].Kind)
	assert.Equal(t, posegraph.KindBetweenRot, fs[3].Kind)
	assert.Equal(t, []posegraph.Key{3, 1}, fs[0].Keys)

	// Keys are deduplicated and ascending.
	assert.Equal(t, []posegraph.Key{1, 2, 3, 9}, g.Keys())
}

// TestValues_KeysAndClone verifies deterministic iteration and deep-copy
// independence of the initial-guess container.
func TestValues_KeysAndClone(t *testing.T) {
	v := posegraph.Values{
		4: posegraph.NewPose2(1, 2, 0.5),
		1: posegraph.NewPose2(0, 0, 0),
	}
	assert.Equal(t, []posegraph.Key{1, 4}, v.Keys())

	c := v.Clone()
	c[1] = posegraph.NewPose2(9, 9, 9)
	assert.InDelta(t, 0, v[1].X, eps) // original untouched
}
