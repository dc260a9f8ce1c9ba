// Package posegraph: diagonal measurement-noise models.
package posegraph

// Diagonal is a diagonal Gaussian noise model given by per-component standard
// deviations. Non-diagonal uncertainty is unrepresentable on purpose: the
// orientation initializer needs a scalar sigma per equation, and rejecting
// correlated models at the type level keeps that failure mode out of the
// numeric pipeline.
type Diagonal struct {
	sigmas []float64
}

// Sigmas builds a diagonal noise model from per-component standard
// deviations. Returns ErrBadSigma if any entry is <= 0, ErrNilNoise if no
// entries are given.
func Sigmas(sigmas ...float64) (*Diagonal, error) {
	if len(sigmas) == 0 {
		return nil, ErrNilNoise
	}
	for _, s := range sigmas {
		if s <= 0 {
			return nil, ErrBadSigma
		}
	}

	// Copy to decouple the model from the caller's slice.
	own := make([]float64, len(sigmas))
	copy(own, sigmas)

	return &Diagonal{sigmas: own}, nil
}

// Isotropic builds a dim-component model with the same sigma on every
// component. Returns ErrBadSigma for sigma <= 0 or dim <= 0.
func Isotropic(dim int, sigma float64) (*Diagonal, error) {
	if dim <= 0 || sigma <= 0 {
		return nil, ErrBadSigma
	}
	sigmas := make([]float64, dim)
	for i := range sigmas {
		sigmas[i] = sigma
	}

	return &Diagonal{sigmas: sigmas}, nil
}

// Dim returns the number of components.
func (d *Diagonal) Dim() int { return len(d.sigmas) }

// Sigma returns the standard deviation of component i.
// Returns ErrComponentRange when i is outside [0, Dim).
func (d *Diagonal) Sigma(i int) (float64, error) {
	if i < 0 || i >= len(d.sigmas) {
		return 0, ErrComponentRange
	}

	return d.sigmas[i], nil
}
