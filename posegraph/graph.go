// Package posegraph: the ordered factor container and its append-only builder.
package posegraph

import "sort"

// Graph is an ordered, append-only list of factors. Factor order is insertion
// order; downstream stages rely on it for deterministic partitioning.
type Graph struct {
	factors []Factor
}

// NewGraph returns an empty graph.
func NewGraph() *Graph { return &Graph{} }

// validateBinary checks the shared preconditions of two-key factors.
// The anchor key itself is admitted (the constraint filter appends anchored
// between factors through this same path); any other reserved key is not.
func validateBinary(k1, k2 Key, noise *Diagonal) error {
	if k1 == k2 {
		return ErrSelfEdge
	}
	if (k1.Reserved() && k1 != AnchorKey) || (k2.Reserved() && k2 != AnchorKey) {
		return ErrReservedKey
	}
	if noise == nil {
		return ErrNilNoise
	}

	return nil
}

// AddBetweenPose appends a relative full-pose factor: meas is the pose of k2
// expressed in k1's frame.
func (g *Graph) AddBetweenPose(k1, k2 Key, meas Pose2, noise *Diagonal) error {
	if err := validateBinary(k1, k2, noise); err != nil {
		return err
	}
	g.factors = append(g.factors, Factor{
		Kind:  KindBetweenPose,
		Keys:  []Key{k1, k2},
		Meas:  meas,
		Noise: noise,
	})

	return nil
}

// AddBetweenRot appends a relative rotation-only factor: theta is the
// rotation from k1's frame to k2's frame.
func (g *Graph) AddBetweenRot(k1, k2 Key, theta float64, noise *Diagonal) error {
	if err := validateBinary(k1, k2, noise); err != nil {
		return err
	}
	g.factors = append(g.factors, Factor{
		Kind:  KindBetweenRot,
		Keys:  []Key{k1, k2},
		Meas:  Pose2{Theta: theta},
		Noise: noise,
	})

	return nil
}

// AddPriorPose appends an absolute full-pose factor on k.
func (g *Graph) AddPriorPose(k Key, meas Pose2, noise *Diagonal) error {
	if k.Reserved() {
		return ErrReservedKey
	}
	if noise == nil {
		return ErrNilNoise
	}
	g.factors = append(g.factors, Factor{
		Kind:  KindPriorPose,
		Keys:  []Key{k},
		Meas:  meas,
		Noise: noise,
	})

	return nil
}

// AddPriorRot appends an absolute rotation-only factor on k.
func (g *Graph) AddPriorRot(k Key, theta float64, noise *Diagonal) error {
	if k.Reserved() {
		return ErrReservedKey
	}
	if noise == nil {
		return ErrNilNoise
	}
	g.factors = append(g.factors, Factor{
		Kind:  KindPriorRot,
		Keys:  []Key{k},
		Meas:  Pose2{Theta: theta},
		Noise: noise,
	})

	return nil
}

// AddUnsupported appends a placeholder for a measurement kind the initializer
// cannot interpret. The constraint filter drops it silently; carrying it in
// the container keeps factor indices aligned with the caller's full graph.
func (g *Graph) AddUnsupported(keys ...Key) {
	own := make([]Key, len(keys))
	copy(own, keys)
	g.factors = append(g.factors, Factor{Kind: KindUnsupported, Keys: own})
}

// Len returns the number of factors.
func (g *Graph) Len() int { return len(g.factors) }

// Factors returns the factor list in insertion order. The slice is a copy;
// the factors themselves share noise-model pointers with the graph.
func (g *Graph) Factors() []Factor {
	out := make([]Factor, len(g.factors))
	copy(out, g.factors)

	return out
}

// Keys returns the sorted, deduplicated set of keys touched by any factor.
func (g *Graph) Keys() []Key {
	seen := make(map[Key]struct{})
	for _, f := range g.factors {
		for _, k := range f.Keys {
			seen[k] = struct{}{}
		}
	}
	out := make([]Key, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
