// Package posegraph: the initial-guess container.
package posegraph

import "sort"

// Values maps variable keys to pose estimates. It is the initial-guess input
// and the merged output of the orientation initializer.
type Values map[Key]Pose2

// Keys returns the keys in ascending order, for deterministic iteration.
func (v Values) Keys() []Key {
	out := make([]Key, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, p := range v {
		out[k] = p
	}

	return out
}
