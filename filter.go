// Package lago: constraint filter, stage 1 of the pipeline.
package lago

import "github.com/slamtools/lago/posegraph"

// ExtractPoseGraph returns a new graph holding only the factors the
// initializer can use, in the original factor order:
//
//   - relative pose/rotation factors pass through unchanged;
//   - each absolute prior becomes a relative factor from the anchor variable
//     to the constrained variable, with the same measurement and noise;
//     multiple priors convert independently, the spanning tree later decides
//     which of them survive as tree edges versus chords;
//   - every other factor kind is dropped silently.
//
// The input graph is not modified.
func ExtractPoseGraph(graph *posegraph.Graph) (*posegraph.Graph, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	out := posegraph.NewGraph()
	for _, f := range graph.Factors() {
		var err error
		switch f.Kind {
		case posegraph.KindBetweenPose:
			err = out.AddBetweenPose(f.Keys[0], f.Keys[1], f.Meas, f.Noise)
		case posegraph.KindBetweenRot:
			err = out.AddBetweenRot(f.Keys[0], f.Keys[1], f.Meas.Theta, f.Noise)
		case posegraph.KindPriorPose:
			err = out.AddBetweenPose(posegraph.AnchorKey, f.Keys[0], f.Meas, f.Noise)
		case posegraph.KindPriorRot:
			err = out.AddBetweenRot(posegraph.AnchorKey, f.Keys[0], f.Meas.Theta, f.Noise)
		default:
			// Not expressible as a planar relative constraint: drop.
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// hasAnchor reports whether any factor of graph touches the anchor variable,
// i.e. whether the filter converted at least one prior.
func hasAnchor(graph *posegraph.Graph) bool {
	for _, f := range graph.Factors() {
		for _, k := range f.Keys {
			if k == posegraph.AnchorKey {
				return true
			}
		}
	}

	return false
}
