package lago_test

import (
	"fmt"
	"math"

	"github.com/slamtools/lago"
	"github.com/slamtools/lago/posegraph"
	"github.com/slamtools/lago/spantree"
)

// ExampleRegularizeChord shows a chord measurement being re-expressed in the
// unwrapped tree frame: the cycle it closes carries one full extra turn, so
// one turn is subtracted from the raw measurement.
func ExampleRegularizeChord() {
	theta := math.Pi / 2 // raw relative-rotation measurement a→b
	orientA := 2 * math.Pi
	orientB := 0.0

	fmt.Printf("%.4f\n", lago.RegularizeChord(theta, orientA, orientB))
	// Output: -4.7124
}

// ExamplePartition classifies the factors of a square pose graph against its
// spanning tree: the loop-closing measurements become chords.
func ExamplePartition() {
	model, _ := posegraph.Isotropic(1, 0.1)
	g := posegraph.NewGraph()
	// A 4-cycle of quarter turns, plus one diagonal.
	g.AddBetweenRot(0, 1, math.Pi/2, model)
	g.AddBetweenRot(1, 2, math.Pi/2, model)
	g.AddBetweenRot(2, 3, math.Pi/2, model)
	g.AddBetweenRot(3, 0, math.Pi/2, model)
	g.AddBetweenRot(0, 2, math.Pi, model)

	tree, _ := spantree.Build(g, 0)
	treeIDs, chordIDs, _ := lago.Partition(g, tree)

	fmt.Printf("tree edges: %d, chords: %d\n", len(treeIDs), len(chordIDs))
	// Output: tree edges: 3, chords: 2
}
