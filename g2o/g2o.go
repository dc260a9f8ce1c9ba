// Package g2o: reader and writer for 2D pose-graph datasets.
package g2o

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/slamtools/lago/posegraph"
)

// Sentinel errors for dataset parsing.
var (
	// ErrMalformedLine indicates a record with missing or unparsable fields.
	// Returned wrapped with the 1-based line number.
	ErrMalformedLine = errors.New("g2o: malformed record")

	// ErrNonDiagonalInfo indicates an edge whose information matrix has
	// non-zero off-diagonal entries; only diagonal uncertainty is
	// representable downstream.
	ErrNonDiagonalInfo = errors.New("g2o: information matrix is not diagonal")
)

// Dataset is one parsed g2o file: the measurement graph plus the per-vertex
// initial estimates.
type Dataset struct {
	Graph *posegraph.Graph
	Guess posegraph.Values
}

// Read parses a 2D g2o stream. Unknown record tags and comment lines are
// skipped; see the package documentation for the accepted records.
func Read(r io.Reader) (*Dataset, error) {
	ds := &Dataset{
		Graph: posegraph.NewGraph(),
		Guess: make(posegraph.Values),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var err error
		switch fields[0] {
		case "VERTEX_SE2":
			err = ds.readVertex(fields[1:])
		case "EDGE_SE2":
			err = ds.readEdge(fields[1:])
		default:
			// Landmarks, 3D records, FIX directives: not ours.
		}
		if err != nil {
			return nil, fmt.Errorf("g2o: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("g2o: read: %w", err)
	}

	return ds, nil
}

// readVertex parses "id x y theta" into the initial guess.
func (ds *Dataset) readVertex(fields []string) error {
	if len(fields) != 4 {
		return ErrMalformedLine
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return ErrMalformedLine
	}
	vals, err := parseFloats(fields[1:])
	if err != nil {
		return err
	}
	ds.Guess[posegraph.Key(id)] = posegraph.NewPose2(vals[0], vals[1], vals[2])

	return nil
}

// readEdge parses "i j dx dy dtheta i11 i12 i13 i22 i23 i33" into a
// relative-pose factor.
func (ds *Dataset) readEdge(fields []string) error {
	if len(fields) != 11 {
		return ErrMalformedLine
	}
	from, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return ErrMalformedLine
	}
	to, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return ErrMalformedLine
	}
	vals, err := parseFloats(fields[2:])
	if err != nil {
		return err
	}
	meas := posegraph.NewPose2(vals[0], vals[1], vals[2])

	// Upper triangle i11 i12 i13 i22 i23 i33.
	i11, i12, i13, i22, i23, i33 := vals[3], vals[4], vals[5], vals[6], vals[7], vals[8]
	if i12 != 0 || i13 != 0 || i23 != 0 {
		return ErrNonDiagonalInfo
	}
	if i11 <= 0 || i22 <= 0 || i33 <= 0 {
		return ErrMalformedLine
	}
	noise, err := posegraph.Sigmas(1/math.Sqrt(i11), 1/math.Sqrt(i22), 1/math.Sqrt(i33))
	if err != nil {
		return err
	}

	return ds.Graph.AddBetweenPose(posegraph.Key(from), posegraph.Key(to), meas, noise)
}

// parseFloats parses every field as a finite float64.
func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrMalformedLine
		}
		out[i] = v
	}

	return out, nil
}

// Write emits ds in g2o form: vertices in ascending key order, then the
// relative-pose factors in factor order. Factors without a g2o record
// (rotation-only, priors) are skipped.
func Write(w io.Writer, ds *Dataset) error {
	bw := bufio.NewWriter(w)
	for _, k := range ds.Guess.Keys() {
		p := ds.Guess[k]
		if _, err := fmt.Fprintf(bw, "VERTEX_SE2 %d %.6f %.6f %.6f\n", uint64(k), p.X, p.Y, p.Theta); err != nil {
			return fmt.Errorf("g2o: write: %w", err)
		}
	}
	for _, f := range ds.Graph.Factors() {
		if f.Kind != posegraph.KindBetweenPose {
			continue
		}
		sx, err := f.Noise.Sigma(0)
		if err != nil {
			return fmt.Errorf("g2o: write: %w", err)
		}
		sy, err := f.Noise.Sigma(1)
		if err != nil {
			return fmt.Errorf("g2o: write: %w", err)
		}
		st, err := f.Noise.Sigma(2)
		if err != nil {
			return fmt.Errorf("g2o: write: %w", err)
		}
		_, err = fmt.Fprintf(bw, "EDGE_SE2 %d %d %.6f %.6f %.6f %.6f 0 0 %.6f 0 %.6f\n",
			uint64(f.Keys[0]), uint64(f.Keys[1]),
			f.Meas.X, f.Meas.Y, f.Meas.Theta,
			1/(sx*sx), 1/(sy*sy), 1/(st*st))
		if err != nil {
			return fmt.Errorf("g2o: write: %w", err)
		}
	}

	return bw.Flush()
}
