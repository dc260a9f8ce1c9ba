// Package g2o reads and writes the 2D subset of the g2o text format, the
// de-facto interchange format for pose-graph SLAM datasets.
//
// Supported records
//
//	VERTEX_SE2 id x y theta
//	    One pose variable with its estimate; collected into the dataset's
//	    initial guess.
//
//	EDGE_SE2 i j dx dy dtheta i11 i12 i13 i22 i23 i33
//	    One relative-pose measurement from vertex i to vertex j. The six
//	    trailing numbers are the upper triangle of the 3×3 information
//	    matrix. Only diagonal information is representable downstream, so
//	    non-zero off-diagonal entries are rejected with ErrNonDiagonalInfo;
//	    per-component sigmas are 1/√i_kk.
//
// Lines starting with '#' and record tags the reader does not recognize are
// skipped silently, mirroring the initializer's drop-unknown-constraints
// policy. Malformed numeric fields fail with ErrMalformedLine, wrapped with
// the 1-based line number.
//
// Write emits vertices in ascending key order followed by relative-pose
// factors in factor order; rotation-only and prior factors have no standard
// g2o record and are skipped.
package g2o
