// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math"
	"strconv"
)

// A Point is an immutable location in the plane. Two points are equal
// only when both coordinates are exactly equal, which is also what the
// == operator tests.
type Point struct {
	X float64
	Y float64
}

// Valid reports whether both of p's coordinates are finite. Only valid
// points may be inserted into, or used to query, a Tree.
func (p Point) Valid() bool {
	return finite(p.X) && finite(p.Y)
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// CompareX orders points by X coordinate, breaking ties by Y
// coordinate. It returns -1, 0 or +1.
func (p Point) CompareX(q Point) int {
	if c := compare(p.X, q.X); c != 0 {
		return c
	}
	return compare(p.Y, q.Y)
}

// CompareY orders points by Y coordinate, breaking ties by X
// coordinate. It returns -1, 0 or +1.
func (p Point) CompareY(q Point) int {
	if c := compare(p.Y, q.Y); c != 0 {
		return c
	}
	return compare(p.X, q.X)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(q))
}

// DistanceSquaredTo returns the square of the Euclidean distance
// between p and q.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// String returns a compact representation of p, for example "[0.2,0.3]".
func (p Point) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '[')
	b = appendFloat(b, p.X)
	b = append(b, ',')
	b = appendFloat(b, p.Y)
	b = append(b, ']')
	return string(b)
}

func validatePoint(p Point) {
	if !p.Valid() {
		fmtPanic("invalid point %s (coordinates must be finite)", p)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func appendFloat(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'g', 8, 64)
}
