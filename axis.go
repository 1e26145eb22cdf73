// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import "strconv"

// Axis identifies the coordinate a tree node splits the plane on.
type Axis uint8

const (
	// XAxis splits the plane with a vertical line through the node's
	// point. Nodes at even depths, including the root, use XAxis.
	XAxis Axis = iota
	// YAxis splits the plane with a horizontal line through the node's
	// point. Nodes at odd depths use YAxis.
	YAxis
)

// Next returns the splitting axis used one level deeper in the tree.
func (a Axis) Next() Axis {
	return a ^ 1
}

// String returns "X" or "Y".
func (a Axis) String() string {
	switch a {
	case XAxis:
		return "X"
	case YAxis:
		return "Y"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}

// coord returns p's coordinate on axis a.
func (a Axis) coord(p Point) float64 {
	if a == XAxis {
		return p.X
	}
	return p.Y
}

// less reports whether p lies strictly on the lesser side of the line
// splitting the plane at q along axis a. Points on the line itself
// belong to the greater-or-equal side.
func (a Axis) less(p, q Point) bool {
	return a.coord(p) < a.coord(q)
}
