// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import "sort"

// Build creates a new Tree containing the given points. Duplicate
// points are stored once, exactly as if each point had been passed to
// Insert. The input slice is not modified. Panics, before inserting
// anything, if any point has a NaN or infinite coordinate.
//
// Build inserts the points median-first along alternating axes, so the
// resulting Tree is roughly balanced regardless of the input order.
// Searches on a tree built from n points in one go are therefore
// O(log n) deep, where a Tree grown one sorted point at a time may
// degrade to a linked list.
func Build(points []Point) *Tree {
	for i := range points {
		validatePoint(points[i])
	}

	ps := make(Points, len(points))
	copy(ps, points)

	t := New()
	insertMedians(t, ps, XAxis)
	return t
}

// insertMedians inserts the median of ps along axis, then recursively
// inserts the medians of the points on either side along the next
// axis. ps is reordered in place.
//
// The median is moved down to the first of any run of points sharing
// its coordinate, so every point before it is strictly less on axis
// and will descend into the median's lesser subtree, and every point
// after it will descend into the greater-or-equal subtree.
func insertMedians(t *Tree, ps Points, axis Axis) {
	if len(ps) == 0 {
		return
	}

	if axis == XAxis {
		sort.Sort(ps)
	} else {
		sort.Sort(byY{ps})
	}

	m := len(ps) / 2
	for m > 0 && axis.coord(ps[m-1]) == axis.coord(ps[m]) {
		m--
	}

	t.Insert(ps[m])
	insertMedians(t, ps[:m], axis.Next())
	insertMedians(t, ps[m+1:], axis.Next())
}

// byY sorts Points in ascending order of Y coordinate, with ties broken
// by X coordinate.
type byY struct {
	Points
}

func (b byY) Less(i, j int) bool {
	return b.Points[i].CompareY(b.Points[j]) < 0
}
