// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import "fmt"

// A node is a single point stored in the Tree. Its region is the part
// of the unit square its subtree is responsible for; the region of
// left lies on the lesser side of point along the node's splitting
// axis and the region of right lies on the greater-or-equal side.
//
// A node's point and region never change once it is created. Only its
// child pointers are ever filled in.
type node struct {
	point       Point
	region      Rect
	left, right *node
}

// Tree is a two-dimensional kd-tree of distinct points.
//
// The zero value is an empty Tree ready to use. A Tree is not safe for
// concurrent use if any goroutine may call Insert; callers needing a
// concurrent writer should guard the Tree with a sync.RWMutex.
type Tree struct {
	root *node
	size int
}

// New creates a new empty Tree.
func New() *Tree {
	return &Tree{}
}

// Size returns the number of distinct points stored in the Tree.
func (t *Tree) Size() int {
	return t.size
}

// IsEmpty reports whether the Tree contains no points.
func (t *Tree) IsEmpty() bool {
	return t.size == 0
}

// String returns a summary description of the Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{Size:%d}", t.size)
}

// Insert adds p to the Tree unless an equal point is already present,
// and reports whether p was added. Panics, without modifying the Tree,
// if either of p's coordinates is NaN or infinite.
//
// Starting at the root, which splits on the X axis, p descends into the
// lesser child when its coordinate on the node's splitting axis is
// strictly less than the node's, and into the greater-or-equal child
// otherwise. The splitting axis alternates at each level.
func (t *Tree) Insert(p Point) bool {
	validatePoint(p)

	if t.root == nil {
		t.root = t.create(p, UnitSquare)
		return true
	}

	n, axis := t.root, XAxis
	for {
		if n.point == p {
			return false
		}
		if axis.less(p, n.point) {
			if n.left == nil {
				n.left = t.create(p, n.region.lower(n.point, axis))
				return true
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = t.create(p, n.region.upper(n.point, axis))
				return true
			}
			n = n.right
		}
		axis = axis.Next()
	}
}

func (t *Tree) create(p Point, region Rect) *node {
	t.size++
	return &node{point: p, region: region}
}

// Contains reports whether the Tree contains a point equal to p.
// Panics if either of p's coordinates is NaN or infinite.
//
// Contains follows the single path from the root that Insert would
// have taken when inserting p, so it visits at most one node per level.
func (t *Tree) Contains(p Point) bool {
	validatePoint(p)

	n, axis := t.root, XAxis
	for n != nil {
		if n.point == p {
			return true
		}
		if axis.less(p, n.point) {
			n = n.left
		} else {
			n = n.right
		}
		axis = axis.Next()
	}
	return false
}

// Range returns all points in the Tree lying inside r or on its
// boundary. The order of the results is not defined, and the result is
// an empty, non-nil slice if no points match, including when the Tree
// is empty. Panics if r is not a valid rectangle.
func (t *Tree) Range(r Rect) Points {
	validateRect(r)

	ps := make(Points, 0)
	rangeSearch(t.root, r, &ps)
	return ps
}

// rangeSearch appends to ps every point in the subtree rooted at n
// which r contains, skipping any subtree whose region does not
// intersect r.
func rangeSearch(n *node, r Rect, ps *Points) {
	if n == nil || !n.region.Intersects(r) {
		return
	}
	if r.Contains(n.point) {
		*ps = append(*ps, n.point)
	}
	rangeSearch(n.left, r, ps)
	rangeSearch(n.right, r, ps)
}

// Nearest returns the point in the Tree closest to p by Euclidean
// distance. The second return value is false if the Tree is empty.
// Panics if either of p's coordinates is NaN or infinite.
//
// When several points are equally close to p, the one returned depends
// on the shape of the tree, but is deterministic for a given shape.
func (t *Tree) Nearest(p Point) (Point, bool) {
	validatePoint(p)

	if t.root == nil {
		return Point{}, false
	}

	best := t.root.point
	bestDist := p.DistanceSquaredTo(best)
	nearest(t.root, XAxis, p, &best, &bestDist)
	return best, true
}

// nearest searches the subtree rooted at n for a point strictly closer
// to p than *best, whose squared distance to p is *bestDist.
//
// The child on p's side of the splitting line is searched first, since
// it is most likely to tighten *bestDist and allow the other child to
// be pruned. A child is only searched if its region is strictly closer
// to p than the best point found so far.
func nearest(n *node, axis Axis, p Point, best *Point, bestDist *float64) {
	if d := p.DistanceSquaredTo(n.point); d < *bestDist {
		*best, *bestDist = n.point, d
	}

	near, far := n.right, n.left
	if axis.less(p, n.point) {
		near, far = n.left, n.right
	}

	next := axis.Next()
	if near != nil && near.region.DistanceSquaredTo(p) < *bestDist {
		nearest(near, next, p, best, bestDist)
	}
	if far != nil && far.region.DistanceSquaredTo(p) < *bestDist {
		nearest(far, next, p, best, bestDist)
	}
}
