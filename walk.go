// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

// A Visit describes one node of a Tree as seen by Do.
type Visit struct {
	// Point is the point stored at the node.
	Point Point
	// Region is the part of the unit square the node's subtree is
	// responsible for.
	Region Rect
	// Axis is the node's splitting axis. A renderer would draw the
	// splitting line through Point perpendicular to Axis, clipped to
	// Region.
	Axis Axis
	// Depth is the node's distance from the root, which has depth 0.
	Depth int
}

// A ticket is a pending work item of a Do traversal.
type ticket struct {
	n     *node
	depth int
}

// A ticketStack is the collection of pending work items of a Do
// traversal. Children are pushed right first so that the left subtree
// is visited first, giving a preorder traversal.
type ticketStack []ticket

func (ts *ticketStack) push(t ticket) {
	*ts = append(*ts, t)
}

func (ts *ticketStack) pop() ticket {
	old := *ts
	n := len(old)
	x := old[n-1]
	*ts = old[0 : n-1]
	return x
}

// Do calls fn for every node of the Tree in preorder: each node is
// visited before its lesser subtree, which is visited before its
// greater-or-equal subtree. If fn returns true, the traversal stops and
// Do returns true. Otherwise Do returns false once every node has been
// visited.
//
// Do does not modify the Tree, and fn must not modify it either.
// Inserting the visited points into an empty Tree in the order Do
// produces them rebuilds a Tree of identical shape.
func (t *Tree) Do(fn func(v Visit) (done bool)) bool {
	if fn == nil {
		textPanic("nil visit function")
	}
	if t.root == nil {
		return false
	}

	ts := make(ticketStack, 1, 16)
	ts[0] = ticket{n: t.root}
	for len(ts) > 0 {
		tk := ts.pop()
		v := Visit{
			Point:  tk.n.point,
			Region: tk.n.region,
			Axis:   Axis(tk.depth & 1),
			Depth:  tk.depth,
		}
		if fn(v) {
			return true
		}
		if tk.n.right != nil {
			ts.push(ticket{n: tk.n.right, depth: tk.depth + 1})
		}
		if tk.n.left != nil {
			ts.push(ticket{n: tk.n.left, depth: tk.depth + 1})
		}
	}
	return false
}

// preorder returns the Tree's points in the order Do visits them.
func (t *Tree) preorder() Points {
	ps := make(Points, 0, t.size)
	t.Do(func(v Visit) bool {
		ps = append(ps, v.Point)
		return false
	})
	return ps
}
