// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdtree provides a two-dimensional kd-tree point index over
// the unit square, supporting insertion, membership tests, inclusive
// rectangular range search and nearest neighbor search.
//
// Each node of the tree splits the plane at its own point, alternating
// between the X axis (at even depths) and the Y axis (at odd depths).
// Every node also records the region of the unit square its subtree is
// responsible for, which lets range and nearest neighbor searches skip
// subtrees that cannot contribute to the answer.
//
// Points are accepted anywhere in the finite plane, but the root region
// is always UnitSquare, so searches are only guaranteed exact for
// points inside the unit square.
package kdtree
