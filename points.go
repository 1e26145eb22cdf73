// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

// Points is a slice of Point values which implements sort.Interface.
// The sort.Sort function will sort Points in ascending order of X
// coordinate, with ties broken by Y coordinate.
type Points []Point

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (ps Points) Len() int {
	return len(ps)
}

// Less establishes an absolute ordering by ascending X coordinate, then
// ascending Y coordinate. It implements the corresponding method of
// sort.Interface.
func (ps Points) Less(i, j int) bool {
	return ps[i].CompareX(ps[j]) < 0
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (ps Points) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}
