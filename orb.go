// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import "github.com/paulmach/orb"

// PointFromOrb converts an orb.Point to a Point.
func PointFromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Orb converts p to an orb.Point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// RectFromBound converts an orb.Bound to a Rect. Panics if the result
// is not a valid rectangle, as NewRect does.
func RectFromBound(b orb.Bound) Rect {
	return NewRect(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
}

// Bound converts r to an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.XMin, r.YMin},
		Max: orb.Point{r.XMax, r.YMax},
	}
}
