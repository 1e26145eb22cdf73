// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import "math"

// A Rect is a closed axis-aligned rectangle. Every predicate on Rect
// treats the boundary as part of the rectangle.
type Rect struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// UnitSquare is the rectangle [0,1]x[0,1]. It is the region of the
// root node of every Tree.
var UnitSquare = Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

// NewRect returns the rectangle [xmin,xmax]x[ymin,ymax]. Panics if any
// coordinate is not finite, if xmin > xmax, or if ymin > ymax.
func NewRect(xmin, ymin, xmax, ymax float64) Rect {
	r := Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	validateRect(r)
	return r
}

// Valid reports whether all of r's coordinates are finite and its
// minimums do not exceed its maximums.
func (r Rect) Valid() bool {
	return finite(r.XMin) && finite(r.YMin) && finite(r.XMax) && finite(r.YMax) &&
		r.XMin <= r.XMax && r.YMin <= r.YMax
}

func (r Rect) Width() float64 {
	return r.XMax - r.XMin
}

func (r Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax &&
		p.Y >= r.YMin && p.Y <= r.YMax
}

// Intersects reports whether r and o share at least one point.
// Rectangles which merely touch along an edge or at a corner
// intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.XMax < o.XMin {
		return false
	}
	if r.YMax < o.YMin {
		return false
	}
	if r.XMin > o.XMax {
		return false
	}
	if r.YMin > o.YMax {
		return false
	}
	return true
}

// DistanceTo returns the Euclidean distance from p to the closest point
// of r, which is zero if r contains p.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

// DistanceSquaredTo returns the square of the Euclidean distance from p
// to the closest point of r, which is zero if r contains p.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	var dx, dy float64
	if p.X < r.XMin {
		dx = r.XMin - p.X
	} else if p.X > r.XMax {
		dx = p.X - r.XMax
	}
	if p.Y < r.YMin {
		dy = r.YMin - p.Y
	} else if p.Y > r.YMax {
		dy = p.Y - r.YMax
	}
	return dx*dx + dy*dy
}

// String returns a compact representation of r in the form
// "[xmin,ymin,xmax,ymax]".
func (r Rect) String() string {
	b := make([]byte, 0, 48)
	b = append(b, '[')
	b = appendFloat(b, r.XMin)
	b = append(b, ',')
	b = appendFloat(b, r.YMin)
	b = append(b, ',')
	b = appendFloat(b, r.XMax)
	b = append(b, ',')
	b = appendFloat(b, r.YMax)
	b = append(b, ']')
	return string(b)
}

// lower returns the part of r on the lesser side of the line through p
// perpendicular to axis a. The line itself is included.
//
// The split coordinate is clamped into r, so a point lying outside r
// yields a degenerate but well-formed rectangle rather than one whose
// minimum exceeds its maximum.
func (r Rect) lower(p Point, a Axis) Rect {
	if a == XAxis {
		r.XMax = clamp(p.X, r.XMin, r.XMax)
	} else {
		r.YMax = clamp(p.Y, r.YMin, r.YMax)
	}
	return r
}

// upper returns the part of r on the greater-or-equal side of the line
// through p perpendicular to axis a. The line itself is included.
func (r Rect) upper(p Point, a Axis) Rect {
	if a == XAxis {
		r.XMin = clamp(p.X, r.XMin, r.XMax)
	} else {
		r.YMin = clamp(p.Y, r.YMin, r.YMax)
	}
	return r
}

func validateRect(r Rect) {
	if !r.Valid() {
		fmtPanic("invalid rectangle %s (coordinates must be finite with min <= max)", r)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
