// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Point
		expected string
	}{
		{"Zero", Point{}, "[0,0]"},
		{"Integers", Point{-1, 2}, "[-1,2]"},
		{"Exact", Point{-100.5, 1234.125}, "[-100.5,1234.125]"},
		{"Rounded", Point{0.1 + 0.2, 1.0 / 3}, "[0.3,0.33333333]"},
		{"NaN", Point{math.NaN(), math.Inf(1)}, "[NaN,+Inf]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestPoint_Valid(t *testing.T) {
	testCases := []struct {
		name     string
		input    Point
		expected bool
	}{
		{"Zero", Point{}, true},
		{"OutsideUnitSquare", Point{-5, 1e300}, true},
		{"NaNX", Point{math.NaN(), 0}, false},
		{"NaNY", Point{0, math.NaN()}, false},
		{"PosInf", Point{math.Inf(1), 0}, false},
		{"NegInf", Point{0, math.Inf(-1)}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.Valid())
		})
	}
}

func TestPoint_Equal(t *testing.T) {
	assert.True(t, Point{0.5, 0.5}.Equal(Point{0.5, 0.5}))
	assert.False(t, Point{0.5, 0.5}.Equal(Point{0.5, 0.5000000001}))
	assert.False(t, Point{0.5, 0.5}.Equal(Point{0.4, 0.5}))
}

func TestPoint_Compare(t *testing.T) {
	testCases := []struct {
		name      string
		p, q      Point
		expectedX int
		expectedY int
	}{
		{"Equal", Point{0.5, 0.5}, Point{0.5, 0.5}, 0, 0},
		{"LessBoth", Point{0.1, 0.1}, Point{0.2, 0.2}, -1, -1},
		{"LessX.GreaterY", Point{0.1, 0.9}, Point{0.2, 0.2}, -1, 1},
		{"TieX.LessY", Point{0.5, 0.1}, Point{0.5, 0.2}, -1, -1},
		{"TieX.GreaterY", Point{0.5, 0.3}, Point{0.5, 0.2}, 1, 1},
		{"TieY.LessX", Point{0.1, 0.5}, Point{0.2, 0.5}, -1, -1},
		{"TieY.GreaterX", Point{0.3, 0.5}, Point{0.2, 0.5}, 1, 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expectedX, testCase.p.CompareX(testCase.q))
			assert.Equal(t, -testCase.expectedX, testCase.q.CompareX(testCase.p))
			assert.Equal(t, testCase.expectedY, testCase.p.CompareY(testCase.q))
			assert.Equal(t, -testCase.expectedY, testCase.q.CompareY(testCase.p))
		})
	}
}

func TestPoint_Distance(t *testing.T) {
	testCases := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{"Same", Point{0.5, 0.5}, Point{0.5, 0.5}, 0},
		{"Horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"Vertical", Point{0, -1}, Point{0, 1}, 2},
		{"Pythagorean", Point{1, 1}, Point{4, 5}, 5},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.p.DistanceTo(testCase.q))
			assert.Equal(t, testCase.expected, testCase.q.DistanceTo(testCase.p))
			assert.Equal(t, testCase.expected*testCase.expected, testCase.p.DistanceSquaredTo(testCase.q))
		})
	}
}

func TestAxis(t *testing.T) {
	assert.Equal(t, YAxis, XAxis.Next())
	assert.Equal(t, XAxis, YAxis.Next())
	assert.Equal(t, "X", XAxis.String())
	assert.Equal(t, "Y", YAxis.String())
	assert.Equal(t, "Axis(7)", Axis(7).String())

	p := Point{0.25, 0.75}
	assert.Equal(t, 0.25, XAxis.coord(p))
	assert.Equal(t, 0.75, YAxis.coord(p))

	t.Run("less", func(t *testing.T) {
		q := Point{0.5, 0.5}

		assert.True(t, XAxis.less(Point{0.4, 0.9}, q))
		assert.False(t, XAxis.less(Point{0.5, 0.1}, q), "Ties go to the greater-or-equal side.")
		assert.False(t, XAxis.less(Point{0.6, 0.1}, q))
		assert.True(t, YAxis.less(Point{0.9, 0.4}, q))
		assert.False(t, YAxis.less(Point{0.1, 0.5}, q), "Ties go to the greater-or-equal side.")
		assert.False(t, YAxis.less(Point{0.1, 0.6}, q))
	})
}
