// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree_test

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ekalachev/kdtree"
)

// Create a Point slice for example purposes.
var points = []kdtree.Point{
	{X: 0.7, Y: 0.2},
	{X: 0.5, Y: 0.4},
	{X: 0.2, Y: 0.3},
	{X: 0.4, Y: 0.7},
	{X: 0.9, Y: 0.6},
}

func exampleTree() *kdtree.Tree {
	t := kdtree.New()
	for _, p := range points {
		t.Insert(p)
	}
	return t
}

func ExampleTree_Insert() {
	t := kdtree.New()
	fmt.Println(t.Insert(kdtree.Point{X: 0.5, Y: 0.5}))
	fmt.Println(t.Insert(kdtree.Point{X: 0.5, Y: 0.5}))
	fmt.Println(t)
	// Output: true
	// false
	// Tree{Size:1}
}

func ExampleTree_Contains() {
	t := exampleTree()
	fmt.Println(t.Contains(kdtree.Point{X: 0.2, Y: 0.3}))
	fmt.Println(t.Contains(kdtree.Point{X: 0.3, Y: 0.2}))
	// Output: true
	// false
}

func ExampleTree_Range() {
	t := exampleTree()

	ps := t.Range(kdtree.NewRect(0, 0.2, 0.5, 0.5))
	sort.Sort(ps) // Range results are unordered.
	fmt.Println(ps)
	// Output: [[0.2,0.3] [0.5,0.4]]
}

func ExampleTree_Nearest() {
	t := exampleTree()
	fmt.Println(t.Nearest(kdtree.Point{X: 0.1, Y: 0.1}))

	var empty kdtree.Tree
	_, ok := empty.Nearest(kdtree.Point{X: 0.1, Y: 0.1})
	fmt.Println(ok)
	// Output: [0.2,0.3] true
	// false
}

func ExampleTree_Do() {
	t := exampleTree()
	t.Do(func(v kdtree.Visit) bool {
		fmt.Printf("%s%s %s %s\n", strings.Repeat("  ", v.Depth), v.Axis, v.Point, v.Region)
		return false
	})
	// Output: X [0.7,0.2] [0,0,1,1]
	//   Y [0.5,0.4] [0,0,0.7,1]
	//     X [0.2,0.3] [0,0,0.7,0.4]
	//     X [0.4,0.7] [0,0.4,0.7,1]
	//   Y [0.9,0.6] [0.7,0,1,1]
}

func ExampleBuild() {
	t := kdtree.Build(points)
	t.Do(func(v kdtree.Visit) bool {
		fmt.Printf("%s%s\n", strings.Repeat("  ", v.Depth), v.Point)
		return false
	})
	// Output: [0.5,0.4]
	//   [0.4,0.7]
	//     [0.2,0.3]
	//   [0.9,0.6]
	//     [0.7,0.2]
}

func ExampleUnmarshal() {
	// Marshal a tree to bytes so that we can Unmarshal it.
	t := exampleTree()
	var b bytes.Buffer
	_, _ = t.Marshal(&b) // Ignore error ONLY to keep example simple.

	// Unmarshal from bytes.
	t, err := kdtree.Unmarshal(&b)
	fmt.Println(t, err)
	// Output: Tree{Size:5} <nil>
}
