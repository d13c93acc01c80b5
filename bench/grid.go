// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"strconv"
)

// TestCase is one numbered test package and the number of unknowns of the
// system it contains.
type TestCase struct {
	ID   int    `yaml:"id"`
	Size int    `yaml:"size"`
	Dir  string `yaml:"dir"`
}

// Point is one (test case, method, thread count) combination.
type Point struct {
	Case    TestCase
	Method  Method
	Threads int
}

func (p Point) String() string {
	return fmt.Sprintf("case %d (n=%d) %s threads=%d", p.Case.ID, p.Case.Size, p.Method, p.Threads)
}

// Artifact gives the name of the result file the solver writes for p.
func (p Point) Artifact() string {
	return fmt.Sprintf("results_%s_%d", p.Method.Arg(), p.Case.ID)
}

// Args gives the positional solver arguments for p:
//
//	coefficients y_values threads iterations artifact method
func (p Point) Args(iterations int) []string {
	return []string{
		p.Case.Coefficients(),
		p.Case.YValues(),
		strconv.Itoa(p.Threads),
		strconv.Itoa(iterations),
		p.Artifact(),
		p.Method.Arg()}
}

// Grid is the ordered enumeration of points of a run: test case outer,
// method second and thread count inner.
type Grid struct {
	Cases   []TestCase
	Methods []Method
	Threads int
	points  []Point
}

// NewGrid creates the grid over cases, methods and thread counts 1..maxThreads.
func NewGrid(cases []TestCase, methods []Method, maxThreads int) (*Grid, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("grid has no test cases")
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("grid has no methods")
	}
	if maxThreads < 1 {
		return nil, fmt.Errorf("max thread count %d < 1", maxThreads)
	}
	ids := make(map[int]bool, len(cases))
	for _, tc := range cases {
		if tc.Size < 1 {
			return nil, fmt.Errorf("test case %d has size %d", tc.ID, tc.Size)
		}
		if ids[tc.ID] {
			return nil, fmt.Errorf("test case %d listed twice", tc.ID)
		}
		ids[tc.ID] = true
	}
	ms := make(map[Method]bool, len(methods))
	for _, m := range methods {
		if !m.valid() {
			return nil, fmt.Errorf("invalid method %d", int(m))
		}
		if ms[m] {
			return nil, fmt.Errorf("method %s listed twice", m)
		}
		ms[m] = true
	}
	g := &Grid{
		Cases:   cases,
		Methods: methods,
		Threads: maxThreads,
		points:  make([]Point, 0, len(cases)*len(methods)*maxThreads)}
	for _, tc := range cases {
		for _, m := range methods {
			for t := 1; t <= maxThreads; t++ {
				g.points = append(g.points, Point{Case: tc, Method: m, Threads: t})
			}
		}
	}
	return g, nil
}

// Len returns the number of points in the grid.
func (g *Grid) Len() int {
	return len(g.points)
}

// At returns the i'th point in enumeration order.
func (g *Grid) At(i int) Point {
	return g.points[i]
}

// Points returns a copy of the points in enumeration order.
func (g *Grid) Points() []Point {
	res := make([]Point, len(g.points))
	copy(res, g.points)
	return res
}
