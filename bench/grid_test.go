// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridOrder(t *testing.T) {
	c1 := TestCase{ID: 1, Size: 5}
	c2 := TestCase{ID: 2, Size: 7}
	g, err := NewGrid([]TestCase{c1, c2}, []Method{GaussSeidel, Jacobi}, 2)
	require.NoError(t, err)

	want := []Point{
		{c1, GaussSeidel, 1}, {c1, GaussSeidel, 2}, {c1, Jacobi, 1}, {c1, Jacobi, 2},
		{c2, GaussSeidel, 1}, {c2, GaussSeidel, 2}, {c2, Jacobi, 1}, {c2, Jacobi, 2},
	}
	if diff := cmp.Diff(want, g.Points()); diff != "" {
		t.Errorf("grid order (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(want), g.Len())
	assert.Equal(t, want[5], g.At(5))
}

func TestGridPointsIsACopy(t *testing.T) {
	g, err := NewGrid([]TestCase{{ID: 1, Size: 5}}, Methods(), 1)
	require.NoError(t, err)
	ps := g.Points()
	ps[0].Threads = 99
	assert.Equal(t, 1, g.At(0).Threads)
}

func TestNewGridErrors(t *testing.T) {
	ok := []TestCase{{ID: 1, Size: 5}}
	tests := []struct {
		name    string
		cases   []TestCase
		methods []Method
		threads int
	}{
		{"no cases", nil, Methods(), 4},
		{"no methods", ok, nil, 4},
		{"zero threads", ok, Methods(), 0},
		{"zero size", []TestCase{{ID: 1}}, Methods(), 1},
		{"duplicate case", []TestCase{{ID: 1, Size: 5}, {ID: 1, Size: 7}}, Methods(), 1},
		{"duplicate method", ok, []Method{Jacobi, Jacobi}, 1},
		{"bad method", ok, []Method{Method(7)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.cases, tt.methods, tt.threads)
			assert.Error(t, err)
		})
	}
}

func TestPointArtifact(t *testing.T) {
	p := Point{Case: TestCase{ID: 3, Size: 9}, Method: Jacobi, Threads: 4}
	assert.Equal(t, "results_jacobi_3", p.Artifact())
	assert.Equal(t, "case 3 (n=9) JACOBI threads=4", p.String())
}
