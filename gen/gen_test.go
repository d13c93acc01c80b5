// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElAdriano/parallel-solver/bench"
)

func TestDiagDominant(t *testing.T) {
	Seed(7)
	for _, n := range []int{1, 2, 5, 27} {
		s := DiagDominant(n)
		require.Equal(t, n, s.N())
		require.Len(t, s.A, n)
		if !s.Dominant() {
			t.Errorf("size %d: not diagonally dominant", n)
		}
	}
}

func TestDominantRejects(t *testing.T) {
	s := &System{A: [][]float64{{1, 2}, {0, 3}}, Y: []float64{1, 1}}
	assert.False(t, s.Dominant())
	s = &System{A: [][]float64{{3, 2}, {0, 3}}, Y: []float64{1, 1}}
	assert.True(t, s.Dominant())
}

func TestSeedReproduces(t *testing.T) {
	Seed(11)
	a := DiagDominant(6)
	Seed(11)
	b := DiagDominant(6)
	assert.Equal(t, a, b)
}

func TestWritePackageFormat(t *testing.T) {
	root := t.TempDir()
	s := &System{
		A: [][]float64{{4, -1, 0}, {1, 5, 2}, {0, 2.5, -6}},
		Y: []float64{3, -7, 12}}
	tc, err := WritePackage(root, 2, s)
	require.NoError(t, err)
	assert.Equal(t, bench.TestCase{ID: 2, Size: 3, Dir: bench.PackageDir(root, 2)}, tc)

	buf, err := os.ReadFile(tc.Coefficients())
	require.NoError(t, err)
	assert.Equal(t, "4 -1 0\n1 5 2\n0 2.5 -6", string(buf))
	buf, err = os.ReadFile(tc.YValues())
	require.NoError(t, err)
	assert.Equal(t, "3\n-7\n12", string(buf))

	require.NoError(t, bench.CheckFixture(tc))
	n, err := bench.CountRows(tc.Coefficients())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestWritePackageEmpty(t *testing.T) {
	_, err := WritePackage(t.TempDir(), 1, &System{})
	assert.Error(t, err)
}

func TestSuite(t *testing.T) {
	root := t.TempDir()
	sizes := bench.LinearSizes(1, 4, 5, 2)
	tcs, err := Suite(root, 1, 4, func(id int) int { return sizes[id] })
	require.NoError(t, err)
	require.Len(t, tcs, 4)

	loaded, err := bench.LoadCases(root, 1, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, tcs, loaded)
	for _, tc := range loaded {
		assert.Equal(t, 5+2*(tc.ID-1), tc.Size)
		buf, err := os.ReadFile(tc.Coefficients())
		require.NoError(t, err)
		rows := strings.Split(string(buf), "\n")
		require.Len(t, rows, tc.Size)
		for _, row := range rows {
			vs := strings.Split(row, " ")
			require.Len(t, vs, tc.Size)
			for _, v := range vs {
				_, err := strconv.ParseFloat(v, 32)
				require.NoError(t, err)
			}
		}
	}

	_, err = Suite(root, 3, 2, func(int) int { return 5 })
	assert.Error(t, err)
	_, err = Suite(root, 1, 2, func(int) int { return 0 })
	assert.Error(t, err)
}
