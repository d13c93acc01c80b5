// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/ElAdriano/parallel-solver/bench"
)

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// System is a linear system A x = Y.
type System struct {
	A [][]float64
	Y []float64
}

// N gives the number of unknowns of s.
func (s *System) N() int {
	return len(s.Y)
}

// DiagDominant generates a random n x n system whose matrix is strictly
// diagonally dominant by rows, so that both Jacobi and Gauss-Seidel
// iterations converge on it.  All entries are integers.
func DiagDominant(n int) *System {
	mu.Lock() // for package rng
	defer mu.Unlock()
	s := &System{A: make([][]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		sum := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			row[j] = float64(rng.Intn(19) - 9)
			sum += math.Abs(row[j])
		}
		row[i] = sum + float64(rng.Intn(10)+1)
		if rng.Intn(2) == 0 {
			row[i] = -row[i]
		}
		s.A[i] = row
		s.Y[i] = float64(rng.Intn(101) - 50)
	}
	return s
}

// Dominant tests whether every diagonal entry of s strictly exceeds the
// sum of the other entries of its row in absolute value.
func (s *System) Dominant() bool {
	for i, row := range s.A {
		if len(row) != len(s.A) {
			return false
		}
		sum := 0.0
		for j, v := range row {
			if j != i {
				sum += math.Abs(v)
			}
		}
		if math.Abs(row[i]) <= sum {
			return false
		}
	}
	return true
}

// WritePackage writes s as test package id below root in the format read by
// the solver: rows of values separated by single spaces, rows separated by
// a newline, no empty line and no trailing newline.  The y values file has
// one value per row.
func WritePackage(root string, id int, s *System) (bench.TestCase, error) {
	tc := bench.TestCase{ID: id, Size: s.N(), Dir: bench.PackageDir(root, id)}
	if s.N() == 0 {
		return tc, fmt.Errorf("test package %d: empty system", id)
	}
	if e := os.MkdirAll(tc.Dir, 0755); e != nil {
		return tc, e
	}
	rows := make([]string, len(s.A))
	for i, row := range s.A {
		rows[i] = formatRow(row)
	}
	if e := os.WriteFile(tc.Coefficients(), []byte(strings.Join(rows, "\n")), 0644); e != nil {
		return tc, e
	}
	ys := make([]string, len(s.Y))
	for i, y := range s.Y {
		ys[i] = format(y)
	}
	if e := os.WriteFile(tc.YValues(), []byte(strings.Join(ys, "\n")), 0644); e != nil {
		return tc, e
	}
	return tc, nil
}

// Suite writes a diagonally dominant test package for every id in
// [from..to] below root, the package with id having size(id) unknowns.
func Suite(root string, from, to int, size func(id int) int) ([]bench.TestCase, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("bad test package range [%d..%d]", from, to)
	}
	res := make([]bench.TestCase, 0, to-from+1)
	for id := from; id <= to; id++ {
		n := size(id)
		if n < 1 {
			return res, fmt.Errorf("test package %d: size %d < 1", id, n)
		}
		tc, e := WritePackage(root, id, DiagDominant(n))
		if e != nil {
			return res, e
		}
		res = append(res, tc)
	}
	return res, nil
}

func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = format(v)
	}
	return strings.Join(parts, " ")
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 32)
}
