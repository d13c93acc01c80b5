// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	CoefficientsFile = "coefficients.txt"
	YValuesFile      = "y_values.txt"
	packagePrefix    = "test_package_"
)

// PackageDir gives the directory of test package id under root.
func PackageDir(root string, id int) string {
	return filepath.Join(root, fmt.Sprintf("%s%d", packagePrefix, id))
}

func (tc TestCase) Coefficients() string {
	return filepath.Join(tc.Dir, CoefficientsFile)
}

func (tc TestCase) YValues() string {
	return filepath.Join(tc.Dir, YValuesFile)
}

// LoadCases creates the test cases from..to below root.  The size of case
// id is sizes[id] when present and otherwise the number of rows of its
// coefficients file.
func LoadCases(root string, from, to int, sizes map[int]int) ([]TestCase, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("bad test case range [%d, %d]", from, to)
	}
	res := make([]TestCase, 0, to-from+1)
	for id := from; id <= to; id++ {
		tc := TestCase{ID: id, Dir: PackageDir(root, id)}
		if n, ok := sizes[id]; ok {
			tc.Size = n
		} else {
			n, e := CountRows(tc.Coefficients())
			if e != nil {
				return nil, fmt.Errorf("size of test case %d: %w", id, e)
			}
			tc.Size = n
		}
		if tc.Size < 1 {
			return nil, fmt.Errorf("test case %d has size %d", id, tc.Size)
		}
		res = append(res, tc)
	}
	return res, nil
}

// LinearSizes gives sizes start, start+step, ... for ids from..to.
func LinearSizes(from, to, start, step int) map[int]int {
	res := make(map[int]int, to-from+1)
	n := start
	for id := from; id <= to; id++ {
		res[id] = n
		n += step
	}
	return res
}

// CountRows counts the non-blank lines of the file at p.
func CountRows(p string) (int, error) {
	f, e := os.Open(p)
	if e != nil {
		return 0, e
	}
	defer f.Close()
	n := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		n++
	}
	if e := sc.Err(); e != nil {
		return 0, e
	}
	return n, nil
}

// CheckFixture verifies that both input files of tc exist, are regular
// files and are not empty.
func CheckFixture(tc TestCase) error {
	for _, p := range []string{tc.Coefficients(), tc.YValues()} {
		st, e := os.Stat(p)
		if e != nil {
			return fmt.Errorf("test case %d: %w", tc.ID, e)
		}
		if !st.Mode().IsRegular() {
			return fmt.Errorf("test case %d: %s is not a regular file", tc.ID, p)
		}
		if st.Size() == 0 {
			return fmt.Errorf("test case %d: %s is empty", tc.ID, p)
		}
	}
	return nil
}

// HashFixtures maps each input file of cases to its sha256.
func HashFixtures(cases []TestCase) (map[string]string, error) {
	res := make(map[string]string, 2*len(cases))
	for _, tc := range cases {
		for _, p := range []string{tc.Coefficients(), tc.YValues()} {
			h, e := hash(p)
			if e != nil {
				return nil, e
			}
			res[p] = h
		}
	}
	return res, nil
}

func hash(p string) (string, error) {
	f, e := os.Open(p)
	if e != nil {
		return "", e
	}
	defer f.Close()
	sha := sha256.New()
	if _, e := io.Copy(sha, f); e != nil {
		return "", e
	}
	return hex.EncodeToString(sha.Sum(nil)), nil
}
