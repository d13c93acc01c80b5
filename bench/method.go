// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"strings"
)

// Method is the solution method requested of the solver.
type Method int

const (
	Jacobi Method = iota
	GaussSeidel
)

var (
	methodLabels = [...]string{"JACOBI", "GAUSS"}
	methodArgs   = [...]string{"jacobi", "gauss"}
	methodSheets = [...]string{"Jacobi", "Gauss-Seidel"}
)

// Methods returns the closed set of methods in enumeration order.
func Methods() []Method {
	return []Method{Jacobi, GaussSeidel}
}

func (m Method) valid() bool {
	return m >= Jacobi && m <= GaussSeidel
}

func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodLabels[m]
}

// Arg gives the method selector passed on the solver command line.
func (m Method) Arg() string {
	if !m.valid() {
		return ""
	}
	return methodArgs[m]
}

// Sheet gives the title of the report sheet for m.
func (m Method) Sheet() string {
	if !m.valid() {
		return m.String()
	}
	return methodSheets[m]
}

// ParseMethod parses a label, solver selector or sheet title.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jacobi":
		return Jacobi, nil
	case "gauss", "gauss-seidel", "gauss_seidel", "gaussseidel", "gs":
		return GaussSeidel, nil
	}
	return 0, fmt.Errorf("unknown method %q", s)
}

// ParseMethods parses a list of methods, rejecting duplicates.
func ParseMethods(ss []string) ([]Method, error) {
	res := make([]Method, 0, len(ss))
	seen := make(map[Method]bool, len(ss))
	for _, s := range ss {
		m, e := ParseMethod(s)
		if e != nil {
			return nil, e
		}
		if seen[m] {
			return nil, fmt.Errorf("method %s listed twice", m)
		}
		seen[m] = true
		res = append(res, m)
	}
	return res, nil
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("invalid method %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(b []byte) error {
	v, e := ParseMethod(string(b))
	if e != nil {
		return e
	}
	*m = v
	return nil
}
