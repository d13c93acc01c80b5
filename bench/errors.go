// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies what went wrong with an invocation or a run.
//
// An ErrorKind is itself an error so that callers may write
//
//	errors.Is(err, bench.SolverTimeout)
type ErrorKind int

const (
	KindNone ErrorKind = iota
	SolverLaunchFailure
	SolverNonZeroExit
	SolverTimeout
	GridExhaustionIncomplete
)

var kindNames = [...]string{
	"none",
	"SolverLaunchFailure",
	"SolverNonZeroExit",
	"SolverTimeout",
	"GridExhaustionIncomplete"}

func (k ErrorKind) String() string {
	if k < KindNone || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

func (k ErrorKind) Error() string {
	return k.String()
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ErrorKind) UnmarshalText(b []byte) error {
	s := string(b)
	for i, nm := range kindNames {
		if strings.EqualFold(nm, s) {
			*k = ErrorKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", s)
}

// Error is the error returned for a failed invocation or an aborted run.
// Point identifies the grid point being executed when it occurred.
type Error struct {
	Kind     ErrorKind
	Point    Point
	Trial    int
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s", e.Kind, e.Point)
	if e.Kind != GridExhaustionIncomplete {
		fmt.Fprintf(&b, " trial %d", e.Trial)
	}
	if e.Kind == SolverNonZeroExit {
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns the kind of err, KindNone for nil and
// SolverLaunchFailure for errors not produced by this package.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return SolverLaunchFailure
}
