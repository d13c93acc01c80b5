// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import "time"

// TimingRecord is one finished measurement of a grid point.
//
// ElapsedMs is the mean over Trials invocations and TotalMs their sum.  Both
// are computed once, by the Runner.
type TimingRecord struct {
	Case      int     `yaml:"case"`
	Threads   int     `yaml:"threads"`
	Size      int     `yaml:"size"`
	ElapsedMs float64 `yaml:"elapsed_ms"`
	TotalMs   float64 `yaml:"total_ms"`
	Trials    int     `yaml:"trials"`
	Method    Method  `yaml:"method"`
}

// Failure records a grid point for which no TimingRecord exists.
type Failure struct {
	Case     int       `yaml:"case"`
	Threads  int       `yaml:"threads"`
	Size     int       `yaml:"size"`
	Method   Method    `yaml:"method"`
	Trial    int       `yaml:"trial"`
	Kind     ErrorKind `yaml:"kind"`
	ExitCode int       `yaml:"exit_code"`
	Message  string    `yaml:"message,omitempty"`
}

func newFailure(be *Error) Failure {
	f := Failure{
		Case:     be.Point.Case.ID,
		Threads:  be.Point.Threads,
		Size:     be.Point.Case.Size,
		Method:   be.Point.Method,
		Trial:    be.Trial,
		Kind:     be.Kind,
		ExitCode: be.ExitCode}
	if be.Err != nil {
		f.Message = be.Err.Error()
	}
	return f
}

// Result is everything a Runner produced for one grid.  Records and
// Failures are in grid enumeration order.
type Result struct {
	ID          string         `yaml:"id"`
	Start       time.Time      `yaml:"start"`
	Dur         time.Duration  `yaml:"dur"`
	Planned     int            `yaml:"planned"`
	Repetitions int            `yaml:"repetitions"`
	Complete    bool           `yaml:"complete"`
	Records     []TimingRecord `yaml:"records"`
	Failures    []Failure      `yaml:"failures,omitempty"`
}

// Covered returns the number of grid points with a record or a failure.
func (r *Result) Covered() int {
	return len(r.Records) + len(r.Failures)
}

// Missing returns the number of grid points never executed.
func (r *Result) Missing() int {
	return r.Planned - r.Covered()
}
