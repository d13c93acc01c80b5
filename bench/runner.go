// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/ElAdriano/parallel-solver/internal/logging"
)

// Observer is notified of every invocation and every record as a Runner
// produces them.
type Observer interface {
	Invoked(inv Invocation, o Outcome)
	Recorded(rec TimingRecord)
}

// Runner executes a Grid point by point.
//
// Every point is invoked Repetitions times, one invocation after another.
// The mean of the durations becomes the ElapsedMs of the point's record.
// A point whose invocation exits non-zero or times out becomes a Failure
// and its remaining repetitions are skipped.  A launch failure or a
// cancelled context stops the run.
type Runner struct {
	Invoker     Invoker
	Repetitions int
	Iterations  int
	Timeout     time.Duration // per invocation, 0 for none
	Observer    Observer
	Log         logr.Logger // logging.Default() when unset
}

// Run runs every point of g.  The returned Result is never nil once the
// runner configuration is valid: when Run stops early it holds what was
// measured so far, Complete is false and the error says why.
func (r *Runner) Run(ctx context.Context, g *Grid) (*Result, error) {
	if r.Invoker == nil {
		return nil, fmt.Errorf("runner has no invoker")
	}
	if r.Repetitions < 1 {
		return nil, fmt.Errorf("repetitions %d < 1", r.Repetitions)
	}
	if r.Timeout < 0 {
		return nil, fmt.Errorf("negative timeout %s", r.Timeout)
	}
	if r.Log.GetSink() == nil {
		r.Log = logging.Default()
	}
	res := &Result{
		ID:          uuid.NewString(),
		Start:       time.Now(),
		Planned:     g.Len(),
		Repetitions: r.Repetitions}
	r.Log.Info("starting run", "id", res.ID, "points", g.Len(), "repetitions", r.Repetitions)

	for i := 0; i < g.Len(); i++ {
		p := g.At(i)
		if e := ctx.Err(); e != nil {
			return r.stop(res, &Error{Kind: GridExhaustionIncomplete, Point: p, Err: e})
		}
		start := time.Now()
		rec, e := r.point(ctx, p)
		var be *Error
		switch {
		case e == nil:
			res.Records = append(res.Records, rec)
			if r.Observer != nil {
				r.Observer.Recorded(rec)
			}
			r.Log.Info("done point", "point", p.String(), "mean_ms", rec.ElapsedMs, "took", time.Since(start))
		case errors.As(e, &be) && (be.Kind == SolverNonZeroExit || be.Kind == SolverTimeout):
			res.Failures = append(res.Failures, newFailure(be))
			r.Log.Info("point failed, no record", "point", p.String(), "kind", be.Kind.String(), "exit", be.ExitCode)
		default:
			return r.stop(res, e)
		}
	}
	res.Complete = true
	res.Dur = time.Since(res.Start)
	r.Log.Info("run complete", "id", res.ID, "records", len(res.Records), "failures", len(res.Failures), "took", res.Dur)
	return res, nil
}

func (r *Runner) stop(res *Result, e error) (*Result, error) {
	res.Dur = time.Since(res.Start)
	r.Log.Error(e, "run stopped", "id", res.ID, "covered", res.Covered(), "planned", res.Planned)
	return res, e
}

func (r *Runner) point(ctx context.Context, p Point) (TimingRecord, error) {
	samples := make([]float64, 0, r.Repetitions)
	for trial := 0; trial < r.Repetitions; trial++ {
		inv := Invocation{
			Point:   p,
			Trial:   trial,
			Args:    p.Args(r.Iterations),
			Timeout: r.Timeout}
		o := r.Invoker.Invoke(ctx, inv)
		if o.Err == nil && ctx.Err() != nil {
			o.Err = &Error{Kind: GridExhaustionIncomplete, Point: p, Trial: trial, Err: ctx.Err()}
		}
		if r.Observer != nil {
			r.Observer.Invoked(inv, o)
		}
		if o.Err != nil {
			var be *Error
			if !errors.As(o.Err, &be) {
				be = &Error{Kind: SolverLaunchFailure, Point: p, Trial: trial, ExitCode: o.ExitCode, Err: o.Err}
			}
			return TimingRecord{}, be
		}
		r.Log.V(1).Info("trial", "point", p.String(), "trial", trial, "elapsed", o.Elapsed)
		samples = append(samples, durMs(o.Elapsed))
	}
	total := floats.Sum(samples)
	return TimingRecord{
		Case:      p.Case.ID,
		Threads:   p.Threads,
		Size:      p.Case.Size,
		ElapsedMs: total / float64(len(samples)),
		TotalMs:   total,
		Trials:    len(samples),
		Method:    p.Method}, nil
}

func durMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
