// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ElAdriano/parallel-solver/bench"
)

// RandInvoker creates a bench.Invoker which does not run a solver but
// waits for a random period of time chosen from [0..d) and reports it as
// the duration of the invocation.  Every invocation fails with a non-zero
// exit with probability fail.
//
// The invocation timeout and context are honored as by bench.ExecInvoker.
//
// This is useful for trying out a grid and its reports without a solver.
func RandInvoker(d time.Duration, fail float64) bench.Invoker {
	return RandInvokerr(d, fail, rand.NewSource(33))
}

func RandInvokerr(d time.Duration, fail float64, src rand.Source) bench.Invoker {
	return &randInvoker{
		dur:  d,
		fail: fail,
		rand: rand.New(src)}
}

type randInvoker struct {
	mu   sync.Mutex
	dur  time.Duration
	fail float64
	rand *rand.Rand
}

func (r *randInvoker) draw() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var w time.Duration
	if ns := r.dur.Nanoseconds(); ns > 0 {
		w = time.Duration(r.rand.Int63n(ns))
	}
	return w, r.rand.Float64() < r.fail
}

func (r *randInvoker) Invoke(ctx context.Context, inv bench.Invocation) bench.Outcome {
	w, fail := r.draw()
	var timeout <-chan time.Time
	if inv.Timeout > 0 {
		t := time.NewTimer(inv.Timeout)
		defer t.Stop()
		timeout = t.C
	}
	alarm := time.NewTimer(w)
	defer alarm.Stop()
	o := bench.Outcome{Start: time.Now()}
	select {
	case <-alarm.C:
		o.Elapsed = time.Since(o.Start)
		if fail {
			o.ExitCode = 1
			o.Err = &bench.Error{Kind: bench.SolverNonZeroExit, Point: inv.Point, Trial: inv.Trial, ExitCode: 1}
		}
	case <-timeout:
		o.Elapsed = time.Since(o.Start)
		o.ExitCode = -1
		o.Err = &bench.Error{Kind: bench.SolverTimeout, Point: inv.Point, Trial: inv.Trial, ExitCode: -1,
			Err: fmt.Errorf("killed after %s", inv.Timeout)}
	case <-ctx.Done():
		o.Elapsed = time.Since(o.Start)
		o.ExitCode = -1
		o.Err = &bench.Error{Kind: bench.GridExhaustionIncomplete, Point: inv.Point, Trial: inv.Trial, ExitCode: -1,
			Err: ctx.Err()}
	}
	return o
}

func (r *randInvoker) String() string {
	return fmt.Sprintf("*randInvoker[%s]", r.dur)
}
