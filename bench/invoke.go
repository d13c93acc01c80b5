// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Invocation is one execution of the solver for a grid point.
type Invocation struct {
	Point   Point
	Trial   int
	Args    []string
	Timeout time.Duration
}

// Outcome is what became of an Invocation.  Err is nil on success and
// otherwise an *Error.
type Outcome struct {
	Start    time.Time
	Elapsed  time.Duration
	ExitCode int
	Err      error
}

// Invoker runs invocations.  Invoke blocks until the invocation is over.
type Invoker interface {
	Invoke(ctx context.Context, inv Invocation) Outcome
}

// ExecInvoker runs Solver as an external process in Dir.
//
// If LogDir is not empty, the standard output and error of every
// invocation are kept there.
type ExecInvoker struct {
	Solver string
	Dir    string
	LogDir string
}

func (x *ExecInvoker) Invoke(ctx context.Context, inv Invocation) Outcome {
	fail := func(k ErrorKind, code int, e error) *Error {
		return &Error{Kind: k, Point: inv.Point, Trial: inv.Trial, ExitCode: code, Err: e}
	}
	out, err, e := x.outputs(inv)
	if e != nil {
		return Outcome{ExitCode: -1, Err: fail(SolverLaunchFailure, -1, e)}
	}
	defer closeAll(out, err)

	ictx := ctx
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ictx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ictx, x.Solver, inv.Args...)
	cmd.Dir = x.Dir
	if out != nil {
		cmd.Stdout = out
	}
	if err != nil {
		cmd.Stderr = err
	}

	o := Outcome{Start: time.Now()}
	if e := cmd.Start(); e != nil {
		o.ExitCode = -1
		if ctx.Err() != nil {
			o.Err = fail(GridExhaustionIncomplete, -1, ctx.Err())
			return o
		}
		o.Err = fail(SolverLaunchFailure, -1, e)
		return o
	}
	we := cmd.Wait()
	o.Elapsed = time.Since(o.Start)
	o.ExitCode = cmd.ProcessState.ExitCode()
	switch {
	case we == nil:
		// exited 0, even if a deadline passed meanwhile
	case ctx.Err() != nil:
		o.Err = fail(GridExhaustionIncomplete, o.ExitCode, ctx.Err())
	case ictx.Err() == context.DeadlineExceeded:
		o.Err = fail(SolverTimeout, o.ExitCode, fmt.Errorf("killed after %s", inv.Timeout))
	default:
		var ee *exec.ExitError
		if !errors.As(we, &ee) {
			o.Err = fail(SolverLaunchFailure, o.ExitCode, we)
			break
		}
		o.Err = fail(SolverNonZeroExit, o.ExitCode, nil)
	}
	return o
}

func (x *ExecInvoker) outputs(inv Invocation) (out, err *os.File, e error) {
	if x.LogDir == "" {
		return nil, nil, nil
	}
	base := filepath.Join(x.LogDir, logName(inv))
	out, e = os.OpenFile(base+".out", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if e != nil {
		return nil, nil, e
	}
	err, e = os.OpenFile(base+".err", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if e != nil {
		out.Close()
		return nil, nil, e
	}
	return out, err, nil
}

func logName(inv Invocation) string {
	p := inv.Point
	return fmt.Sprintf("case-%d-%s-t%d-r%d", p.Case.ID, p.Method.Arg(), p.Threads, inv.Trial)
}

func closeAll(fs ...*os.File) {
	for _, f := range fs {
		if f != nil {
			f.Close()
		}
	}
}
