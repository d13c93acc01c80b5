// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"fmt"
	"strings"

	"github.com/ElAdriano/parallel-solver/bench"
)

const (
	sumRule = "-----------------------------------------------------------------------"
	sumHdr  = "| threads | unknowns | mean [ms]      | total [ms]      | speedup      |"
	sumRow  = "| %-7d | %-8d | %14.3f | %15.3f | %-12s |"
)

// Summary produces a text table of every method of res, followed by the
// failed points.
func Summary(res *bench.Result) string {
	parts := make([]string, 0, 8)
	state := "complete"
	if !res.Complete {
		state = fmt.Sprintf("INCOMPLETE (%d of %d points missing)", res.Missing(), res.Planned)
	}
	parts = append(parts, fmt.Sprintf("Run %s: %d records, %d failures, %s, %d repetitions per point",
		res.ID, len(res.Records), len(res.Failures), state, res.Repetitions))

	for _, t := range Partition(res) {
		parts = append(parts, "", fmt.Sprintf("%s (%s)", t.Method.Sheet(), t.Method), sumRule, sumHdr, sumRule)
		sp := Speedup(t)
		for i, r := range t.Rows {
			s := "-"
			if sp[i] != 0 {
				s = fmt.Sprintf("%.2fx", sp[i])
			}
			parts = append(parts, fmt.Sprintf(sumRow, r.Threads, r.Size, r.ElapsedMs, r.TotalMs, s))
		}
		parts = append(parts, sumRule)
	}
	if len(res.Failures) > 0 {
		parts = append(parts, "", "Failures")
		parts = append(parts, Failures(res)...)
	}
	return strings.Join(parts, "\n")
}

// Failures lists the failed points of res, one line each.
func Failures(res *bench.Result) []string {
	lines := make([]string, 0, len(res.Failures))
	for _, f := range res.Failures {
		ln := fmt.Sprintf("  case %d (n=%d) %s threads=%d trial %d: %s", f.Case, f.Size, f.Method, f.Threads, f.Trial, f.Kind)
		if f.Kind == bench.SolverNonZeroExit {
			ln += fmt.Sprintf(" (exit status %d)", f.ExitCode)
		}
		if f.Message != "" {
			ln += ": " + f.Message
		}
		lines = append(lines, ln)
	}
	return lines
}
