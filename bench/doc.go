// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench provides benchmarking of an external linear system solver.
//
// Package bench addresses the needs of solver benchmarking by:
//
// 1. locating the numbered test packages (coefficients.txt, y_values.txt)
// the solver reads and determining the size of each system.
//
// 2. enumerating the grid of (test case, method, thread count) points.
//
// 3. invoking the solver once per repetition of every point, sequentially,
// enforcing an optional timeout and recording wall clock times.
//
// 4. averaging repetitions exactly once into a TimingRecord and recording
// failed points as explicit gaps.
//
// 5. providing a run directory format so that results can be reported
// again after the fact.
package bench
