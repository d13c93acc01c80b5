// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for solver test packages.
//
// Package gen also supplies a random invoker, which reports
// random durations without running a solver.
package gen
