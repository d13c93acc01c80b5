// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package report turns a finished bench.Result into per method tables and
// exports them as a workbook, a console summary and an html chart.
//
// Values are taken from the records as the runner produced them.  Nothing
// in this package averages timings.
package report
