// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"github.com/ElAdriano/parallel-solver/bench"
)

// Row is one record of a Table.
type Row struct {
	Case      int
	Threads   int
	Size      int
	ElapsedMs float64
	TotalMs   float64
	Trials    int
}

// Table holds the rows of one method in the order they were recorded.
type Table struct {
	Method bench.Method
	Rows   []Row
}

// Partition splits the records of res by method.  There is one table per
// method of bench.Methods(), possibly empty, in that order.
func Partition(res *bench.Result) []Table {
	ms := bench.Methods()
	tables := make([]Table, len(ms))
	idx := make(map[bench.Method]int, len(ms))
	for i, m := range ms {
		tables[i].Method = m
		idx[m] = i
	}
	for _, rec := range res.Records {
		i, ok := idx[rec.Method]
		if !ok {
			continue
		}
		tables[i].Rows = append(tables[i].Rows, Row{
			Case:      rec.Case,
			Threads:   rec.Threads,
			Size:      rec.Size,
			ElapsedMs: rec.ElapsedMs,
			TotalMs:   rec.TotalMs,
			Trials:    rec.Trials})
	}
	return tables
}

// Speedup gives, for each row of t, the ratio of the mean time of the row
// with 1 thread and the same test case to the row's mean time.  The ratio
// is 0 when there is no such row.
func Speedup(t Table) []float64 {
	base := make(map[int]float64)
	for _, r := range t.Rows {
		if r.Threads == 1 {
			base[r.Case] = r.ElapsedMs
		}
	}
	res := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		b, ok := base[r.Case]
		if !ok || r.ElapsedMs == 0 {
			continue
		}
		res[i] = b / r.ElapsedMs
	}
	return res
}
