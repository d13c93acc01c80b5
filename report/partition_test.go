// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ElAdriano/parallel-solver/bench"
)

var _ = Describe("Partition", func() {
	It("puts every record in exactly one table", func() {
		res := sampleResult(1)
		tables := Partition(res)
		Expect(tables).To(HaveLen(2))
		n := 0
		for _, t := range tables {
			n += len(t.Rows)
		}
		Expect(n).To(Equal(len(res.Records)))
	})

	It("orders tables by method and keeps insertion order in each", func() {
		tables := Partition(sampleResult(1))
		Expect(tables[0].Method).To(Equal(bench.Jacobi))
		Expect(tables[1].Method).To(Equal(bench.GaussSeidel))
		Expect(tables[0].Rows).To(Equal([]Row{
			{Case: 1, Threads: 1, Size: 5, ElapsedMs: 100, TotalMs: 100, Trials: 1},
			{Case: 1, Threads: 2, Size: 5, ElapsedMs: 50, TotalMs: 50, Trials: 1},
			{Case: 2, Threads: 1, Size: 7, ElapsedMs: 200, TotalMs: 200, Trials: 1},
			{Case: 2, Threads: 2, Size: 7, ElapsedMs: 125, TotalMs: 125, Trials: 1},
		}))
		Expect(tables[1].Rows[3].ElapsedMs).To(Equal(90.0))
	})

	It("does not recompute the values of the records", func() {
		res := sampleResult(5)
		res.Records[0].TotalMs = 12345
		t := Partition(res)[0]
		Expect(t.Rows[0].TotalMs).To(Equal(12345.0))
		Expect(t.Rows[0].ElapsedMs).To(Equal(100.0))
	})

	It("gives empty tables for methods without records", func() {
		res := sampleResult(1)
		res.Records = res.Records[:2]
		tables := Partition(res)
		Expect(tables[0].Rows).To(HaveLen(2))
		Expect(tables[1].Rows).To(BeEmpty())
	})
})

var _ = Describe("Speedup", func() {
	It("compares each row with the single thread row of its test case", func() {
		sp := Speedup(Partition(sampleResult(1))[0])
		Expect(sp).To(HaveLen(4))
		Expect(sp[0]).To(BeNumerically("~", 1.0))
		Expect(sp[1]).To(BeNumerically("~", 2.0))
		Expect(sp[3]).To(BeNumerically("~", 1.6))
	})

	It("keeps test cases of equal size apart", func() {
		t := Table{Method: bench.Jacobi, Rows: []Row{
			{Case: 1, Threads: 1, Size: 5, ElapsedMs: 100},
			{Case: 1, Threads: 2, Size: 5, ElapsedMs: 50},
			{Case: 2, Threads: 1, Size: 5, ElapsedMs: 400},
			{Case: 2, Threads: 2, Size: 5, ElapsedMs: 200},
		}}
		Expect(Speedup(t)).To(Equal([]float64{1, 2, 1, 2}))
	})

	It("is zero without a single thread row", func() {
		t := Table{Method: bench.Jacobi, Rows: []Row{{Threads: 2, Size: 5, ElapsedMs: 10}}}
		Expect(Speedup(t)).To(Equal([]float64{0}))
	})
})
