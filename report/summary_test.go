// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ElAdriano/parallel-solver/bench"
)

var _ = Describe("Summary", func() {
	It("lists every method with speedups", func() {
		s := Summary(sampleResult(5))
		Expect(s).To(ContainSubstring("Run sample: 8 records, 0 failures, complete, 5 repetitions per point"))
		Expect(s).To(ContainSubstring("Jacobi (JACOBI)"))
		Expect(s).To(ContainSubstring("Gauss-Seidel (GAUSS)"))
		Expect(s).To(ContainSubstring("2.00x"))
	})

	It("shows failures and missing points", func() {
		res := sampleResult(1)
		res.Records = res.Records[:2]
		res.Failures = []bench.Failure{{
			Case: 1, Threads: 1, Size: 5, Method: bench.GaussSeidel,
			Kind: bench.SolverTimeout, Message: "killed after 1s"}}
		res.Complete = false
		s := Summary(res)
		Expect(s).To(ContainSubstring("INCOMPLETE (5 of 8 points missing)"))
		Expect(s).To(ContainSubstring("case 1 (n=5) GAUSS threads=1 trial 0: SolverTimeout: killed after 1s"))
	})
})

var _ = Describe("WriteChart", func() {
	It("renders a line chart per method", func() {
		var buf bytes.Buffer
		Expect(WriteChart(&buf, sampleResult(1))).To(Succeed())
		html := buf.String()
		Expect(html).To(ContainSubstring("Gauss-Seidel"))
		Expect(html).To(ContainSubstring("case 2 n=7"))
	})

	It("draws a series for each test case of equal size", func() {
		res := sampleResult(1)
		for i := range res.Records {
			res.Records[i].Size = 5
		}
		var buf bytes.Buffer
		Expect(WriteChart(&buf, res)).To(Succeed())
		html := buf.String()
		Expect(html).To(ContainSubstring("case 1 n=5"))
		Expect(html).To(ContainSubstring("case 2 n=5"))
	})
})
