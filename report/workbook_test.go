// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/ElAdriano/parallel-solver/bench"
)

func readSheets(path string) map[string][][]string {
	f, err := excelize.OpenFile(path)
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()
	res := make(map[string][][]string)
	for _, nm := range f.GetSheetList() {
		rows, err := f.GetRows(nm)
		Expect(err).NotTo(HaveOccurred())
		res[nm] = rows
	}
	return res
}

var _ = Describe("WriteWorkbook", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "wyniki.xlsx")
	})

	It("writes one sheet per method with total and mean columns", func() {
		Expect(WriteWorkbook(path, sampleResult(5), PolishLabels)).To(Succeed())
		sheets := readSheets(path)
		Expect(sheets).To(HaveLen(2))

		jacobi := sheets["Jacobi"]
		Expect(jacobi).To(HaveLen(5))
		Expect(jacobi[0]).To(Equal([]string{
			"Liczba wątków",
			"Liczba niewiadomych",
			"Czas wykonywania 5 rozwiązań układu równań [ms]",
			"Średni czas pojedynczego rozwiązania układu [ms]"}))
		Expect(jacobi[1]).To(Equal([]string{"1", "5", "500", "100"}))
		Expect(jacobi[4]).To(Equal([]string{"2", "7", "625", "125"}))

		gauss := sheets["Gauss-Seidel"]
		Expect(gauss).To(HaveLen(5))
		Expect(gauss[2]).To(Equal([]string{"2", "5", "200", "40"}))
	})

	It("writes a single time column for one repetition", func() {
		Expect(WriteWorkbook(path, sampleResult(1), EnglishLabels)).To(Succeed())
		jacobi := readSheets(path)["Jacobi"]
		Expect(jacobi[0]).To(Equal([]string{"Threads", "Unknowns", "Execution time [ms]"}))
		Expect(jacobi[2]).To(Equal([]string{"2", "5", "50"}))
	})

	It("reports failures and marks incomplete results", func() {
		res := sampleResult(1)
		res.Records = res.Records[:3]
		res.Failures = []bench.Failure{{
			Case: 1, Threads: 2, Size: 5, Method: bench.GaussSeidel,
			Kind: bench.SolverNonZeroExit, ExitCode: 254}}
		res.Complete = false

		Expect(WriteWorkbook(path, res, EnglishLabels)).To(Succeed())
		sheets := readSheets(path)
		Expect(sheets).To(HaveKey("Failures"))
		Expect(sheets["Failures"][1]).To(Equal([]string{"Gauss-Seidel", "2", "5", "0", "SolverNonZeroExit", "254"}))
		Expect(sheets["Jacobi"][0]).To(ContainElement("INCOMPLETE RESULTS"))
		Expect(sheets["Gauss-Seidel"]).To(HaveLen(2))
	})
})

var _ = Describe("LabelsFor", func() {
	It("knows polish and english", func() {
		Expect(LabelsFor("pl")).To(Equal(PolishLabels))
		Expect(LabelsFor("EN")).To(Equal(EnglishLabels))
		_, err := LabelsFor("de")
		Expect(err).To(HaveOccurred())
	})
})
