// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ElAdriano/parallel-solver/bench"
)

// WriteChart renders an html page to w with one line chart per method:
// mean time against thread count, one series per test case.
func WriteChart(w io.Writer, res *bench.Result) error {
	page := components.NewPage()
	page.PageTitle = "solver benchmark " + res.ID
	for _, t := range Partition(res) {
		page.AddCharts(lineChart(t))
	}
	return page.Render(w)
}

func lineChart(t Table) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    t.Method.Sheet(),
			Subtitle: "mean time of a single solution",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "threads"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	threads, cases, cells := grid(t)
	xs := make([]string, len(threads))
	for i, n := range threads {
		xs[i] = strconv.Itoa(n)
	}
	line.SetXAxis(xs)
	for _, c := range cases {
		data := make([]opts.LineData, len(threads))
		for i, n := range threads {
			v, ok := cells[[2]int{c.id, n}]
			if !ok {
				data[i] = opts.LineData{Value: "-"}
				continue
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(fmt.Sprintf("case %d n=%d", c.id, c.size), data)
	}
	return line
}

type chartCase struct {
	id, size int
}

// grid gives the sorted thread counts and test cases of t and the mean time
// of each (case, threads) cell.
func grid(t Table) ([]int, []chartCase, map[[2]int]float64) {
	cells := make(map[[2]int]float64, len(t.Rows))
	ts := make(map[int]bool)
	sizes := make(map[int]int)
	for _, r := range t.Rows {
		cells[[2]int{r.Case, r.Threads}] = r.ElapsedMs
		ts[r.Threads] = true
		sizes[r.Case] = r.Size
	}
	cases := make([]chartCase, 0, len(sizes))
	for id, n := range sizes {
		cases = append(cases, chartCase{id: id, size: n})
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].id < cases[j].id })
	return sortedKeys(ts), cases, cells
}

func sortedKeys(m map[int]bool) []int {
	res := make([]int, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Ints(res)
	return res
}
