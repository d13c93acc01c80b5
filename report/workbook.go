// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ElAdriano/parallel-solver/bench"
	"github.com/ElAdriano/parallel-solver/internal/logging"
)

const defaultSheet = "Sheet1"

// WriteWorkbook writes res as an xlsx workbook at path with one sheet per
// method, plus a failures sheet when some points failed.  When res is not
// complete every sheet is marked with l.Incomplete.
func WriteWorkbook(path string, res *bench.Result, l LabelSet) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, e := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if e != nil {
		return e
	}
	for i, t := range Partition(res) {
		nm := t.Method.Sheet()
		if i == 0 {
			e = f.SetSheetName(defaultSheet, nm)
		} else {
			_, e = f.NewSheet(nm)
		}
		if e != nil {
			return fmt.Errorf("sheet %s: %w", nm, e)
		}
		if e := writeTable(f, nm, t, res, l, bold); e != nil {
			return fmt.Errorf("sheet %s: %w", nm, e)
		}
		logging.Default().V(1).Info("wrote sheet", "sheet", nm, "rows", len(t.Rows))
	}
	if len(res.Failures) > 0 {
		if _, e := f.NewSheet(l.Failures); e != nil {
			return e
		}
		if e := writeFailures(f, l.Failures, res, l, bold); e != nil {
			return fmt.Errorf("sheet %s: %w", l.Failures, e)
		}
	}
	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

func writeTable(f *excelize.File, sheet string, t Table, res *bench.Result, l LabelSet, style int) error {
	hdr := l.Header(res.Repetitions)
	if e := writeHeader(f, sheet, hdr, res, l, style); e != nil {
		return e
	}
	for i, r := range t.Rows {
		var row []interface{}
		if res.Repetitions > 1 {
			row = []interface{}{r.Threads, r.Size, r.TotalMs, r.ElapsedMs}
		} else {
			row = []interface{}{r.Threads, r.Size, r.ElapsedMs}
		}
		if e := setRow(f, sheet, i+2, row); e != nil {
			return e
		}
	}
	return nil
}

func writeFailures(f *excelize.File, sheet string, res *bench.Result, l LabelSet, style int) error {
	if e := writeHeader(f, sheet, l.FailureHeader(), res, l, style); e != nil {
		return e
	}
	for i, fl := range res.Failures {
		row := []interface{}{fl.Method.Sheet(), fl.Threads, fl.Size, fl.Trial, fl.Kind.String(), fl.ExitCode, fl.Message}
		if e := setRow(f, sheet, i+2, row); e != nil {
			return e
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, hdr []string, res *bench.Result, l LabelSet, style int) error {
	row := make([]interface{}, len(hdr))
	for i, h := range hdr {
		row[i] = h
	}
	if e := setRow(f, sheet, 1, row); e != nil {
		return e
	}
	last, e := excelize.CoordinatesToCellName(len(hdr), 1)
	if e != nil {
		return e
	}
	if e := f.SetCellStyle(sheet, "A1", last, style); e != nil {
		return e
	}
	if res.Complete {
		return nil
	}
	mark, e := excelize.CoordinatesToCellName(len(hdr)+2, 1)
	if e != nil {
		return e
	}
	return f.SetCellValue(sheet, mark, l.Incomplete)
}

func setRow(f *excelize.File, sheet string, n int, row []interface{}) error {
	cell, e := excelize.CoordinatesToCellName(1, n)
	if e != nil {
		return e
	}
	return f.SetSheetRow(sheet, cell, &row)
}
