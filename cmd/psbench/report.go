// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ElAdriano/parallel-solver/bench"
	"github.com/ElAdriano/parallel-solver/config"
	"github.com/ElAdriano/parallel-solver/report"
)

var (
	bold   = color.New(color.Bold)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

func (a *app) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <run-dir>",
		Short: "Rewrite the workbook and chart of a run directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			if !bench.IsRunDir(args[0]) {
				return fmt.Errorf("%s is not a run directory", args[0])
			}
			rd, err := bench.OpenRunDir(args[0])
			if err != nil {
				return err
			}
			log.Info("opened run", "dir", rd.Root, "id", rd.Result.ID, "complete", rd.Result.Complete)
			if err := writeReports(rd, cfg.Report, log); err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), rd.Result)
			return nil
		}}
	addReportFlags(cmd.Flags())
	return cmd
}

func writeReports(rd *bench.RunDir, rc config.ReportConfig, log logr.Logger) error {
	res := rd.Result
	l, err := report.LabelsFor(rc.Labels)
	if err != nil {
		return err
	}
	if p := rd.Path(rc.Workbook); p != "" {
		if err := report.WriteWorkbook(p, res, l); err != nil {
			return fmt.Errorf("workbook: %w", err)
		}
		log.Info("wrote workbook", "path", p)
	}
	if p := rd.Path(rc.Chart); p != "" {
		f, err := os.Create(p)
		if err != nil {
			return fmt.Errorf("chart: %w", err)
		}
		if err := report.WriteChart(f, res); err != nil {
			f.Close()
			return fmt.Errorf("chart: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info("wrote chart", "path", p)
	}
	return nil
}

func printSummary(w io.Writer, res *bench.Result) {
	fmt.Fprintln(w, report.Summary(res))
	if len(res.Failures) > 0 {
		red.Fprintf(w, "%d of %d grid points failed\n", len(res.Failures), res.Planned)
	}
	if !res.Complete {
		yellow.Fprintf(w, "incomplete: %d of %d grid points covered\n", res.Covered(), res.Planned)
		return
	}
	bold.Fprintf(w, "%d grid points done in %s\n", res.Planned, res.Dur)
}
