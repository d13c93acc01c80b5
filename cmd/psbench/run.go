// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ElAdriano/parallel-solver/bench"
	"github.com/ElAdriano/parallel-solver/config"
	"github.com/ElAdriano/parallel-solver/gen"
	"github.com/ElAdriano/parallel-solver/metrics"
)

func (a *app) newRunCmd() *cobra.Command {
	var (
		name     string
		simulate time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the solver over the grid and report the timings",
		Long: `run checks the test packages, invokes the solver for every test package,
method and thread count, and writes a run directory holding the manifest,
the result, the solver outputs, the workbook, the chart and the metrics.

A non-zero solver exit or a timeout leaves a gap in the results and the run
goes on.  A solver which cannot be started or an interrupt stops the run;
what was measured so far is still saved and reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd.OutOrStdout(), cfg, log, name, simulate)
		}}
	d := config.Default()
	f := cmd.Flags()
	addGridFlags(f)
	addReportFlags(f)
	f.Duration("timeout", d.Timeout, "per invocation timeout, 0 for none")
	f.String("runs", d.Runs, "directory holding run directories")
	f.String("metrics-textfile", d.Metrics.Textfile, "metrics file, relative to the run directory; empty for none")
	f.StringVar(&name, "name", "", "name of the run directory (default start time)")
	f.DurationVar(&simulate, "simulate", 0, "do not invoke the solver, report random durations below this")
	return cmd
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, log logr.Logger, name string, simulate time.Duration) error {
	g, err := buildGrid(cfg)
	if err != nil {
		return err
	}
	for _, tc := range g.Cases {
		if e := bench.CheckFixture(tc); e != nil {
			return fmt.Errorf("preflight: %w", e)
		}
	}
	hashes, err := bench.HashFixtures(g.Cases)
	if err != nil {
		return err
	}
	solver, err := solverPath(cfg.Solver)
	if err != nil {
		return err
	}
	workDir, err := filepath.Abs(cfg.WorkDir)
	if err != nil {
		return err
	}
	if name == "" {
		name = time.Now().Format("20060102-150405")
	}
	m := bench.NewManifest(name, solver, g, cfg.Repetitions, cfg.Iterations, cfg.Timeout)
	m.WorkDir = workDir
	m.Hashes = hashes
	if err := os.MkdirAll(cfg.Runs, 0755); err != nil {
		return err
	}
	rd, err := bench.CreateRunDir(cfg.Runs, m)
	if err != nil {
		return err
	}
	log.Info("created run directory", "dir", rd.Root, "points", g.Len())

	var inv bench.Invoker = &bench.ExecInvoker{Solver: solver, Dir: workDir, LogDir: rd.LogDir()}
	if simulate > 0 {
		log.Info("simulating solver", "max", simulate)
		inv = gen.RandInvoker(simulate, 0)
	}
	rec := metrics.NewRecorder()
	r := &bench.Runner{
		Invoker:     inv,
		Repetitions: cfg.Repetitions,
		Iterations:  cfg.Iterations,
		Timeout:     cfg.Timeout,
		Observer:    rec,
		Log:         log}
	res, runErr := r.Run(ctx, g)
	if res == nil {
		return runErr
	}
	errs := []error{runErr}
	if e := rd.Save(res); e != nil {
		errs = append(errs, fmt.Errorf("save result: %w", e))
	}
	if e := writeReports(rd, cfg.Report, log); e != nil {
		errs = append(errs, e)
	}
	if p := rd.Path(cfg.Metrics.Textfile); p != "" {
		if e := rec.WriteTextfile(p); e != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", e))
		} else {
			log.Info("wrote metrics", "path", p)
		}
	}
	printSummary(w, res)
	return errors.Join(errs...)
}

func buildGrid(cfg *config.Config) (*bench.Grid, error) {
	methods, err := cfg.ParsedMethods()
	if err != nil {
		return nil, err
	}
	tests, err := filepath.Abs(cfg.Tests)
	if err != nil {
		return nil, err
	}
	cases, err := bench.LoadCases(tests, cfg.Cases.From, cfg.Cases.To, cfg.CaseSizes())
	if err != nil {
		return nil, err
	}
	return bench.NewGrid(cases, methods, cfg.Threads)
}

// solverPath makes a solver path absolute, since the solver runs in the
// work directory.  A bare name is left to the PATH lookup.
func solverPath(s string) (string, error) {
	if !strings.ContainsRune(s, filepath.Separator) && !strings.ContainsRune(s, '/') {
		return s, nil
	}
	return filepath.Abs(s)
}
