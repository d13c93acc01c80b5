// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ElAdriano/parallel-solver/bench"
	"github.com/ElAdriano/parallel-solver/config"
	"github.com/ElAdriano/parallel-solver/internal/logging"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"solver":           "solver",
	"workdir":          "workdir",
	"tests":            "tests",
	"from":             "cases.from",
	"to":               "cases.to",
	"size-start":       "cases.size_start",
	"size-step":        "cases.size_step",
	"threads":          "threads",
	"methods":          "methods",
	"repetitions":      "repetitions",
	"iterations":       "iterations",
	"timeout":          "timeout",
	"runs":             "runs",
	"out":              "report.workbook",
	"chart":            "report.chart",
	"labels":           "report.labels",
	"metrics-textfile": "metrics.textfile",
	"log-level":        "log.level",
	"log-dev":          "log.development"}

type app struct {
	v       *viper.Viper
	cfgFile string
}

func main() {
	root := newRootCmd()
	if e := root.Execute(); e != nil {
		fmt.Fprintf(os.Stderr, "psbench: %v\n", e)
		os.Exit(exitCode(e))
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "psbench",
		Short: "Benchmark a Jacobi / Gauss-Seidel solver",
		Long: `psbench runs a linear system solver over a grid of test packages,
methods and thread counts, averages repeated timings and reports one
sheet per method.`,
		SilenceUsage:  true,
		SilenceErrors: true}
	root.CompletionOptions.DisableDefaultCmd = true

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "configuration file")
	pf.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	pf.Bool("log-dev", d.Log.Development, "human readable development logging")

	root.AddCommand(a.newRunCmd(), a.newReportCmd(), a.newGridCmd(), a.newGenCmd())
	return root
}

// load binds the flags of cmd and loads the configuration and the logger.
func (a *app) load(cmd *cobra.Command) (*config.Config, logr.Logger, error) {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = a.v.BindPFlag(key, f)
	})
	if err != nil {
		return nil, logr.Discard(), err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return nil, logr.Discard(), err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, logr.Discard(), err
	}
	logging.SetDefault(log)
	return cfg, log.WithName(cmd.Name()), nil
}

func addCaseFlags(f *pflag.FlagSet) {
	d := config.Default()
	f.String("tests", d.Tests, "directory holding the test_package_<id> directories")
	f.Int("from", d.Cases.From, "first test package id")
	f.Int("to", d.Cases.To, "last test package id")
	f.Int("size-start", d.Cases.SizeStart, "size of the first test package, 0 to count rows")
	f.Int("size-step", d.Cases.SizeStep, "size increment between test packages")
}

func addGridFlags(f *pflag.FlagSet) {
	d := config.Default()
	addCaseFlags(f)
	f.String("solver", d.Solver, "solver executable")
	f.String("workdir", d.WorkDir, "directory the solver runs in")
	f.Int("threads", d.Threads, "run thread counts 1..threads")
	f.StringSlice("methods", d.Methods, "methods to run")
	f.Int("repetitions", d.Repetitions, "invocations averaged per grid point")
	f.Int("iterations", d.Iterations, "solver iterations per invocation")
}

func addReportFlags(f *pflag.FlagSet) {
	d := config.Default()
	f.String("out", d.Report.Workbook, "workbook, relative to the run directory; empty for none")
	f.String("chart", d.Report.Chart, "html chart, relative to the run directory; empty for none")
	f.String("labels", d.Report.Labels, "workbook header language (pl, en)")
}

func exitCode(e error) int {
	switch {
	case errors.Is(e, bench.GridExhaustionIncomplete):
		return 3
	case errors.Is(e, bench.SolverLaunchFailure):
		return 2
	}
	return 1
}
