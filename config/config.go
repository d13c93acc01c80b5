// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config loads the configuration of a benchmark run from a file,
// PSBENCH_* environment variables and command line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ElAdriano/parallel-solver/bench"
	"github.com/ElAdriano/parallel-solver/report"
)

const EnvPrefix = "PSBENCH"

// Config is the configuration of psbench.
type Config struct {
	// Solver is the path of the solver executable.
	Solver string `mapstructure:"solver" yaml:"solver"`
	// WorkDir is the directory the solver runs in; result artifacts land there.
	WorkDir string `mapstructure:"workdir" yaml:"workdir"`
	// Tests is the directory holding the test_package_<id> directories.
	Tests string      `mapstructure:"tests" yaml:"tests"`
	Cases CasesConfig `mapstructure:"cases" yaml:"cases"`
	// Threads is the largest thread count; thread counts 1..Threads are run.
	Threads     int           `mapstructure:"threads" yaml:"threads"`
	Methods     []string      `mapstructure:"methods" yaml:"methods"`
	Repetitions int           `mapstructure:"repetitions" yaml:"repetitions"`
	Iterations  int           `mapstructure:"iterations" yaml:"iterations"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// Runs is the directory run directories are created in.
	Runs    string        `mapstructure:"runs" yaml:"runs"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CasesConfig selects test cases From..To.  The size of a case is taken
// from Sizes, then from SizeStart + SizeStep*(id-From) when SizeStart is
// set, and otherwise from the number of rows of its coefficients file.
type CasesConfig struct {
	From      int         `mapstructure:"from" yaml:"from"`
	To        int         `mapstructure:"to" yaml:"to"`
	Sizes     map[int]int `mapstructure:"sizes" yaml:"sizes,omitempty"`
	SizeStart int         `mapstructure:"size_start" yaml:"size_start,omitempty"`
	SizeStep  int         `mapstructure:"size_step" yaml:"size_step,omitempty"`
}

type ReportConfig struct {
	// Workbook and Chart are paths relative to the run directory unless
	// absolute.  Empty disables the output.
	Workbook string `mapstructure:"workbook" yaml:"workbook"`
	Chart    string `mapstructure:"chart" yaml:"chart"`
	Labels   string `mapstructure:"labels" yaml:"labels"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// Default returns the configuration of the original benchmark: test cases
// 1..12, thread counts 1..4, both methods, 5 repetitions of 30 iterations.
func Default() Config {
	return Config{
		Solver:      "./main",
		WorkDir:     ".",
		Tests:       "../tests",
		Cases:       CasesConfig{From: 1, To: 12},
		Threads:     4,
		Methods:     []string{"jacobi", "gauss"},
		Repetitions: 5,
		Iterations:  30,
		Runs:        "runs",
		Report: ReportConfig{
			Workbook: "results.xlsx",
			Chart:    "results.html",
			Labels:   "pl"},
		Metrics: MetricsConfig{Textfile: "psbench.prom"},
		Log:     LogConfig{Level: "info"}}
}

// SetDefaults registers the values of Default with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("solver", d.Solver)
	v.SetDefault("workdir", d.WorkDir)
	v.SetDefault("tests", d.Tests)
	v.SetDefault("cases.from", d.Cases.From)
	v.SetDefault("cases.to", d.Cases.To)
	v.SetDefault("cases.size_start", d.Cases.SizeStart)
	v.SetDefault("cases.size_step", d.Cases.SizeStep)
	v.SetDefault("threads", d.Threads)
	v.SetDefault("methods", d.Methods)
	v.SetDefault("repetitions", d.Repetitions)
	v.SetDefault("iterations", d.Iterations)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("runs", d.Runs)
	v.SetDefault("report.workbook", d.Report.Workbook)
	v.SetDefault("report.chart", d.Report.Chart)
	v.SetDefault("report.labels", d.Report.Labels)
	v.SetDefault("metrics.textfile", d.Metrics.Textfile)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
}

// Load reads file, if not empty, and the environment into v and decodes
// and validates the result.  Flags bound to v before Load take precedence.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if e := v.ReadInConfig(); e != nil {
			return nil, fmt.Errorf("read config %s: %w", file, e)
		}
	}
	cfg := &Config{}
	if e := v.Unmarshal(cfg); e != nil {
		return nil, fmt.Errorf("decode config: %w", e)
	}
	if e := cfg.Validate(); e != nil {
		return nil, fmt.Errorf("invalid config: %w", e)
	}
	return cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Solver == "" {
		return fmt.Errorf("solver must be set")
	}
	if c.Cases.From < 1 {
		return fmt.Errorf("cases.from must be >= 1, got %d", c.Cases.From)
	}
	if c.Cases.To < c.Cases.From {
		return fmt.Errorf("cases.to (%d) must be >= cases.from (%d)", c.Cases.To, c.Cases.From)
	}
	if c.Cases.SizeStart < 0 || (c.Cases.SizeStart > 0 && c.Cases.SizeStep < 0) {
		return fmt.Errorf("cases.size_start (%d) and cases.size_step (%d) must not be negative",
			c.Cases.SizeStart, c.Cases.SizeStep)
	}
	for id, n := range c.Cases.Sizes {
		if n < 1 {
			return fmt.Errorf("cases.sizes[%d] must be >= 1, got %d", id, n)
		}
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	if _, e := c.ParsedMethods(); e != nil {
		return e
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("repetitions must be >= 1, got %d", c.Repetitions)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Iterations)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}
	if _, e := report.LabelsFor(c.Report.Labels); e != nil {
		return fmt.Errorf("report.labels: %w", e)
	}
	if _, e := zapcore.ParseLevel(c.Log.Level); e != nil {
		return fmt.Errorf("log.level: %w", e)
	}
	return nil
}

// ParsedMethods returns the configured methods.
func (c *Config) ParsedMethods() ([]bench.Method, error) {
	if len(c.Methods) == 0 {
		return nil, fmt.Errorf("methods must not be empty")
	}
	ms, e := bench.ParseMethods(c.Methods)
	if e != nil {
		return nil, fmt.Errorf("methods: %w", e)
	}
	return ms, nil
}

// CaseSizes returns the explicit sizes of the configured test cases, nil
// when sizes are to be read from the fixtures.
func (c *Config) CaseSizes() map[int]int {
	res := make(map[int]int)
	if c.Cases.SizeStart > 0 {
		res = bench.LinearSizes(c.Cases.From, c.Cases.To, c.Cases.SizeStart, c.Cases.SizeStep)
	}
	for id, n := range c.Cases.Sizes {
		res[id] = n
	}
	if len(res) == 0 {
		return nil
	}
	return res
}
