// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElAdriano/parallel-solver/bench"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	d := Default()
	assert.Equal(t, d.Solver, cfg.Solver)
	assert.Equal(t, 1, cfg.Cases.From)
	assert.Equal(t, 12, cfg.Cases.To)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, 5, cfg.Repetitions)
	assert.Equal(t, 30, cfg.Iterations)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, []string{"jacobi", "gauss"}, cfg.Methods)
	assert.Nil(t, cfg.CaseSizes())
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	p := filepath.Join(t.TempDir(), "psbench.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
solver: /opt/solver/main
threads: 8
methods: [gauss]
timeout: 90s
cases:
  from: 2
  to: 3
  sizes:
    "2": 9
report:
  labels: en
`), 0644))
	t.Setenv("PSBENCH_REPETITIONS", "3")
	t.Setenv("PSBENCH_THREADS", "6")

	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	fs.Int("iterations", 30, "")
	require.NoError(t, fs.Parse([]string{"--iterations", "50"}))
	v := viper.New()
	require.NoError(t, v.BindPFlag("iterations", fs.Lookup("iterations")))

	cfg, err := Load(v, p)
	require.NoError(t, err)
	assert.Equal(t, "/opt/solver/main", cfg.Solver)
	assert.Equal(t, 6, cfg.Threads, "env overrides file")
	assert.Equal(t, 3, cfg.Repetitions)
	assert.Equal(t, 50, cfg.Iterations)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, "en", cfg.Report.Labels)
	assert.Equal(t, map[int]int{2: 9}, cfg.CaseSizes())

	ms, err := cfg.ParsedMethods()
	require.NoError(t, err)
	assert.Equal(t, []bench.Method{bench.GaussSeidel}, ms)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCaseSizesLinear(t *testing.T) {
	cfg := Default()
	cfg.Cases.SizeStart = 5
	cfg.Cases.SizeStep = 2
	cfg.Cases.Sizes = map[int]int{3: 100}
	sz := cfg.CaseSizes()
	assert.Len(t, sz, 12)
	assert.Equal(t, 5, sz[1])
	assert.Equal(t, 7, sz[2])
	assert.Equal(t, 100, sz[3])
	assert.Equal(t, 27, sz[12])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no solver", func(c *Config) { c.Solver = "" }},
		{"zero from", func(c *Config) { c.Cases.From = 0 }},
		{"to before from", func(c *Config) { c.Cases.To = 0 }},
		{"negative size start", func(c *Config) { c.Cases.SizeStart = -1 }},
		{"bad size", func(c *Config) { c.Cases.Sizes = map[int]int{1: 0} }},
		{"zero threads", func(c *Config) { c.Threads = 0 }},
		{"no methods", func(c *Config) { c.Methods = nil }},
		{"unknown method", func(c *Config) { c.Methods = []string{"sor"} }},
		{"duplicate method", func(c *Config) { c.Methods = []string{"gauss", "gs"} }},
		{"zero repetitions", func(c *Config) { c.Repetitions = 0 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"unknown labels", func(c *Config) { c.Report.Labels = "de" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			require.NoError(t, c.Validate())
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}
