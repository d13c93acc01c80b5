// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest describes how a run was made.
type Manifest struct {
	Name        string            `yaml:"name"`
	Solver      string            `yaml:"solver"`
	WorkDir     string            `yaml:"workdir"`
	Arch        string            `yaml:"arch"`
	Os          string            `yaml:"os"`
	NumCPU      int               `yaml:"ncpu"`
	Start       time.Time         `yaml:"start"`
	Timeout     time.Duration     `yaml:"timeout"`
	Repetitions int               `yaml:"repetitions"`
	Iterations  int               `yaml:"iterations"`
	Threads     int               `yaml:"threads"`
	Methods     []Method          `yaml:"methods"`
	Cases       []TestCase        `yaml:"cases"`
	Hashes      map[string]string `yaml:"hashes,omitempty"`
	Env         map[string]string `yaml:"env,omitempty"`
}

// NewManifest fills in a manifest for a run of solver over g with the host
// information of the current process.
func NewManifest(name, solver string, g *Grid, reps, iters int, timeout time.Duration) *Manifest {
	m := &Manifest{
		Name:        name,
		Solver:      solver,
		Arch:        runtime.GOARCH,
		Os:          runtime.GOOS,
		NumCPU:      runtime.NumCPU(),
		Start:       time.Now(),
		Timeout:     timeout,
		Repetitions: reps,
		Iterations:  iters,
		Threads:     g.Threads,
		Methods:     g.Methods,
		Cases:       g.Cases,
		Env:         make(map[string]string)}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, "PSBENCH_") {
			continue
		}
		m.Env[k] = v
	}
	return m
}

// RunDir is a directory holding a manifest, the result of the run and the
// outputs of every invocation.
type RunDir struct {
	Root     string
	Manifest *Manifest
	Result   *Result
}

// IsRunDir tests whether or not root looks like a run directory.
func IsRunDir(root string) bool {
	for _, p := range []string{root, manifestPath(root), resultPath(root)} {
		if _, e := os.Stat(p); e != nil {
			return false
		}
	}
	return true
}

// CreateRunDir creates the run directory for m below parent.  The name of
// the run must not contain a directory and must not exist yet.
func CreateRunDir(parent string, m *Manifest) (*RunDir, error) {
	d, fn := filepath.Split(m.Name)
	if d != "" || fn == "" {
		return nil, fmt.Errorf("run name %q should be a plain name", m.Name)
	}
	root := filepath.Join(parent, fn)
	if _, e := os.Stat(root); e == nil {
		return nil, fmt.Errorf("run %s already exists", root)
	}
	if e := os.MkdirAll(logPath(root), 0755); e != nil {
		return nil, e
	}
	rd := &RunDir{Root: root, Manifest: m}
	if e := writeYAML(manifestPath(root), m); e != nil {
		return nil, e
	}
	return rd, nil
}

// OpenRunDir reads a run directory written by CreateRunDir and Save.
func OpenRunDir(root string) (*RunDir, error) {
	rd := &RunDir{Root: root, Manifest: &Manifest{}, Result: &Result{}}
	if e := readYAML(manifestPath(root), rd.Manifest); e != nil {
		return nil, e
	}
	if e := readYAML(resultPath(root), rd.Result); e != nil {
		return nil, e
	}
	return rd, nil
}

// Save writes res as the result of the run.
func (d *RunDir) Save(res *Result) error {
	d.Result = res
	return writeYAML(resultPath(d.Root), res)
}

// LogDir gives the directory for invocation outputs.
func (d *RunDir) LogDir() string {
	return logPath(d.Root)
}

// Path gives the path of a file named nm in the run directory.  An empty or
// absolute nm is returned as is.
func (d *RunDir) Path(nm string) string {
	if nm == "" || filepath.IsAbs(nm) {
		return nm
	}
	return filepath.Join(d.Root, nm)
}

func writeYAML(p string, v interface{}) error {
	f, e := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if e != nil {
		return e
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if e := enc.Encode(v); e != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", p, e)
	}
	if e := enc.Close(); e != nil {
		f.Close()
		return e
	}
	return f.Close()
}

func readYAML(p string, v interface{}) error {
	buf, e := os.ReadFile(p)
	if e != nil {
		return e
	}
	if e := yaml.Unmarshal(buf, v); e != nil {
		return fmt.Errorf("decode %s: %w", p, e)
	}
	return nil
}

func manifestPath(root string) string {
	return filepath.Join(root, "manifest.yaml")
}

func resultPath(root string) string {
	return filepath.Join(root, "result.yaml")
}

func logPath(root string) string {
	return filepath.Join(root, "logs")
}
