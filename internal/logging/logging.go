// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logging builds the logr.Logger used across psbench.
package logging

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const name = "psbench"

var (
	mu  sync.Mutex
	def = logr.Discard()
)

// New creates a zap backed logger at the given level ("debug", "info",
// "warn", "error").  debug enables logr V(1) output.
func New(level string, development bool) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = !development
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl).WithName(name), nil
}

// NewTestLogger installs a development logger as the default and
// returns it.
func NewTestLogger() logr.Logger {
	zl, err := zap.NewDevelopment()
	if err != nil {
		zl = zap.NewNop()
	}
	l := zapr.NewLogger(zl).WithName(name)
	SetDefault(l)
	return l
}

// Default returns the logger installed by SetDefault, or a discarding logger.
func Default() logr.Logger {
	mu.Lock()
	defer mu.Unlock()
	return def
}

func SetDefault(l logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	def = l
}
