// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ElAdriano/parallel-solver/bench"
	"github.com/ElAdriano/parallel-solver/gen"
)

func (a *app) newGenCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate diagonally dominant test packages",
		Long: `gen writes test packages from..to below the tests directory.  Sizes
come from cases.sizes, then from --size-start and --size-step, which
default to 5 and 2 unknowns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			sizes := bench.LinearSizes(cfg.Cases.From, cfg.Cases.To, 5, 2)
			for id, n := range cfg.CaseSizes() {
				sizes[id] = n
			}
			tests, err := filepath.Abs(cfg.Tests)
			if err != nil {
				return err
			}
			gen.Seed(seed)
			tcs, err := gen.Suite(tests, cfg.Cases.From, cfg.Cases.To, func(id int) int { return sizes[id] })
			for _, tc := range tcs {
				log.V(1).Info("wrote test package", "dir", tc.Dir, "size", tc.Size)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d test packages below %s\n", len(tcs), tests)
			return nil
		}}
	addCaseFlags(cmd.Flags())
	cmd.Flags().Int64Var(&seed, "seed", 33, "random seed")
	return cmd
}
