// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the grid points and solver arguments without running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGrid(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, p := range g.Points() {
				fmt.Fprintf(w, "%4d %-36s %s\n", i, p, strings.Join(p.Args(cfg.Iterations), " "))
			}
			fmt.Fprintf(w, "%d points, %d invocations\n", g.Len(), g.Len()*cfg.Repetitions)
			return nil
		}}
	addGridFlags(cmd.Flags())
	return cmd
}
