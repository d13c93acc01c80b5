// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command psbench benchmarks a Jacobi / Gauss-Seidel linear system solver.
//
//	⎣ ⇨ psbench
//	psbench <cmd> [options] args ...
//	<cmd> may be
//		run
//		report
//		grid
//		gen
//	For help with a command, run psbench <cmd> -h.
//
//	⎣ ⇨ psbench run -h
//	run [runoptions]
//		run invokes the solver for every test package, method and thread
//		count, averaging repetitions, and writes a run directory.
//	  --solver string          solver executable (default "./main")
//	  --workdir string         directory the solver runs in (default ".")
//	  --tests string           directory holding test_package_<id> (default "../tests")
//	  --from int, --to int     test package ids (default 1..12)
//	  --threads int            run thread counts 1..threads (default 4)
//	  --methods strings        methods to run (default [jacobi,gauss])
//	  --repetitions int        invocations averaged per grid point (default 5)
//	  --iterations int         solver iterations per invocation (default 30)
//	  --timeout duration       per invocation timeout, 0 for none
//	  --runs string            directory holding run directories (default "runs")
//	  --name string            name of the run directory (default start time)
//	  --out string             workbook (default "results.xlsx")
//	  --chart string           html chart (default "results.html")
//	  --labels string          workbook header language (default "pl")
//	  --simulate duration      report random durations, do not invoke the solver
//
//	⎣ ⇨ psbench report -h
//	report [options] <run-dir>
//		report rewrites the workbook and chart of a run directory.
//
//	⎣ ⇨ psbench grid -h
//	grid [options]
//		grid prints every grid point with its solver arguments.
//
//	⎣ ⇨ psbench gen -h
//	gen [options]
//		gen writes diagonally dominant test packages.
//	  --size-start int, --size-step int   sizes of the packages (default 5, 2)
//	  --seed int                          random seed (default 33)
//
// Every option may also be given in the file named by --config or in a
// PSBENCH_<KEY> environment variable, for example PSBENCH_REPORT_LABELS=en.
package main
