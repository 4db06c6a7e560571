// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vsortbench sorts generated arrays with the vectorized sorts,
// verifies the results against the input multiset and reports timings.
//
// Usage:
//
//	vsortbench run --types float64,int32 --sizes 1000,1000000 --dist random --strategy parallel
//	vsortbench profile bench.yaml
//	vsortbench info
//
// A profile is a YAML file listing cases:
//
//	name: nightly
//	defaults:
//	  repeat: 5
//	  seed: 1
//	cases:
//	  - {type: float64, size: 1000000, dist: random, strategy: parallel}
//	  - {type: uint32, size: 65536, dist: few, strategy: bitonic, width: 32}
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "vsortbench",
		Short: "Benchmark and verify vectorized in-place sorting",
		Long: `vsortbench drives the vectorized sorts over generated inputs.

Every run checks that the output is sorted and holds the same multiset of
keys as the input, so it doubles as a randomized correctness harness.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging, including per-sort driver statistics")

	rootCmd.AddCommand(a.newRunCmd(), a.newProfileCmd(), a.newInfoCmd())
	return rootCmd
}

func (a *app) initLogger() error {
	var (
		logger *zap.Logger
		err    error
	)
	if a.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		logger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sort generated arrays and report timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := casesFromFlags(cmd)
			if err != nil {
				return err
			}
			return a.runCases(cmd, cases)
		},
	}
	cmd.Flags().StringSlice("types", []string{"float64"}, "Element types: "+joinNames(elementTypes))
	cmd.Flags().IntSlice("sizes", []int{1_000, 100_000, 1_000_000}, "Array lengths")
	cmd.Flags().StringSlice("dist", []string{"random"}, "Input distributions: "+joinNames(distributions))
	cmd.Flags().StringSlice("strategy", []string{"sort"}, "Sort strategies: "+joinNames(strategies))
	cmd.Flags().Int("width", 0, "Register width in bytes: 16, 32 or 64 (0 = detected)")
	cmd.Flags().Int("workers", 0, "Workers for the parallel strategy (0 = GOMAXPROCS)")
	cmd.Flags().Int("repeat", 3, "Timed repetitions per case")
	cmd.Flags().Int64("seed", 1, "Random seed for input generation")
	return cmd
}

func (a *app) newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile FILE",
		Short: "Run the cases listed in a YAML profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("running profile", zap.String("name", p.Name), zap.Int("cases", len(p.Cases)))
			return a.runCases(cmd, p.Resolved())
		},
	}
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD target and lane counts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writeInfo(cmd.OutOrStdout())
		},
	}
}

func (a *app) runCases(cmd *cobra.Command, cases []Case) error {
	results := make([]Result, 0, len(cases))
	var failed int
	for _, c := range cases {
		res, err := runCase(c, a.logger)
		if err != nil {
			return fmt.Errorf("case %s: %w", c, err)
		}
		if res.Err != nil {
			failed++
			a.logger.Error("verification failed", zap.Stringer("case", c), zap.Error(res.Err))
		} else {
			a.logger.Debug("case finished", zap.Stringer("case", c), zap.Duration("best", res.Best))
		}
		results = append(results, res)
	}
	if err := writeResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases produced wrong output", failed, len(cases))
	}
	return nil
}
