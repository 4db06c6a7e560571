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

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/vsort/hwy"
	"github.com/ajroetker/vsort/hwy/contrib/sort"
)

var (
	elementTypes  = []string{"int32", "int64", "uint32", "uint64", "float32", "float64"}
	distributions = []string{"random", "sorted", "reverse", "equal", "few", "organ"}
	strategies    = []string{"sort", "parallel", "bitonic", "stdlib"}
)

// errUnsorted reports output that is not ascending or not a permutation of
// the input.
var errUnsorted = errors.New("output is not a sorted permutation of the input")

// Case is one benchmark configuration.
type Case struct {
	Type     string `yaml:"type"`
	Size     int    `yaml:"size"`
	Dist     string `yaml:"dist"`
	Strategy string `yaml:"strategy"`
	Width    int    `yaml:"width,omitempty"`
	Workers  int    `yaml:"workers,omitempty"`
	Repeat   int    `yaml:"repeat,omitempty"`
	Seed     int64  `yaml:"seed,omitempty"`
}

func (c Case) String() string {
	s := fmt.Sprintf("%s/%s/%s/n=%d", c.Type, c.Dist, c.Strategy, c.Size)
	if c.Width != 0 {
		s += fmt.Sprintf("/%dB", c.Width)
	}
	return s
}

// Validate checks the case against the known names and limits.
func (c Case) Validate() error {
	switch {
	case !lo.Contains(elementTypes, c.Type):
		return fmt.Errorf("unknown type %q (want one of %s)", c.Type, joinNames(elementTypes))
	case !lo.Contains(distributions, c.Dist):
		return fmt.Errorf("unknown distribution %q (want one of %s)", c.Dist, joinNames(distributions))
	case !lo.Contains(strategies, c.Strategy):
		return fmt.Errorf("unknown strategy %q (want one of %s)", c.Strategy, joinNames(strategies))
	case c.Size < 0:
		return fmt.Errorf("negative size %d", c.Size)
	case c.Width != 0 && c.Width != hwy.Width128 && c.Width != hwy.Width256 && c.Width != hwy.Width512:
		return fmt.Errorf("register width %d is not 16, 32 or 64 bytes", c.Width)
	case c.Strategy == "bitonic" && c.Size&(c.Size-1) != 0:
		return fmt.Errorf("bitonic strategy needs a power-of-two size, got %d", c.Size)
	}
	return nil
}

// Result is the outcome of one case. Err is set when the output failed
// verification.
type Result struct {
	Case Case
	Best time.Duration
	Mean time.Duration
	Err  error
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

// casesFromFlags expands the cross product of the run command's list flags.
func casesFromFlags(cmd *cobra.Command) ([]Case, error) {
	flags := cmd.Flags()
	types, err := flags.GetStringSlice("types")
	if err != nil {
		return nil, err
	}
	sizes, err := flags.GetIntSlice("sizes")
	if err != nil {
		return nil, err
	}
	dists, err := flags.GetStringSlice("dist")
	if err != nil {
		return nil, err
	}
	strats, err := flags.GetStringSlice("strategy")
	if err != nil {
		return nil, err
	}
	width, err := flags.GetInt("width")
	if err != nil {
		return nil, err
	}
	workers, err := flags.GetInt("workers")
	if err != nil {
		return nil, err
	}
	repeat, err := flags.GetInt("repeat")
	if err != nil {
		return nil, err
	}
	seed, err := flags.GetInt64("seed")
	if err != nil {
		return nil, err
	}

	var cases []Case
	for _, typ := range lo.Uniq(types) {
		for _, size := range lo.Uniq(sizes) {
			for _, dist := range lo.Uniq(dists) {
				for _, strat := range lo.Uniq(strats) {
					c := Case{
						Type: typ, Size: size, Dist: dist, Strategy: strat,
						Width: width, Workers: workers, Repeat: repeat, Seed: seed,
					}
					if err := c.Validate(); err != nil {
						return nil, err
					}
					cases = append(cases, c)
				}
			}
		}
	}
	return cases, nil
}

// runCase generates the input for c, sorts it Repeat times and verifies the
// last output. A non-nil error means the case could not run at all.
func runCase(c Case, logger *zap.Logger) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	switch c.Type {
	case "int32":
		return runTyped[int32](c, logger)
	case "int64":
		return runTyped[int64](c, logger)
	case "uint32":
		return runTyped[uint32](c, logger)
	case "uint64":
		return runTyped[uint64](c, logger)
	case "float32":
		return runTyped[float32](c, logger)
	default:
		return runTyped[float64](c, logger)
	}
}

func runTyped[T hwy.Lanes](c Case, logger *zap.Logger) (Result, error) {
	opts := []sort.Option{sort.WithLogger(logger)}
	if c.Width != 0 {
		opts = append(opts, sort.WithWidth(c.Width))
	}
	if c.Workers != 0 {
		opts = append(opts, sort.WithWorkers(c.Workers))
	}
	s := sort.New[T](opts...)
	defer s.Close()

	sortFn, err := strategyFunc(s, c.Strategy)
	if err != nil {
		return Result{}, err
	}

	input := generate[T](rand.New(rand.NewSource(c.Seed)), c.Size, c.Dist)
	data := make([]T, len(input))
	repeat := max(c.Repeat, 1)

	res := Result{Case: c}
	var total time.Duration
	for i := range repeat {
		copy(data, input)
		start := time.Now()
		if err := sortFn(data); err != nil {
			return Result{}, err
		}
		elapsed := time.Since(start)
		total += elapsed
		if i == 0 || elapsed < res.Best {
			res.Best = elapsed
		}
	}
	res.Mean = total / time.Duration(repeat)
	res.Err = verify(input, data)
	return res, nil
}

func strategyFunc[T hwy.Lanes](s *sort.Sorter[T], name string) (func([]T) error, error) {
	switch name {
	case "sort":
		return func(data []T) error { s.Sort(data); return nil }, nil
	case "parallel":
		return func(data []T) error { s.SortParallel(data); return nil }, nil
	case "bitonic":
		return s.BitonicSort, nil
	case "stdlib":
		return func(data []T) error { slices.Sort(data); return nil }, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// generate returns n keys of the requested distribution.
func generate[T hwy.Lanes](rng *rand.Rand, n int, dist string) []T {
	data := make([]T, n)
	switch dist {
	case "sorted":
		for i := range data {
			data[i] = T(i)
		}
	case "reverse":
		for i := range data {
			data[i] = T(n - i)
		}
	case "equal":
		var v T = randomKey[T](rng)
		for i := range data {
			data[i] = v
		}
	case "few":
		keys := lo.Times(8, func(int) T { return randomKey[T](rng) })
		for i := range data {
			data[i] = keys[rng.Intn(len(keys))]
		}
	case "organ":
		for i := range data {
			data[i] = T(min(i, n-i))
		}
	default:
		for i := range data {
			data[i] = randomKey[T](rng)
		}
	}
	return data
}

// randomKey draws a key spread over most of T's range: normally
// distributed for floats, uniform bits for integers.
func randomKey[T hwy.Lanes](rng *rand.Rand) T {
	half := 0.5
	if T(half) != 0 {
		f := rng.NormFloat64() * 1e6
		return T(f)
	}
	u := rng.Uint64()
	return T(u)
}

// verify checks that got is ascending and holds the same multiset as want.
func verify[T hwy.Lanes](want, got []T) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: length %d, want %d", errUnsorted, len(got), len(want))
	}
	if i := firstInversion(got); i >= 0 {
		return fmt.Errorf("%w: got[%d] = %v > got[%d] = %v", errUnsorted, i, got[i], i+1, got[i+1])
	}
	wantCounts := lo.CountValues(want)
	gotCounts := lo.CountValues(got)
	if len(wantCounts) != len(gotCounts) {
		return fmt.Errorf("%w: %d distinct keys, want %d", errUnsorted, len(gotCounts), len(wantCounts))
	}
	for k, n := range wantCounts {
		if gotCounts[k] != n {
			return fmt.Errorf("%w: key %v occurs %d times, want %d", errUnsorted, k, gotCounts[k], n)
		}
	}
	return nil
}

// firstInversion returns the first i with data[i] > data[i+1], or -1.
func firstInversion[T hwy.Lanes](data []T) int {
	if sort.IsSorted(data) {
		return -1
	}
	for i := 0; i+1 < len(data); i++ {
		if data[i] > data[i+1] {
			return i
		}
	}
	return -1
}

func writeResults(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tBEST\tMEAN\tMKEYS/S\tOK")
	for _, r := range results {
		rate := 0.0
		if r.Best > 0 {
			rate = float64(r.Case.Size) / r.Best.Seconds() / 1e6
		}
		fmt.Fprintf(tw, "%s\t%v\t%v\t%.1f\t%v\n", r.Case, r.Best, r.Mean, rate, r.Err == nil)
	}
	return tw.Flush()
}

func writeInfo(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "target\t%s\n", hwy.CurrentName())
	fmt.Fprintf(tw, "register width\t%d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(tw, "lanes int32/uint32/float32\t%d\n", hwy.MaxLanes[float32]())
	fmt.Fprintf(tw, "lanes int64/uint64/float64\t%d\n", hwy.MaxLanes[float64]())
	fmt.Fprintf(tw, "block sort limit float32\t%d\n", sort.MaxBlocks*hwy.MaxLanes[float32]())
	fmt.Fprintf(tw, "block sort limit float64\t%d\n", sort.MaxBlocks*hwy.MaxLanes[float64]())
	fmt.Fprintf(tw, "no-simd override\t%v\n", hwy.NoSimdEnv())
	_ = tw.Flush()
}
