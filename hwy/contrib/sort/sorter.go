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

package sort

import (
	"math/bits"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/ajroetker/vsort/hwy"
	"github.com/ajroetker/vsort/hwy/contrib/workerpool"
)

// Option configures a Sorter.
type Option func(*options)

type options struct {
	width         int
	sortLimitRegs int
	workers       int
	spawnBudget   int
	parallelGrain int
	pool          *workerpool.Pool
	logger        *zap.Logger
}

// WithWidth models registers of the given width in bytes (16, 32 or 64)
// instead of the width detected at startup.
func WithWidth(bytes int) Option {
	return func(o *options) { o.width = bytes }
}

// WithSortLimitRegs sets the base case of the driver: ranges shorter than
// regs registers are sorted by the block sort. regs is clamped to
// [1, MaxBlocks]; the default is MaxBlocks.
func WithSortLimitRegs(regs int) Option {
	return func(o *options) { o.sortLimitRegs = regs }
}

// WithWorkers gives the Sorter a private pool of n workers, released by
// Close. n <= 1 makes SortParallel sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithSpawnBudget sets how many levels of the recursion may fork work to the
// pool. The default is ceil(log2(workers)) + 2.
func WithSpawnBudget(levels int) Option {
	return func(o *options) { o.spawnBudget = levels }
}

// WithParallelGrain sets the smallest range, in elements, that is handed to
// another worker. The default is 8192.
func WithParallelGrain(n int) Option {
	return func(o *options) { o.parallelGrain = n }
}

// WithPool runs parallel sorts on pool. The Sorter does not close it.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) { o.pool = pool }
}

// WithLogger sets the logger for debug output. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Sorter sorts slices of T with a fixed register width and driver
// configuration. A Sorter is safe for concurrent use as long as the slices
// passed to it do not overlap.
type Sorter[T hwy.Lanes] struct {
	d             hwy.Desc[T]
	sortLimit     int
	parallelGrain int
	logger        *zap.Logger

	poolOnce    sync.Once
	pool        *workerpool.Pool
	ownsPool    bool
	workers     int
	spawnBudget int
}

// New returns a Sorter for T configured by opts.
func New[T hwy.Lanes](opts ...Option) *Sorter[T] {
	o := options{
		sortLimitRegs: defaultSortLimitRegs,
		workers:       unset,
		spawnBudget:   unset,
		parallelGrain: defaultParallelGrain,
	}
	for _, opt := range opts {
		opt(&o)
	}

	d := hwy.Scalable[T]()
	if o.width != 0 {
		d = hwy.WithWidth[T](o.width)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Sorter[T]{
		d:             d,
		sortLimit:     max(1, min(o.sortLimitRegs, MaxBlocks)) * d.Lanes(),
		parallelGrain: max(o.parallelGrain, 1),
		logger:        o.logger,
		pool:          o.pool,
		workers:       o.workers,
		spawnBudget:   o.spawnBudget,
	}
}

// Lanes returns the register lane count W the Sorter works with.
func (s *Sorter[T]) Lanes() int {
	return s.d.Lanes()
}

// SortLimit returns the length below which ranges go to the block sort.
func (s *Sorter[T]) SortLimit() int {
	return s.sortLimit
}

// workerPool resolves the pool for parallel sorts on first use: an explicit
// pool, a private pool from WithWorkers, or the shared default pool.
func (s *Sorter[T]) workerPool() *workerpool.Pool {
	s.poolOnce.Do(func() {
		switch {
		case s.pool != nil:
		case s.workers > 1:
			s.pool = workerpool.New(s.workers)
			s.ownsPool = true
		case s.workers != unset:
			// Sequential: a nil pool runs every task inline.
		default:
			s.pool = sharedPool()
		}
		if s.spawnBudget == unset {
			s.spawnBudget = defaultSpawnBudget(s.pool)
		}
	})
	return s.pool
}

// Close releases the private pool created by WithWorkers, if any.
func (s *Sorter[T]) Close() {
	s.poolOnce.Do(func() {})
	if s.ownsPool {
		s.pool.Close()
	}
}

// defaultSpawnBudget is ceil(log2(workers)) + 2, or 0 without workers.
func defaultSpawnBudget(pool *workerpool.Pool) int {
	if pool == nil || pool.NumWorkers() <= 1 {
		return 0
	}
	return bits.Len(uint(pool.NumWorkers()-1)) + 2
}

var shared struct {
	once sync.Once
	pool *workerpool.Pool
}

// sharedPool is the GOMAXPROCS-sized pool used by the package-level
// functions. It lives for the whole process.
func sharedPool() *workerpool.Pool {
	shared.once.Do(func() {
		shared.pool = workerpool.New(runtime.GOMAXPROCS(0))
	})
	return shared.pool
}

// defaultSorter returns a Sorter with the detected width and default
// settings. It holds no resources of its own.
func defaultSorter[T hwy.Lanes]() *Sorter[T] {
	return New[T]()
}

// Sort sorts data in ascending order with the hybrid vectorized quicksort
// at the detected register width. The sort is not stable.
func Sort[T hwy.Lanes](data []T) {
	defaultSorter[T]().Sort(data)
}

// SortParallel is Sort with sub-ranges forked to a shared worker pool.
func SortParallel[T hwy.Lanes](data []T) {
	defaultSorter[T]().SortParallel(data)
}

// SortRun sorts a slice of at most MaxBlocks*W elements with the block sort.
// It panics with an error wrapping ErrInvalidSize if data is longer.
func SortRun[T hwy.Lanes](data []T) {
	defaultSorter[T]().SortRun(data)
}

// TrySortRun is SortRun returning ErrInvalidSize instead of panicking.
func TrySortRun[T hwy.Lanes](data []T) error {
	return defaultSorter[T]().TrySortRun(data)
}

// Partition rearranges data[left:right+1] around pivot and returns the
// boundary b: data[left:b] <= pivot < data[b:right+1]. See BasePartition.
func Partition[T hwy.Lanes](data []T, left, right int, pivot T) int {
	return BasePartition(hwy.Scalable[T](), data, left, right, pivot)
}

// BitonicSort sorts data, whose length must be a power of two, with a
// data-oblivious bitonic network. Other lengths return ErrInvalidSize and
// leave data untouched.
func BitonicSort[T hwy.Lanes](data []T) error {
	return defaultSorter[T]().BitonicSort(data)
}

// NthElement rearranges data such that the element at index k
// is the element that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
func NthElement[T hwy.Lanes](data []T, k int) {
	defaultSorter[T]().NthElement(data, k)
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T hwy.Lanes](data []T) bool {
	return BaseIsSorted(hwy.Scalable[T](), data)
}

// IsSortedParallel is IsSorted with the check split across pool. A nil
// pool checks on the calling goroutine.
func IsSortedParallel[T hwy.Lanes](pool *workerpool.Pool, data []T) bool {
	return isSortedParallel(hwy.Scalable[T](), pool, data)
}
