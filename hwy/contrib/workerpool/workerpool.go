// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join computation. A Pool is created once and reused across many
// operations, so recursive algorithms can hand sub-problems to idle workers
// without spawning goroutines per call.
//
// Submission never blocks: when every worker is busy, or the pool has been
// closed, the task runs inline on the submitting goroutine. Only the
// goroutine that owns a Group waits at its barrier, so a task that forks
// further tasks can never deadlock the pool.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	g := pool.NewGroup()
//	g.Go(func() { sortRange(lo, mid) })
//	sortRange(mid, hi)
//	g.Wait()
package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

// Pool is a persistent worker pool backed by a non-blocking ants pool.
// Workers are reused across Groups until Close is called.
type Pool struct {
	numWorkers int
	workers    *ants.Pool
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	workers, err := ants.NewPool(numWorkers, ants.WithNonblocking(true), ants.WithPreAlloc(true))
	if err != nil {
		// Only a non-positive size makes ants refuse, which is ruled out above.
		panic(fmt.Sprintf("workerpool: creating pool of %d workers: %v", numWorkers, err))
	}

	return &Pool{
		numWorkers: numWorkers,
		workers:    workers,
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Running returns the number of workers currently executing a task.
func (p *Pool) Running() int {
	return p.workers.Running()
}

// Close shuts down the worker pool. Tasks already running complete; later
// submissions run inline. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		p.workers.Release()
	})
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// submit hands fn to an idle worker. It returns false when no worker is
// free or the pool is closed, in which case fn has not been started.
func (p *Pool) submit(fn func()) bool {
	if p == nil || p.closed.Load() {
		return false
	}
	err := p.workers.Submit(fn)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ants.ErrPoolOverload), errors.Is(err, ants.ErrPoolClosed):
		return false
	default:
		panic(fmt.Sprintf("workerpool: submit: %v", err))
	}
}

// Stats counts how the tasks of a Group were executed.
type Stats struct {
	// Forked is the number of tasks handed to a worker.
	Forked int64
	// Inlined is the number of tasks run on the submitting goroutine
	// because no worker was free.
	Inlined int64
}

// Group is a join barrier for tasks submitted to a Pool. A nil pool is
// valid and runs every task inline.
//
// Go may be called from the goroutine that owns the Group and from tasks
// of the Group itself; Wait must only be called by the owner.
type Group struct {
	pool *Pool
	wg   sync.WaitGroup

	panicOnce sync.Once
	panicVal  any

	forked  atomic.Int64
	inlined atomic.Int64
}

// NewGroup returns an empty Group whose tasks run on p.
func (p *Pool) NewGroup() *Group {
	return &Group{pool: p}
}

// Go runs fn on an idle worker if there is one and reports whether it did.
// Otherwise fn runs to completion on the calling goroutine before Go
// returns. A panic in a forked task is recovered and re-raised by Wait.
func (g *Group) Go(fn func()) bool {
	g.wg.Add(1)
	task := func() {
		defer g.wg.Done()
		defer g.capturePanic()
		fn()
	}
	if g.pool.submit(task) {
		g.forked.Add(1)
		return true
	}
	g.wg.Done()
	g.inlined.Add(1)
	fn()
	return false
}

func (g *Group) capturePanic() {
	if r := recover(); r != nil {
		g.panicOnce.Do(func() { g.panicVal = r })
	}
}

// Wait blocks until every forked task of the group has finished. If any
// task panicked, Wait panics with the first recovered value.
func (g *Group) Wait() {
	g.wg.Wait()
	if g.panicVal != nil {
		panic(g.panicVal)
	}
}

// Stats returns the fork/inline counts so far.
func (g *Group) Stats() Stats {
	return Stats{Forked: g.forked.Load(), Inlined: g.inlined.Load()}
}

// ParallelFor executes fn over [0, n) split into contiguous chunks, one per
// worker. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := 1
	if p != nil && !p.closed.Load() {
		workers = min(p.numWorkers, n)
	}

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	g := p.NewGroup()
	for start := chunkSize; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() { fn(start, end) })
	}
	// The caller takes the first chunk itself.
	fn(0, min(chunkSize, n))
	g.Wait()
}

// ParallelForAtomicBatched executes fn for batches of indices using atomic
// work stealing, which balances load when the cost per item varies.
//
// fn receives (start, end) indices where work should process [start, end).
// batchSize controls how many items are grabbed per atomic operation.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := 1
	if p != nil && !p.closed.Load() {
		workers = min(p.numWorkers, numBatches)
	}

	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	steal := func() {
		for {
			batch := int(nextBatch.Add(1)) - 1
			start := batch * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}

	g := p.NewGroup()
	for range workers - 1 {
		g.Go(steal)
	}
	steal()
	g.Wait()
}
