// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomicBatched(n, 10, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
	require.True(t, pool.Closed())
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestGroupRunsEveryTask(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const tasks = 1000
	var count atomic.Int64
	g := pool.NewGroup()
	for range tasks {
		g.Go(func() { count.Add(1) })
	}
	g.Wait()

	require.Equal(t, int64(tasks), count.Load())
	stats := g.Stats()
	require.Equal(t, int64(tasks), stats.Forked+stats.Inlined)
}

func TestGroupNilPoolRunsInline(t *testing.T) {
	var pool *Pool
	g := pool.NewGroup()

	ran := false
	forked := g.Go(func() { ran = true })
	g.Wait()

	require.False(t, forked)
	require.True(t, ran, "inline task must finish before Go returns")
	require.Equal(t, Stats{Inlined: 1}, g.Stats())
}

func TestGroupClosedPoolRunsInline(t *testing.T) {
	pool := New(2)
	pool.Close()

	g := pool.NewGroup()
	ran := false
	require.False(t, g.Go(func() { ran = true }))
	g.Wait()
	require.True(t, ran)
}

// TestGroupOverloadRunsInline occupies every worker, so further
// submissions must run on the caller instead of blocking.
func TestGroupOverloadRunsInline(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	g := pool.NewGroup()
	for range 2 {
		require.True(t, g.Go(func() {
			started.Done()
			<-release
		}))
	}
	started.Wait()

	ran := false
	require.False(t, g.Go(func() { ran = true }))
	require.True(t, ran)

	close(release)
	g.Wait()
	require.Equal(t, Stats{Forked: 2, Inlined: 1}, g.Stats())
}

// TestGroupNestedFork forks recursively from inside tasks, the way a
// parallel quicksort does; it must terminate however the tasks land.
func TestGroupNestedFork(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var leaves atomic.Int64
	g := pool.NewGroup()
	var split func(depth int)
	split = func(depth int) {
		if depth == 0 {
			leaves.Add(1)
			return
		}
		g.Go(func() { split(depth - 1) })
		split(depth - 1)
	}
	split(10)
	g.Wait()

	require.Equal(t, int64(1<<10), leaves.Load())
}

func TestGroupWaitRepanics(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	release := make(chan struct{})
	g := pool.NewGroup()
	require.True(t, g.Go(func() {
		<-release
		panic("boom")
	}))
	close(release)

	require.PanicsWithValue(t, "boom", g.Wait)
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			// Simulate work
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomicBatched(n, 10, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

// BenchmarkGroupOverhead measures one fork and join on an idle pool.
func BenchmarkGroupOverhead(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for i := 0; i < b.N; i++ {
		g := pool.NewGroup()
		g.Go(func() {})
		g.Wait()
	}
}
