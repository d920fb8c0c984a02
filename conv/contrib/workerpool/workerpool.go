// Copyright 2025 The go-rtvp Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting image
// rows across goroutines. A Pool is created once per process and reused for
// every frame, so per-frame work costs one channel send per band instead of a
// goroutine spawn.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for frame := range frames {
//	    out, err := conv.Run(frame.Pix, frame.Height, frame.Width, f,
//	        conv.WithRunner(pool))
//	    ...
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan band
	closeOnce  sync.Once
	closed     atomic.Bool
}

// band is one contiguous slice of work handed to a worker.
type band struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan band, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for b := range p.workC {
		b.fn()
		b.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after pending bands complete. Calling Close more
// than once is safe. A closed pool keeps working, sequentially, on the
// calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous bands of equal
// size and calls fn(start, end) once per band. It blocks until every band is
// done. Bands never overlap and together cover [0, n) exactly.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- band{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForBatched hands out bands of batchSize indices on demand, so
// workers that finish cheap bands pick up more. Use it when cost per index is
// uneven. fn receives [start, end) ranges as in ParallelFor.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- band{
			fn: func() {
				for {
					start := int(next.Add(int64(batchSize)) - int64(batchSize))
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

// Batched adapts p so that ParallelFor hands out bands of batchSize rows on
// demand. The result satisfies conv.Runner.
func (p *Pool) Batched(batchSize int) BatchedPool {
	return BatchedPool{pool: p, batchSize: batchSize}
}

// BatchedPool is a Pool view whose ParallelFor uses ParallelForBatched.
type BatchedPool struct {
	pool      *Pool
	batchSize int
}

// ParallelFor calls the underlying pool's ParallelForBatched.
func (b BatchedPool) ParallelFor(n int, fn func(start, end int)) {
	b.pool.ParallelForBatched(n, b.batchSize, fn)
}
