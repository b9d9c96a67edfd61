// Package parallel runs row bands of an image operation on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minBandRows keeps bands large enough that scheduling stays cheap relative
// to the work.
const minBandRows = 16

// WorkerPool is a fixed pool of goroutines draining a shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	jobs    chan func()
	wg      sync.WaitGroup
	running atomic.Bool
	closeMu sync.RWMutex
}

// NewWorkerPool starts a pool of workers goroutines. If workers is 0 or
// negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan func(), workers*4),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// ExecuteAll runs every item of work and waits for all of them. After Close
// the items run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(work))
	for _, fn := range work {
		p.jobs <- func() {
			defer done.Done()
			fn()
		}
	}
	done.Wait()
}

// Rows splits [0, height) into contiguous bands, one per worker at most,
// and calls fn for each band in parallel. It returns when all bands are
// done.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	bands := Bands(height, p.workers)
	if len(bands) == 1 {
		fn(bands[0][0], bands[0][1])
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(work)
}

// Bands splits [0, n) into at most parts contiguous half-open ranges of
// nearly equal size, none shorter than minBandRows unless n itself is.
func Bands(n, parts int) [][2]int {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n/minBandRows))

	bands := make([][2]int, 0, parts)
	size, extra := n/parts, n%parts
	start := 0
	for i := range parts {
		end := start + size
		if i < extra {
			end++
		}
		bands = append(bands, [2]int{start, end})
		start = end
	}
	return bands
}

// Close stops the workers after the queued work is done. Close is safe to
// call multiple times.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.jobs)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
