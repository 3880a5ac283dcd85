// Package parallel schedules per-row frame work across a fixed set of
// worker goroutines. Pixel transformation is independent per pixel, so rows
// are split into bands and handed out with work stealing to balance uneven
// zone costs (a band crossing a corrected zone is slower than one in a
// pass-through zone).
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs row-band work on a fixed set of workers. Each worker has its
// own queue and steals from the others when idle.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers. Zero or negative
// means GOMAXPROCS. Workers start immediately.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

// Rows runs fn over every row in [0, height), splitting the rows into
// roughly 4 bands per worker, and waits for all bands to finish. fn
// receives a half-open row range [y0, y1). If the pool is closed or has a
// single worker, the rows run on the calling goroutine.
func (p *Pool) Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p.workers == 1 || !p.running.Load() {
		fn(0, height)
		return
	}

	band := height / (p.workers * 4)
	if band < 1 {
		band = 1
	}

	var pending sync.WaitGroup
	next := 0
	for y0 := 0; y0 < height; y0 += band {
		y1 := y0 + band
		if y1 > height {
			y1 = height
		}
		pending.Add(1)
		claimed := new(atomic.Bool)
		job := func(y0, y1 int) func() {
			return func() {
				if !claimed.CompareAndSwap(false, true) {
					return
				}
				defer pending.Done()
				fn(y0, y1)
			}
		}(y0, y1)

		select {
		case p.queues[next%p.workers] <- job:
			// A send can land after the target worker has already
			// drained and exited, stranding the band. Re-check and
			// run inline; the claim flag keeps a band that a worker
			// did pick up from running twice.
			select {
			case <-p.done:
				job()
			default:
			}
		case <-p.done:
			// Pool is closing; run the band inline so Rows still
			// completes the frame.
			job()
		}
		next++
	}
	pending.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after draining queued work. Safe to call more
// than once; a closed pool runs Rows inline.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			if job != nil {
				job()
			}
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			select {
			case <-p.done:
				drain(own)
				return
			case job := <-own:
				if job != nil {
					job()
				}
			}
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.queues {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

func drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			if job != nil {
				job()
			}
		default:
			return
		}
	}
}
