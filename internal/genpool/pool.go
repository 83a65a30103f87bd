// Package genpool runs a fixed-size worker pool over a batch of indexed
// jobs and accumulates run statistics for bulk puzzle generation: a channel
// of work indices, N goroutines draining it, and an atomic progress counter
// a reporter goroutine polls on a ticker.
package genpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stats accumulates run counters across every worker. All fields are
// updated with atomic ops so workers never need their own locks.
type Stats struct {
	Attempted    int64
	Succeeded    int64
	Inconsistent int64
}

func (s *Stats) addAttempted() { atomic.AddInt64(&s.Attempted, 1) }

// RecordSuccess marks one job as having produced a usable result.
func (s *Stats) RecordSuccess() { atomic.AddInt64(&s.Succeeded, 1) }

// RecordInconsistent marks one job as having hit field inconsistency
// (a rejected candidate, not a pool failure).
func (s *Stats) RecordInconsistent() { atomic.AddInt64(&s.Inconsistent, 1) }

// Snapshot reads every counter at once.
func (s *Stats) Snapshot() (attempted, succeeded, inconsistent int64) {
	return atomic.LoadInt64(&s.Attempted), atomic.LoadInt64(&s.Succeeded), atomic.LoadInt64(&s.Inconsistent)
}

// Options configures a Run.
type Options struct {
	// Workers is the goroutine count; <= 0 means runtime.NumCPU().
	Workers int
	// Progress, if non-nil, is called periodically (every ~2s) from a
	// single reporter goroutine with a live Stats snapshot. It must not
	// block meaningfully; it runs on the reporter's own goroutine.
	Progress func(Stats)
}

// Run spawns Options.Workers goroutines, each repeatedly calling work with
// the next job index in [0, n) until the index space is exhausted, and
// blocks until every job has run. work is called concurrently from
// multiple goroutines and must be safe to do so (e.g. each call should
// only touch its own per-index output slot).
func Run(n int, opts Options, work func(idx int, stats *Stats)) Stats {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n && n > 0 {
		workers = n
	}

	var stats Stats
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	done := make(chan struct{})
	if opts.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					a, s2, i := stats.Snapshot()
					opts.Progress(Stats{Attempted: a, Succeeded: s2, Inconsistent: i})
				case <-done:
					return
				}
			}
		}()
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				stats.addAttempted()
				work(idx, &stats)
			}
		}()
	}
	wg.Wait()
	close(done)

	return stats
}
