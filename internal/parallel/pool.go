// Package parallel provides a small bounded worker pool used to fan the
// reconstruction engine's two embarrassingly-parallel steps across
// goroutines: the per-body RCN/UCL precompute, and the first-success
// combination search of the driver's candidate search.
//
// This is a deliberately narrow rewrite of a much larger dynamic-scaling
// goroutine pool: the engine's working sets are bounded by the power set
// of a small variable universe, so there is no queue-depth monitoring,
// auto-scaling, or deadlock detection to speak of — just a fixed number
// of workers draining a fixed slice of work.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// workers clamps a requested worker count to a sane range: at least 1, and
// never more than the number of items there is to do.
func workers(requested, items int) int {
	if requested <= 0 {
		requested = runtime.NumCPU()
	}
	if items < requested {
		requested = items
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}

// Map applies fn to every item, preserving input order in the result.
// requested == 1 (or a single item) runs fn sequentially in the caller's
// goroutine, which is what reproducible test fixtures rely on;
// requested <= 0 uses runtime.NumCPU() workers.
func Map[T, R any](requested int, items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out
	}
	n := workers(requested, len(items))
	if n <= 1 {
		for i, item := range items {
			out[i] = fn(item)
		}
		return out
	}

	indices := make(chan int, len(items))
	for i := range items {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				out[i] = fn(items[i])
			}
		}()
	}
	wg.Wait()
	return out
}

// MapFirst applies fn to items across a bounded pool of goroutines and
// returns a single-element slice holding a result for which keep returns
// true, or an empty slice if none do. Workers stop claiming new items as
// soon as a match is found, via context cancellation; in-flight
// evaluations are allowed to finish but their results are discarded once
// a winner is recorded.
//
// requested == 1 (or a single item) evaluates items sequentially in order
// and returns the first match in item order. requested > 1, or <= 0
// (which uses runtime.NumCPU() workers), gives no such ordering
// guarantee: whichever worker reports a match first wins the race, which
// need not be the lexicographically-first matching item. Callers that
// need a specific match, not just any match, should pass requested == 1.
func MapFirst[T, R any](requested int, items []T, fn func(T) R, keep func(R) bool) []R {
	if len(items) == 0 {
		return nil
	}
	n := workers(requested, len(items))
	if n <= 1 {
		for _, item := range items {
			r := fn(item)
			if keep(r) {
				return []R{r}
			}
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	indices := make(chan int, len(items))
	for i := range items {
		indices <- i
	}
	close(indices)

	var (
		mu     sync.Mutex
		winner *R
	)
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				select {
				case <-ctx.Done():
					return
				default:
				}
				r := fn(items[i])
				if keep(r) {
					mu.Lock()
					if winner == nil {
						winner = &r
						cancel()
					}
					mu.Unlock()
					return
				}
			}
		}()
	}
	wg.Wait()

	if winner == nil {
		return nil
	}
	return []R{*winner}
}
