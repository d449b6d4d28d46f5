// Package worker provides the bounded goroutine pool used for the snapshot
// fan-out and small input-reading helpers for the CLI.
package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Task is one unit of work. Tasks own their local accumulators and must not
// share mutable state; the pool offers no synchronization beyond join-all.
type Task func(ctx context.Context)

// Pool runs tasks on a fixed number of goroutines and joins all of them
// before returning. Tasks dispatched after ctx is cancelled are skipped.
type Pool struct {
	size   int
	logger *slog.Logger
}

// NewPool creates a pool with the given worker count.
func NewPool(size int, logger *slog.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size, logger: logger}
}

// Run executes all tasks on the pool and blocks until every one has
// finished. There is no partial join: callers never observe an in-flight
// subset of results.
func (p *Pool) Run(ctx context.Context, tasks []Task) {
	queue := make(chan Task)
	var wg sync.WaitGroup

	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				if ctx.Err() != nil {
					p.logger.Debug("worker: skipping task, context done")
					continue
				}
				task(ctx)
			}
		}()
	}

	for _, t := range tasks {
		queue <- t
	}
	close(queue)
	wg.Wait()
}
