// Package parallel runs independent solves concurrently. A single solve is
// strictly sequential; this package only fans out whole problems, such as
// the files of one command line invocation, with bounded concurrency.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// WorkerPool manages a fixed set of goroutines executing submitted tasks.
// Submit blocks once the task buffer is full, which bounds memory when many
// problems are queued.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// Workers returns the number of worker goroutines.
func (wp *WorkerPool) Workers() int {
	return wp.maxWorkers
}

func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit queues a task. It blocks while the buffer is full and fails if ctx
// ends or the pool is shut down first.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}

	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops the workers after their current task and waits for them.
// Tasks still buffered are dropped; callers that need every result wait for
// their tasks before shutting down, as Map does.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")

// Map runs fn for every index in [0, n) on the pool and returns the results
// in index order. If submission stops early because ctx ends, Map waits for
// the tasks already submitted and returns the context error; slots that were
// never run hold the zero value.
func Map[T any](ctx context.Context, wp *WorkerPool, n int, fn func(ctx context.Context, i int) T) ([]T, error) {
	results := make([]T, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		err := wp.Submit(ctx, func() {
			defer wg.Done()
			results[i] = fn(ctx, i)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return results, err
		}
	}

	wg.Wait()
	return results, nil
}
