// Package worker provides a parallel AOI build worker pool.
package worker

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/geoharvest/tilescout/internal/aoi"
	"github.com/geoharvest/tilescout/internal/feature"
)

// Builder is the interface for per-feature AOI construction.
// This matches the signature of feature.BuildOne.
type Builder interface {
	Build(ctx context.Context, f feature.Feature, index int) (*aoi.AreaOfInterest, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(ctx context.Context, f feature.Feature, index int) (*aoi.AreaOfInterest, error)

func (fn BuilderFunc) Build(ctx context.Context, f feature.Feature, index int) (*aoi.AreaOfInterest, error) {
	return fn(ctx, f, index)
}

// Task represents a single AOI build task.
type Task struct {
	Index   int
	Feature feature.Feature
}

// Result represents the outcome of an AOI build task.
type Result struct {
	Task    Task
	AOI     *aoi.AreaOfInterest
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Builder    Builder
	OnProgress ProgressFunc
}

// Pool manages parallel AOI construction.
type Pool struct {
	workers    int
	builder    Builder
	onProgress ProgressFunc
}

// New creates a new worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		builder:    cfg.Builder,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and returns results ordered by input index, so
// callers can correlate outcomes with source features. Tasks are processed
// in parallel by the configured number of workers; the function blocks until
// all tasks complete or the context is cancelled.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	// Track progress
	var (
		completed int
		failed    int
		mu        sync.Mutex
	)

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	// Feed tasks
	go func() {
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
			}
		}
		close(taskCh)
	}()

	// Collect results in a separate goroutine
	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		for result := range resultCh {
			results = append(results, result)

			mu.Lock()
			completed++
			if result.Err != nil {
				failed++
			}
			c, f := completed, failed
			mu.Unlock()

			if p.onProgress != nil {
				p.onProgress(c, len(tasks), f)
			}
		}
		close(done)
	}()

	wg.Wait()
	close(resultCh)
	<-done

	sort.Slice(results, func(i, j int) bool {
		return results[i].Task.Index < results[j].Task.Index
	})
	return results
}

// worker processes tasks from the task channel and sends results to the
// result channel.
func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			results <- Result{
				Task: task,
				Err:  ctx.Err(),
			}
			continue
		default:
		}

		start := time.Now()
		a, err := p.builder.Build(ctx, task.Feature, task.Index)
		elapsed := time.Since(start)

		results <- Result{
			Task:    task,
			AOI:     a,
			Err:     err,
			Elapsed: elapsed,
		}
	}
}
