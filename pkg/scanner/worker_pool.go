package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gnana997/styleaudit/pkg/match"
	"github.com/gnana997/styleaudit/pkg/util"
)

// FileJob is one source file queued for matching.
type FileJob struct {
	Path string
}

// FileError pairs a failed path with its cause.
type FileError struct {
	Path string
	Err  error
}

// WorkerPool fans file jobs out to goroutines that read each file through
// the shared cache and run both matchers over it.
//
// Usage: Start, Submit all jobs, FinishSubmitting, then drain Results and
// Errors until both close after Wait.
type WorkerPool struct {
	numWorkers int
	jobs       chan FileJob
	results    chan FileMatches
	errors     chan FileError
	wg         sync.WaitGroup

	cache   util.FileCache
	utility match.Matcher
	inline  match.Matcher
	opts    match.Options
	logger  *slog.Logger

	ctx        context.Context
	cancel     context.CancelFunc
	started    atomic.Bool
	stopped    atomic.Bool
	jobsClosed atomic.Bool

	jobsProcessed atomic.Int64
	jobsFailed    atomic.Int64
}

// NewWorkerPool creates a pool. numWorkers 0 auto-detects.
func NewWorkerPool(numWorkers int, cache util.FileCache, opts match.Options, logger *slog.Logger) *WorkerPool {
	numWorkers = util.PoolSizeWithOverride(numWorkers)
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		numWorkers: numWorkers,
		jobs:       make(chan FileJob, numWorkers*2),
		results:    make(chan FileMatches, numWorkers),
		errors:     make(chan FileError, numWorkers),
		cache:      cache,
		utility:    match.NewUtilityClassMatcher(),
		inline:     match.NewInlineStyleMatcher(),
		opts:       opts,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start spawns the worker goroutines. Must precede Submit.
func (wp *WorkerPool) Start() {
	if !wp.started.CompareAndSwap(false, true) {
		return
	}
	wp.logger.Debug("starting worker pool", "workers", wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case job, ok := <-wp.jobs:
			if !ok {
				return
			}
			wp.process(job)
		}
	}
}

func (wp *WorkerPool) process(job FileJob) {
	source, err := wp.cache.Content(job.Path)
	if err != nil {
		wp.jobsFailed.Add(1)
		wp.errors <- FileError{Path: job.Path, Err: fmt.Errorf("read file: %w", err)}
		return
	}

	utilRes := wp.utility.Match(source, wp.opts)
	inlineRes := wp.inline.Match(source, wp.opts)

	fm := FileMatches{
		Path:        job.Path,
		Matches:     append(utilRes.Matches, inlineRes.Matches...),
		Diagnostics: append(utilRes.Diagnostics, inlineRes.Diagnostics...),
	}
	for i := range fm.Matches {
		fm.Matches[i].File = job.Path
	}
	// The two matchers each emit in order; interleave them by position.
	sort.SliceStable(fm.Matches, func(i, j int) bool {
		return fm.Matches[i].Location.Start < fm.Matches[j].Location.Start
	})

	wp.jobsProcessed.Add(1)
	wp.results <- fm
}

// Submit enqueues a job. Blocks while the queue is full.
func (wp *WorkerPool) Submit(job FileJob) error {
	if wp.stopped.Load() {
		return fmt.Errorf("worker pool is stopped")
	}
	select {
	case <-wp.ctx.Done():
		return fmt.Errorf("worker pool cancelled")
	case wp.jobs <- job:
		return nil
	}
}

// Results returns the channel of per-file match sets.
func (wp *WorkerPool) Results() <-chan FileMatches {
	return wp.results
}

// Errors returns the channel of per-file failures.
func (wp *WorkerPool) Errors() <-chan FileError {
	return wp.errors
}

// FinishSubmitting signals that no further jobs arrive, letting workers
// drain the queue and exit. Idempotent.
func (wp *WorkerPool) FinishSubmitting() {
	if wp.jobsClosed.CompareAndSwap(false, true) {
		close(wp.jobs)
	}
}

// Wait blocks until every worker has exited.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts the pool down, waiting for in-flight jobs. Idempotent.
func (wp *WorkerPool) Stop() {
	if !wp.stopped.CompareAndSwap(false, true) {
		return
	}
	if wp.jobsClosed.CompareAndSwap(false, true) {
		close(wp.jobs)
	}
	wp.wg.Wait()
	close(wp.results)
	close(wp.errors)
	wp.cancel()

	wp.logger.Debug("worker pool stopped",
		"processed", wp.jobsProcessed.Load(),
		"failed", wp.jobsFailed.Load())
}
