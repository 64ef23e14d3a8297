package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/degenfarm/internal/logger"
	"github.com/osse101/degenfarm/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup
	quit       chan struct{}

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:    workers,
		jobTimeout: DefaultJobTimeout,
		jobQueue:   make(chan Job, queueSize),
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			// Drain what was accepted before Stop.
			for {
				select {
				case job := <-p.jobQueue:
					p.run(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	if err := job.Process(ctx); err != nil {
		metrics.JobsFailed.Inc()
		logger.FromContext(ctx).Warn(LogMsgWorkerJobFailed, "error", err)
	}
}

// TryEnqueue adds a job without blocking. It returns false, and counts the
// drop, when the queue is full or the pool is stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		metrics.JobsDropped.Inc()
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		metrics.JobsDropped.Inc()
		logger.FromContext(context.Background()).Warn(LogMsgWorkerQueueFull, "queue_size", cap(p.jobQueue))
		return false
	}
}

// Stop stops accepting jobs, runs what is queued and waits for the workers
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	close(p.quit)
	p.wg.Wait()
}
