package async

import (
	"context"
	"sync"
	"time"

	"log/slog"
)

type ProcessorQueue struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	workers    int
	timeout    time.Duration

	ch   chan Job
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(dispatcher Dispatcher, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		dispatcher: dispatcher,
		logger:     logger,
		workers:    4,
		timeout:    3 * time.Minute,
		ch:         make(chan Job, 256),
		done:       make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.dispatcher.Dispatch(ctx, job)
					cancel()

					if err != nil {
						q.logger.Error("job failed", "worker_id", workerID, "kind", job.Kind, "entity_id", job.EntityID, "job_id", job.JobID, "error", err)
					} else {
						q.logger.Info("job completed", "worker_id", workerID, "kind", job.Kind, "entity_id", job.EntityID, "job_id", job.JobID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "kind", job.Kind, "entity_id", job.EntityID)
		return nil
	}
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	select {
	case q.ch <- job:
		q.logger.Info("job queued", "kind", job.Kind, "entity_id", job.EntityID, "job_id", job.JobID)
		return nil
	default:
	}

	// Queue full. Block without holding q.mu so Shutdown stays
	// reachable; a closing queue releases the waiting producer.
	q.logger.Warn("queue full, applying backpressure", "kind", job.Kind, "entity_id", job.EntityID)
	select {
	case q.ch <- job:
		q.logger.Info("job queued", "kind", job.Kind, "entity_id", job.EntityID, "job_id", job.JobID)
	case <-q.done:
		q.logger.Warn("job dropped: queue shut down while waiting", "kind", job.Kind, "entity_id", job.EntityID)
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	// Release producers blocked on a full queue, then wait until no
	// send is in flight before closing the job channel.
	close(q.done)
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
