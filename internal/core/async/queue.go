// Package async runs pipeline work on a bounded in-process worker
// pool. Every queued unit is backed by a processing_jobs row, so
// progress survives even though the queue itself is memory only.
package async

import (
	"context"

	"github.com/google/uuid"
)

type Kind string

const (
	KindScan       Kind = "scan"
	KindGenerateCV Kind = "generate_cv"
)

// Job is one queued unit of work. EntityID names the scan or CV to
// operate on; JobID is the tracking row that records progress.
type Job struct {
	Kind     Kind
	EntityID uuid.UUID
	JobID    uuid.UUID
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Dispatcher routes a dequeued job to the pipeline that handles it.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) error
}
