package core

import (
	"context"
	"fmt"

	"github.com/mausam-code/complete-agency/internal/core/async"
)

// PipelineDispatcher routes dequeued jobs to the pipeline that owns
// their kind.
type PipelineDispatcher struct {
	Processor *Processor
	Generator *Generator
}

func (d *PipelineDispatcher) Dispatch(ctx context.Context, job async.Job) error {
	switch job.Kind {
	case async.KindScan:
		return d.Processor.ProcessDocument(ctx, job.EntityID, job.JobID)
	case async.KindGenerateCV:
		return d.Generator.GenerateCV(ctx, job.EntityID, job.JobID)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}
