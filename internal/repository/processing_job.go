package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/gen/ent"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
	"github.com/mausam-code/complete-agency/internal/entity"
)

type ProcessingJobRepository interface {
	// Create records a queued unit of work; documentID/cvID are weak links.
	Create(ctx context.Context, userID uuid.UUID, jobType constants.JobType, documentID, cvID *uuid.UUID) (*entity.ProcessingJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// Advance raises progress to the checkpoint; it never lowers it.
	Advance(ctx context.Context, id uuid.UUID, cp constants.Checkpoint) error
	Complete(ctx context.Context, id uuid.UUID, result map[string]any) error
	Fail(ctx context.Context, id uuid.UUID, details string) error
	PurgeFailedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type processingJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProcessingJobRepository(entc *ent.Client, log *slog.Logger) ProcessingJobRepository {
	return &processingJobRepo{ent: entc, log: log}
}

func (r *processingJobRepo) Create(ctx context.Context, userID uuid.UUID, jobType constants.JobType, documentID, cvID *uuid.UUID) (*entity.ProcessingJob, error) {
	c := r.ent.ProcessingJob.
		Create().
		SetUserID(userID).
		SetJobType(string(jobType))
	if documentID != nil {
		c.SetDocumentID(*documentID)
	}
	if cvID != nil {
		c.SetCvID(*cvID)
	}
	row, err := c.Save(ctx)
	if err != nil {
		r.log.Error("processing_job create failed", "user_id", userID, "job_type", jobType, "error", err)
		return nil, err
	}
	r.log.Info("processing_job queued", "job_id", row.ID, "job_type", jobType)
	return toJobEntity(row), nil
}

func (r *processingJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	row, err := r.ent.ProcessingJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toJobEntity(row), nil
}

func (r *processingJobRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	return err
}

func (r *processingJobRepo) Advance(ctx context.Context, id uuid.UUID, cp constants.Checkpoint) error {
	row, err := r.ent.ProcessingJob.Get(ctx, id)
	if err != nil {
		return err
	}
	if row.Progress >= cp.Percent {
		return nil
	}
	_, err = r.ent.ProcessingJob.
		UpdateOneID(id).
		SetProgress(cp.Percent).
		Save(ctx)
	if err == nil {
		r.log.Debug("processing_job advanced", "job_id", id, "checkpoint", cp.Name, "progress", cp.Percent)
	}
	return err
}

func (r *processingJobRepo) Complete(ctx context.Context, id uuid.UUID, result map[string]any) error {
	var raw json.RawMessage
	if result != nil {
		if b, err := json.Marshal(result); err == nil {
			raw = b
		}
	}
	upd := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusCompleted)).
		SetProgress(100).
		SetCompletedAt(time.Now().UTC())
	if raw != nil {
		upd.SetResultData(raw)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("processing_job complete failed", "job_id", id, "error", err)
		return err
	}
	r.log.Info("processing_job completed", "job_id", id)
	return nil
}

func (r *processingJobRepo) Fail(ctx context.Context, id uuid.UUID, details string) error {
	_, err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorDetails(details).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.log.Error("processing_job fail update errored", "job_id", id, "error", err)
		return err
	}
	r.log.Warn("processing_job failed", "job_id", id, "error_details", details)
	return nil
}

func (r *processingJobRepo) PurgeFailedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.ent.ProcessingJob.
		Delete().
		Where(
			processingjob.StatusEQ(string(constants.JobStatusFailed)),
			processingjob.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.log.Info("purged failed processing jobs", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

func toJobEntity(row *ent.ProcessingJob) *entity.ProcessingJob {
	return &entity.ProcessingJob{
		ID:           row.ID,
		UserID:       row.UserID,
		JobType:      constants.JobType(row.JobType),
		Status:       constants.JobStatus(row.Status),
		DocumentID:   row.DocumentID,
		CVID:         row.CvID,
		Progress:     row.Progress,
		ResultData:   row.ResultData,
		ErrorDetails: row.ErrorDetails,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		CreatedAt:    row.CreatedAt,
	}
}
