// Package core coordinates the document pipelines: text recovery plus
// field extraction for uploads, and CV/form/bundle rendering for
// generation requests. Each pipeline drives the entity state machine
// and the progress of its backing job row.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/entity"
	"github.com/mausam-code/complete-agency/internal/extract"
	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/ocr"
	"github.com/mausam-code/complete-agency/internal/repository"
)

// TextExtractor recovers text from a stored document.
type TextExtractor interface {
	ExtractFromDocument(ctx context.Context, path string) (ocr.Result, error)
}

// PathResolver turns stored relative paths into filesystem paths.
type PathResolver interface {
	Abs(rel string) string
}

// Processor runs the scan pipeline: OCR, field extraction, persistence.
type Processor struct {
	logger    *slog.Logger
	extractor TextExtractor
	scans     repository.DocumentScanRepository
	extracted repository.ExtractedDataRepository
	jobs      repository.ProcessingJobRepository
	paths     PathResolver
	notifier  notify.Notifier
	locks     *entityLocks
}

func NewProcessor(
	logger *slog.Logger,
	extractor TextExtractor,
	scans repository.DocumentScanRepository,
	extracted repository.ExtractedDataRepository,
	jobs repository.ProcessingJobRepository,
	paths PathResolver,
	notifier notify.Notifier,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		scans:     scans,
		extracted: extracted,
		jobs:      jobs,
		paths:     paths,
		notifier:  notifier,
		locks:     newEntityLocks(),
	}
}

// ProcessDocument runs the full scan pipeline for one upload. A second
// concurrent call for the same scan returns ErrAlreadyRunning without
// touching any state.
func (p *Processor) ProcessDocument(ctx context.Context, scanID, jobID uuid.UUID) error {
	if !p.locks.TryAcquire(scanID) {
		return fmt.Errorf("scan %s: %w", scanID, common.ErrAlreadyRunning)
	}
	defer p.locks.Release(scanID)

	scan, err := p.scans.GetByID(ctx, scanID)
	if err != nil {
		return p.failJob(ctx, jobID, stageErr("load", err))
	}

	if err := p.jobs.MarkProcessing(ctx, jobID); err != nil {
		p.logger.Warn("job update failed", "job_id", jobID, "error", err)
	}
	_ = p.jobs.Advance(ctx, jobID, constants.CheckpointScanDispatched)

	if err := p.scans.MarkProcessing(ctx, scanID); err != nil {
		return p.failScan(ctx, scan, jobID, stageErr("status", err))
	}
	_ = p.jobs.Advance(ctx, jobID, constants.CheckpointScanExtracting)

	start := time.Now()
	res, err := p.extractor.ExtractFromDocument(ctx, p.paths.Abs(scan.FilePath))
	if err != nil {
		return p.failScan(ctx, scan, jobID, stageErr("ocr", err))
	}
	elapsed := time.Since(start).Seconds()

	if err := p.scans.MarkCompleted(ctx, scanID, res.Text, res.Confidence, res.Pages, elapsed); err != nil {
		return p.failScan(ctx, scan, jobID, stageErr("persist", err))
	}

	patch := extract.StructuredData(res.Text)
	if err := extract.ValidatePatch(patch); err != nil {
		return p.failScan(ctx, scan, jobID, stageErr("extract", err))
	}
	if _, err := p.extracted.Upsert(ctx, scanID, patch); err != nil {
		return p.failScan(ctx, scan, jobID, stageErr("extract", err))
	}

	if err := p.jobs.Complete(ctx, jobID, map[string]any{
		"confidence_score": res.Confidence,
		"page_count":       res.Pages,
		"processing_time":  elapsed,
	}); err != nil {
		p.logger.Warn("job completion update failed", "job_id", jobID, "error", err)
	}

	p.notifier.Notify(ctx, scan.UserID.String(), notify.KindSuccess,
		"Document Processing Complete",
		fmt.Sprintf("Your document %q has been processed successfully.", scan.FileName))

	p.logger.Info("document processed",
		"scan_id", scanID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"elapsed_s", elapsed,
	)
	return nil
}

func (p *Processor) failScan(ctx context.Context, scan *entity.DocumentScan, jobID uuid.UUID, serr *StageError) error {
	if err := p.scans.MarkFailed(ctx, scan.ID, serr.Error()); err != nil {
		p.logger.Error("failed to record scan failure", "scan_id", scan.ID, "error", err)
	}
	p.notifier.Notify(ctx, scan.UserID.String(), notify.KindError,
		"Document Processing Failed",
		fmt.Sprintf("Failed to process document %q. Please try again.", scan.FileName))
	return p.failJob(ctx, jobID, serr)
}

func (p *Processor) failJob(ctx context.Context, jobID uuid.UUID, serr *StageError) error {
	if err := p.jobs.Fail(ctx, jobID, serr.Error()); err != nil {
		p.logger.Error("failed to record job failure", "job_id", jobID, "error", err)
	}
	return serr
}
