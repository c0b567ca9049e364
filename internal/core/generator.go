package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/docgen"
	"github.com/mausam-code/complete-agency/internal/entity"
	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/repository"
)

// ArtifactStore lays out and resolves generated file paths.
type ArtifactStore interface {
	Abs(rel string) string
	CVPath(userID, cvID uuid.UUID) string
	FormPath(userID, cvID uuid.UUID) string
	MergedPath(userID, cvID uuid.UUID) string
	EnsureDirFor(rel string) error
}

// Generator runs the CV pipeline: render the CV, render the
// application form, merge everything into a single bundle.
type Generator struct {
	logger    *slog.Logger
	scans     repository.DocumentScanRepository
	cvs       repository.GeneratedCVRepository
	extracted repository.ExtractedDataRepository
	jobs      repository.ProcessingJobRepository
	store     ArtifactStore
	notifier  notify.Notifier
	locks     *entityLocks
}

func NewGenerator(
	logger *slog.Logger,
	scans repository.DocumentScanRepository,
	cvs repository.GeneratedCVRepository,
	extracted repository.ExtractedDataRepository,
	jobs repository.ProcessingJobRepository,
	store ArtifactStore,
	notifier notify.Notifier,
) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	return &Generator{
		logger:    logger,
		scans:     scans,
		cvs:       cvs,
		extracted: extracted,
		jobs:      jobs,
		store:     store,
		notifier:  notifier,
		locks:     newEntityLocks(),
	}
}

// GenerateCV produces all three artifacts for a generation request.
// Artifacts are persisted as they land, so a failure partway leaves the
// earlier paths recorded on the row alongside the failed status.
func (g *Generator) GenerateCV(ctx context.Context, cvID, jobID uuid.UUID) error {
	if !g.locks.TryAcquire(cvID) {
		return fmt.Errorf("cv %s: %w", cvID, common.ErrAlreadyRunning)
	}
	defer g.locks.Release(cvID)

	cv, err := g.cvs.GetByID(ctx, cvID)
	if err != nil {
		return g.failJob(ctx, jobID, stageErr("load", err))
	}

	if err := g.jobs.MarkProcessing(ctx, jobID); err != nil {
		g.logger.Warn("job update failed", "job_id", jobID, "error", err)
	}
	_ = g.jobs.Advance(ctx, jobID, constants.CheckpointGenDispatched)

	if err := g.cvs.MarkGenerating(ctx, cvID); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("status", err))
	}

	scan, err := g.scans.GetByID(ctx, cv.DocumentID)
	if err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("load_document", err))
	}
	ext, err := g.extracted.GetByDocument(ctx, cv.DocumentID)
	if err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("load_extracted", err))
	}
	data := docgen.BuildCVData(ext, cv.CustomData)

	cvRel := g.store.CVPath(cv.UserID, cv.ID)
	if err := g.store.EnsureDirFor(cvRel); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("render_cv", err))
	}
	if err := docgen.RenderCV(data, cv.TemplateType, g.store.Abs(cvRel)); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("render_cv", err))
	}
	if err := g.cvs.SetCVFile(ctx, cvID, cvRel); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("render_cv", err))
	}
	_ = g.jobs.Advance(ctx, jobID, constants.CheckpointGenRendering)

	formRel := g.store.FormPath(cv.UserID, cv.ID)
	if err := docgen.RenderApplicationForm(data, g.store.Abs(formRel)); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("render_form", err))
	}
	if err := g.cvs.SetApplicationForm(ctx, cvID, formRel); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("render_form", err))
	}

	mergedRel := g.store.MergedPath(cv.UserID, cv.ID)
	if err := docgen.MergeDocuments(
		g.store.Abs(cvRel),
		g.store.Abs(formRel),
		g.store.Abs(scan.FilePath),
		g.store.Abs(mergedRel),
	); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("merge", err))
	}
	if err := g.cvs.SetMergedDocument(ctx, cvID, mergedRel); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("merge", err))
	}

	if err := g.cvs.MarkCompleted(ctx, cvID); err != nil {
		return g.failCV(ctx, cv, jobID, stageErr("finalize", err))
	}
	if err := g.jobs.Complete(ctx, jobID, map[string]any{
		"cv_generated":          true,
		"application_generated": true,
		"merged_generated":      true,
		"template_type":         cv.TemplateType,
	}); err != nil {
		g.logger.Warn("job completion update failed", "job_id", jobID, "error", err)
	}

	g.notifier.Notify(ctx, cv.UserID.String(), notify.KindSuccess,
		"CV Generation Complete",
		fmt.Sprintf("Your CV has been generated successfully using the %s template.", cv.TemplateType))

	g.logger.Info("cv generated", "cv_id", cvID, "document_id", cv.DocumentID, "template", cv.TemplateType)
	return nil
}

func (g *Generator) failCV(ctx context.Context, cv *entity.GeneratedCV, jobID uuid.UUID, serr *StageError) error {
	if err := g.cvs.MarkFailed(ctx, cv.ID, serr.Error()); err != nil {
		g.logger.Error("failed to record cv failure", "cv_id", cv.ID, "error", err)
	}
	g.notifier.Notify(ctx, cv.UserID.String(), notify.KindError,
		"CV Generation Failed",
		"Failed to generate your CV. Please try again or contact support.")
	return g.failJob(ctx, jobID, serr)
}

func (g *Generator) failJob(ctx context.Context, jobID uuid.UUID, serr *StageError) error {
	if err := g.jobs.Fail(ctx, jobID, serr.Error()); err != nil {
		g.logger.Error("failed to record job failure", "job_id", jobID, "error", err)
	}
	return serr
}
