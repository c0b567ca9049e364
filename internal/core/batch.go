package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/notify"
)

// BatchResult summarizes a batch reprocessing run.
type BatchResult struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// BatchReprocess resets and re-runs the scan pipeline for each of the
// user's documents, sequentially. Documents belonging to other users
// are counted as failures and skipped. One summary notification is
// sent at the end regardless of outcome.
func (p *Processor) BatchReprocess(ctx context.Context, userID uuid.UUID, documentIDs []uuid.UUID) BatchResult {
	var res BatchResult
	for _, docID := range documentIDs {
		if err := p.reprocessOne(ctx, userID, docID); err != nil {
			p.logger.Error("reprocess failed", "scan_id", docID, "error", err)
			res.Failed++
			continue
		}
		res.Processed++
	}

	kind := notify.KindInfo
	if res.Failed > 0 {
		kind = notify.KindWarning
	}
	p.notifier.Notify(ctx, userID.String(), kind,
		"Batch Reprocessing Complete",
		fmt.Sprintf("Reprocessed %d documents successfully. %d failed.", res.Processed, res.Failed))
	return res
}

func (p *Processor) reprocessOne(ctx context.Context, userID, docID uuid.UUID) error {
	scan, err := p.scans.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if scan.UserID != userID {
		return fmt.Errorf("scan %s does not belong to user %s", docID, userID)
	}
	if err := p.scans.ResetPending(ctx, docID); err != nil {
		return err
	}
	job, err := p.jobs.Create(ctx, userID, constants.JobTypeScan, &docID, nil)
	if err != nil {
		return err
	}
	return p.ProcessDocument(ctx, docID, job.ID)
}
