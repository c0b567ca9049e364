package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/ocr"
)

type passthroughPaths struct{}

func (passthroughPaths) Abs(rel string) string { return rel }

func newTestProcessor(ext TextExtractor) (*Processor, *fakeScanRepo, *fakeExtractedRepo, *fakeJobRepo, *fakeNotifier) {
	scans := newFakeScanRepo()
	extracted := newFakeExtractedRepo()
	jobs := newFakeJobRepo()
	notifier := &fakeNotifier{}
	p := NewProcessor(nil, ext, scans, extracted, jobs, passthroughPaths{}, notifier)
	return p, scans, extracted, jobs, notifier
}

func seedScan(t *testing.T, scans *fakeScanRepo, userID uuid.UUID) uuid.UUID {
	t.Helper()
	s, err := scans.Create(context.Background(), userID, "resume", "documents/u/x.pdf", "resume.pdf", "pdf", 1024)
	if err != nil {
		t.Fatal(err)
	}
	return s.ID
}

func TestProcessDocumentSuccess(t *testing.T) {
	ext := &fakeExtractor{res: ocr.Result{
		Text:       "Jane Doe\njane@example.com\nSkills\ngo, sql",
		Pages:      2,
		Confidence: 91.5,
		Method:     "pdf-text",
	}}
	p, scans, extracted, jobs, notifier := newTestProcessor(ext)

	user := uuid.New()
	scanID := seedScan(t, scans, user)
	job, _ := jobs.Create(context.Background(), user, constants.JobTypeScan, &scanID, nil)

	if err := p.ProcessDocument(context.Background(), scanID, job.ID); err != nil {
		t.Fatalf("process: %v", err)
	}

	scan, _ := scans.GetByID(context.Background(), scanID)
	if scan.Status != constants.ScanStatusCompleted {
		t.Fatalf("scan status = %s", scan.Status)
	}
	if scan.ConfidenceScore != 91.5 || scan.PageCount != 2 {
		t.Fatalf("scan results not persisted: %+v", scan)
	}

	row, err := extracted.GetByDocument(context.Background(), scanID)
	if err != nil {
		t.Fatalf("extracted data missing: %v", err)
	}
	if row.Email == nil || *row.Email != "jane@example.com" {
		t.Fatalf("email not extracted: %+v", row)
	}

	j, _ := jobs.GetByID(context.Background(), job.ID)
	if j.Status != constants.JobStatusCompleted || j.Progress != 100 {
		t.Fatalf("job not completed: %+v", j)
	}
	got := jobs.progress[job.ID]
	if len(got) != 2 || got[0] != 10 || got[1] != 30 {
		t.Fatalf("checkpoints = %v", got)
	}

	n, ok := notifier.last()
	if !ok || n.Kind != notify.KindSuccess {
		t.Fatalf("expected success notification, got %+v", n)
	}
}

func TestProcessDocumentOCRFailure(t *testing.T) {
	ext := &fakeExtractor{err: errors.New("tesseract exploded")}
	p, scans, _, jobs, notifier := newTestProcessor(ext)

	user := uuid.New()
	scanID := seedScan(t, scans, user)
	job, _ := jobs.Create(context.Background(), user, constants.JobTypeScan, &scanID, nil)

	err := p.ProcessDocument(context.Background(), scanID, job.ID)
	if err == nil {
		t.Fatal("expected error")
	}
	var serr *StageError
	if !errors.As(err, &serr) || serr.Stage != "ocr" {
		t.Fatalf("want ocr stage error, got %v", err)
	}

	scan, _ := scans.GetByID(context.Background(), scanID)
	if scan.Status != constants.ScanStatusFailed || scan.ErrorMessage == nil {
		t.Fatalf("scan not failed: %+v", scan)
	}
	j, _ := jobs.GetByID(context.Background(), job.ID)
	if j.Status != constants.JobStatusFailed || j.ErrorDetails == nil {
		t.Fatalf("job not failed: %+v", j)
	}
	if n, ok := notifier.last(); !ok || n.Kind != notify.KindError {
		t.Fatalf("expected error notification, got %+v", n)
	}
}

func TestProcessDocumentAlreadyRunning(t *testing.T) {
	p, scans, _, jobs, _ := newTestProcessor(&fakeExtractor{})
	user := uuid.New()
	scanID := seedScan(t, scans, user)
	job, _ := jobs.Create(context.Background(), user, constants.JobTypeScan, &scanID, nil)

	if !p.locks.TryAcquire(scanID) {
		t.Fatal("setup: lock unavailable")
	}
	defer p.locks.Release(scanID)

	err := p.ProcessDocument(context.Background(), scanID, job.ID)
	if !errors.Is(err, common.ErrAlreadyRunning) {
		t.Fatalf("want ErrAlreadyRunning, got %v", err)
	}
	// the guarded call must not have touched the scan
	scan, _ := scans.GetByID(context.Background(), scanID)
	if scan.Status != constants.ScanStatusPending {
		t.Fatalf("scan status changed under guard: %s", scan.Status)
	}
}

func TestProcessDocumentMissingScanFailsJob(t *testing.T) {
	p, _, _, jobs, _ := newTestProcessor(&fakeExtractor{})
	user := uuid.New()
	job, _ := jobs.Create(context.Background(), user, constants.JobTypeScan, nil, nil)

	if err := p.ProcessDocument(context.Background(), uuid.New(), job.ID); err == nil {
		t.Fatal("expected error for missing scan")
	}
	j, _ := jobs.GetByID(context.Background(), job.ID)
	if j.Status != constants.JobStatusFailed {
		t.Fatalf("job status = %s", j.Status)
	}
}

func TestBatchReprocess(t *testing.T) {
	ext := &fakeExtractor{res: ocr.Result{Text: "Jane Doe\njane@example.com", Pages: 1, Confidence: 88}}
	p, scans, _, jobs, notifier := newTestProcessor(ext)

	user := uuid.New()
	mine := seedScan(t, scans, user)
	other, _ := scans.Create(context.Background(), uuid.New(), "resume", "documents/o/y.pdf", "y.pdf", "pdf", 10)

	res := p.BatchReprocess(context.Background(), user, []uuid.UUID{mine, other.ID, uuid.New()})
	if res.Processed != 1 || res.Failed != 2 {
		t.Fatalf("batch result = %+v", res)
	}

	// a job row exists for the successful reprocess
	found := false
	for _, j := range jobs.jobs {
		if j.DocumentID != nil && *j.DocumentID == mine && j.Status == constants.JobStatusCompleted {
			found = true
		}
	}
	if !found {
		t.Fatal("no completed job for reprocessed scan")
	}

	n, ok := notifier.last()
	if !ok || n.Title != "Batch Reprocessing Complete" || n.Kind != notify.KindWarning {
		t.Fatalf("summary notification = %+v", n)
	}
}
