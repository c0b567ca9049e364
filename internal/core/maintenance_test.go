package core

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/entity"
)

func TestCleanupOldScansCascades(t *testing.T) {
	scans := newFakeScanRepo()
	cvs := newFakeCVRepo()
	extracted := newFakeExtractedRepo()
	jobs := newFakeJobRepo()
	remover := &fakeRemover{}
	m := NewMaintenance(nil, scans, cvs, extracted, jobs, remover, &fakeNotifier{}, 90*24*time.Hour, 30*24*time.Hour)

	user := uuid.New()
	old := &entity.DocumentScan{
		ID: uuid.New(), UserID: user, FilePath: "documents/u/old.pdf",
		Status: constants.ScanStatusCompleted, CreatedAt: time.Now().Add(-100 * 24 * time.Hour),
	}
	scans.add(old)
	fresh := &entity.DocumentScan{
		ID: uuid.New(), UserID: user, FilePath: "documents/u/new.pdf",
		Status: constants.ScanStatusCompleted, CreatedAt: time.Now(),
	}
	scans.add(fresh)

	seedExtracted(t, extracted, old.ID)
	cv, _ := cvs.Create(context.Background(), user, old.ID, "modern", nil)
	cvPath := "generated_cvs/u/cv.pdf"
	_ = cvs.SetCVFile(context.Background(), cv.ID, cvPath)

	n, err := m.CleanupOldScans(context.Background())
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if n != 1 {
		t.Fatalf("deleted %d scans, want 1", n)
	}

	if _, err := scans.GetByID(context.Background(), old.ID); err == nil {
		t.Fatal("expired scan still present")
	}
	if _, err := scans.GetByID(context.Background(), fresh.ID); err != nil {
		t.Fatal("fresh scan was deleted")
	}
	if _, err := cvs.GetByID(context.Background(), cv.ID); err == nil {
		t.Fatal("cv of expired scan still present")
	}
	if _, err := extracted.GetByDocument(context.Background(), old.ID); err == nil {
		t.Fatal("extracted data of expired scan still present")
	}

	removedCV, removedOrig := false, false
	for _, p := range remover.removed {
		if p == cvPath {
			removedCV = true
		}
		if p == old.FilePath {
			removedOrig = true
		}
	}
	if !removedCV || !removedOrig {
		t.Fatalf("files not removed: %v", remover.removed)
	}
}

func TestCleanupFailedJobs(t *testing.T) {
	jobs := newFakeJobRepo()
	m := NewMaintenance(nil, newFakeScanRepo(), newFakeCVRepo(), newFakeExtractedRepo(), jobs, &fakeRemover{}, &fakeNotifier{}, 0, 0)

	user := uuid.New()
	oldJob, _ := jobs.Create(context.Background(), user, constants.JobTypeScan, nil, nil)
	_ = jobs.Fail(context.Background(), oldJob.ID, "boom")
	jobs.jobs[oldJob.ID].CreatedAt = time.Now().Add(-40 * 24 * time.Hour)

	recentJob, _ := jobs.Create(context.Background(), user, constants.JobTypeScan, nil, nil)
	_ = jobs.Fail(context.Background(), recentJob.ID, "boom")

	n, err := m.CleanupFailedJobs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("purged %d jobs, want 1", n)
	}
	if _, err := jobs.GetByID(context.Background(), recentJob.ID); err != nil {
		t.Fatal("recent failed job was purged")
	}
}

func TestReportBetween(t *testing.T) {
	scans := newFakeScanRepo()
	cvs := newFakeCVRepo()
	m := NewMaintenance(nil, scans, cvs, newFakeExtractedRepo(), newFakeJobRepo(), &fakeRemover{}, &fakeNotifier{}, 0, 0)

	user := uuid.New()
	now := time.Now().UTC()
	ok := &entity.DocumentScan{ID: uuid.New(), UserID: user, Status: constants.ScanStatusCompleted, ProcessingTime: 2.0, CreatedAt: now}
	bad := &entity.DocumentScan{ID: uuid.New(), UserID: user, Status: constants.ScanStatusFailed, CreatedAt: now}
	scans.add(ok)
	scans.add(bad)
	cv, _ := cvs.Create(context.Background(), user, ok.ID, "modern", nil)
	_ = cvs.MarkCompleted(context.Background(), cv.ID)

	rep, err := m.ReportBetween(context.Background(), now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if rep.TotalDocuments != 2 || rep.SuccessfulScan != 1 || rep.FailedScans != 1 {
		t.Fatalf("scan stats wrong: %+v", rep)
	}
	if rep.SuccessRate != 50 {
		t.Fatalf("success rate = %v", rep.SuccessRate)
	}
	if rep.GeneratedCVs != 1 || rep.SuccessfulCVs != 1 || rep.CVSuccessRate != 100 {
		t.Fatalf("cv stats wrong: %+v", rep)
	}
	if rep.AvgProcessing != 2.0 {
		t.Fatalf("avg processing = %v", rep.AvgProcessing)
	}
}
