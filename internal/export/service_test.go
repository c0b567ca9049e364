package export

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/entity"
	"github.com/mausam-code/complete-agency/internal/repository"
)

type fakeScanRepo struct {
	repository.DocumentScanRepository
	scans []*entity.DocumentScan
	stats repository.ScanStats
}

func (f *fakeScanRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.DocumentScan, error) {
	var out []*entity.DocumentScan
	for _, s := range f.scans {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScanRepo) StatsBetween(context.Context, time.Time, time.Time) (repository.ScanStats, error) {
	return f.stats, nil
}

type fakeCVRepo struct {
	repository.GeneratedCVRepository
	stats repository.CVStats
}

func (f *fakeCVRepo) StatsBetween(context.Context, time.Time, time.Time) (repository.CVStats, error) {
	return f.stats, nil
}

func TestExportScansXLSX(t *testing.T) {
	userID := uuid.New()
	errMsg := "unsupported file format"
	scans := &fakeScanRepo{
		scans: []*entity.DocumentScan{
			{
				ID:              uuid.New(),
				UserID:          userID,
				DocumentType:    "cv",
				FileName:        "resume.pdf",
				Status:          constants.ScanStatusCompleted,
				PageCount:       2,
				ConfidenceScore: 91.5,
				ProcessingTime:  3.25,
				CreatedAt:       time.Now().UTC().AddDate(0, 0, -1),
			},
			{
				ID:           uuid.New(),
				UserID:       userID,
				DocumentType: "other",
				FileName:     "broken.docx",
				Status:       constants.ScanStatusFailed,
				ErrorMessage: &errMsg,
				CreatedAt:    time.Now().UTC().AddDate(0, 0, -2),
			},
			{
				// outside the default 30 day window
				ID:           uuid.New(),
				UserID:       userID,
				DocumentType: "cv",
				FileName:     "ancient.pdf",
				Status:       constants.ScanStatusCompleted,
				CreatedAt:    time.Now().UTC().AddDate(0, 0, -90),
			},
		},
		stats: repository.ScanStats{Total: 2, Completed: 1, Failed: 1, AvgProcessingTime: 3.25},
	}
	cvs := &fakeCVRepo{stats: repository.CVStats{Total: 1, Completed: 1}}

	svc := NewService(scans, cvs, slog.Default())
	data, err := svc.ExportScansXLSX(context.Background(), userID, nil, nil)
	if err != nil {
		t.Fatalf("ExportScansXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if got := rows[0][0]; got != "Uploaded" {
		t.Fatalf("header = %q, want Uploaded", got)
	}

	var flat []string
	for _, r := range rows {
		flat = append(flat, strings.Join(r, "|"))
	}
	all := strings.Join(flat, "\n")
	if !strings.Contains(all, "resume.pdf") {
		t.Error("completed scan missing from listing")
	}
	if !strings.Contains(all, "unsupported file format") {
		t.Error("failure reason missing from listing")
	}
	if strings.Contains(all, "ancient.pdf") {
		t.Error("scan outside the window should not be listed")
	}
	if !strings.Contains(all, "Total Documents") || !strings.Contains(all, "Generated CVs") {
		t.Error("summary block missing")
	}
}

func TestExportScansXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeScanRepo{}, &fakeCVRepo{}, slog.Default())
	data, err := svc.ExportScansXLSX(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("ExportScansXLSX: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected a non-empty workbook")
	}
}
