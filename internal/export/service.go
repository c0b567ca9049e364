package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/mausam-code/complete-agency/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes
// for processing reports.
type Service struct {
	scans  repository.DocumentScanRepository
	cvs    repository.GeneratedCVRepository
	logger *slog.Logger
}

func NewService(scans repository.DocumentScanRepository, cvs repository.GeneratedCVRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{scans: scans, cvs: cvs, logger: logger}
}

// ExportScansXLSX returns an XLSX workbook (as bytes) listing the
// user's document scans plus a summary block for the date window.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> the last 30 days.
func (s *Service) ExportScansXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)

	scans, err := s.scans.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded",
		"File Name",
		"Document Type",
		"Status",
		"Pages",
		"Confidence",
		"Processing Time (s)",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	listed := 0
	for _, scan := range scans {
		if scan.CreatedAt.Before(fromDate) || scan.CreatedAt.After(toDate.Add(24*time.Hour)) {
			continue
		}
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, scan.CreatedAt.Format("2006-01-02 15:04"))
		write(2, scan.FileName)
		write(3, scan.DocumentType)
		write(4, string(scan.Status))
		write(5, scan.PageCount)
		write(6, fmt.Sprintf("%.1f", scan.ConfidenceScore))
		write(7, fmt.Sprintf("%.2f", scan.ProcessingTime))
		if scan.ErrorMessage != nil {
			write(8, truncate(*scan.ErrorMessage, 140))
		}
		row++
		listed++
	}

	// summary block under the listing
	scanStats, err := s.scans.StatsBetween(ctx, fromDate, toDate.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}
	cvStats, err := s.cvs.StatsBetween(ctx, fromDate, toDate.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("cv stats: %w", err)
	}
	summary := [][2]any{
		{"Total Documents", scanStats.Total},
		{"Completed Scans", scanStats.Completed},
		{"Failed Scans", scanStats.Failed},
		{"Avg Processing Time (s)", fmt.Sprintf("%.2f", scanStats.AvgProcessingTime)},
		{"Generated CVs", cvStats.Total},
		{"Completed CVs", cvStats.Completed},
	}
	row++
	for _, kv := range summary {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, cellA, kv[0])
		_ = f.SetCellValue(sheet, cellB, kv[1])
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 36)
	_ = f.SetColWidth(sheet, "C", "D", 16)
	_ = f.SetColWidth(sheet, "E", "G", 14)
	_ = f.SetColWidth(sheet, "H", "H", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", listed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func normalizeWindow(from, to *time.Time) (time.Time, time.Time) {
	dateOnly := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	today := dateOnly(time.Now().UTC())
	switch {
	case from == nil && to == nil:
		return today.AddDate(0, 0, -30), today
	case from != nil && to == nil:
		return dateOnly(*from), today
	case from == nil:
		return dateOnly(*to).AddDate(0, 0, -30), dateOnly(*to)
	default:
		return dateOnly(*from), dateOnly(*to)
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
