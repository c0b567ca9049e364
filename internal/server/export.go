package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	documentsv1 "github.com/mausam-code/complete-agency/gen/proto/documents/v1"
	"github.com/mausam-code/complete-agency/internal/common"
)

// ExportReport builds an XLSX processing report for the user's documents.
// Dates are optional YYYY-MM-DD strings; the exporter fills in the window
// (last 30 days when both are empty, from..today when only from is given).
func (s *DocumentsService) ExportReport(ctx context.Context, req *documentsv1.ExportReportRequest) (*documentsv1.ExportReportResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}
	if fromPtr != nil && toPtr != nil && toPtr.Before(*fromPtr) {
		return nil, common.InvalidArgumentError("to_date must not be before from_date")
	}

	data, err := s.exporter.ExportScansXLSX(ctx, userID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to build report")
	}

	filename := fmt.Sprintf("processing_report_%s.xlsx", time.Now().UTC().Format("20060102"))
	return &documentsv1.ExportReportResponse{
		Xlsx:     data,
		Filename: filename,
	}, nil
}
