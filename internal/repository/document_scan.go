package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/gen/ent"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/internal/entity"
)

// ScanStats summarizes document scans in a window, for the processing report.
type ScanStats struct {
	Total             int
	Completed         int
	Failed            int
	AvgProcessingTime float64
}

type DocumentScanRepository interface {
	Create(ctx context.Context, userID uuid.UUID, docType, filePath, fileName, fileExt string, fileSize int) (*entity.DocumentScan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentScan, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DocumentScan, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, text string, confidence float64, pages int, elapsedSecs float64) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ResetPending(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]*entity.DocumentScan, error)
	StatsBetween(ctx context.Context, from, to time.Time) (ScanStats, error)
}

type documentScanRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentScanRepository(entc *ent.Client, log *slog.Logger) DocumentScanRepository {
	return &documentScanRepo{ent: entc, log: log}
}

func (r *documentScanRepo) Create(ctx context.Context, userID uuid.UUID, docType, filePath, fileName, fileExt string, fileSize int) (*entity.DocumentScan, error) {
	row, err := r.ent.DocumentScan.
		Create().
		SetUserID(userID).
		SetDocumentType(docType).
		SetFilePath(filePath).
		SetFileName(fileName).
		SetFileExt(fileExt).
		SetFileSize(fileSize).
		Save(ctx)
	if err != nil {
		r.log.Error("document_scan create failed", "user_id", userID, "error", err)
		return nil, err
	}
	r.log.Info("document_scan created", "document_id", row.ID, "user_id", userID, "file_name", fileName)
	return toScanEntity(row), nil
}

func (r *documentScanRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentScan, error) {
	row, err := r.ent.DocumentScan.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toScanEntity(row), nil
}

func (r *documentScanRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DocumentScan, error) {
	rows, err := r.ent.DocumentScan.
		Query().
		Where(documentscan.UserID(userID)).
		Order(ent.Desc(documentscan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.DocumentScan, 0, len(rows))
	for _, row := range rows {
		out = append(out, toScanEntity(row))
	}
	return out, nil
}

func (r *documentScanRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.DocumentScan.
		UpdateOneID(id).
		SetStatus(string(constants.ScanStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("document_scan mark processing failed", "document_id", id, "error", err)
	}
	return err
}

func (r *documentScanRepo) MarkCompleted(ctx context.Context, id uuid.UUID, text string, confidence float64, pages int, elapsedSecs float64) error {
	_, err := r.ent.DocumentScan.
		UpdateOneID(id).
		SetExtractedText(text).
		SetConfidenceScore(confidence).
		SetPageCount(pages).
		SetProcessingTime(elapsedSecs).
		SetStatus(string(constants.ScanStatusCompleted)).
		Save(ctx)
	if err != nil {
		r.log.Error("document_scan mark completed failed", "document_id", id, "error", err)
		return err
	}
	r.log.Info("document_scan completed", "document_id", id, "confidence", confidence, "pages", pages)
	return nil
}

func (r *documentScanRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.DocumentScan.
		UpdateOneID(id).
		SetStatus(string(constants.ScanStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("document_scan mark failed errored", "document_id", id, "error", err)
		return err
	}
	r.log.Warn("document_scan failed", "document_id", id, "error_message", message)
	return nil
}

// ResetPending rewinds a terminal scan for reprocessing.
func (r *documentScanRepo) ResetPending(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.DocumentScan.
		UpdateOneID(id).
		SetStatus(string(constants.ScanStatusPending)).
		ClearExtractedText().
		SetConfidenceScore(0).
		ClearErrorMessage().
		SetProcessingTime(0).
		Save(ctx)
	if err != nil {
		r.log.Error("document_scan reset failed", "document_id", id, "error", err)
	}
	return err
}

func (r *documentScanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.ent.DocumentScan.DeleteOneID(id).Exec(ctx)
}

func (r *documentScanRepo) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]*entity.DocumentScan, error) {
	rows, err := r.ent.DocumentScan.
		Query().
		Where(documentscan.CreatedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.DocumentScan, 0, len(rows))
	for _, row := range rows {
		out = append(out, toScanEntity(row))
	}
	return out, nil
}

func (r *documentScanRepo) StatsBetween(ctx context.Context, from, to time.Time) (ScanStats, error) {
	rows, err := r.ent.DocumentScan.
		Query().
		Where(documentscan.CreatedAtGTE(from), documentscan.CreatedAtLT(to)).
		All(ctx)
	if err != nil {
		return ScanStats{}, err
	}
	var stats ScanStats
	var timeSum float64
	stats.Total = len(rows)
	for _, row := range rows {
		switch constants.ScanStatus(row.Status) {
		case constants.ScanStatusCompleted:
			stats.Completed++
			timeSum += row.ProcessingTime
		case constants.ScanStatusFailed:
			stats.Failed++
		}
	}
	if stats.Completed > 0 {
		stats.AvgProcessingTime = timeSum / float64(stats.Completed)
	}
	return stats, nil
}

func toScanEntity(row *ent.DocumentScan) *entity.DocumentScan {
	return &entity.DocumentScan{
		ID:              row.ID,
		UserID:          row.UserID,
		DocumentType:    row.DocumentType,
		FilePath:        row.FilePath,
		FileName:        row.FileName,
		FileExt:         row.FileExt,
		ExtractedText:   row.ExtractedText,
		ConfidenceScore: row.ConfidenceScore,
		Status:          constants.ScanStatus(row.Status),
		ErrorMessage:    row.ErrorMessage,
		FileSize:        row.FileSize,
		PageCount:       row.PageCount,
		ProcessingTime:  row.ProcessingTime,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
