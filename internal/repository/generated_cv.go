package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/gen/ent"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/internal/entity"
)

// CVStats summarizes CV generation in a window, for the processing report.
type CVStats struct {
	Total     int
	Completed int
}

type GeneratedCVRepository interface {
	Create(ctx context.Context, userID, documentID uuid.UUID, template string, custom map[string]any) (*entity.GeneratedCV, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedCV, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GeneratedCV, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.GeneratedCV, error)
	MarkGenerating(ctx context.Context, id uuid.UUID) error
	SetCVFile(ctx context.Context, id uuid.UUID, path string) error
	SetApplicationForm(ctx context.Context, id uuid.UUID, path string) error
	SetMergedDocument(ctx context.Context, id uuid.UUID, path string) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ResetPending(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	StatsBetween(ctx context.Context, from, to time.Time) (CVStats, error)
}

type generatedCVRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewGeneratedCVRepository(entc *ent.Client, log *slog.Logger) GeneratedCVRepository {
	return &generatedCVRepo{ent: entc, log: log}
}

func (r *generatedCVRepo) Create(ctx context.Context, userID, documentID uuid.UUID, template string, custom map[string]any) (*entity.GeneratedCV, error) {
	if !constants.IsValidTemplate(template) {
		template = constants.DefaultTemplate
	}
	c := r.ent.GeneratedCV.
		Create().
		SetUserID(userID).
		SetDocumentID(documentID).
		SetTemplateType(template)
	if len(custom) > 0 {
		c.SetCustomData(custom)
	}
	row, err := c.Save(ctx)
	if err != nil {
		r.log.Error("generated_cv create failed", "document_id", documentID, "error", err)
		return nil, err
	}
	r.log.Info("generated_cv created", "cv_id", row.ID, "document_id", documentID, "template", template)
	return toCVEntity(row), nil
}

func (r *generatedCVRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedCV, error) {
	row, err := r.ent.GeneratedCV.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCVEntity(row), nil
}

func (r *generatedCVRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GeneratedCV, error) {
	rows, err := r.ent.GeneratedCV.
		Query().
		Where(generatedcv.UserID(userID)).
		Order(ent.Desc(generatedcv.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toCVEntities(rows), nil
}

func (r *generatedCVRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.GeneratedCV, error) {
	rows, err := r.ent.GeneratedCV.
		Query().
		Where(generatedcv.DocumentID(documentID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toCVEntities(rows), nil
}

func (r *generatedCVRepo) MarkGenerating(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.GenerationStatusGenerating)
}

func (r *generatedCVRepo) SetCVFile(ctx context.Context, id uuid.UUID, path string) error {
	_, err := r.ent.GeneratedCV.UpdateOneID(id).SetCvFile(path).Save(ctx)
	return err
}

func (r *generatedCVRepo) SetApplicationForm(ctx context.Context, id uuid.UUID, path string) error {
	_, err := r.ent.GeneratedCV.UpdateOneID(id).SetApplicationForm(path).Save(ctx)
	return err
}

func (r *generatedCVRepo) SetMergedDocument(ctx context.Context, id uuid.UUID, path string) error {
	_, err := r.ent.GeneratedCV.UpdateOneID(id).SetMergedDocument(path).Save(ctx)
	return err
}

func (r *generatedCVRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	err := r.setStatus(ctx, id, constants.GenerationStatusCompleted)
	if err == nil {
		r.log.Info("generated_cv completed", "cv_id", id)
	}
	return err
}

func (r *generatedCVRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.GeneratedCV.
		UpdateOneID(id).
		SetStatus(string(constants.GenerationStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("generated_cv mark failed errored", "cv_id", id, "error", err)
		return err
	}
	r.log.Warn("generated_cv failed", "cv_id", id, "error_message", message)
	return nil
}

// ResetPending rewinds a terminal CV for regeneration. Existing file
// slots are left alone; regeneration overwrites them with fresh paths.
func (r *generatedCVRepo) ResetPending(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.GeneratedCV.
		UpdateOneID(id).
		SetStatus(string(constants.GenerationStatusPending)).
		ClearErrorMessage().
		Save(ctx)
	return err
}

func (r *generatedCVRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.ent.GeneratedCV.DeleteOneID(id).Exec(ctx)
}

func (r *generatedCVRepo) StatsBetween(ctx context.Context, from, to time.Time) (CVStats, error) {
	rows, err := r.ent.GeneratedCV.
		Query().
		Where(generatedcv.CreatedAtGTE(from), generatedcv.CreatedAtLT(to)).
		All(ctx)
	if err != nil {
		return CVStats{}, err
	}
	var stats CVStats
	stats.Total = len(rows)
	for _, row := range rows {
		if constants.GenerationStatus(row.Status) == constants.GenerationStatusCompleted {
			stats.Completed++
		}
	}
	return stats, nil
}

func (r *generatedCVRepo) setStatus(ctx context.Context, id uuid.UUID, s constants.GenerationStatus) error {
	_, err := r.ent.GeneratedCV.UpdateOneID(id).SetStatus(string(s)).Save(ctx)
	if err != nil {
		r.log.Error("generated_cv status update failed", "cv_id", id, "status", s, "error", err)
	}
	return err
}

func toCVEntity(row *ent.GeneratedCV) *entity.GeneratedCV {
	return &entity.GeneratedCV{
		ID:              row.ID,
		UserID:          row.UserID,
		DocumentID:      row.DocumentID,
		TemplateType:    row.TemplateType,
		CVFile:          row.CvFile,
		ApplicationForm: row.ApplicationForm,
		MergedDocument:  row.MergedDocument,
		Status:          constants.GenerationStatus(row.Status),
		ErrorMessage:    row.ErrorMessage,
		CustomData:      row.CustomData,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func toCVEntities(rows []*ent.GeneratedCV) []*entity.GeneratedCV {
	out := make([]*entity.GeneratedCV, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCVEntity(row))
	}
	return out
}
