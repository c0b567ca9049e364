package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/gen/ent"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
	"github.com/mausam-code/complete-agency/internal/entity"
)

type ExtractedDataRepository interface {
	GetByDocument(ctx context.Context, documentID uuid.UUID) (*entity.ExtractedData, error)
	// Upsert creates the row for a document on first extraction and applies
	// the non-zero-overwrite merge rule on re-extraction.
	Upsert(ctx context.Context, documentID uuid.UUID, patch entity.FieldPatch) (*entity.ExtractedData, error)
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) error
}

type extractedDataRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractedDataRepository(entc *ent.Client, log *slog.Logger) ExtractedDataRepository {
	return &extractedDataRepo{ent: entc, log: log}
}

func (r *extractedDataRepo) GetByDocument(ctx context.Context, documentID uuid.UUID) (*entity.ExtractedData, error) {
	row, err := r.ent.ExtractedData.
		Query().
		Where(extracteddata.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toExtractedEntity(row), nil
}

func (r *extractedDataRepo) Upsert(ctx context.Context, documentID uuid.UUID, patch entity.FieldPatch) (*entity.ExtractedData, error) {
	existing, err := r.ent.ExtractedData.
		Query().
		Where(extracteddata.DocumentID(documentID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		return r.create(ctx, documentID, patch)
	case err != nil:
		return nil, err
	}

	merged := toExtractedEntity(existing)
	patch.Apply(merged)

	upd := r.ent.ExtractedData.
		UpdateOneID(existing.ID).
		SetNillableFullName(merged.FullName).
		SetNillableEmail(merged.Email).
		SetNillablePhone(merged.Phone).
		SetNillableAddress(merged.Address).
		SetNillableCurrentPosition(merged.CurrentPosition).
		SetNillableCompany(merged.Company).
		SetNillableExperienceYears(merged.ExperienceYears).
		SetNillableSkills(merged.Skills).
		SetNillableEducation(merged.Education).
		SetNillableCertifications(merged.Certifications)
	if len(merged.AdditionalData) > 0 {
		upd.SetAdditionalData(merged.AdditionalData)
	}

	row, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("extracted_data update failed", "document_id", documentID, "error", err)
		return nil, err
	}
	r.log.Info("extracted_data updated", "document_id", documentID)
	return toExtractedEntity(row), nil
}

func (r *extractedDataRepo) create(ctx context.Context, documentID uuid.UUID, patch entity.FieldPatch) (*entity.ExtractedData, error) {
	fresh := &entity.ExtractedData{}
	patch.Apply(fresh)

	c := r.ent.ExtractedData.
		Create().
		SetDocumentID(documentID).
		SetNillableFullName(fresh.FullName).
		SetNillableEmail(fresh.Email).
		SetNillablePhone(fresh.Phone).
		SetNillableAddress(fresh.Address).
		SetNillableCurrentPosition(fresh.CurrentPosition).
		SetNillableCompany(fresh.Company).
		SetNillableExperienceYears(fresh.ExperienceYears).
		SetNillableSkills(fresh.Skills).
		SetNillableEducation(fresh.Education).
		SetNillableCertifications(fresh.Certifications)
	if len(fresh.AdditionalData) > 0 {
		c.SetAdditionalData(fresh.AdditionalData)
	}
	row, err := c.Save(ctx)
	if err != nil {
		r.log.Error("extracted_data create failed", "document_id", documentID, "error", err)
		return nil, err
	}
	r.log.Info("extracted_data created", "document_id", documentID)
	return toExtractedEntity(row), nil
}

func (r *extractedDataRepo) DeleteByDocument(ctx context.Context, documentID uuid.UUID) error {
	_, err := r.ent.ExtractedData.
		Delete().
		Where(extracteddata.DocumentID(documentID)).
		Exec(ctx)
	return err
}

func toExtractedEntity(row *ent.ExtractedData) *entity.ExtractedData {
	return &entity.ExtractedData{
		ID:              row.ID,
		DocumentID:      row.DocumentID,
		FullName:        row.FullName,
		Email:           row.Email,
		Phone:           row.Phone,
		Address:         row.Address,
		DateOfBirth:     row.DateOfBirth,
		CurrentPosition: row.CurrentPosition,
		Company:         row.Company,
		ExperienceYears: row.ExperienceYears,
		Skills:          row.Skills,
		Education:       row.Education,
		Certifications:  row.Certifications,
		AdditionalData:  row.AdditionalData,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
