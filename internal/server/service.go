// Package server exposes the document pipeline over gRPC.
package server

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/gen/ent"
	documentsv1 "github.com/mausam-code/complete-agency/gen/proto/documents/v1"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/core"
	"github.com/mausam-code/complete-agency/internal/core/async"
	"github.com/mausam-code/complete-agency/internal/entity"
	"github.com/mausam-code/complete-agency/internal/export"
	"github.com/mausam-code/complete-agency/internal/repository"
	"github.com/mausam-code/complete-agency/internal/storage"
)

type DocumentsService struct {
	documentsv1.UnimplementedDocumentsServiceServer

	scans     repository.DocumentScanRepository
	extracted repository.ExtractedDataRepository
	cvs       repository.GeneratedCVRepository
	jobs      repository.ProcessingJobRepository
	store     *storage.Store
	queue     async.Queue
	processor *core.Processor
	exporter  *export.Service
	logger    *slog.Logger
}

func NewDocumentsService(
	scans repository.DocumentScanRepository,
	extracted repository.ExtractedDataRepository,
	cvs repository.GeneratedCVRepository,
	jobs repository.ProcessingJobRepository,
	store *storage.Store,
	queue async.Queue,
	processor *core.Processor,
	exporter *export.Service,
	logger *slog.Logger,
) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{
		scans:     scans,
		extracted: extracted,
		cvs:       cvs,
		jobs:      jobs,
		store:     store,
		queue:     queue,
		processor: processor,
		exporter:  exporter,
		logger:    logger,
	}
}

// parseUUID validates a required UUID field.
func parseUUID(field, value string) (uuid.UUID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

// grpcFromErr maps repository errors onto gRPC status codes.
func grpcFromErr(err error, what string) error {
	if ent.IsNotFound(err) {
		return common.NotFoundError(what + " not found")
	}
	return common.InternalError(what + " lookup failed")
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func toProtoScan(s *entity.DocumentScan) *documentsv1.DocumentScan {
	return &documentsv1.DocumentScan{
		Id:              s.ID.String(),
		UserId:          s.UserID.String(),
		DocumentType:    s.DocumentType,
		FileName:        s.FileName,
		FileExt:         s.FileExt,
		Status:          string(s.Status),
		ExtractedText:   strOrEmpty(s.ExtractedText),
		ConfidenceScore: s.ConfidenceScore,
		PageCount:       int32(s.PageCount),
		ProcessingTime:  s.ProcessingTime,
		FileSize:        int64(s.FileSize),
		ErrorMessage:    strOrEmpty(s.ErrorMessage),
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toProtoExtracted(e *entity.ExtractedData) *documentsv1.ExtractedData {
	out := &documentsv1.ExtractedData{
		DocumentId:      e.DocumentID.String(),
		FullName:        strOrEmpty(e.FullName),
		Email:           strOrEmpty(e.Email),
		Phone:           strOrEmpty(e.Phone),
		Address:         strOrEmpty(e.Address),
		CurrentPosition: strOrEmpty(e.CurrentPosition),
		Company:         strOrEmpty(e.Company),
		Skills:          strOrEmpty(e.Skills),
		Education:       strOrEmpty(e.Education),
		Certifications:  strOrEmpty(e.Certifications),
	}
	if e.ExperienceYears != nil {
		out.ExperienceYears = int32(*e.ExperienceYears)
	}
	if len(e.AdditionalData) > 0 {
		if b, err := json.Marshal(e.AdditionalData); err == nil {
			out.AdditionalDataJson = string(b)
		}
	}
	return out
}

func toProtoCV(cv *entity.GeneratedCV) *documentsv1.GeneratedCV {
	return &documentsv1.GeneratedCV{
		Id:              cv.ID.String(),
		UserId:          cv.UserID.String(),
		DocumentId:      cv.DocumentID.String(),
		TemplateType:    cv.TemplateType,
		Status:          string(cv.Status),
		CvFile:          strOrEmpty(cv.CVFile),
		ApplicationForm: strOrEmpty(cv.ApplicationForm),
		MergedDocument:  strOrEmpty(cv.MergedDocument),
		ErrorMessage:    strOrEmpty(cv.ErrorMessage),
		CreatedAt:       cv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       cv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toProtoJob(j *entity.ProcessingJob) *documentsv1.ProcessingJob {
	out := &documentsv1.ProcessingJob{
		Id:           j.ID.String(),
		UserId:       j.UserID.String(),
		JobType:      string(j.JobType),
		Status:       string(j.Status),
		Progress:     int32(j.Progress),
		ErrorDetails: strOrEmpty(j.ErrorDetails),
		StartedAt:    timeOrEmpty(j.StartedAt),
		CompletedAt:  timeOrEmpty(j.CompletedAt),
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if j.DocumentID != nil {
		out.DocumentId = j.DocumentID.String()
	}
	if j.CVID != nil {
		out.CvId = j.CVID.String()
	}
	if len(j.ResultData) > 0 {
		out.ResultDataJson = string(j.ResultData)
	}
	return out
}
