package server

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mausam-code/complete-agency/constants"
	documentsv1 "github.com/mausam-code/complete-agency/gen/proto/documents/v1"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/core/async"
	"github.com/mausam-code/complete-agency/internal/extract"
)

func (s *DocumentsService) GenerateCV(ctx context.Context, req *documentsv1.GenerateCVRequest) (*documentsv1.GenerateCVResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	docID, err := parseUUID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	scan, err := s.scans.GetByID(ctx, docID)
	if err != nil {
		return nil, grpcFromErr(err, "document")
	}
	if scan.UserID != userID {
		return nil, common.NotFoundError("document not found")
	}
	if scan.Status != constants.ScanStatusCompleted {
		return nil, common.FailedPreconditionError("document has not finished processing")
	}

	template := strings.TrimSpace(req.GetTemplateType())
	if template == "" {
		template = constants.DefaultTemplate
	}

	var custom map[string]any
	if raw := strings.TrimSpace(req.GetCustomDataJson()); raw != "" {
		if err := extract.ValidateCustomData([]byte(raw)); err != nil {
			return nil, common.InvalidArgumentErrorf("custom_data_json: %v", err)
		}
		if err := json.Unmarshal([]byte(raw), &custom); err != nil {
			return nil, common.InvalidArgumentError("custom_data_json must be a JSON object")
		}
	}

	cv, err := s.cvs.Create(ctx, userID, docID, template, custom)
	if err != nil {
		s.logger.Error("cv create failed", "document_id", docID, "error", err)
		return nil, common.InternalError("failed to record cv request")
	}
	job, err := s.jobs.Create(ctx, userID, constants.JobTypeGenerateCV, nil, &cv.ID)
	if err != nil {
		return nil, common.InternalError("failed to queue generation")
	}
	if err := s.queue.Enqueue(ctx, async.Job{Kind: async.KindGenerateCV, EntityID: cv.ID, JobID: job.ID}); err != nil {
		return nil, common.InternalError("failed to queue generation")
	}

	s.logger.Info("cv generation queued", "cv_id", cv.ID, "document_id", docID, "template", cv.TemplateType)
	return &documentsv1.GenerateCVResponse{
		Cv:    toProtoCV(cv),
		JobId: job.ID.String(),
	}, nil
}

func (s *DocumentsService) RegenerateCV(ctx context.Context, req *documentsv1.RegenerateCVRequest) (*documentsv1.RegenerateCVResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	cv, err := s.cvs.GetByID(ctx, id)
	if err != nil {
		return nil, grpcFromErr(err, "cv")
	}
	if cv.Status == constants.GenerationStatusGenerating {
		return nil, common.FailedPreconditionError("cv is already being generated")
	}
	if err := s.cvs.ResetPending(ctx, id); err != nil {
		return nil, common.InternalError("failed to reset cv")
	}
	job, err := s.jobs.Create(ctx, cv.UserID, constants.JobTypeGenerateCV, nil, &id)
	if err != nil {
		return nil, common.InternalError("failed to queue generation")
	}
	if err := s.queue.Enqueue(ctx, async.Job{Kind: async.KindGenerateCV, EntityID: id, JobID: job.ID}); err != nil {
		return nil, common.InternalError("failed to queue generation")
	}
	return &documentsv1.RegenerateCVResponse{JobId: job.ID.String()}, nil
}

func (s *DocumentsService) GetCV(ctx context.Context, req *documentsv1.GetCVRequest) (*documentsv1.GetCVResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	cv, err := s.cvs.GetByID(ctx, id)
	if err != nil {
		return nil, grpcFromErr(err, "cv")
	}
	return &documentsv1.GetCVResponse{Cv: toProtoCV(cv)}, nil
}

func (s *DocumentsService) ListCVs(ctx context.Context, req *documentsv1.ListCVsRequest) (*documentsv1.ListCVsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	cvs, err := s.cvs.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("list cvs failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to list cvs")
	}
	out := make([]*documentsv1.GeneratedCV, 0, len(cvs))
	for _, cv := range cvs {
		out = append(out, toProtoCV(cv))
	}
	return &documentsv1.ListCVsResponse{Cvs: out}, nil
}

func (s *DocumentsService) DeleteCV(ctx context.Context, req *documentsv1.DeleteCVRequest) (*documentsv1.DeleteCVResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	cv, err := s.cvs.GetByID(ctx, id)
	if err != nil {
		return nil, grpcFromErr(err, "cv")
	}
	_ = s.store.RemoveAll(strOrEmpty(cv.CVFile), strOrEmpty(cv.ApplicationForm), strOrEmpty(cv.MergedDocument))
	if err := s.cvs.Delete(ctx, id); err != nil {
		return nil, common.InternalError("failed to delete cv")
	}
	s.logger.Info("cv deleted", "cv_id", id)
	return &documentsv1.DeleteCVResponse{}, nil
}
