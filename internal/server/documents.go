package server

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	documentsv1 "github.com/mausam-code/complete-agency/gen/proto/documents/v1"
	"github.com/mausam-code/complete-agency/internal/common"
	"github.com/mausam-code/complete-agency/internal/core/async"
)

func (s *DocumentsService) UploadDocument(ctx context.Context, req *documentsv1.UploadDocumentRequest) (*documentsv1.UploadDocumentResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	fileName := strings.TrimSpace(req.GetFileName())
	if fileName == "" {
		return nil, common.InvalidArgumentError("file_name is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	if !constants.IsAllowedExt(ext) {
		return nil, common.InvalidArgumentErrorf("file extension %q is not allowed", ext)
	}

	content := req.GetContent()
	if len(content) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	if len(content) > constants.MaxUploadBytes {
		return nil, common.InvalidArgumentErrorf("file exceeds the %d MB upload limit", constants.MaxUploadBytes>>20)
	}

	docType := strings.TrimSpace(req.GetDocumentType())
	if docType == "" {
		docType = string(constants.DocumentTypeOther)
	}
	if !contains(constants.DocumentTypes, docType) {
		return nil, common.InvalidArgumentErrorf("unknown document_type %q", docType)
	}

	rel, size, err := s.store.SaveUpload(userID, uuid.New(), ext, bytes.NewReader(content))
	if err != nil {
		s.logger.Error("upload save failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to store upload")
	}

	scan, err := s.scans.Create(ctx, userID, docType, rel, fileName, ext, int(size))
	if err != nil {
		_ = s.store.Remove(rel)
		s.logger.Error("scan create failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to record upload")
	}

	job, err := s.jobs.Create(ctx, userID, constants.JobTypeScan, &scan.ID, nil)
	if err != nil {
		s.logger.Error("job create failed", "scan_id", scan.ID, "error", err)
		return nil, common.InternalError("failed to queue processing")
	}
	if err := s.queue.Enqueue(ctx, async.Job{Kind: async.KindScan, EntityID: scan.ID, JobID: job.ID}); err != nil {
		return nil, common.InternalError("failed to queue processing")
	}

	s.logger.Info("document uploaded", "scan_id", scan.ID, "user_id", userID, "file_name", fileName, "bytes", size)
	return &documentsv1.UploadDocumentResponse{
		Document: toProtoScan(scan),
		JobId:    job.ID.String(),
	}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *documentsv1.GetDocumentRequest) (*documentsv1.GetDocumentResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	scan, err := s.scans.GetByID(ctx, id)
	if err != nil {
		return nil, grpcFromErr(err, "document")
	}
	resp := &documentsv1.GetDocumentResponse{Document: toProtoScan(scan)}
	if ext, err := s.extracted.GetByDocument(ctx, id); err == nil {
		resp.Extracted = toProtoExtracted(ext)
	}
	return resp, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *documentsv1.ListDocumentsRequest) (*documentsv1.ListDocumentsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	scans, err := s.scans.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("list documents failed", "user_id", userID, "error", err)
		return nil, common.InternalError("failed to list documents")
	}
	out := make([]*documentsv1.DocumentScan, 0, len(scans))
	for _, scan := range scans {
		out = append(out, toProtoScan(scan))
	}
	return &documentsv1.ListDocumentsResponse{Documents: out}, nil
}

// DeleteDocument removes the scan, its extracted data, every CV
// generated from it, and all their files.
func (s *DocumentsService) DeleteDocument(ctx context.Context, req *documentsv1.DeleteDocumentRequest) (*documentsv1.DeleteDocumentResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	scan, err := s.scans.GetByID(ctx, id)
	if err != nil {
		return nil, grpcFromErr(err, "document")
	}

	cvs, err := s.cvs.ListByDocument(ctx, id)
	if err != nil {
		return nil, common.InternalError("failed to resolve generated cvs")
	}
	for _, cv := range cvs {
		_ = s.store.RemoveAll(strOrEmpty(cv.CVFile), strOrEmpty(cv.ApplicationForm), strOrEmpty(cv.MergedDocument))
		if err := s.cvs.Delete(ctx, cv.ID); err != nil {
			return nil, common.InternalError("failed to delete generated cv")
		}
	}
	if err := s.extracted.DeleteByDocument(ctx, id); err != nil {
		return nil, common.InternalError("failed to delete extracted data")
	}
	_ = s.store.Remove(scan.FilePath)
	if err := s.scans.Delete(ctx, id); err != nil {
		return nil, common.InternalError("failed to delete document")
	}

	s.logger.Info("document deleted", "scan_id", id, "cvs_removed", len(cvs))
	return &documentsv1.DeleteDocumentResponse{}, nil
}

func (s *DocumentsService) ReprocessDocument(ctx context.Context, req *documentsv1.ReprocessDocumentRequest) (*documentsv1.ReprocessDocumentResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	scan, err := s.scans.GetByID(ctx, id)
	if err != nil {
		return nil, grpcFromErr(err, "document")
	}
	if scan.Status == constants.ScanStatusProcessing {
		return nil, common.FailedPreconditionError("document is already being processed")
	}
	if err := s.scans.ResetPending(ctx, id); err != nil {
		return nil, common.InternalError("failed to reset document")
	}
	job, err := s.jobs.Create(ctx, scan.UserID, constants.JobTypeScan, &id, nil)
	if err != nil {
		return nil, common.InternalError("failed to queue processing")
	}
	if err := s.queue.Enqueue(ctx, async.Job{Kind: async.KindScan, EntityID: id, JobID: job.ID}); err != nil {
		return nil, common.InternalError("failed to queue processing")
	}
	return &documentsv1.ReprocessDocumentResponse{JobId: job.ID.String()}, nil
}

// BatchReprocess runs synchronously: the response carries the final
// per-document counts.
func (s *DocumentsService) BatchReprocess(ctx context.Context, req *documentsv1.BatchReprocessRequest) (*documentsv1.BatchReprocessResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	raw := req.GetDocumentIds()
	if len(raw) == 0 {
		return nil, common.InvalidArgumentError("document_ids is required")
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid document id %q", r)
		}
		ids = append(ids, id)
	}

	res := s.processor.BatchReprocess(ctx, userID, ids)
	return &documentsv1.BatchReprocessResponse{
		Processed: int32(res.Processed),
		Failed:    int32(res.Failed),
	}, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
