package server

import (
	"context"

	documentsv1 "github.com/mausam-code/complete-agency/gen/proto/documents/v1"
)

func (s *DocumentsService) GetJob(ctx context.Context, req *documentsv1.GetJobRequest) (*documentsv1.GetJobResponse, error) {
	id, err := parseUUID("id", req.GetId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, grpcFromErr(err, "job")
	}
	return &documentsv1.GetJobResponse{Job: toProtoJob(job)}, nil
}
