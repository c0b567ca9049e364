package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
)

// ProcessingJob is the audit/progress record for one async unit of work.
type ProcessingJob struct {
	ID           uuid.UUID           `json:"id"`
	UserID       uuid.UUID           `json:"user_id"`
	JobType      constants.JobType   `json:"job_type"`
	Status       constants.JobStatus `json:"status"`
	DocumentID   *uuid.UUID          `json:"document_id,omitempty"`
	CVID         *uuid.UUID          `json:"cv_id,omitempty"`
	Progress     int                 `json:"progress"`
	ResultData   json.RawMessage     `json:"result_data,omitempty"`
	ErrorDetails *string             `json:"error_details,omitempty"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}
