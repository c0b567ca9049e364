package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
)

// DocumentScan represents one uploaded source file for data transfer between layers.
type DocumentScan struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"user_id"`
	DocumentType    string               `json:"document_type"`
	FilePath        string               `json:"file_path"`
	FileName        string               `json:"file_name"`
	FileExt         string               `json:"file_ext"`
	ExtractedText   *string              `json:"extracted_text,omitempty"`
	ConfidenceScore float64              `json:"confidence_score"`
	Status          constants.ScanStatus `json:"status"`
	ErrorMessage    *string              `json:"error_message,omitempty"`
	FileSize        int                  `json:"file_size"`
	PageCount       int                  `json:"page_count"`
	ProcessingTime  float64              `json:"processing_time"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// IsTerminal reports whether the scan reached a terminal status.
func (d *DocumentScan) IsTerminal() bool {
	return d.Status == constants.ScanStatusCompleted || d.Status == constants.ScanStatusFailed
}
