package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
)

// GeneratedCV represents one requested rendering job for a document scan.
type GeneratedCV struct {
	ID              uuid.UUID                  `json:"id"`
	UserID          uuid.UUID                  `json:"user_id"`
	DocumentID      uuid.UUID                  `json:"document_id"`
	TemplateType    string                     `json:"template_type"`
	CVFile          *string                    `json:"cv_file,omitempty"`
	ApplicationForm *string                    `json:"application_form,omitempty"`
	MergedDocument  *string                    `json:"merged_document,omitempty"`
	Status          constants.GenerationStatus `json:"status"`
	ErrorMessage    *string                    `json:"error_message,omitempty"`
	CustomData      map[string]any             `json:"custom_data,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// IsTerminal reports whether generation reached a terminal status.
func (g *GeneratedCV) IsTerminal() bool {
	return g.Status == constants.GenerationStatusCompleted || g.Status == constants.GenerationStatusFailed
}
