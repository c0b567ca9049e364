package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedData represents the structured record derived from a scan (1:1).
type ExtractedData struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`

	FullName    *string    `json:"full_name,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`

	CurrentPosition *string `json:"current_position,omitempty"`
	Company         *string `json:"company,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	Skills          *string `json:"skills,omitempty"`
	Education       *string `json:"education,omitempty"`
	Certifications  *string `json:"certifications,omitempty"`

	AdditionalData map[string]any `json:"additional_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
