// Package docgen renders CV and application form PDFs and merges them
// with the original upload into a single bundle.
package docgen

import (
	"fmt"
	"strings"

	"github.com/mausam-code/complete-agency/internal/entity"
)

// CVData is the flattened input to PDF rendering: extracted fields with
// any caller-supplied overrides already applied.
type CVData struct {
	FullName        string
	Email           string
	Phone           string
	Address         string
	CurrentPosition string
	Company         string
	ExperienceYears int
	Skills          string
	Education       string
	Certifications  string
}

// BuildCVData flattens extracted data and overlays custom overrides.
// Custom values win whenever present and non-empty.
func BuildCVData(ext *entity.ExtractedData, custom map[string]any) CVData {
	var d CVData
	if ext != nil {
		d.FullName = deref(ext.FullName)
		d.Email = deref(ext.Email)
		d.Phone = deref(ext.Phone)
		d.Address = deref(ext.Address)
		d.CurrentPosition = deref(ext.CurrentPosition)
		d.Company = deref(ext.Company)
		if ext.ExperienceYears != nil {
			d.ExperienceYears = *ext.ExperienceYears
		}
		d.Skills = deref(ext.Skills)
		d.Education = deref(ext.Education)
		d.Certifications = deref(ext.Certifications)
	}
	if custom == nil {
		return d
	}
	overlayString(custom, "full_name", &d.FullName)
	overlayString(custom, "email", &d.Email)
	overlayString(custom, "phone", &d.Phone)
	overlayString(custom, "address", &d.Address)
	overlayString(custom, "current_position", &d.CurrentPosition)
	overlayString(custom, "company", &d.Company)
	overlayString(custom, "skills", &d.Skills)
	overlayString(custom, "education", &d.Education)
	overlayString(custom, "certifications", &d.Certifications)
	switch v := custom["experience_years"].(type) {
	case int:
		d.ExperienceYears = v
	case float64:
		d.ExperienceYears = int(v)
	}
	return d
}

// ContactLine joins the present contact fields with " | ".
func (d CVData) ContactLine() string {
	var parts []string
	if d.Email != "" {
		parts = append(parts, "Email: "+d.Email)
	}
	if d.Phone != "" {
		parts = append(parts, "Phone: "+d.Phone)
	}
	if d.Address != "" {
		parts = append(parts, "Address: "+d.Address)
	}
	return strings.Join(parts, " | ")
}

// SummaryLine builds the professional summary sentence, or "" when
// neither position nor company is known.
func (d CVData) SummaryLine() string {
	if d.CurrentPosition == "" && d.Company == "" {
		return ""
	}
	s := d.CurrentPosition
	if s == "" {
		s = "Professional"
	}
	if d.Company != "" {
		s += " at " + d.Company
	}
	if d.ExperienceYears > 0 {
		s += fmt.Sprintf(" with %d years of experience", d.ExperienceYears)
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func overlayString(custom map[string]any, key string, dst *string) {
	if v, ok := custom[key].(string); ok && v != "" {
		*dst = v
	}
}
