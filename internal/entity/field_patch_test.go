package entity

import "testing"

func strptr(s string) *string { return &s }

func TestFieldPatchApplyKeepsExistingOnEmpty(t *testing.T) {
	rec := &ExtractedData{
		FullName: strptr("Jane Doe"),
		Skills:   strptr("Python, SQL"),
	}
	years := 4
	rec.ExperienceYears = &years

	patch := FieldPatch{Email: "jane@example.com"}
	patch.Apply(rec)

	if rec.Skills == nil || *rec.Skills != "Python, SQL" {
		t.Fatalf("skills = %v, want existing value preserved", rec.Skills)
	}
	if rec.FullName == nil || *rec.FullName != "Jane Doe" {
		t.Fatalf("full_name = %v, want existing value preserved", rec.FullName)
	}
	if rec.ExperienceYears == nil || *rec.ExperienceYears != 4 {
		t.Fatalf("experience_years = %v, want existing value preserved", rec.ExperienceYears)
	}
	if rec.Email == nil || *rec.Email != "jane@example.com" {
		t.Fatalf("email = %v, want patched value", rec.Email)
	}
}

func TestFieldPatchApplyOverwritesWithNonZero(t *testing.T) {
	rec := &ExtractedData{
		FullName: strptr("Jane Doe"),
		Company:  strptr("Old Corp"),
	}

	patch := FieldPatch{
		FullName:        "Jane A. Doe",
		Company:         "New Corp",
		ExperienceYears: 7,
	}
	patch.Apply(rec)

	if *rec.FullName != "Jane A. Doe" {
		t.Fatalf("full_name = %q, want overwritten", *rec.FullName)
	}
	if *rec.Company != "New Corp" {
		t.Fatalf("company = %q, want overwritten", *rec.Company)
	}
	if rec.ExperienceYears == nil || *rec.ExperienceYears != 7 {
		t.Fatalf("experience_years = %v, want 7", rec.ExperienceYears)
	}
}

func TestFieldPatchApplyMergesAdditionalData(t *testing.T) {
	rec := &ExtractedData{
		AdditionalData: map[string]any{"source": "scan", "pages": 2},
	}

	patch := FieldPatch{Additional: map[string]any{"pages": 3, "lang": "eng"}}
	patch.Apply(rec)

	if got := rec.AdditionalData["source"]; got != "scan" {
		t.Fatalf("additional_data[source] = %v, want kept", got)
	}
	if got := rec.AdditionalData["pages"]; got != 3 {
		t.Fatalf("additional_data[pages] = %v, want patch key to win", got)
	}
	if got := rec.AdditionalData["lang"]; got != "eng" {
		t.Fatalf("additional_data[lang] = %v, want merged in", got)
	}
}

func TestFieldPatchApplyIgnoresZeroYears(t *testing.T) {
	rec := &ExtractedData{}
	patch := FieldPatch{ExperienceYears: 0}
	patch.Apply(rec)
	if rec.ExperienceYears != nil {
		t.Fatalf("experience_years = %v, want nil for zero patch", rec.ExperienceYears)
	}
}
