package docgen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mausam-code/complete-agency/internal/entity"
)

func strPtr(s string) *string { return &s }

func sampleData() CVData {
	return CVData{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "415-555-0142",
		CurrentPosition: "Backend Engineer",
		Company:         "Acme Corp",
		ExperienceYears: 6,
		Skills:          "go, postgresql, docker",
		Education:       "bsc computer science\nstanford university",
	}
}

func TestBuildCVDataOverlay(t *testing.T) {
	years := 3
	ext := &entity.ExtractedData{
		FullName:        strPtr("Jane Doe"),
		Email:           strPtr("jane@example.com"),
		ExperienceYears: &years,
	}
	custom := map[string]any{
		"full_name":        "Jane M. Doe",
		"email":            "",
		"experience_years": float64(7),
	}
	d := BuildCVData(ext, custom)
	if d.FullName != "Jane M. Doe" {
		t.Fatalf("custom name not applied: %q", d.FullName)
	}
	if d.Email != "jane@example.com" {
		t.Fatalf("empty custom value overwrote extraction: %q", d.Email)
	}
	if d.ExperienceYears != 7 {
		t.Fatalf("experience years = %d", d.ExperienceYears)
	}
}

func TestContactLineJoinsPresentFields(t *testing.T) {
	d := CVData{Email: "a@b.c", Address: "Kathmandu"}
	got := d.ContactLine()
	if got != "Email: a@b.c | Address: Kathmandu" {
		t.Fatalf("contact line = %q", got)
	}
	if (CVData{}).ContactLine() != "" {
		t.Fatal("empty data should yield empty contact line")
	}
}

func TestSummaryLine(t *testing.T) {
	d := sampleData()
	got := d.SummaryLine()
	want := "Backend Engineer at Acme Corp with 6 years of experience"
	if got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
	if (CVData{}).SummaryLine() != "" {
		t.Fatal("summary should be empty without position and company")
	}
	if s := (CVData{Company: "Acme"}).SummaryLine(); !strings.HasPrefix(s, "Professional at Acme") {
		t.Fatalf("company-only summary = %q", s)
	}
}

func TestRenderCVAllTemplates(t *testing.T) {
	dir := t.TempDir()
	for _, tmpl := range []string{"modern", "classic", "professional", "minimal", "creative", "bogus"} {
		out := filepath.Join(dir, tmpl+".pdf")
		if err := RenderCV(sampleData(), tmpl, out); err != nil {
			t.Fatalf("render %s: %v", tmpl, err)
		}
		n, err := PageCount(out)
		if err != nil {
			t.Fatalf("page count %s: %v", tmpl, err)
		}
		if n < 1 {
			t.Fatalf("template %s produced %d pages", tmpl, n)
		}
	}
}

func TestRenderCVOmitsEmptySections(t *testing.T) {
	// only a name; must still produce a valid single-page PDF
	dir := t.TempDir()
	out := filepath.Join(dir, "sparse.pdf")
	if err := RenderCV(CVData{FullName: "Jane Doe"}, "modern", out); err != nil {
		t.Fatalf("render sparse: %v", err)
	}
	if n, err := PageCount(out); err != nil || n != 1 {
		t.Fatalf("sparse cv pages=%d err=%v", n, err)
	}
}

func TestRenderApplicationForm(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "form.pdf")
	if err := RenderApplicationForm(CVData{}, out); err != nil {
		t.Fatalf("render form with empty data: %v", err)
	}
	if n, err := PageCount(out); err != nil || n != 1 {
		t.Fatalf("form pages=%d err=%v", n, err)
	}
}

func TestMergeDocumentsSkipsMissingAndNonPDFOriginal(t *testing.T) {
	dir := t.TempDir()
	cv := filepath.Join(dir, "cv.pdf")
	form := filepath.Join(dir, "form.pdf")
	if err := RenderCV(sampleData(), "modern", cv); err != nil {
		t.Fatal(err)
	}
	if err := RenderApplicationForm(sampleData(), form); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "merged.pdf")
	// original is an image upload, so it must not be merged
	if err := MergeDocuments(cv, form, filepath.Join(dir, "scan.jpg"), out); err != nil {
		t.Fatalf("merge: %v", err)
	}
	cvPages, _ := PageCount(cv)
	formPages, _ := PageCount(form)
	merged, err := PageCount(out)
	if err != nil {
		t.Fatalf("page count merged: %v", err)
	}
	if merged != cvPages+formPages {
		t.Fatalf("merged pages = %d, want %d", merged, cvPages+formPages)
	}
}

func TestMergeDocumentsIncludesPDFOriginal(t *testing.T) {
	dir := t.TempDir()
	cv := filepath.Join(dir, "cv.pdf")
	form := filepath.Join(dir, "form.pdf")
	orig := filepath.Join(dir, "original.pdf")
	if err := RenderCV(sampleData(), "minimal", cv); err != nil {
		t.Fatal(err)
	}
	if err := RenderApplicationForm(sampleData(), form); err != nil {
		t.Fatal(err)
	}
	if err := RenderCV(sampleData(), "classic", orig); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "merged.pdf")
	if err := MergeDocuments(cv, form, orig, out); err != nil {
		t.Fatalf("merge: %v", err)
	}
	a, _ := PageCount(cv)
	b, _ := PageCount(form)
	c, _ := PageCount(orig)
	if merged, _ := PageCount(out); merged != a+b+c {
		t.Fatalf("merged pages = %d, want %d", merged, a+b+c)
	}
}

func TestMergeDocumentsNoInputs(t *testing.T) {
	dir := t.TempDir()
	err := MergeDocuments(filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf"), "", filepath.Join(dir, "out.pdf"))
	if err == nil {
		t.Fatal("expected error when every input is missing")
	}
}
