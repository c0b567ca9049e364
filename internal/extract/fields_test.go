package extract

import (
	"strings"
	"testing"

	"github.com/mausam-code/complete-agency/internal/entity"
)

const resumeText = `John Smith
Senior Backend Engineer
john.smith@example.com
+1 (415) 555-0142
Born 12/03/1990

Skills
Go, PostgreSQL
Docker, Kubernetes

Education
Bachelor of Science, Computer Science
Stanford University
`

func TestStructuredDataFullResume(t *testing.T) {
	p := StructuredData(resumeText)

	if p.FullName != "John Smith" {
		t.Fatalf("full name = %q", p.FullName)
	}
	if p.Email != "john.smith@example.com" {
		t.Fatalf("email = %q", p.Email)
	}
	if !strings.Contains(p.Phone, "555") {
		t.Fatalf("phone = %q", p.Phone)
	}
	if !strings.Contains(p.Skills, "go, postgresql") {
		t.Fatalf("skills = %q", p.Skills)
	}
	// education keeps the trigger line and uses newlines
	if !strings.HasPrefix(p.Education, "education") || !strings.Contains(p.Education, "stanford university") {
		t.Fatalf("education = %q", p.Education)
	}
	dates, ok := p.Additional["dates_found"].([]string)
	if !ok || len(dates) == 0 || dates[0] != "12/03/1990" {
		t.Fatalf("dates_found = %#v", p.Additional)
	}
}

func TestStructuredDataIsIdempotent(t *testing.T) {
	a := StructuredData(resumeText)
	b := StructuredData(resumeText)
	if a.FullName != b.FullName || a.Email != b.Email || a.Skills != b.Skills || a.Education != b.Education {
		t.Fatalf("extraction not deterministic: %+v vs %+v", a, b)
	}
}

func TestCandidateNameSkipsNoise(t *testing.T) {
	text := "resume-2024.pdf\njohn@x.com\nJane Marie Doe\nother"
	p := StructuredData(text)
	if p.FullName != "Jane Marie Doe" {
		t.Fatalf("full name = %q", p.FullName)
	}
}

func TestCandidateNameOnlyFirstFiveLines(t *testing.T) {
	text := "1\n2\n3\n4\n5\nJane Marie Doe"
	if p := StructuredData(text); p.FullName != "" {
		t.Fatalf("name found past line 5: %q", p.FullName)
	}
}

func TestSkillsStopAtEducation(t *testing.T) {
	text := "Skills\nGo\nRust\nEducation\nMIT"
	p := StructuredData(text)
	if strings.Contains(p.Skills, "mit") {
		t.Fatalf("skills leaked past section boundary: %q", p.Skills)
	}
	if p.Skills != "go, rust" {
		t.Fatalf("skills = %q", p.Skills)
	}
}

func TestSkillsCappedAtTenLines(t *testing.T) {
	var b strings.Builder
	b.WriteString("Skills\n")
	for i := 0; i < 15; i++ {
		b.WriteString("item\n")
	}
	p := StructuredData(b.String())
	if got := strings.Count(p.Skills, ",") + 1; got != 10 {
		t.Fatalf("skills line count = %d, want 10", got)
	}
}

func TestStructuredDataEmptyText(t *testing.T) {
	p := StructuredData("")
	if p.FullName != "" || p.Email != "" || p.Skills != "" || p.Education != "" || p.Additional != nil {
		t.Fatalf("empty text produced fields: %+v", p)
	}
}

func TestValidateCustomData(t *testing.T) {
	if err := ValidateCustomData([]byte(`{"full_name":"Jane Doe","experience_years":5}`)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if err := ValidateCustomData([]byte(`{"experience_years":"five"}`)); err == nil {
		t.Fatal("wrong type accepted")
	}
	if err := ValidateCustomData([]byte(`{"unknown_field":1}`)); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestValidatePatch(t *testing.T) {
	p := StructuredData(resumeText)
	if err := ValidatePatch(p); err != nil {
		t.Fatalf("extracted patch rejected: %v", err)
	}
	bad := p
	bad.Email = strings.Repeat("a", 250) + "@example.com"
	if err := ValidatePatch(bad); err == nil {
		t.Fatal("over-long email accepted")
	}
	if err := ValidatePatch(entity.FieldPatch{}); err != nil {
		t.Fatalf("empty patch rejected: %v", err)
	}
}
