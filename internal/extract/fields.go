// Package extract derives structured fields from recovered document
// text using regex and keyword heuristics. Extraction is pure and
// deterministic: the same text always yields the same fields.
package extract

import (
	"regexp"
	"strings"

	"github.com/mausam-code/complete-agency/internal/entity"
)

var (
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	rePhone = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reDate  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`)
	reDigit = regexp.MustCompile(`\d`)
)

var (
	skillsKeywords     = []string{"skills", "technologies", "programming", "software", "tools"}
	educationKeywords  = []string{"education", "degree", "university", "college", "bachelor", "master", "phd"}
	experienceKeywords = []string{"experience", "years", "worked", "employment", "career"}
)

const (
	maxSkillLines     = 10
	maxEducationLines = 5
)

// StructuredData runs every heuristic over the text and returns a
// patch holding only the fields that matched.
func StructuredData(text string) entity.FieldPatch {
	var p entity.FieldPatch

	if m := reEmail.FindString(text); m != "" {
		p.Email = m
	}
	if m := rePhone.FindString(text); m != "" {
		p.Phone = strings.TrimSpace(m)
	}
	p.FullName = candidateName(text)

	if dates := reDate.FindAllString(text, -1); len(dates) > 0 {
		p.Additional = map[string]any{"dates_found": dates}
	}

	lower := strings.ToLower(text)
	p.Skills = sectionRun(lower, skillsKeywords, append(educationKeywords, experienceKeywords...), false, maxSkillLines, ", ")
	p.Education = sectionRun(lower, educationKeywords, append(skillsKeywords, "experience"), true, maxEducationLines, "\n")

	return p
}

// candidateName scans the first five non-empty lines for something
// name-shaped: at least two tokens, under 50 chars, no digits, no '@'.
func candidateName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= 50 {
			continue
		}
		if len(strings.Fields(line)) < 2 {
			continue
		}
		if reDigit.MatchString(line) || strings.Contains(line, "@") {
			continue
		}
		return line
	}
	return ""
}

// sectionRun collects lines following (or including, when
// includeTrigger is set) the first line containing any trigger
// keyword, stopping at a line containing any stop keyword.
func sectionRun(lowerText string, triggers, stops []string, includeTrigger bool, limit int, sep string) string {
	var run []string
	inSection := false
	for _, line := range strings.Split(lowerText, "\n") {
		if !inSection {
			if containsAny(line, triggers) {
				inSection = true
				if includeTrigger {
					run = append(run, strings.TrimSpace(line))
				}
			}
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if containsAny(line, stops) {
			break
		}
		run = append(run, trimmed)
	}
	if len(run) > limit {
		run = run[:limit]
	}
	return strings.Join(run, sep)
}

func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
