package ocr

import (
	"regexp"
	"strings"
)

var (
	reBoxNoise = regexp.MustCompile(`(?m)^[\|_\-=~\s]{4,}$`)
	reRunWS    = regexp.MustCompile(`[ \t]{2,}`)
	reRunNL    = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans up OCR output: strips box-drawing noise lines,
// collapses runs of whitespace and trims the result.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = reBoxNoise.ReplaceAllString(s, "")
	s = reRunWS.ReplaceAllString(s, " ")
	s = reRunNL.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
