package docgen

import (
	"github.com/go-pdf/fpdf"

	"github.com/mausam-code/complete-agency/constants"
)

// section is one rendered CV block. Sections with empty bodies are
// skipped entirely.
type section struct {
	Heading string
	Body    string
}

func (d CVData) sections() []section {
	return []section{
		{"Professional Summary", d.SummaryLine()},
		{"Skills", d.Skills},
		{"Education", d.Education},
		{"Certifications", d.Certifications},
	}
}

// RenderCV writes a CV PDF for the given template to outPath. Unknown
// template names fall back to the default; alias names resolve to the
// layout they share.
func RenderCV(data CVData, template string, outPath string) error {
	switch constants.ResolveTemplate(template) {
	case constants.TemplateClassic:
		return renderClassicCV(data, outPath)
	case constants.TemplateMinimal:
		return renderMinimalCV(data, outPath)
	default:
		return renderModernCV(data, outPath)
	}
}

// renderModernCV uses a centered title and heading bars on a light
// accent fill.
func renderModernCV(data CVData, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	if data.FullName != "" {
		pdf.SetFont("Helvetica", "B", 24)
		pdf.SetTextColor(44, 62, 80)
		pdf.CellFormat(0, 14, data.FullName, "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}
	if contact := data.ContactLine(); contact != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 6, contact, "", 1, "C", false, 0, "")
		pdf.Ln(6)
	}

	for _, s := range data.sections() {
		if s.Body == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(52, 73, 94)
		pdf.SetFillColor(236, 240, 241)
		pdf.CellFormat(0, 10, s.Heading, "", 1, "L", true, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, s.Body, "", "L", false)
		pdf.Ln(4)
	}
	return pdf.OutputFileAndClose(outPath)
}

// renderClassicCV uses a serif face with ruled section headings.
func renderClassicCV(data CVData, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	if data.FullName != "" {
		pdf.SetFont("Times", "B", 22)
		pdf.CellFormat(0, 12, data.FullName, "", 1, "C", false, 0, "")
	}
	if contact := data.ContactLine(); contact != "" {
		pdf.SetFont("Times", "I", 10)
		pdf.CellFormat(0, 6, contact, "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	for _, s := range data.sections() {
		if s.Body == "" {
			continue
		}
		pdf.SetFont("Times", "B", 14)
		pdf.CellFormat(0, 8, s.Heading, "B", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Times", "", 11)
		pdf.MultiCell(0, 6, s.Body, "", "L", false)
		pdf.Ln(4)
	}
	return pdf.OutputFileAndClose(outPath)
}

// renderMinimalCV is plain left-aligned text with no rules or fills.
func renderMinimalCV(data CVData, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	if data.FullName != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.CellFormat(0, 10, data.FullName, "", 1, "L", false, 0, "")
	}
	if contact := data.ContactLine(); contact != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 5, contact, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)

	for _, s := range data.sections() {
		if s.Body == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, s.Heading, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, s.Body, "", "L", false)
		pdf.Ln(3)
	}
	return pdf.OutputFileAndClose(outPath)
}
