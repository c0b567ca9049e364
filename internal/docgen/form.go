package docgen

import (
	"strconv"

	"github.com/go-pdf/fpdf"
)

// RenderApplicationForm writes the two-column job application form.
// Every row is rendered even when the value is unknown, so the form is
// always complete and fillable by hand.
func RenderApplicationForm(data CVData, outPath string) error {
	years := ""
	if data.ExperienceYears > 0 {
		years = strconv.Itoa(data.ExperienceYears)
	}
	rows := [][2]string{
		{"Full Name:", data.FullName},
		{"Email:", data.Email},
		{"Phone:", data.Phone},
		{"Address:", data.Address},
		{"Current Position:", data.CurrentPosition},
		{"Company:", data.Company},
		{"Years of Experience:", years},
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Job Application Form", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	const labelW, valueW = 55.0, 105.0

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(labelW, 10, "Field", "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueW, 10, "Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 220)
	for _, row := range rows {
		pdf.CellFormat(labelW, 9, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(valueW, 9, row[1], "1", 1, "L", true, 0, "")
	}
	return pdf.OutputFileAndClose(outPath)
}
