package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mausam-code/complete-agency/constants"
)

// ExtractFromPDF prefers the PDF's native text layer. Born-digital
// documents get a fixed high confidence since no recognition happened.
// Scanned PDFs fall back to rasterization plus per-page OCR.
func (e *Extractor) ExtractFromPDF(ctx context.Context, path string) Result {
	res := Result{SourceType: constants.PDF}

	if text, pages, err := nativePDFText(path); err == nil && strings.TrimSpace(text) != "" {
		res.Text = Normalize(text)
		res.Pages = pages
		res.Method = "pdf-text"
		res.Confidence = NativeTextConfidence
		return res
	} else if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("native text: %v", err))
	}

	return e.pdfToOCR(ctx, path, res)
}

// nativePDFText pulls the embedded text layer, page by page.
func nativePDFText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = f.Close() }()

	pages := r.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return b.String(), pages, nil
}

// pdfToOCR rasterizes each page with pdftoppm, OCRs it like an image,
// and joins pages with explicit markers so extraction downstream can
// tell page boundaries apart.
func (e *Extractor) pdfToOCR(ctx context.Context, path string, res Result) Result {
	res.Method = "pdf-ocr"

	tmpDir, err := os.MkdirTemp("", "ca-pp-*")
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
		return res
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		res.Warnings = append(res.Warnings, string(errb))
		e.logger.Warn("pdf rasterization failed", "path", path, "error", err)
		return res
	}

	// pdftoppm writes prefix-1.png, prefix-2.png, ...
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		res.Warnings = append(res.Warnings, "pdftoppm produced no images")
		return res
	}

	var b strings.Builder
	var confSum float64
	for i, img := range matches {
		page := e.ExtractFromImage(ctx, img)
		res.Warnings = append(res.Warnings, page.Warnings...)
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("--- Page %d ---\n", i+1))
		b.WriteString(page.Text)
		confSum += page.Confidence
	}
	res.Text = b.String()
	res.Pages = len(matches)
	// Mean over every rendered page: a page that recognized nothing
	// drags the document score down instead of being ignored.
	res.Confidence = confSum / float64(len(matches))
	return res
}
