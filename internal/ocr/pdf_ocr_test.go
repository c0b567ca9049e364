package ocr

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/mausam-code/complete-agency/internal/imaging"
)

func writeTextPDF(t *testing.T, dir string) string {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 10, "Jane Doe jane@example.com")
	path := filepath.Join(dir, "resume.pdf")
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("write test pdf: %v", err)
	}
	return path
}

func writePNGAt(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	if err := imaging.WritePNG(path, img); err != nil {
		t.Fatalf("write page image: %v", err)
	}
}

func TestExtractFromPDFNativeTextLayer(t *testing.T) {
	dir := t.TempDir()
	path := writeTextPDF(t, dir)

	r := &fakeRunner{handle: func(name string, _ []string) (string, error) {
		t.Errorf("no external tool should run for a born-digital pdf, got %q", name)
		return "", nil
	}}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res := e.ExtractFromPDF(context.Background(), path)
	if res.Method != "pdf-text" {
		t.Fatalf("method = %q, want pdf-text", res.Method)
	}
	if res.Confidence != NativeTextConfidence {
		t.Fatalf("confidence = %v, want %v", res.Confidence, NativeTextConfidence)
	}
	if res.Pages != 1 {
		t.Fatalf("pages = %d, want 1", res.Pages)
	}
	if !strings.Contains(res.Text, "Jane") {
		t.Fatalf("native text layer missing from result: %q", res.Text)
	}
	if len(r.calls) != 0 {
		t.Fatalf("runner invoked %d times, want 0: %v", len(r.calls), r.calls)
	}
}

func TestExtractFromPDFFallsBackToOCR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatalf("write scan: %v", err)
	}

	var textCalls, tsvCalls int
	r := &fakeRunner{}
	r.handle = func(name string, args []string) (string, error) {
		if name == "pdftoppm" {
			prefix := args[len(args)-1]
			writePNGAt(t, fmt.Sprintf("%s-1.png", prefix))
			writePNGAt(t, fmt.Sprintf("%s-2.png", prefix))
			return "", nil
		}
		if args[len(args)-1] == "tsv" {
			tsvCalls++
			if tsvCalls == 1 {
				return sampleTSV, nil
			}
			return "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n", nil
		}
		textCalls++
		if textCalls == 1 {
			return "Jane Doe Resume", nil
		}
		return "", nil
	}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res := e.ExtractFromPDF(context.Background(), path)
	if res.Method != "pdf-ocr" {
		t.Fatalf("method = %q, want pdf-ocr", res.Method)
	}
	if res.Pages != 2 {
		t.Fatalf("pages = %d, want 2 rendered pages", res.Pages)
	}
	// 80 on the first page, nothing recognized on the second. The
	// document score averages over both rendered pages.
	if res.Confidence != 40 {
		t.Fatalf("confidence = %v, want 40", res.Confidence)
	}
	if !strings.Contains(res.Text, "--- Page 1 ---") || !strings.Contains(res.Text, "--- Page 2 ---") {
		t.Fatalf("page markers missing: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Jane Doe Resume") {
		t.Fatalf("page text missing: %q", res.Text)
	}
}
