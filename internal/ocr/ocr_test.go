package ocr

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mausam-code/complete-agency/internal/imaging"
)

// fakeRunner scripts command output by binary name.
type fakeRunner struct {
	calls  []string
	handle func(name string, args []string) (string, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	out, err := f.handle(name, args)
	return []byte(out), nil, err
}

func writeTestImage(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	path := filepath.Join(dir, "scan.png")
	if err := imaging.WritePNG(path, img); err != nil {
		t.Fatalf("write test image: %v", err)
	}
	return path
}

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tJohn\n" +
	"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\tDoe\n" +
	"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\t-1\t\n"

func TestExtractFromImageTextAndConfidence(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir)

	r := &fakeRunner{handle: func(name string, args []string) (string, error) {
		if args[len(args)-1] == "tsv" {
			return sampleTSV, nil
		}
		return "John Doe\nSoftware Engineer\n", nil
	}}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res := e.ExtractFromImage(context.Background(), path)
	if !strings.Contains(res.Text, "John Doe") {
		t.Fatalf("text missing: %q", res.Text)
	}
	if res.Confidence != 80 {
		t.Fatalf("mean confidence = %v, want 80", res.Confidence)
	}
	if res.Pages != 1 || res.Method != "image-ocr" {
		t.Fatalf("unexpected result meta: %+v", res)
	}
}

func TestExtractFromImageDegradesOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir)

	r := &fakeRunner{handle: func(string, []string) (string, error) {
		return "", os.ErrPermission
	}}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res := e.ExtractFromImage(context.Background(), path)
	if res.Text != "" || res.Confidence != 0 {
		t.Fatalf("expected empty degraded result, got %+v", res)
	}
	if res.Pages != 1 {
		t.Fatalf("pages = %d, want 1 (single-image page count is fixed)", res.Pages)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected warnings on degraded result")
	}
}

func TestExtractFromDocumentRejectsUnknownExtension(t *testing.T) {
	e := NewExtractorWithRunner(Config{}, &fakeRunner{handle: func(string, []string) (string, error) { return "", nil }}, nil)
	_, err := e.ExtractFromDocument(context.Background(), "upload.docx")
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("want unsupported format error, got %v", err)
	}
}

func TestMeanTSVConfidenceEmpty(t *testing.T) {
	if got := meanTSVConfidence("header only\n"); got != 0 {
		t.Fatalf("empty tsv confidence = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	in := "Name:   John\r\n\n\n\n|||||______\nEmail: j@x.com  "
	out := Normalize(in)
	if strings.Contains(out, "|||") {
		t.Fatalf("noise line survived: %q", out)
	}
	if strings.Contains(out, "   ") {
		t.Fatalf("whitespace runs survived: %q", out)
	}
	if !strings.Contains(out, "Name: John") || !strings.Contains(out, "Email: j@x.com") {
		t.Fatalf("content damaged: %q", out)
	}
}
