// Package ocr recovers text from uploaded documents. PDFs with a native
// text layer are read directly; scanned PDFs and images go through
// rasterization, preprocessing and tesseract.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mausam-code/complete-agency/constants"
)

// ErrUnsupportedFormat is returned when the file extension maps to no
// known document format.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// NativeTextConfidence is assigned when a PDF carries its own text
// layer and no OCR was needed.
const NativeTextConfidence = 95.0

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned PDFs, default 300
	MaxPages      int // 0 = no limit
}

// Result is the outcome of one extraction. Confidence is 0..100.
type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Confidence float64
	Duration   time.Duration
	Warnings   []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: newExecRunner(logger), logger: logger}
}

// NewExtractorWithRunner is like NewExtractor but lets callers supply
// the command runner. Tests use this to stub tesseract and pdftoppm.
func NewExtractorWithRunner(cfg Config, runner Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = runner
	return e
}

// ExtractFromDocument picks a strategy based on file extension.
// OCR trouble inside a supported format degrades to an empty result
// rather than an error; only unknown formats fail.
func (e *Extractor) ExtractFromDocument(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res := e.ExtractFromPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, nil
	case constants.IMAGE:
		res := e.ExtractFromImage(ctx, path)
		res.Duration = time.Since(start)
		return res, nil
	default:
		e.logger.Error("unsupported extension", "extension", ext)
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
