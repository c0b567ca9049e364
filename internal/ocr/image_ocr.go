package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/imaging"
)

// ExtractFromImage OCRs a single image. The image is decoded,
// preprocessed and written to a temp PNG before tesseract sees it.
// Failures degrade to an empty result with warnings.
func (e *Extractor) ExtractFromImage(ctx context.Context, path string) Result {
	res := Result{SourceType: constants.IMAGE, Method: "image-ocr", Pages: 1}

	ocrPath := path
	cleanup := func() {}
	if prep, c, err := e.preprocessToTemp(path); err != nil {
		// fall back to the raw image; tesseract may still cope
		res.Warnings = append(res.Warnings, fmt.Sprintf("preprocess: %v", err))
	} else {
		ocrPath = prep
		cleanup = c
	}
	defer cleanup()

	txt, warns, err := e.tesseractText(ctx, ocrPath)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		// degrade to an empty single-page result, never an error
		e.logger.Warn("image ocr failed", "path", path, "error", err)
		return res
	}
	res.Text = Normalize(txt)

	conf, warns, err := e.tesseractConfidence(ctx, ocrPath)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("confidence: %v", err))
	} else {
		res.Confidence = conf
	}
	return res
}

// preprocessToTemp decodes, cleans up and saves the image as a PNG in
// a temp dir. The returned cleanup removes the dir.
func (e *Extractor) preprocessToTemp(path string) (string, func(), error) {
	img, err := imaging.DecodeFile(path)
	if err != nil {
		return "", nil, err
	}
	tmpDir, err := os.MkdirTemp("", "ca-ocr-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }
	out := filepath.Join(tmpDir, "page.png")
	if err := imaging.WritePNG(out, imaging.Preprocess(img)); err != nil {
		cleanup()
		return "", nil, err
	}
	return out, cleanup, nil
}

func (e *Extractor) tesseractText(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
