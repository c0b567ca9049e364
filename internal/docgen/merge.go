package docgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/mausam-code/complete-agency/constants"
)

// MergeDocuments concatenates the CV, the application form and, when
// the original upload is itself a PDF, the original document. Inputs
// that do not exist on disk are skipped. At least one input must
// survive the filter.
func MergeDocuments(cvPath, formPath, originalPath, outPath string) error {
	var inputs []string
	for _, p := range []string{cvPath, formPath} {
		if fileExists(p) {
			inputs = append(inputs, p)
		}
	}
	if ext := constants.NormalizeExt(filepath.Ext(originalPath)); constants.MapExtToFormat(ext) == constants.PDF && fileExists(originalPath) {
		inputs = append(inputs, originalPath)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("merge: no input documents available")
	}

	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return api.MergeCreateFile(inputs, outPath, false, cfg)
}

// PageCount reports the number of pages in a PDF.
func PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
