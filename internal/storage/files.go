// Package storage lays out uploaded and generated files on local disk.
// Uploads live under documents/<user_id>/, rendered artifacts under
// generated_cvs/<user_id>/. Paths stored in the database are relative
// to the root so the tree can be relocated.
package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
)

const (
	documentsDir = "documents"
	generatedDir = "generated_cvs"
	dirPerm      = 0o755
)

type Store struct {
	root   string
	logger *slog.Logger
}

func NewStore(root string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{root: root, logger: logger}
}

// Abs resolves a stored relative path against the storage root.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, rel)
}

// SaveUpload streams an upload to documents/<user>/<doc>.<ext> and
// returns the relative path and the byte count written.
func (s *Store) SaveUpload(userID, docID uuid.UUID, ext string, r io.Reader) (string, int64, error) {
	ext = constants.NormalizeExt(ext)
	if !constants.IsAllowedExt(ext) {
		return "", 0, fmt.Errorf("extension %q not allowed", ext)
	}
	rel := filepath.Join(documentsDir, userID.String(), fmt.Sprintf("%s.%s", docID, ext))
	n, err := s.writeFile(rel, r)
	if err != nil {
		return "", 0, err
	}
	s.logger.Debug("upload saved", "path", rel, "bytes", n)
	return rel, n, nil
}

// CVPath returns the relative artifact path for a rendered CV.
func (s *Store) CVPath(userID, cvID uuid.UUID) string {
	return filepath.Join(generatedDir, userID.String(), fmt.Sprintf("cv_%s.pdf", cvID))
}

// FormPath returns the relative artifact path for an application form.
func (s *Store) FormPath(userID, cvID uuid.UUID) string {
	return filepath.Join(generatedDir, userID.String(), fmt.Sprintf("application_form_%s.pdf", cvID))
}

// MergedPath returns the relative artifact path for a merged bundle.
func (s *Store) MergedPath(userID, cvID uuid.UUID) string {
	return filepath.Join(generatedDir, userID.String(), fmt.Sprintf("merged_%s.pdf", cvID))
}

// EnsureDirFor creates the parent directory for a relative path.
func (s *Store) EnsureDirFor(rel string) error {
	return os.MkdirAll(filepath.Dir(s.Abs(rel)), dirPerm)
}

// Remove deletes one stored file. A missing file is not an error.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(s.Abs(rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RemoveAll deletes several stored files, keeping going on errors and
// returning the first one.
func (s *Store) RemoveAll(rels ...string) error {
	var first error
	for _, rel := range rels {
		if err := s.Remove(rel); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *Store) writeFile(rel string, r io.Reader) (int64, error) {
	abs := s.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
		return 0, err
	}
	f, err := os.Create(abs)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(abs)
		return 0, err
	}
	return n, f.Close()
}
