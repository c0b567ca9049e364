package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSaveUploadLayout(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root, nil)
	user, doc := uuid.New(), uuid.New()

	rel, n, err := s.SaveUpload(user, doc, ".PDF", strings.NewReader("%PDF-1.4 test"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if n != int64(len("%PDF-1.4 test")) {
		t.Fatalf("wrote %d bytes", n)
	}
	want := "documents/" + user.String() + "/" + doc.String() + ".pdf"
	if rel != want {
		t.Fatalf("rel path = %q, want %q", rel, want)
	}
	if _, err := os.Stat(s.Abs(rel)); err != nil {
		t.Fatalf("file not on disk: %v", err)
	}
}

func TestSaveUploadRejectsExtension(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	if _, _, err := s.SaveUpload(uuid.New(), uuid.New(), "exe", strings.NewReader("x")); err == nil {
		t.Fatal("exe upload accepted")
	}
}

func TestArtifactPaths(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	user, cv := uuid.New(), uuid.New()
	if got := s.CVPath(user, cv); !strings.HasSuffix(got, "cv_"+cv.String()+".pdf") {
		t.Fatalf("cv path = %q", got)
	}
	if got := s.FormPath(user, cv); !strings.Contains(got, "application_form_") {
		t.Fatalf("form path = %q", got)
	}
	if got := s.MergedPath(user, cv); !strings.Contains(got, "merged_") {
		t.Fatalf("merged path = %q", got)
	}
}

func TestRemoveMissingIsNoError(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	if err := s.Remove("documents/nope/missing.pdf"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if err := s.RemoveAll("", "also/missing.pdf"); err != nil {
		t.Fatalf("remove all: %v", err)
	}
}
