package core

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/docgen"
	"github.com/mausam-code/complete-agency/internal/entity"
	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/storage"
)

func newTestGenerator(t *testing.T) (*Generator, *fakeScanRepo, *fakeCVRepo, *fakeExtractedRepo, *fakeJobRepo, *storage.Store, *fakeNotifier) {
	t.Helper()
	scans := newFakeScanRepo()
	cvs := newFakeCVRepo()
	extracted := newFakeExtractedRepo()
	jobs := newFakeJobRepo()
	store := storage.NewStore(t.TempDir(), nil)
	notifier := &fakeNotifier{}
	g := NewGenerator(nil, scans, cvs, extracted, jobs, store, notifier)
	return g, scans, cvs, extracted, jobs, store, notifier
}

func seedExtracted(t *testing.T, extracted *fakeExtractedRepo, docID uuid.UUID) {
	t.Helper()
	_, err := extracted.Upsert(context.Background(), docID, entity.FieldPatch{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Skills:          "go, postgresql",
		Education:       "bsc computer science",
		CurrentPosition: "Engineer",
		Company:         "Acme",
		ExperienceYears: 4,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGenerateCVSuccess(t *testing.T) {
	g, scans, cvs, extracted, jobs, store, notifier := newTestGenerator(t)

	user := uuid.New()
	scan, _ := scans.Create(context.Background(), user, "resume", "documents/u/orig.jpg", "orig.jpg", "jpg", 100)
	seedExtracted(t, extracted, scan.ID)
	cv, _ := cvs.Create(context.Background(), user, scan.ID, "classic", map[string]any{"full_name": "Jane M. Doe"})
	job, _ := jobs.Create(context.Background(), user, constants.JobTypeGenerateCV, nil, &cv.ID)

	if err := g.GenerateCV(context.Background(), cv.ID, job.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, _ := cvs.GetByID(context.Background(), cv.ID)
	if got.Status != constants.GenerationStatusCompleted {
		t.Fatalf("cv status = %s", got.Status)
	}
	for name, rel := range map[string]*string{
		"cv_file":          got.CVFile,
		"application_form": got.ApplicationForm,
		"merged_document":  got.MergedDocument,
	} {
		if rel == nil {
			t.Fatalf("%s not recorded", name)
		}
		if _, err := os.Stat(store.Abs(*rel)); err != nil {
			t.Fatalf("%s missing on disk: %v", name, err)
		}
	}

	// original is an image, so the bundle is cv pages + form pages
	cvPages, _ := docgen.PageCount(store.Abs(*got.CVFile))
	formPages, _ := docgen.PageCount(store.Abs(*got.ApplicationForm))
	merged, err := docgen.PageCount(store.Abs(*got.MergedDocument))
	if err != nil {
		t.Fatalf("merged page count: %v", err)
	}
	if merged != cvPages+formPages {
		t.Fatalf("merged pages = %d, want %d", merged, cvPages+formPages)
	}

	j, _ := jobs.GetByID(context.Background(), job.ID)
	if j.Status != constants.JobStatusCompleted || j.Progress != 100 {
		t.Fatalf("job not completed: %+v", j)
	}
	if n, ok := notifier.last(); !ok || n.Kind != notify.KindSuccess {
		t.Fatalf("expected success notification, got %+v", n)
	}
}

func TestGenerateCVIncludesPDFOriginal(t *testing.T) {
	g, scans, cvs, extracted, jobs, store, _ := newTestGenerator(t)

	user := uuid.New()
	scan, _ := scans.Create(context.Background(), user, "resume", "documents/u/orig.pdf", "orig.pdf", "pdf", 100)
	seedExtracted(t, extracted, scan.ID)

	// put a real single-page pdf where the original lives
	if err := store.EnsureDirFor(scan.FilePath); err != nil {
		t.Fatal(err)
	}
	if err := docgen.RenderCV(docgen.CVData{FullName: "Original Doc"}, "minimal", store.Abs(scan.FilePath)); err != nil {
		t.Fatal(err)
	}

	cv, _ := cvs.Create(context.Background(), user, scan.ID, "modern", nil)
	job, _ := jobs.Create(context.Background(), user, constants.JobTypeGenerateCV, nil, &cv.ID)

	if err := g.GenerateCV(context.Background(), cv.ID, job.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, _ := cvs.GetByID(context.Background(), cv.ID)
	cvPages, _ := docgen.PageCount(store.Abs(*got.CVFile))
	formPages, _ := docgen.PageCount(store.Abs(*got.ApplicationForm))
	merged, _ := docgen.PageCount(store.Abs(*got.MergedDocument))
	if merged != cvPages+formPages+1 {
		t.Fatalf("merged pages = %d, want %d", merged, cvPages+formPages+1)
	}
}

func TestGenerateCVMissingExtractedData(t *testing.T) {
	g, scans, cvs, _, jobs, _, notifier := newTestGenerator(t)

	user := uuid.New()
	scan, _ := scans.Create(context.Background(), user, "resume", "documents/u/orig.pdf", "orig.pdf", "pdf", 100)
	cv, _ := cvs.Create(context.Background(), user, scan.ID, "modern", nil)
	job, _ := jobs.Create(context.Background(), user, constants.JobTypeGenerateCV, nil, &cv.ID)

	err := g.GenerateCV(context.Background(), cv.ID, job.ID)
	var serr *StageError
	if !errors.As(err, &serr) || serr.Stage != "load_extracted" {
		t.Fatalf("want load_extracted stage error, got %v", err)
	}

	got, _ := cvs.GetByID(context.Background(), cv.ID)
	if got.Status != constants.GenerationStatusFailed || got.ErrorMessage == nil {
		t.Fatalf("cv not failed: %+v", got)
	}
	j, _ := jobs.GetByID(context.Background(), job.ID)
	if j.Status != constants.JobStatusFailed {
		t.Fatalf("job status = %s", j.Status)
	}
	if n, ok := notifier.last(); !ok || n.Kind != notify.KindError {
		t.Fatalf("expected error notification, got %+v", n)
	}
}
