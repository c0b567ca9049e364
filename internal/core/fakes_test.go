package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/internal/entity"
	"github.com/mausam-code/complete-agency/internal/notify"
	"github.com/mausam-code/complete-agency/internal/ocr"
	"github.com/mausam-code/complete-agency/internal/repository"
)

var errNotFound = errors.New("not found")

type fakeScanRepo struct {
	mu    sync.Mutex
	scans map[uuid.UUID]*entity.DocumentScan
}

func newFakeScanRepo() *fakeScanRepo {
	return &fakeScanRepo{scans: make(map[uuid.UUID]*entity.DocumentScan)}
}

func (r *fakeScanRepo) add(s *entity.DocumentScan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scans[s.ID] = s
}

func (r *fakeScanRepo) Create(_ context.Context, userID uuid.UUID, docType, filePath, fileName, fileExt string, fileSize int) (*entity.DocumentScan, error) {
	s := &entity.DocumentScan{
		ID: uuid.New(), UserID: userID, DocumentType: docType,
		FilePath: filePath, FileName: fileName, FileExt: fileExt,
		FileSize: fileSize, Status: constants.ScanStatusPending,
		PageCount: 1, CreatedAt: time.Now(),
	}
	r.add(s)
	return s, nil
}

func (r *fakeScanRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DocumentScan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scans[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeScanRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.DocumentScan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DocumentScan
	for _, s := range r.scans {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeScanRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	return r.setStatus(id, constants.ScanStatusProcessing)
}

func (r *fakeScanRepo) MarkCompleted(_ context.Context, id uuid.UUID, text string, confidence float64, pages int, elapsedSecs float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scans[id]
	if !ok {
		return errNotFound
	}
	s.Status = constants.ScanStatusCompleted
	s.ExtractedText = &text
	s.ConfidenceScore = confidence
	s.PageCount = pages
	s.ProcessingTime = elapsedSecs
	return nil
}

func (r *fakeScanRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scans[id]
	if !ok {
		return errNotFound
	}
	s.Status = constants.ScanStatusFailed
	s.ErrorMessage = &message
	return nil
}

func (r *fakeScanRepo) ResetPending(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scans[id]
	if !ok {
		return errNotFound
	}
	s.Status = constants.ScanStatusPending
	s.ExtractedText = nil
	s.ConfidenceScore = 0
	s.ErrorMessage = nil
	return nil
}

func (r *fakeScanRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.scans, id)
	return nil
}

func (r *fakeScanRepo) ListCreatedBefore(_ context.Context, cutoff time.Time) ([]*entity.DocumentScan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DocumentScan
	for _, s := range r.scans {
		if s.CreatedAt.Before(cutoff) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeScanRepo) StatsBetween(_ context.Context, from, to time.Time) (repository.ScanStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var st repository.ScanStats
	var sum float64
	for _, s := range r.scans {
		if s.CreatedAt.Before(from) || !s.CreatedAt.Before(to) {
			continue
		}
		st.Total++
		switch s.Status {
		case constants.ScanStatusCompleted:
			st.Completed++
			sum += s.ProcessingTime
		case constants.ScanStatusFailed:
			st.Failed++
		}
	}
	if st.Completed > 0 {
		st.AvgProcessingTime = sum / float64(st.Completed)
	}
	return st, nil
}

func (r *fakeScanRepo) setStatus(id uuid.UUID, status constants.ScanStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scans[id]
	if !ok {
		return errNotFound
	}
	s.Status = status
	return nil
}

type fakeExtractedRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.ExtractedData
}

func newFakeExtractedRepo() *fakeExtractedRepo {
	return &fakeExtractedRepo{rows: make(map[uuid.UUID]*entity.ExtractedData)}
}

func (r *fakeExtractedRepo) GetByDocument(_ context.Context, documentID uuid.UUID) (*entity.ExtractedData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[documentID]
	if !ok {
		return nil, errNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeExtractedRepo) Upsert(_ context.Context, documentID uuid.UUID, patch entity.FieldPatch) (*entity.ExtractedData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[documentID]
	if !ok {
		row = &entity.ExtractedData{ID: uuid.New(), DocumentID: documentID}
		r.rows[documentID] = row
	}
	patch.Apply(row)
	cp := *row
	return &cp, nil
}

func (r *fakeExtractedRepo) DeleteByDocument(_ context.Context, documentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, documentID)
	return nil
}

type fakeJobRepo struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]*entity.ProcessingJob
	progress map[uuid.UUID][]int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:     make(map[uuid.UUID]*entity.ProcessingJob),
		progress: make(map[uuid.UUID][]int),
	}
}

func (r *fakeJobRepo) Create(_ context.Context, userID uuid.UUID, jobType constants.JobType, documentID, cvID *uuid.UUID) (*entity.ProcessingJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := &entity.ProcessingJob{
		ID: uuid.New(), UserID: userID, JobType: jobType,
		Status: constants.JobStatusQueued, DocumentID: documentID, CVID: cvID,
		CreatedAt: time.Now(),
	}
	r.jobs[j.ID] = j
	return j, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return errNotFound
	}
	j.Status = constants.JobStatusProcessing
	now := time.Now()
	j.StartedAt = &now
	return nil
}

func (r *fakeJobRepo) Advance(_ context.Context, id uuid.UUID, cp constants.Checkpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return errNotFound
	}
	if j.Progress < cp.Percent {
		j.Progress = cp.Percent
		r.progress[id] = append(r.progress[id], cp.Percent)
	}
	return nil
}

func (r *fakeJobRepo) Complete(_ context.Context, id uuid.UUID, _ map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return errNotFound
	}
	j.Status = constants.JobStatusCompleted
	j.Progress = 100
	now := time.Now()
	j.CompletedAt = &now
	return nil
}

func (r *fakeJobRepo) Fail(_ context.Context, id uuid.UUID, details string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return errNotFound
	}
	j.Status = constants.JobStatusFailed
	j.ErrorDetails = &details
	now := time.Now()
	j.CompletedAt = &now
	return nil
}

func (r *fakeJobRepo) PurgeFailedBefore(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, j := range r.jobs {
		if j.Status == constants.JobStatusFailed && j.CreatedAt.Before(cutoff) {
			delete(r.jobs, id)
			n++
		}
	}
	return n, nil
}

type fakeCVRepo struct {
	mu  sync.Mutex
	cvs map[uuid.UUID]*entity.GeneratedCV
}

func newFakeCVRepo() *fakeCVRepo {
	return &fakeCVRepo{cvs: make(map[uuid.UUID]*entity.GeneratedCV)}
}

func (r *fakeCVRepo) Create(_ context.Context, userID, documentID uuid.UUID, template string, custom map[string]any) (*entity.GeneratedCV, error) {
	if !constants.IsValidTemplate(template) {
		template = constants.DefaultTemplate
	}
	cv := &entity.GeneratedCV{
		ID: uuid.New(), UserID: userID, DocumentID: documentID,
		TemplateType: template, Status: constants.GenerationStatusPending,
		CustomData: custom, CreatedAt: time.Now(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cvs[cv.ID] = cv
	return cv, nil
}

func (r *fakeCVRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.GeneratedCV, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cv, ok := r.cvs[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *cv
	return &cp, nil
}

func (r *fakeCVRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.GeneratedCV, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.GeneratedCV
	for _, cv := range r.cvs {
		if cv.UserID == userID {
			cp := *cv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCVRepo) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*entity.GeneratedCV, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.GeneratedCV
	for _, cv := range r.cvs {
		if cv.DocumentID == documentID {
			cp := *cv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCVRepo) MarkGenerating(_ context.Context, id uuid.UUID) error {
	return r.mutate(id, func(cv *entity.GeneratedCV) {
		cv.Status = constants.GenerationStatusGenerating
	})
}

func (r *fakeCVRepo) SetCVFile(_ context.Context, id uuid.UUID, path string) error {
	return r.mutate(id, func(cv *entity.GeneratedCV) { cv.CVFile = &path })
}

func (r *fakeCVRepo) SetApplicationForm(_ context.Context, id uuid.UUID, path string) error {
	return r.mutate(id, func(cv *entity.GeneratedCV) { cv.ApplicationForm = &path })
}

func (r *fakeCVRepo) SetMergedDocument(_ context.Context, id uuid.UUID, path string) error {
	return r.mutate(id, func(cv *entity.GeneratedCV) { cv.MergedDocument = &path })
}

func (r *fakeCVRepo) MarkCompleted(_ context.Context, id uuid.UUID) error {
	return r.mutate(id, func(cv *entity.GeneratedCV) {
		cv.Status = constants.GenerationStatusCompleted
	})
}

func (r *fakeCVRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	return r.mutate(id, func(cv *entity.GeneratedCV) {
		cv.Status = constants.GenerationStatusFailed
		cv.ErrorMessage = &message
	})
}

func (r *fakeCVRepo) ResetPending(_ context.Context, id uuid.UUID) error {
	return r.mutate(id, func(cv *entity.GeneratedCV) {
		cv.Status = constants.GenerationStatusPending
		cv.ErrorMessage = nil
	})
}

func (r *fakeCVRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cvs, id)
	return nil
}

func (r *fakeCVRepo) StatsBetween(_ context.Context, from, to time.Time) (repository.CVStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var st repository.CVStats
	for _, cv := range r.cvs {
		if cv.CreatedAt.Before(from) || !cv.CreatedAt.Before(to) {
			continue
		}
		st.Total++
		if cv.Status == constants.GenerationStatusCompleted {
			st.Completed++
		}
	}
	return st, nil
}

func (r *fakeCVRepo) mutate(id uuid.UUID, fn func(*entity.GeneratedCV)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cv, ok := r.cvs[id]
	if !ok {
		return errNotFound
	}
	fn(cv)
	return nil
}

type notification struct {
	UserID string
	Kind   notify.Kind
	Title  string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *fakeNotifier) Notify(_ context.Context, userID string, kind notify.Kind, title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{UserID: userID, Kind: kind, Title: title})
}

func (n *fakeNotifier) last() (notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return notification{}, false
	}
	return n.sent[len(n.sent)-1], true
}

// fakeExtractor scripts OCR outcomes.
type fakeExtractor struct {
	res ocr.Result
	err error
}

func (f *fakeExtractor) ExtractFromDocument(_ context.Context, _ string) (ocr.Result, error) {
	return f.res, f.err
}

// fakeRemover records removed paths.
type fakeRemover struct {
	mu      sync.Mutex
	removed []string
}

func (f *fakeRemover) Remove(rel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, rel)
	return nil
}
