// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocumentScan  = "DocumentScan"
	TypeExtractedData = "ExtractedData"
	TypeGeneratedCV   = "GeneratedCV"
	TypeProcessingJob = "ProcessingJob"
)

// DocumentScanMutation represents an operation that mutates the DocumentScan nodes in the graph.
type DocumentScanMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	user_id              *uuid.UUID
	document_type        *string
	file_path            *string
	file_name            *string
	file_ext             *string
	extracted_text       *string
	confidence_score     *float64
	addconfidence_score  *float64
	status               *string
	error_message        *string
	file_size            *int
	addfile_size         *int
	page_count           *int
	addpage_count        *int
	processing_time      *float64
	addprocessing_time   *float64
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	extracted            *uuid.UUID
	clearedextracted     bool
	generated_cvs        map[uuid.UUID]struct{}
	removedgenerated_cvs map[uuid.UUID]struct{}
	clearedgenerated_cvs bool
	jobs                 map[uuid.UUID]struct{}
	removedjobs          map[uuid.UUID]struct{}
	clearedjobs          bool
	done                 bool
	oldValue             func(context.Context) (*DocumentScan, error)
	predicates           []predicate.DocumentScan
}

var _ ent.Mutation = (*DocumentScanMutation)(nil)

// documentscanOption allows management of the mutation configuration using functional options.
type documentscanOption func(*DocumentScanMutation)

// newDocumentScanMutation creates new mutation for the DocumentScan entity.
func newDocumentScanMutation(c config, op Op, opts ...documentscanOption) *DocumentScanMutation {
	m := &DocumentScanMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentScan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentScanID sets the ID field of the mutation.
func withDocumentScanID(id uuid.UUID) documentscanOption {
	return func(m *DocumentScanMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentScan
		)
		m.oldValue = func(ctx context.Context) (*DocumentScan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentScan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentScan sets the old DocumentScan of the mutation.
func withDocumentScan(node *DocumentScan) documentscanOption {
	return func(m *DocumentScanMutation) {
		m.oldValue = func(context.Context) (*DocumentScan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentScanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentScanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentScan entities.
func (m *DocumentScanMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentScanMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentScanMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentScan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DocumentScanMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DocumentScanMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DocumentScanMutation) ResetUserID() {
	m.user_id = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentScanMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentScanMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentScanMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetFilePath sets the "file_path" field.
func (m *DocumentScanMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentScanMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentScanMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentScanMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentScanMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentScanMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentScanMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentScanMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentScanMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *DocumentScanMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *DocumentScanMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *DocumentScanMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[documentscan.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *DocumentScanMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[documentscan.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *DocumentScanMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, documentscan.FieldExtractedText)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *DocumentScanMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *DocumentScanMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *DocumentScanMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *DocumentScanMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *DocumentScanMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetStatus sets the "status" field.
func (m *DocumentScanMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentScanMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentScanMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentScanMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentScanMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentScanMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[documentscan.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentScanMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[documentscan.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentScanMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, documentscan.FieldErrorMessage)
}

// SetFileSize sets the "file_size" field.
func (m *DocumentScanMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentScanMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentScanMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentScanMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentScanMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetPageCount sets the "page_count" field.
func (m *DocumentScanMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentScanMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentScanMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentScanMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentScanMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetProcessingTime sets the "processing_time" field.
func (m *DocumentScanMutation) SetProcessingTime(f float64) {
	m.processing_time = &f
	m.addprocessing_time = nil
}

// ProcessingTime returns the value of the "processing_time" field in the mutation.
func (m *DocumentScanMutation) ProcessingTime() (r float64, exists bool) {
	v := m.processing_time
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTime returns the old "processing_time" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldProcessingTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTime: %w", err)
	}
	return oldValue.ProcessingTime, nil
}

// AddProcessingTime adds f to the "processing_time" field.
func (m *DocumentScanMutation) AddProcessingTime(f float64) {
	if m.addprocessing_time != nil {
		*m.addprocessing_time += f
	} else {
		m.addprocessing_time = &f
	}
}

// AddedProcessingTime returns the value that was added to the "processing_time" field in this mutation.
func (m *DocumentScanMutation) AddedProcessingTime() (r float64, exists bool) {
	v := m.addprocessing_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTime resets all changes to the "processing_time" field.
func (m *DocumentScanMutation) ResetProcessingTime() {
	m.processing_time = nil
	m.addprocessing_time = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentScanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentScanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentScanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentScanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentScanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DocumentScan entity.
// If the DocumentScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentScanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentScanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExtractedID sets the "extracted" edge to the ExtractedData entity by id.
func (m *DocumentScanMutation) SetExtractedID(id uuid.UUID) {
	m.extracted = &id
}

// ClearExtracted clears the "extracted" edge to the ExtractedData entity.
func (m *DocumentScanMutation) ClearExtracted() {
	m.clearedextracted = true
}

// ExtractedCleared reports if the "extracted" edge to the ExtractedData entity was cleared.
func (m *DocumentScanMutation) ExtractedCleared() bool {
	return m.clearedextracted
}

// ExtractedID returns the "extracted" edge ID in the mutation.
func (m *DocumentScanMutation) ExtractedID() (id uuid.UUID, exists bool) {
	if m.extracted != nil {
		return *m.extracted, true
	}
	return
}

// ExtractedIDs returns the "extracted" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractedID instead. It exists only for internal usage by the builders.
func (m *DocumentScanMutation) ExtractedIDs() (ids []uuid.UUID) {
	if id := m.extracted; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtracted resets all changes to the "extracted" edge.
func (m *DocumentScanMutation) ResetExtracted() {
	m.extracted = nil
	m.clearedextracted = false
}

// AddGeneratedCvIDs adds the "generated_cvs" edge to the GeneratedCV entity by ids.
func (m *DocumentScanMutation) AddGeneratedCvIDs(ids ...uuid.UUID) {
	if m.generated_cvs == nil {
		m.generated_cvs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.generated_cvs[ids[i]] = struct{}{}
	}
}

// ClearGeneratedCvs clears the "generated_cvs" edge to the GeneratedCV entity.
func (m *DocumentScanMutation) ClearGeneratedCvs() {
	m.clearedgenerated_cvs = true
}

// GeneratedCvsCleared reports if the "generated_cvs" edge to the GeneratedCV entity was cleared.
func (m *DocumentScanMutation) GeneratedCvsCleared() bool {
	return m.clearedgenerated_cvs
}

// RemoveGeneratedCvIDs removes the "generated_cvs" edge to the GeneratedCV entity by IDs.
func (m *DocumentScanMutation) RemoveGeneratedCvIDs(ids ...uuid.UUID) {
	if m.removedgenerated_cvs == nil {
		m.removedgenerated_cvs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.generated_cvs, ids[i])
		m.removedgenerated_cvs[ids[i]] = struct{}{}
	}
}

// RemovedGeneratedCvs returns the removed IDs of the "generated_cvs" edge to the GeneratedCV entity.
func (m *DocumentScanMutation) RemovedGeneratedCvsIDs() (ids []uuid.UUID) {
	for id := range m.removedgenerated_cvs {
		ids = append(ids, id)
	}
	return
}

// GeneratedCvsIDs returns the "generated_cvs" edge IDs in the mutation.
func (m *DocumentScanMutation) GeneratedCvsIDs() (ids []uuid.UUID) {
	for id := range m.generated_cvs {
		ids = append(ids, id)
	}
	return
}

// ResetGeneratedCvs resets all changes to the "generated_cvs" edge.
func (m *DocumentScanMutation) ResetGeneratedCvs() {
	m.generated_cvs = nil
	m.clearedgenerated_cvs = false
	m.removedgenerated_cvs = nil
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by ids.
func (m *DocumentScanMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ProcessingJob entity.
func (m *DocumentScanMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ProcessingJob entity was cleared.
func (m *DocumentScanMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ProcessingJob entity by IDs.
func (m *DocumentScanMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ProcessingJob entity.
func (m *DocumentScanMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentScanMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentScanMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentScanMutation builder.
func (m *DocumentScanMutation) Where(ps ...predicate.DocumentScan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentScanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentScanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentScan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentScanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentScanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentScan).
func (m *DocumentScanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentScanMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user_id != nil {
		fields = append(fields, documentscan.FieldUserID)
	}
	if m.document_type != nil {
		fields = append(fields, documentscan.FieldDocumentType)
	}
	if m.file_path != nil {
		fields = append(fields, documentscan.FieldFilePath)
	}
	if m.file_name != nil {
		fields = append(fields, documentscan.FieldFileName)
	}
	if m.file_ext != nil {
		fields = append(fields, documentscan.FieldFileExt)
	}
	if m.extracted_text != nil {
		fields = append(fields, documentscan.FieldExtractedText)
	}
	if m.confidence_score != nil {
		fields = append(fields, documentscan.FieldConfidenceScore)
	}
	if m.status != nil {
		fields = append(fields, documentscan.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, documentscan.FieldErrorMessage)
	}
	if m.file_size != nil {
		fields = append(fields, documentscan.FieldFileSize)
	}
	if m.page_count != nil {
		fields = append(fields, documentscan.FieldPageCount)
	}
	if m.processing_time != nil {
		fields = append(fields, documentscan.FieldProcessingTime)
	}
	if m.created_at != nil {
		fields = append(fields, documentscan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, documentscan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentScanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentscan.FieldUserID:
		return m.UserID()
	case documentscan.FieldDocumentType:
		return m.DocumentType()
	case documentscan.FieldFilePath:
		return m.FilePath()
	case documentscan.FieldFileName:
		return m.FileName()
	case documentscan.FieldFileExt:
		return m.FileExt()
	case documentscan.FieldExtractedText:
		return m.ExtractedText()
	case documentscan.FieldConfidenceScore:
		return m.ConfidenceScore()
	case documentscan.FieldStatus:
		return m.Status()
	case documentscan.FieldErrorMessage:
		return m.ErrorMessage()
	case documentscan.FieldFileSize:
		return m.FileSize()
	case documentscan.FieldPageCount:
		return m.PageCount()
	case documentscan.FieldProcessingTime:
		return m.ProcessingTime()
	case documentscan.FieldCreatedAt:
		return m.CreatedAt()
	case documentscan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentScanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentscan.FieldUserID:
		return m.OldUserID(ctx)
	case documentscan.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case documentscan.FieldFilePath:
		return m.OldFilePath(ctx)
	case documentscan.FieldFileName:
		return m.OldFileName(ctx)
	case documentscan.FieldFileExt:
		return m.OldFileExt(ctx)
	case documentscan.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case documentscan.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case documentscan.FieldStatus:
		return m.OldStatus(ctx)
	case documentscan.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case documentscan.FieldFileSize:
		return m.OldFileSize(ctx)
	case documentscan.FieldPageCount:
		return m.OldPageCount(ctx)
	case documentscan.FieldProcessingTime:
		return m.OldProcessingTime(ctx)
	case documentscan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case documentscan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentScan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentScanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentscan.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case documentscan.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case documentscan.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case documentscan.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case documentscan.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case documentscan.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case documentscan.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case documentscan.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case documentscan.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case documentscan.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case documentscan.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case documentscan.FieldProcessingTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTime(v)
		return nil
	case documentscan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case documentscan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentScan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentScanMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, documentscan.FieldConfidenceScore)
	}
	if m.addfile_size != nil {
		fields = append(fields, documentscan.FieldFileSize)
	}
	if m.addpage_count != nil {
		fields = append(fields, documentscan.FieldPageCount)
	}
	if m.addprocessing_time != nil {
		fields = append(fields, documentscan.FieldProcessingTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentScanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentscan.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case documentscan.FieldFileSize:
		return m.AddedFileSize()
	case documentscan.FieldPageCount:
		return m.AddedPageCount()
	case documentscan.FieldProcessingTime:
		return m.AddedProcessingTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentScanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentscan.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case documentscan.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case documentscan.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case documentscan.FieldProcessingTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTime(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentScan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentScanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentscan.FieldExtractedText) {
		fields = append(fields, documentscan.FieldExtractedText)
	}
	if m.FieldCleared(documentscan.FieldErrorMessage) {
		fields = append(fields, documentscan.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentScanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentScanMutation) ClearField(name string) error {
	switch name {
	case documentscan.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case documentscan.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DocumentScan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentScanMutation) ResetField(name string) error {
	switch name {
	case documentscan.FieldUserID:
		m.ResetUserID()
		return nil
	case documentscan.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case documentscan.FieldFilePath:
		m.ResetFilePath()
		return nil
	case documentscan.FieldFileName:
		m.ResetFileName()
		return nil
	case documentscan.FieldFileExt:
		m.ResetFileExt()
		return nil
	case documentscan.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case documentscan.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case documentscan.FieldStatus:
		m.ResetStatus()
		return nil
	case documentscan.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case documentscan.FieldFileSize:
		m.ResetFileSize()
		return nil
	case documentscan.FieldPageCount:
		m.ResetPageCount()
		return nil
	case documentscan.FieldProcessingTime:
		m.ResetProcessingTime()
		return nil
	case documentscan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case documentscan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentScan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentScanMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.extracted != nil {
		edges = append(edges, documentscan.EdgeExtracted)
	}
	if m.generated_cvs != nil {
		edges = append(edges, documentscan.EdgeGeneratedCvs)
	}
	if m.jobs != nil {
		edges = append(edges, documentscan.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentScanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentscan.EdgeExtracted:
		if id := m.extracted; id != nil {
			return []ent.Value{*id}
		}
	case documentscan.EdgeGeneratedCvs:
		ids := make([]ent.Value, 0, len(m.generated_cvs))
		for id := range m.generated_cvs {
			ids = append(ids, id)
		}
		return ids
	case documentscan.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentScanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedgenerated_cvs != nil {
		edges = append(edges, documentscan.EdgeGeneratedCvs)
	}
	if m.removedjobs != nil {
		edges = append(edges, documentscan.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentScanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentscan.EdgeGeneratedCvs:
		ids := make([]ent.Value, 0, len(m.removedgenerated_cvs))
		for id := range m.removedgenerated_cvs {
			ids = append(ids, id)
		}
		return ids
	case documentscan.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentScanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedextracted {
		edges = append(edges, documentscan.EdgeExtracted)
	}
	if m.clearedgenerated_cvs {
		edges = append(edges, documentscan.EdgeGeneratedCvs)
	}
	if m.clearedjobs {
		edges = append(edges, documentscan.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentScanMutation) EdgeCleared(name string) bool {
	switch name {
	case documentscan.EdgeExtracted:
		return m.clearedextracted
	case documentscan.EdgeGeneratedCvs:
		return m.clearedgenerated_cvs
	case documentscan.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentScanMutation) ClearEdge(name string) error {
	switch name {
	case documentscan.EdgeExtracted:
		m.ClearExtracted()
		return nil
	}
	return fmt.Errorf("unknown DocumentScan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentScanMutation) ResetEdge(name string) error {
	switch name {
	case documentscan.EdgeExtracted:
		m.ResetExtracted()
		return nil
	case documentscan.EdgeGeneratedCvs:
		m.ResetGeneratedCvs()
		return nil
	case documentscan.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown DocumentScan edge %s", name)
}

// ExtractedDataMutation represents an operation that mutates the ExtractedData nodes in the graph.
type ExtractedDataMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	full_name           *string
	email               *string
	phone               *string
	address             *string
	date_of_birth       *time.Time
	current_position    *string
	company             *string
	experience_years    *int
	addexperience_years *int
	skills              *string
	education           *string
	certifications      *string
	additional_data     *map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	done                bool
	oldValue            func(context.Context) (*ExtractedData, error)
	predicates          []predicate.ExtractedData
}

var _ ent.Mutation = (*ExtractedDataMutation)(nil)

// extracteddataOption allows management of the mutation configuration using functional options.
type extracteddataOption func(*ExtractedDataMutation)

// newExtractedDataMutation creates new mutation for the ExtractedData entity.
func newExtractedDataMutation(c config, op Op, opts ...extracteddataOption) *ExtractedDataMutation {
	m := &ExtractedDataMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedDataID sets the ID field of the mutation.
func withExtractedDataID(id uuid.UUID) extracteddataOption {
	return func(m *ExtractedDataMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedData
		)
		m.oldValue = func(ctx context.Context) (*ExtractedData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedData sets the old ExtractedData of the mutation.
func withExtractedData(node *ExtractedData) extracteddataOption {
	return func(m *ExtractedDataMutation) {
		m.oldValue = func(context.Context) (*ExtractedData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedData entities.
func (m *ExtractedDataMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedDataMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedDataMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedDataMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedDataMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedDataMutation) ResetDocumentID() {
	m.document = nil
}

// SetFullName sets the "full_name" field.
func (m *ExtractedDataMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ExtractedDataMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldFullName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *ExtractedDataMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[extracteddata.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *ExtractedDataMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ExtractedDataMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, extracteddata.FieldFullName)
}

// SetEmail sets the "email" field.
func (m *ExtractedDataMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ExtractedDataMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ExtractedDataMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[extracteddata.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ExtractedDataMutation) EmailCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ExtractedDataMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, extracteddata.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *ExtractedDataMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ExtractedDataMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ExtractedDataMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[extracteddata.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ExtractedDataMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ExtractedDataMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, extracteddata.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *ExtractedDataMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ExtractedDataMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ExtractedDataMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[extracteddata.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ExtractedDataMutation) AddressCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ExtractedDataMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, extracteddata.FieldAddress)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *ExtractedDataMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *ExtractedDataMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *ExtractedDataMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[extracteddata.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *ExtractedDataMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *ExtractedDataMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, extracteddata.FieldDateOfBirth)
}

// SetCurrentPosition sets the "current_position" field.
func (m *ExtractedDataMutation) SetCurrentPosition(s string) {
	m.current_position = &s
}

// CurrentPosition returns the value of the "current_position" field in the mutation.
func (m *ExtractedDataMutation) CurrentPosition() (r string, exists bool) {
	v := m.current_position
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPosition returns the old "current_position" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldCurrentPosition(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPosition: %w", err)
	}
	return oldValue.CurrentPosition, nil
}

// ClearCurrentPosition clears the value of the "current_position" field.
func (m *ExtractedDataMutation) ClearCurrentPosition() {
	m.current_position = nil
	m.clearedFields[extracteddata.FieldCurrentPosition] = struct{}{}
}

// CurrentPositionCleared returns if the "current_position" field was cleared in this mutation.
func (m *ExtractedDataMutation) CurrentPositionCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldCurrentPosition]
	return ok
}

// ResetCurrentPosition resets all changes to the "current_position" field.
func (m *ExtractedDataMutation) ResetCurrentPosition() {
	m.current_position = nil
	delete(m.clearedFields, extracteddata.FieldCurrentPosition)
}

// SetCompany sets the "company" field.
func (m *ExtractedDataMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *ExtractedDataMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldCompany(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *ExtractedDataMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[extracteddata.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *ExtractedDataMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *ExtractedDataMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, extracteddata.FieldCompany)
}

// SetExperienceYears sets the "experience_years" field.
func (m *ExtractedDataMutation) SetExperienceYears(i int) {
	m.experience_years = &i
	m.addexperience_years = nil
}

// ExperienceYears returns the value of the "experience_years" field in the mutation.
func (m *ExtractedDataMutation) ExperienceYears() (r int, exists bool) {
	v := m.experience_years
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceYears returns the old "experience_years" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldExperienceYears(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceYears is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceYears requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceYears: %w", err)
	}
	return oldValue.ExperienceYears, nil
}

// AddExperienceYears adds i to the "experience_years" field.
func (m *ExtractedDataMutation) AddExperienceYears(i int) {
	if m.addexperience_years != nil {
		*m.addexperience_years += i
	} else {
		m.addexperience_years = &i
	}
}

// AddedExperienceYears returns the value that was added to the "experience_years" field in this mutation.
func (m *ExtractedDataMutation) AddedExperienceYears() (r int, exists bool) {
	v := m.addexperience_years
	if v == nil {
		return
	}
	return *v, true
}

// ClearExperienceYears clears the value of the "experience_years" field.
func (m *ExtractedDataMutation) ClearExperienceYears() {
	m.experience_years = nil
	m.addexperience_years = nil
	m.clearedFields[extracteddata.FieldExperienceYears] = struct{}{}
}

// ExperienceYearsCleared returns if the "experience_years" field was cleared in this mutation.
func (m *ExtractedDataMutation) ExperienceYearsCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldExperienceYears]
	return ok
}

// ResetExperienceYears resets all changes to the "experience_years" field.
func (m *ExtractedDataMutation) ResetExperienceYears() {
	m.experience_years = nil
	m.addexperience_years = nil
	delete(m.clearedFields, extracteddata.FieldExperienceYears)
}

// SetSkills sets the "skills" field.
func (m *ExtractedDataMutation) SetSkills(s string) {
	m.skills = &s
}

// Skills returns the value of the "skills" field in the mutation.
func (m *ExtractedDataMutation) Skills() (r string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldSkills(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// ClearSkills clears the value of the "skills" field.
func (m *ExtractedDataMutation) ClearSkills() {
	m.skills = nil
	m.clearedFields[extracteddata.FieldSkills] = struct{}{}
}

// SkillsCleared returns if the "skills" field was cleared in this mutation.
func (m *ExtractedDataMutation) SkillsCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldSkills]
	return ok
}

// ResetSkills resets all changes to the "skills" field.
func (m *ExtractedDataMutation) ResetSkills() {
	m.skills = nil
	delete(m.clearedFields, extracteddata.FieldSkills)
}

// SetEducation sets the "education" field.
func (m *ExtractedDataMutation) SetEducation(s string) {
	m.education = &s
}

// Education returns the value of the "education" field in the mutation.
func (m *ExtractedDataMutation) Education() (r string, exists bool) {
	v := m.education
	if v == nil {
		return
	}
	return *v, true
}

// OldEducation returns the old "education" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldEducation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducation: %w", err)
	}
	return oldValue.Education, nil
}

// ClearEducation clears the value of the "education" field.
func (m *ExtractedDataMutation) ClearEducation() {
	m.education = nil
	m.clearedFields[extracteddata.FieldEducation] = struct{}{}
}

// EducationCleared returns if the "education" field was cleared in this mutation.
func (m *ExtractedDataMutation) EducationCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldEducation]
	return ok
}

// ResetEducation resets all changes to the "education" field.
func (m *ExtractedDataMutation) ResetEducation() {
	m.education = nil
	delete(m.clearedFields, extracteddata.FieldEducation)
}

// SetCertifications sets the "certifications" field.
func (m *ExtractedDataMutation) SetCertifications(s string) {
	m.certifications = &s
}

// Certifications returns the value of the "certifications" field in the mutation.
func (m *ExtractedDataMutation) Certifications() (r string, exists bool) {
	v := m.certifications
	if v == nil {
		return
	}
	return *v, true
}

// OldCertifications returns the old "certifications" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldCertifications(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertifications: %w", err)
	}
	return oldValue.Certifications, nil
}

// ClearCertifications clears the value of the "certifications" field.
func (m *ExtractedDataMutation) ClearCertifications() {
	m.certifications = nil
	m.clearedFields[extracteddata.FieldCertifications] = struct{}{}
}

// CertificationsCleared returns if the "certifications" field was cleared in this mutation.
func (m *ExtractedDataMutation) CertificationsCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldCertifications]
	return ok
}

// ResetCertifications resets all changes to the "certifications" field.
func (m *ExtractedDataMutation) ResetCertifications() {
	m.certifications = nil
	delete(m.clearedFields, extracteddata.FieldCertifications)
}

// SetAdditionalData sets the "additional_data" field.
func (m *ExtractedDataMutation) SetAdditionalData(value map[string]interface{}) {
	m.additional_data = &value
}

// AdditionalData returns the value of the "additional_data" field in the mutation.
func (m *ExtractedDataMutation) AdditionalData() (r map[string]interface{}, exists bool) {
	v := m.additional_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalData returns the old "additional_data" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldAdditionalData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalData: %w", err)
	}
	return oldValue.AdditionalData, nil
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (m *ExtractedDataMutation) ClearAdditionalData() {
	m.additional_data = nil
	m.clearedFields[extracteddata.FieldAdditionalData] = struct{}{}
}

// AdditionalDataCleared returns if the "additional_data" field was cleared in this mutation.
func (m *ExtractedDataMutation) AdditionalDataCleared() bool {
	_, ok := m.clearedFields[extracteddata.FieldAdditionalData]
	return ok
}

// ResetAdditionalData resets all changes to the "additional_data" field.
func (m *ExtractedDataMutation) ResetAdditionalData() {
	m.additional_data = nil
	delete(m.clearedFields, extracteddata.FieldAdditionalData)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedDataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedDataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedDataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractedDataMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractedDataMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractedData entity.
// If the ExtractedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDataMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractedDataMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the DocumentScan entity.
func (m *ExtractedDataMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extracteddata.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the DocumentScan entity was cleared.
func (m *ExtractedDataMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractedDataMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractedDataMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractedDataMutation builder.
func (m *ExtractedDataMutation) Where(ps ...predicate.ExtractedData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedData).
func (m *ExtractedDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedDataMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.document != nil {
		fields = append(fields, extracteddata.FieldDocumentID)
	}
	if m.full_name != nil {
		fields = append(fields, extracteddata.FieldFullName)
	}
	if m.email != nil {
		fields = append(fields, extracteddata.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, extracteddata.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, extracteddata.FieldAddress)
	}
	if m.date_of_birth != nil {
		fields = append(fields, extracteddata.FieldDateOfBirth)
	}
	if m.current_position != nil {
		fields = append(fields, extracteddata.FieldCurrentPosition)
	}
	if m.company != nil {
		fields = append(fields, extracteddata.FieldCompany)
	}
	if m.experience_years != nil {
		fields = append(fields, extracteddata.FieldExperienceYears)
	}
	if m.skills != nil {
		fields = append(fields, extracteddata.FieldSkills)
	}
	if m.education != nil {
		fields = append(fields, extracteddata.FieldEducation)
	}
	if m.certifications != nil {
		fields = append(fields, extracteddata.FieldCertifications)
	}
	if m.additional_data != nil {
		fields = append(fields, extracteddata.FieldAdditionalData)
	}
	if m.created_at != nil {
		fields = append(fields, extracteddata.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extracteddata.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extracteddata.FieldDocumentID:
		return m.DocumentID()
	case extracteddata.FieldFullName:
		return m.FullName()
	case extracteddata.FieldEmail:
		return m.Email()
	case extracteddata.FieldPhone:
		return m.Phone()
	case extracteddata.FieldAddress:
		return m.Address()
	case extracteddata.FieldDateOfBirth:
		return m.DateOfBirth()
	case extracteddata.FieldCurrentPosition:
		return m.CurrentPosition()
	case extracteddata.FieldCompany:
		return m.Company()
	case extracteddata.FieldExperienceYears:
		return m.ExperienceYears()
	case extracteddata.FieldSkills:
		return m.Skills()
	case extracteddata.FieldEducation:
		return m.Education()
	case extracteddata.FieldCertifications:
		return m.Certifications()
	case extracteddata.FieldAdditionalData:
		return m.AdditionalData()
	case extracteddata.FieldCreatedAt:
		return m.CreatedAt()
	case extracteddata.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extracteddata.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extracteddata.FieldFullName:
		return m.OldFullName(ctx)
	case extracteddata.FieldEmail:
		return m.OldEmail(ctx)
	case extracteddata.FieldPhone:
		return m.OldPhone(ctx)
	case extracteddata.FieldAddress:
		return m.OldAddress(ctx)
	case extracteddata.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case extracteddata.FieldCurrentPosition:
		return m.OldCurrentPosition(ctx)
	case extracteddata.FieldCompany:
		return m.OldCompany(ctx)
	case extracteddata.FieldExperienceYears:
		return m.OldExperienceYears(ctx)
	case extracteddata.FieldSkills:
		return m.OldSkills(ctx)
	case extracteddata.FieldEducation:
		return m.OldEducation(ctx)
	case extracteddata.FieldCertifications:
		return m.OldCertifications(ctx)
	case extracteddata.FieldAdditionalData:
		return m.OldAdditionalData(ctx)
	case extracteddata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extracteddata.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extracteddata.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extracteddata.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case extracteddata.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case extracteddata.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case extracteddata.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case extracteddata.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case extracteddata.FieldCurrentPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPosition(v)
		return nil
	case extracteddata.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case extracteddata.FieldExperienceYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceYears(v)
		return nil
	case extracteddata.FieldSkills:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case extracteddata.FieldEducation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducation(v)
		return nil
	case extracteddata.FieldCertifications:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertifications(v)
		return nil
	case extracteddata.FieldAdditionalData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalData(v)
		return nil
	case extracteddata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extracteddata.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedDataMutation) AddedFields() []string {
	var fields []string
	if m.addexperience_years != nil {
		fields = append(fields, extracteddata.FieldExperienceYears)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedDataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extracteddata.FieldExperienceYears:
		return m.AddedExperienceYears()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extracteddata.FieldExperienceYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperienceYears(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedDataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extracteddata.FieldFullName) {
		fields = append(fields, extracteddata.FieldFullName)
	}
	if m.FieldCleared(extracteddata.FieldEmail) {
		fields = append(fields, extracteddata.FieldEmail)
	}
	if m.FieldCleared(extracteddata.FieldPhone) {
		fields = append(fields, extracteddata.FieldPhone)
	}
	if m.FieldCleared(extracteddata.FieldAddress) {
		fields = append(fields, extracteddata.FieldAddress)
	}
	if m.FieldCleared(extracteddata.FieldDateOfBirth) {
		fields = append(fields, extracteddata.FieldDateOfBirth)
	}
	if m.FieldCleared(extracteddata.FieldCurrentPosition) {
		fields = append(fields, extracteddata.FieldCurrentPosition)
	}
	if m.FieldCleared(extracteddata.FieldCompany) {
		fields = append(fields, extracteddata.FieldCompany)
	}
	if m.FieldCleared(extracteddata.FieldExperienceYears) {
		fields = append(fields, extracteddata.FieldExperienceYears)
	}
	if m.FieldCleared(extracteddata.FieldSkills) {
		fields = append(fields, extracteddata.FieldSkills)
	}
	if m.FieldCleared(extracteddata.FieldEducation) {
		fields = append(fields, extracteddata.FieldEducation)
	}
	if m.FieldCleared(extracteddata.FieldCertifications) {
		fields = append(fields, extracteddata.FieldCertifications)
	}
	if m.FieldCleared(extracteddata.FieldAdditionalData) {
		fields = append(fields, extracteddata.FieldAdditionalData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedDataMutation) ClearField(name string) error {
	switch name {
	case extracteddata.FieldFullName:
		m.ClearFullName()
		return nil
	case extracteddata.FieldEmail:
		m.ClearEmail()
		return nil
	case extracteddata.FieldPhone:
		m.ClearPhone()
		return nil
	case extracteddata.FieldAddress:
		m.ClearAddress()
		return nil
	case extracteddata.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case extracteddata.FieldCurrentPosition:
		m.ClearCurrentPosition()
		return nil
	case extracteddata.FieldCompany:
		m.ClearCompany()
		return nil
	case extracteddata.FieldExperienceYears:
		m.ClearExperienceYears()
		return nil
	case extracteddata.FieldSkills:
		m.ClearSkills()
		return nil
	case extracteddata.FieldEducation:
		m.ClearEducation()
		return nil
	case extracteddata.FieldCertifications:
		m.ClearCertifications()
		return nil
	case extracteddata.FieldAdditionalData:
		m.ClearAdditionalData()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedDataMutation) ResetField(name string) error {
	switch name {
	case extracteddata.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extracteddata.FieldFullName:
		m.ResetFullName()
		return nil
	case extracteddata.FieldEmail:
		m.ResetEmail()
		return nil
	case extracteddata.FieldPhone:
		m.ResetPhone()
		return nil
	case extracteddata.FieldAddress:
		m.ResetAddress()
		return nil
	case extracteddata.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case extracteddata.FieldCurrentPosition:
		m.ResetCurrentPosition()
		return nil
	case extracteddata.FieldCompany:
		m.ResetCompany()
		return nil
	case extracteddata.FieldExperienceYears:
		m.ResetExperienceYears()
		return nil
	case extracteddata.FieldSkills:
		m.ResetSkills()
		return nil
	case extracteddata.FieldEducation:
		m.ResetEducation()
		return nil
	case extracteddata.FieldCertifications:
		m.ResetCertifications()
		return nil
	case extracteddata.FieldAdditionalData:
		m.ResetAdditionalData()
		return nil
	case extracteddata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extracteddata.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extracteddata.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extracteddata.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedDataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extracteddata.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedDataMutation) EdgeCleared(name string) bool {
	switch name {
	case extracteddata.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedDataMutation) ClearEdge(name string) error {
	switch name {
	case extracteddata.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedDataMutation) ResetEdge(name string) error {
	switch name {
	case extracteddata.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractedData edge %s", name)
}

// GeneratedCVMutation represents an operation that mutates the GeneratedCV nodes in the graph.
type GeneratedCVMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	user_id                *uuid.UUID
	template_type          *string
	cv_file                *string
	application_form       *string
	merged_document        *string
	status                 *string
	error_message          *string
	custom_data            *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	source_document        *uuid.UUID
	clearedsource_document bool
	jobs                   map[uuid.UUID]struct{}
	removedjobs            map[uuid.UUID]struct{}
	clearedjobs            bool
	done                   bool
	oldValue               func(context.Context) (*GeneratedCV, error)
	predicates             []predicate.GeneratedCV
}

var _ ent.Mutation = (*GeneratedCVMutation)(nil)

// generatedcvOption allows management of the mutation configuration using functional options.
type generatedcvOption func(*GeneratedCVMutation)

// newGeneratedCVMutation creates new mutation for the GeneratedCV entity.
func newGeneratedCVMutation(c config, op Op, opts ...generatedcvOption) *GeneratedCVMutation {
	m := &GeneratedCVMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneratedCV,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeneratedCVID sets the ID field of the mutation.
func withGeneratedCVID(id uuid.UUID) generatedcvOption {
	return func(m *GeneratedCVMutation) {
		var (
			err   error
			once  sync.Once
			value *GeneratedCV
		)
		m.oldValue = func(ctx context.Context) (*GeneratedCV, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeneratedCV.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneratedCV sets the old GeneratedCV of the mutation.
func withGeneratedCV(node *GeneratedCV) generatedcvOption {
	return func(m *GeneratedCVMutation) {
		m.oldValue = func(context.Context) (*GeneratedCV, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeneratedCVMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeneratedCVMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GeneratedCV entities.
func (m *GeneratedCVMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeneratedCVMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeneratedCVMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeneratedCV.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *GeneratedCVMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *GeneratedCVMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *GeneratedCVMutation) ResetUserID() {
	m.user_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *GeneratedCVMutation) SetDocumentID(u uuid.UUID) {
	m.source_document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *GeneratedCVMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.source_document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *GeneratedCVMutation) ResetDocumentID() {
	m.source_document = nil
}

// SetTemplateType sets the "template_type" field.
func (m *GeneratedCVMutation) SetTemplateType(s string) {
	m.template_type = &s
}

// TemplateType returns the value of the "template_type" field in the mutation.
func (m *GeneratedCVMutation) TemplateType() (r string, exists bool) {
	v := m.template_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateType returns the old "template_type" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldTemplateType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateType: %w", err)
	}
	return oldValue.TemplateType, nil
}

// ResetTemplateType resets all changes to the "template_type" field.
func (m *GeneratedCVMutation) ResetTemplateType() {
	m.template_type = nil
}

// SetCvFile sets the "cv_file" field.
func (m *GeneratedCVMutation) SetCvFile(s string) {
	m.cv_file = &s
}

// CvFile returns the value of the "cv_file" field in the mutation.
func (m *GeneratedCVMutation) CvFile() (r string, exists bool) {
	v := m.cv_file
	if v == nil {
		return
	}
	return *v, true
}

// OldCvFile returns the old "cv_file" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldCvFile(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCvFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCvFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCvFile: %w", err)
	}
	return oldValue.CvFile, nil
}

// ClearCvFile clears the value of the "cv_file" field.
func (m *GeneratedCVMutation) ClearCvFile() {
	m.cv_file = nil
	m.clearedFields[generatedcv.FieldCvFile] = struct{}{}
}

// CvFileCleared returns if the "cv_file" field was cleared in this mutation.
func (m *GeneratedCVMutation) CvFileCleared() bool {
	_, ok := m.clearedFields[generatedcv.FieldCvFile]
	return ok
}

// ResetCvFile resets all changes to the "cv_file" field.
func (m *GeneratedCVMutation) ResetCvFile() {
	m.cv_file = nil
	delete(m.clearedFields, generatedcv.FieldCvFile)
}

// SetApplicationForm sets the "application_form" field.
func (m *GeneratedCVMutation) SetApplicationForm(s string) {
	m.application_form = &s
}

// ApplicationForm returns the value of the "application_form" field in the mutation.
func (m *GeneratedCVMutation) ApplicationForm() (r string, exists bool) {
	v := m.application_form
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationForm returns the old "application_form" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldApplicationForm(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationForm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationForm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationForm: %w", err)
	}
	return oldValue.ApplicationForm, nil
}

// ClearApplicationForm clears the value of the "application_form" field.
func (m *GeneratedCVMutation) ClearApplicationForm() {
	m.application_form = nil
	m.clearedFields[generatedcv.FieldApplicationForm] = struct{}{}
}

// ApplicationFormCleared returns if the "application_form" field was cleared in this mutation.
func (m *GeneratedCVMutation) ApplicationFormCleared() bool {
	_, ok := m.clearedFields[generatedcv.FieldApplicationForm]
	return ok
}

// ResetApplicationForm resets all changes to the "application_form" field.
func (m *GeneratedCVMutation) ResetApplicationForm() {
	m.application_form = nil
	delete(m.clearedFields, generatedcv.FieldApplicationForm)
}

// SetMergedDocument sets the "merged_document" field.
func (m *GeneratedCVMutation) SetMergedDocument(s string) {
	m.merged_document = &s
}

// MergedDocument returns the value of the "merged_document" field in the mutation.
func (m *GeneratedCVMutation) MergedDocument() (r string, exists bool) {
	v := m.merged_document
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedDocument returns the old "merged_document" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldMergedDocument(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedDocument: %w", err)
	}
	return oldValue.MergedDocument, nil
}

// ClearMergedDocument clears the value of the "merged_document" field.
func (m *GeneratedCVMutation) ClearMergedDocument() {
	m.merged_document = nil
	m.clearedFields[generatedcv.FieldMergedDocument] = struct{}{}
}

// MergedDocumentCleared returns if the "merged_document" field was cleared in this mutation.
func (m *GeneratedCVMutation) MergedDocumentCleared() bool {
	_, ok := m.clearedFields[generatedcv.FieldMergedDocument]
	return ok
}

// ResetMergedDocument resets all changes to the "merged_document" field.
func (m *GeneratedCVMutation) ResetMergedDocument() {
	m.merged_document = nil
	delete(m.clearedFields, generatedcv.FieldMergedDocument)
}

// SetStatus sets the "status" field.
func (m *GeneratedCVMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GeneratedCVMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GeneratedCVMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *GeneratedCVMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GeneratedCVMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *GeneratedCVMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[generatedcv.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *GeneratedCVMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[generatedcv.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GeneratedCVMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, generatedcv.FieldErrorMessage)
}

// SetCustomData sets the "custom_data" field.
func (m *GeneratedCVMutation) SetCustomData(value map[string]interface{}) {
	m.custom_data = &value
}

// CustomData returns the value of the "custom_data" field in the mutation.
func (m *GeneratedCVMutation) CustomData() (r map[string]interface{}, exists bool) {
	v := m.custom_data
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomData returns the old "custom_data" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldCustomData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomData: %w", err)
	}
	return oldValue.CustomData, nil
}

// ClearCustomData clears the value of the "custom_data" field.
func (m *GeneratedCVMutation) ClearCustomData() {
	m.custom_data = nil
	m.clearedFields[generatedcv.FieldCustomData] = struct{}{}
}

// CustomDataCleared returns if the "custom_data" field was cleared in this mutation.
func (m *GeneratedCVMutation) CustomDataCleared() bool {
	_, ok := m.clearedFields[generatedcv.FieldCustomData]
	return ok
}

// ResetCustomData resets all changes to the "custom_data" field.
func (m *GeneratedCVMutation) ResetCustomData() {
	m.custom_data = nil
	delete(m.clearedFields, generatedcv.FieldCustomData)
}

// SetCreatedAt sets the "created_at" field.
func (m *GeneratedCVMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GeneratedCVMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GeneratedCVMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GeneratedCVMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GeneratedCVMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GeneratedCV entity.
// If the GeneratedCV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedCVMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GeneratedCVMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourceDocumentID sets the "source_document" edge to the DocumentScan entity by id.
func (m *GeneratedCVMutation) SetSourceDocumentID(id uuid.UUID) {
	m.source_document = &id
}

// ClearSourceDocument clears the "source_document" edge to the DocumentScan entity.
func (m *GeneratedCVMutation) ClearSourceDocument() {
	m.clearedsource_document = true
	m.clearedFields[generatedcv.FieldDocumentID] = struct{}{}
}

// SourceDocumentCleared reports if the "source_document" edge to the DocumentScan entity was cleared.
func (m *GeneratedCVMutation) SourceDocumentCleared() bool {
	return m.clearedsource_document
}

// SourceDocumentID returns the "source_document" edge ID in the mutation.
func (m *GeneratedCVMutation) SourceDocumentID() (id uuid.UUID, exists bool) {
	if m.source_document != nil {
		return *m.source_document, true
	}
	return
}

// SourceDocumentIDs returns the "source_document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceDocumentID instead. It exists only for internal usage by the builders.
func (m *GeneratedCVMutation) SourceDocumentIDs() (ids []uuid.UUID) {
	if id := m.source_document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSourceDocument resets all changes to the "source_document" edge.
func (m *GeneratedCVMutation) ResetSourceDocument() {
	m.source_document = nil
	m.clearedsource_document = false
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by ids.
func (m *GeneratedCVMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ProcessingJob entity.
func (m *GeneratedCVMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ProcessingJob entity was cleared.
func (m *GeneratedCVMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ProcessingJob entity by IDs.
func (m *GeneratedCVMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ProcessingJob entity.
func (m *GeneratedCVMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *GeneratedCVMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *GeneratedCVMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the GeneratedCVMutation builder.
func (m *GeneratedCVMutation) Where(ps ...predicate.GeneratedCV) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeneratedCVMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeneratedCVMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeneratedCV, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeneratedCVMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeneratedCVMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeneratedCV).
func (m *GeneratedCVMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeneratedCVMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, generatedcv.FieldUserID)
	}
	if m.source_document != nil {
		fields = append(fields, generatedcv.FieldDocumentID)
	}
	if m.template_type != nil {
		fields = append(fields, generatedcv.FieldTemplateType)
	}
	if m.cv_file != nil {
		fields = append(fields, generatedcv.FieldCvFile)
	}
	if m.application_form != nil {
		fields = append(fields, generatedcv.FieldApplicationForm)
	}
	if m.merged_document != nil {
		fields = append(fields, generatedcv.FieldMergedDocument)
	}
	if m.status != nil {
		fields = append(fields, generatedcv.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, generatedcv.FieldErrorMessage)
	}
	if m.custom_data != nil {
		fields = append(fields, generatedcv.FieldCustomData)
	}
	if m.created_at != nil {
		fields = append(fields, generatedcv.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, generatedcv.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeneratedCVMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generatedcv.FieldUserID:
		return m.UserID()
	case generatedcv.FieldDocumentID:
		return m.DocumentID()
	case generatedcv.FieldTemplateType:
		return m.TemplateType()
	case generatedcv.FieldCvFile:
		return m.CvFile()
	case generatedcv.FieldApplicationForm:
		return m.ApplicationForm()
	case generatedcv.FieldMergedDocument:
		return m.MergedDocument()
	case generatedcv.FieldStatus:
		return m.Status()
	case generatedcv.FieldErrorMessage:
		return m.ErrorMessage()
	case generatedcv.FieldCustomData:
		return m.CustomData()
	case generatedcv.FieldCreatedAt:
		return m.CreatedAt()
	case generatedcv.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeneratedCVMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generatedcv.FieldUserID:
		return m.OldUserID(ctx)
	case generatedcv.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case generatedcv.FieldTemplateType:
		return m.OldTemplateType(ctx)
	case generatedcv.FieldCvFile:
		return m.OldCvFile(ctx)
	case generatedcv.FieldApplicationForm:
		return m.OldApplicationForm(ctx)
	case generatedcv.FieldMergedDocument:
		return m.OldMergedDocument(ctx)
	case generatedcv.FieldStatus:
		return m.OldStatus(ctx)
	case generatedcv.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case generatedcv.FieldCustomData:
		return m.OldCustomData(ctx)
	case generatedcv.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case generatedcv.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GeneratedCV field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedCVMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generatedcv.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case generatedcv.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case generatedcv.FieldTemplateType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateType(v)
		return nil
	case generatedcv.FieldCvFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCvFile(v)
		return nil
	case generatedcv.FieldApplicationForm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationForm(v)
		return nil
	case generatedcv.FieldMergedDocument:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedDocument(v)
		return nil
	case generatedcv.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generatedcv.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case generatedcv.FieldCustomData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomData(v)
		return nil
	case generatedcv.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case generatedcv.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GeneratedCV field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeneratedCVMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeneratedCVMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedCVMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GeneratedCV numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeneratedCVMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generatedcv.FieldCvFile) {
		fields = append(fields, generatedcv.FieldCvFile)
	}
	if m.FieldCleared(generatedcv.FieldApplicationForm) {
		fields = append(fields, generatedcv.FieldApplicationForm)
	}
	if m.FieldCleared(generatedcv.FieldMergedDocument) {
		fields = append(fields, generatedcv.FieldMergedDocument)
	}
	if m.FieldCleared(generatedcv.FieldErrorMessage) {
		fields = append(fields, generatedcv.FieldErrorMessage)
	}
	if m.FieldCleared(generatedcv.FieldCustomData) {
		fields = append(fields, generatedcv.FieldCustomData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeneratedCVMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeneratedCVMutation) ClearField(name string) error {
	switch name {
	case generatedcv.FieldCvFile:
		m.ClearCvFile()
		return nil
	case generatedcv.FieldApplicationForm:
		m.ClearApplicationForm()
		return nil
	case generatedcv.FieldMergedDocument:
		m.ClearMergedDocument()
		return nil
	case generatedcv.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case generatedcv.FieldCustomData:
		m.ClearCustomData()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCV nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeneratedCVMutation) ResetField(name string) error {
	switch name {
	case generatedcv.FieldUserID:
		m.ResetUserID()
		return nil
	case generatedcv.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case generatedcv.FieldTemplateType:
		m.ResetTemplateType()
		return nil
	case generatedcv.FieldCvFile:
		m.ResetCvFile()
		return nil
	case generatedcv.FieldApplicationForm:
		m.ResetApplicationForm()
		return nil
	case generatedcv.FieldMergedDocument:
		m.ResetMergedDocument()
		return nil
	case generatedcv.FieldStatus:
		m.ResetStatus()
		return nil
	case generatedcv.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case generatedcv.FieldCustomData:
		m.ResetCustomData()
		return nil
	case generatedcv.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case generatedcv.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCV field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeneratedCVMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.source_document != nil {
		edges = append(edges, generatedcv.EdgeSourceDocument)
	}
	if m.jobs != nil {
		edges = append(edges, generatedcv.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeneratedCVMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generatedcv.EdgeSourceDocument:
		if id := m.source_document; id != nil {
			return []ent.Value{*id}
		}
	case generatedcv.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeneratedCVMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, generatedcv.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeneratedCVMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case generatedcv.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeneratedCVMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsource_document {
		edges = append(edges, generatedcv.EdgeSourceDocument)
	}
	if m.clearedjobs {
		edges = append(edges, generatedcv.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeneratedCVMutation) EdgeCleared(name string) bool {
	switch name {
	case generatedcv.EdgeSourceDocument:
		return m.clearedsource_document
	case generatedcv.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeneratedCVMutation) ClearEdge(name string) error {
	switch name {
	case generatedcv.EdgeSourceDocument:
		m.ClearSourceDocument()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCV unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeneratedCVMutation) ResetEdge(name string) error {
	switch name {
	case generatedcv.EdgeSourceDocument:
		m.ResetSourceDocument()
		return nil
	case generatedcv.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown GeneratedCV edge %s", name)
}

// ProcessingJobMutation represents an operation that mutates the ProcessingJob nodes in the graph.
type ProcessingJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	user_id             *uuid.UUID
	job_type            *string
	status              *string
	progress            *int
	addprogress         *int
	result_data         *json.RawMessage
	appendresult_data   json.RawMessage
	error_details       *string
	started_at          *time.Time
	completed_at        *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	generated_cv        *uuid.UUID
	clearedgenerated_cv bool
	done                bool
	oldValue            func(context.Context) (*ProcessingJob, error)
	predicates          []predicate.ProcessingJob
}

var _ ent.Mutation = (*ProcessingJobMutation)(nil)

// processingjobOption allows management of the mutation configuration using functional options.
type processingjobOption func(*ProcessingJobMutation)

// newProcessingJobMutation creates new mutation for the ProcessingJob entity.
func newProcessingJobMutation(c config, op Op, opts ...processingjobOption) *ProcessingJobMutation {
	m := &ProcessingJobMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingJobID sets the ID field of the mutation.
func withProcessingJobID(id uuid.UUID) processingjobOption {
	return func(m *ProcessingJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingJob
		)
		m.oldValue = func(ctx context.Context) (*ProcessingJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingJob sets the old ProcessingJob of the mutation.
func withProcessingJob(node *ProcessingJob) processingjobOption {
	return func(m *ProcessingJobMutation) {
		m.oldValue = func(context.Context) (*ProcessingJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingJob entities.
func (m *ProcessingJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProcessingJobMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProcessingJobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProcessingJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetJobType sets the "job_type" field.
func (m *ProcessingJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *ProcessingJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *ProcessingJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingJobMutation) ResetStatus() {
	m.status = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ProcessingJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ProcessingJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *ProcessingJobMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[processingjob.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *ProcessingJobMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ProcessingJobMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, processingjob.FieldDocumentID)
}

// SetCvID sets the "cv_id" field.
func (m *ProcessingJobMutation) SetCvID(u uuid.UUID) {
	m.generated_cv = &u
}

// CvID returns the value of the "cv_id" field in the mutation.
func (m *ProcessingJobMutation) CvID() (r uuid.UUID, exists bool) {
	v := m.generated_cv
	if v == nil {
		return
	}
	return *v, true
}

// OldCvID returns the old "cv_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldCvID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCvID: %w", err)
	}
	return oldValue.CvID, nil
}

// ClearCvID clears the value of the "cv_id" field.
func (m *ProcessingJobMutation) ClearCvID() {
	m.generated_cv = nil
	m.clearedFields[processingjob.FieldCvID] = struct{}{}
}

// CvIDCleared returns if the "cv_id" field was cleared in this mutation.
func (m *ProcessingJobMutation) CvIDCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldCvID]
	return ok
}

// ResetCvID resets all changes to the "cv_id" field.
func (m *ProcessingJobMutation) ResetCvID() {
	m.generated_cv = nil
	delete(m.clearedFields, processingjob.FieldCvID)
}

// SetProgress sets the "progress" field.
func (m *ProcessingJobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ProcessingJobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *ProcessingJobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *ProcessingJobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *ProcessingJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetResultData sets the "result_data" field.
func (m *ProcessingJobMutation) SetResultData(jm json.RawMessage) {
	m.result_data = &jm
	m.appendresult_data = nil
}

// ResultData returns the value of the "result_data" field in the mutation.
func (m *ProcessingJobMutation) ResultData() (r json.RawMessage, exists bool) {
	v := m.result_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResultData returns the old "result_data" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldResultData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultData: %w", err)
	}
	return oldValue.ResultData, nil
}

// AppendResultData adds jm to the "result_data" field.
func (m *ProcessingJobMutation) AppendResultData(jm json.RawMessage) {
	m.appendresult_data = append(m.appendresult_data, jm...)
}

// AppendedResultData returns the list of values that were appended to the "result_data" field in this mutation.
func (m *ProcessingJobMutation) AppendedResultData() (json.RawMessage, bool) {
	if len(m.appendresult_data) == 0 {
		return nil, false
	}
	return m.appendresult_data, true
}

// ClearResultData clears the value of the "result_data" field.
func (m *ProcessingJobMutation) ClearResultData() {
	m.result_data = nil
	m.appendresult_data = nil
	m.clearedFields[processingjob.FieldResultData] = struct{}{}
}

// ResultDataCleared returns if the "result_data" field was cleared in this mutation.
func (m *ProcessingJobMutation) ResultDataCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldResultData]
	return ok
}

// ResetResultData resets all changes to the "result_data" field.
func (m *ProcessingJobMutation) ResetResultData() {
	m.result_data = nil
	m.appendresult_data = nil
	delete(m.clearedFields, processingjob.FieldResultData)
}

// SetErrorDetails sets the "error_details" field.
func (m *ProcessingJobMutation) SetErrorDetails(s string) {
	m.error_details = &s
}

// ErrorDetails returns the value of the "error_details" field in the mutation.
func (m *ProcessingJobMutation) ErrorDetails() (r string, exists bool) {
	v := m.error_details
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetails returns the old "error_details" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldErrorDetails(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetails: %w", err)
	}
	return oldValue.ErrorDetails, nil
}

// ClearErrorDetails clears the value of the "error_details" field.
func (m *ProcessingJobMutation) ClearErrorDetails() {
	m.error_details = nil
	m.clearedFields[processingjob.FieldErrorDetails] = struct{}{}
}

// ErrorDetailsCleared returns if the "error_details" field was cleared in this mutation.
func (m *ProcessingJobMutation) ErrorDetailsCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldErrorDetails]
	return ok
}

// ResetErrorDetails resets all changes to the "error_details" field.
func (m *ProcessingJobMutation) ResetErrorDetails() {
	m.error_details = nil
	delete(m.clearedFields, processingjob.FieldErrorDetails)
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessingJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessingJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProcessingJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[processingjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessingJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, processingjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessingJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processingjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processingjob.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the DocumentScan entity.
func (m *ProcessingJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[processingjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the DocumentScan entity was cleared.
func (m *ProcessingJobMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ProcessingJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ProcessingJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// SetGeneratedCvID sets the "generated_cv" edge to the GeneratedCV entity by id.
func (m *ProcessingJobMutation) SetGeneratedCvID(id uuid.UUID) {
	m.generated_cv = &id
}

// ClearGeneratedCv clears the "generated_cv" edge to the GeneratedCV entity.
func (m *ProcessingJobMutation) ClearGeneratedCv() {
	m.clearedgenerated_cv = true
	m.clearedFields[processingjob.FieldCvID] = struct{}{}
}

// GeneratedCvCleared reports if the "generated_cv" edge to the GeneratedCV entity was cleared.
func (m *ProcessingJobMutation) GeneratedCvCleared() bool {
	return m.CvIDCleared() || m.clearedgenerated_cv
}

// GeneratedCvID returns the "generated_cv" edge ID in the mutation.
func (m *ProcessingJobMutation) GeneratedCvID() (id uuid.UUID, exists bool) {
	if m.generated_cv != nil {
		return *m.generated_cv, true
	}
	return
}

// GeneratedCvIDs returns the "generated_cv" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GeneratedCvID instead. It exists only for internal usage by the builders.
func (m *ProcessingJobMutation) GeneratedCvIDs() (ids []uuid.UUID) {
	if id := m.generated_cv; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGeneratedCv resets all changes to the "generated_cv" edge.
func (m *ProcessingJobMutation) ResetGeneratedCv() {
	m.generated_cv = nil
	m.clearedgenerated_cv = false
}

// Where appends a list predicates to the ProcessingJobMutation builder.
func (m *ProcessingJobMutation) Where(ps ...predicate.ProcessingJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingJob).
func (m *ProcessingJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, processingjob.FieldUserID)
	}
	if m.job_type != nil {
		fields = append(fields, processingjob.FieldJobType)
	}
	if m.status != nil {
		fields = append(fields, processingjob.FieldStatus)
	}
	if m.document != nil {
		fields = append(fields, processingjob.FieldDocumentID)
	}
	if m.generated_cv != nil {
		fields = append(fields, processingjob.FieldCvID)
	}
	if m.progress != nil {
		fields = append(fields, processingjob.FieldProgress)
	}
	if m.result_data != nil {
		fields = append(fields, processingjob.FieldResultData)
	}
	if m.error_details != nil {
		fields = append(fields, processingjob.FieldErrorDetails)
	}
	if m.started_at != nil {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, processingjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingjob.FieldUserID:
		return m.UserID()
	case processingjob.FieldJobType:
		return m.JobType()
	case processingjob.FieldStatus:
		return m.Status()
	case processingjob.FieldDocumentID:
		return m.DocumentID()
	case processingjob.FieldCvID:
		return m.CvID()
	case processingjob.FieldProgress:
		return m.Progress()
	case processingjob.FieldResultData:
		return m.ResultData()
	case processingjob.FieldErrorDetails:
		return m.ErrorDetails()
	case processingjob.FieldStartedAt:
		return m.StartedAt()
	case processingjob.FieldCompletedAt:
		return m.CompletedAt()
	case processingjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingjob.FieldUserID:
		return m.OldUserID(ctx)
	case processingjob.FieldJobType:
		return m.OldJobType(ctx)
	case processingjob.FieldStatus:
		return m.OldStatus(ctx)
	case processingjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case processingjob.FieldCvID:
		return m.OldCvID(ctx)
	case processingjob.FieldProgress:
		return m.OldProgress(ctx)
	case processingjob.FieldResultData:
		return m.OldResultData(ctx)
	case processingjob.FieldErrorDetails:
		return m.OldErrorDetails(ctx)
	case processingjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processingjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case processingjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingjob.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case processingjob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case processingjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case processingjob.FieldCvID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCvID(v)
		return nil
	case processingjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case processingjob.FieldResultData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultData(v)
		return nil
	case processingjob.FieldErrorDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetails(v)
		return nil
	case processingjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processingjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case processingjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingJobMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, processingjob.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingjob.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingjob.FieldDocumentID) {
		fields = append(fields, processingjob.FieldDocumentID)
	}
	if m.FieldCleared(processingjob.FieldCvID) {
		fields = append(fields, processingjob.FieldCvID)
	}
	if m.FieldCleared(processingjob.FieldResultData) {
		fields = append(fields, processingjob.FieldResultData)
	}
	if m.FieldCleared(processingjob.FieldErrorDetails) {
		fields = append(fields, processingjob.FieldErrorDetails)
	}
	if m.FieldCleared(processingjob.FieldStartedAt) {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.FieldCleared(processingjob.FieldCompletedAt) {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ClearField(name string) error {
	switch name {
	case processingjob.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case processingjob.FieldCvID:
		m.ClearCvID()
		return nil
	case processingjob.FieldResultData:
		m.ClearResultData()
		return nil
	case processingjob.FieldErrorDetails:
		m.ClearErrorDetails()
		return nil
	case processingjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ResetField(name string) error {
	switch name {
	case processingjob.FieldUserID:
		m.ResetUserID()
		return nil
	case processingjob.FieldJobType:
		m.ResetJobType()
		return nil
	case processingjob.FieldStatus:
		m.ResetStatus()
		return nil
	case processingjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case processingjob.FieldCvID:
		m.ResetCvID()
		return nil
	case processingjob.FieldProgress:
		m.ResetProgress()
		return nil
	case processingjob.FieldResultData:
		m.ResetResultData()
		return nil
	case processingjob.FieldErrorDetails:
		m.ResetErrorDetails()
		return nil
	case processingjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case processingjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, processingjob.EdgeDocument)
	}
	if m.generated_cv != nil {
		edges = append(edges, processingjob.EdgeGeneratedCv)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case processingjob.EdgeGeneratedCv:
		if id := m.generated_cv; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, processingjob.EdgeDocument)
	}
	if m.clearedgenerated_cv {
		edges = append(edges, processingjob.EdgeGeneratedCv)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingJobMutation) EdgeCleared(name string) bool {
	switch name {
	case processingjob.EdgeDocument:
		return m.cleareddocument
	case processingjob.EdgeGeneratedCv:
		return m.clearedgenerated_cv
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingJobMutation) ClearEdge(name string) error {
	switch name {
	case processingjob.EdgeDocument:
		m.ClearDocument()
		return nil
	case processingjob.EdgeGeneratedCv:
		m.ClearGeneratedCv()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingJobMutation) ResetEdge(name string) error {
	switch name {
	case processingjob.EdgeDocument:
		m.ResetDocument()
		return nil
	case processingjob.EdgeGeneratedCv:
		m.ResetGeneratedCv()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob edge %s", name)
}
