// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// DocumentScanUpdate is the builder for updating DocumentScan entities.
type DocumentScanUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentScanMutation
}

// Where appends a list predicates to the DocumentScanUpdate builder.
func (_u *DocumentScanUpdate) Where(ps ...predicate.DocumentScan) *DocumentScanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DocumentScanUpdate) SetUserID(v uuid.UUID) *DocumentScanUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableUserID(v *uuid.UUID) *DocumentScanUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentScanUpdate) SetDocumentType(v string) *DocumentScanUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableDocumentType(v *string) *DocumentScanUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentScanUpdate) SetFilePath(v string) *DocumentScanUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableFilePath(v *string) *DocumentScanUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentScanUpdate) SetFileName(v string) *DocumentScanUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableFileName(v *string) *DocumentScanUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentScanUpdate) SetFileExt(v string) *DocumentScanUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableFileExt(v *string) *DocumentScanUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentScanUpdate) SetExtractedText(v string) *DocumentScanUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableExtractedText(v *string) *DocumentScanUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentScanUpdate) ClearExtractedText() *DocumentScanUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentScanUpdate) SetConfidenceScore(v float64) *DocumentScanUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableConfidenceScore(v *float64) *DocumentScanUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentScanUpdate) AddConfidenceScore(v float64) *DocumentScanUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentScanUpdate) SetStatus(v string) *DocumentScanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableStatus(v *string) *DocumentScanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentScanUpdate) SetErrorMessage(v string) *DocumentScanUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableErrorMessage(v *string) *DocumentScanUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentScanUpdate) ClearErrorMessage() *DocumentScanUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentScanUpdate) SetFileSize(v int) *DocumentScanUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableFileSize(v *int) *DocumentScanUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentScanUpdate) AddFileSize(v int) *DocumentScanUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentScanUpdate) SetPageCount(v int) *DocumentScanUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillablePageCount(v *int) *DocumentScanUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentScanUpdate) AddPageCount(v int) *DocumentScanUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *DocumentScanUpdate) SetProcessingTime(v float64) *DocumentScanUpdate {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableProcessingTime(v *float64) *DocumentScanUpdate {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *DocumentScanUpdate) AddProcessingTime(v float64) *DocumentScanUpdate {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentScanUpdate) SetUpdatedAt(v time.Time) *DocumentScanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtractedID sets the "extracted" edge to the ExtractedData entity by ID.
func (_u *DocumentScanUpdate) SetExtractedID(id uuid.UUID) *DocumentScanUpdate {
	_u.mutation.SetExtractedID(id)
	return _u
}

// SetNillableExtractedID sets the "extracted" edge to the ExtractedData entity by ID if the given value is not nil.
func (_u *DocumentScanUpdate) SetNillableExtractedID(id *uuid.UUID) *DocumentScanUpdate {
	if id != nil {
		_u = _u.SetExtractedID(*id)
	}
	return _u
}

// SetExtracted sets the "extracted" edge to the ExtractedData entity.
func (_u *DocumentScanUpdate) SetExtracted(v *ExtractedData) *DocumentScanUpdate {
	return _u.SetExtractedID(v.ID)
}

// AddGeneratedCvIDs adds the "generated_cvs" edge to the GeneratedCV entity by IDs.
func (_u *DocumentScanUpdate) AddGeneratedCvIDs(ids ...uuid.UUID) *DocumentScanUpdate {
	_u.mutation.AddGeneratedCvIDs(ids...)
	return _u
}

// AddGeneratedCvs adds the "generated_cvs" edges to the GeneratedCV entity.
func (_u *DocumentScanUpdate) AddGeneratedCvs(v ...*GeneratedCV) *DocumentScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedCvIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *DocumentScanUpdate) AddJobIDs(ids ...uuid.UUID) *DocumentScanUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *DocumentScanUpdate) AddJobs(v ...*ProcessingJob) *DocumentScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentScanMutation object of the builder.
func (_u *DocumentScanUpdate) Mutation() *DocumentScanMutation {
	return _u.mutation
}

// ClearExtracted clears the "extracted" edge to the ExtractedData entity.
func (_u *DocumentScanUpdate) ClearExtracted() *DocumentScanUpdate {
	_u.mutation.ClearExtracted()
	return _u
}

// ClearGeneratedCvs clears all "generated_cvs" edges to the GeneratedCV entity.
func (_u *DocumentScanUpdate) ClearGeneratedCvs() *DocumentScanUpdate {
	_u.mutation.ClearGeneratedCvs()
	return _u
}

// RemoveGeneratedCvIDs removes the "generated_cvs" edge to GeneratedCV entities by IDs.
func (_u *DocumentScanUpdate) RemoveGeneratedCvIDs(ids ...uuid.UUID) *DocumentScanUpdate {
	_u.mutation.RemoveGeneratedCvIDs(ids...)
	return _u
}

// RemoveGeneratedCvs removes "generated_cvs" edges to GeneratedCV entities.
func (_u *DocumentScanUpdate) RemoveGeneratedCvs(v ...*GeneratedCV) *DocumentScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedCvIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *DocumentScanUpdate) ClearJobs() *DocumentScanUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *DocumentScanUpdate) RemoveJobIDs(ids ...uuid.UUID) *DocumentScanUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *DocumentScanUpdate) RemoveJobs(v ...*ProcessingJob) *DocumentScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentScanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentScanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentScanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentScanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentScanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentscan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentScanUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := documentscan.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := documentscan.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := documentscan.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := documentscan.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := documentscan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := documentscan.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentScanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentscan.Table, documentscan.Columns, sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(documentscan.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(documentscan.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(documentscan.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(documentscan.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(documentscan.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(documentscan.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(documentscan.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(documentscan.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(documentscan.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(documentscan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(documentscan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(documentscan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(documentscan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(documentscan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(documentscan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(documentscan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(documentscan.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(documentscan.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentscan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentscan.ExtractedTable,
			Columns: []string{documentscan.ExtractedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentscan.ExtractedTable,
			Columns: []string{documentscan.ExtractedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GeneratedCvsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.GeneratedCvsTable,
			Columns: []string{documentscan.GeneratedCvsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGeneratedCvsIDs(); len(nodes) > 0 && !_u.mutation.GeneratedCvsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.GeneratedCvsTable,
			Columns: []string{documentscan.GeneratedCvsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedCvsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.GeneratedCvsTable,
			Columns: []string{documentscan.GeneratedCvsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.JobsTable,
			Columns: []string{documentscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.JobsTable,
			Columns: []string{documentscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.JobsTable,
			Columns: []string{documentscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentscan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentScanUpdateOne is the builder for updating a single DocumentScan entity.
type DocumentScanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentScanMutation
}

// SetUserID sets the "user_id" field.
func (_u *DocumentScanUpdateOne) SetUserID(v uuid.UUID) *DocumentScanUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableUserID(v *uuid.UUID) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentScanUpdateOne) SetDocumentType(v string) *DocumentScanUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableDocumentType(v *string) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentScanUpdateOne) SetFilePath(v string) *DocumentScanUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableFilePath(v *string) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentScanUpdateOne) SetFileName(v string) *DocumentScanUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableFileName(v *string) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentScanUpdateOne) SetFileExt(v string) *DocumentScanUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableFileExt(v *string) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentScanUpdateOne) SetExtractedText(v string) *DocumentScanUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableExtractedText(v *string) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentScanUpdateOne) ClearExtractedText() *DocumentScanUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentScanUpdateOne) SetConfidenceScore(v float64) *DocumentScanUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableConfidenceScore(v *float64) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentScanUpdateOne) AddConfidenceScore(v float64) *DocumentScanUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentScanUpdateOne) SetStatus(v string) *DocumentScanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableStatus(v *string) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentScanUpdateOne) SetErrorMessage(v string) *DocumentScanUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableErrorMessage(v *string) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentScanUpdateOne) ClearErrorMessage() *DocumentScanUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentScanUpdateOne) SetFileSize(v int) *DocumentScanUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableFileSize(v *int) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentScanUpdateOne) AddFileSize(v int) *DocumentScanUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentScanUpdateOne) SetPageCount(v int) *DocumentScanUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillablePageCount(v *int) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentScanUpdateOne) AddPageCount(v int) *DocumentScanUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *DocumentScanUpdateOne) SetProcessingTime(v float64) *DocumentScanUpdateOne {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableProcessingTime(v *float64) *DocumentScanUpdateOne {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *DocumentScanUpdateOne) AddProcessingTime(v float64) *DocumentScanUpdateOne {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentScanUpdateOne) SetUpdatedAt(v time.Time) *DocumentScanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExtractedID sets the "extracted" edge to the ExtractedData entity by ID.
func (_u *DocumentScanUpdateOne) SetExtractedID(id uuid.UUID) *DocumentScanUpdateOne {
	_u.mutation.SetExtractedID(id)
	return _u
}

// SetNillableExtractedID sets the "extracted" edge to the ExtractedData entity by ID if the given value is not nil.
func (_u *DocumentScanUpdateOne) SetNillableExtractedID(id *uuid.UUID) *DocumentScanUpdateOne {
	if id != nil {
		_u = _u.SetExtractedID(*id)
	}
	return _u
}

// SetExtracted sets the "extracted" edge to the ExtractedData entity.
func (_u *DocumentScanUpdateOne) SetExtracted(v *ExtractedData) *DocumentScanUpdateOne {
	return _u.SetExtractedID(v.ID)
}

// AddGeneratedCvIDs adds the "generated_cvs" edge to the GeneratedCV entity by IDs.
func (_u *DocumentScanUpdateOne) AddGeneratedCvIDs(ids ...uuid.UUID) *DocumentScanUpdateOne {
	_u.mutation.AddGeneratedCvIDs(ids...)
	return _u
}

// AddGeneratedCvs adds the "generated_cvs" edges to the GeneratedCV entity.
func (_u *DocumentScanUpdateOne) AddGeneratedCvs(v ...*GeneratedCV) *DocumentScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedCvIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *DocumentScanUpdateOne) AddJobIDs(ids ...uuid.UUID) *DocumentScanUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *DocumentScanUpdateOne) AddJobs(v ...*ProcessingJob) *DocumentScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentScanMutation object of the builder.
func (_u *DocumentScanUpdateOne) Mutation() *DocumentScanMutation {
	return _u.mutation
}

// ClearExtracted clears the "extracted" edge to the ExtractedData entity.
func (_u *DocumentScanUpdateOne) ClearExtracted() *DocumentScanUpdateOne {
	_u.mutation.ClearExtracted()
	return _u
}

// ClearGeneratedCvs clears all "generated_cvs" edges to the GeneratedCV entity.
func (_u *DocumentScanUpdateOne) ClearGeneratedCvs() *DocumentScanUpdateOne {
	_u.mutation.ClearGeneratedCvs()
	return _u
}

// RemoveGeneratedCvIDs removes the "generated_cvs" edge to GeneratedCV entities by IDs.
func (_u *DocumentScanUpdateOne) RemoveGeneratedCvIDs(ids ...uuid.UUID) *DocumentScanUpdateOne {
	_u.mutation.RemoveGeneratedCvIDs(ids...)
	return _u
}

// RemoveGeneratedCvs removes "generated_cvs" edges to GeneratedCV entities.
func (_u *DocumentScanUpdateOne) RemoveGeneratedCvs(v ...*GeneratedCV) *DocumentScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedCvIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *DocumentScanUpdateOne) ClearJobs() *DocumentScanUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *DocumentScanUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *DocumentScanUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *DocumentScanUpdateOne) RemoveJobs(v ...*ProcessingJob) *DocumentScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the DocumentScanUpdate builder.
func (_u *DocumentScanUpdateOne) Where(ps ...predicate.DocumentScan) *DocumentScanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentScanUpdateOne) Select(field string, fields ...string) *DocumentScanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentScan entity.
func (_u *DocumentScanUpdateOne) Save(ctx context.Context) (*DocumentScan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentScanUpdateOne) SaveX(ctx context.Context) *DocumentScan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentScanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentScanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentScanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentscan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentScanUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := documentscan.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := documentscan.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := documentscan.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := documentscan.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := documentscan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := documentscan.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentScanUpdateOne) sqlSave(ctx context.Context) (_node *DocumentScan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentscan.Table, documentscan.Columns, sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentScan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentscan.FieldID)
		for _, f := range fields {
			if !documentscan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentscan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(documentscan.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(documentscan.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(documentscan.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(documentscan.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(documentscan.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(documentscan.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(documentscan.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(documentscan.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(documentscan.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(documentscan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(documentscan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(documentscan.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(documentscan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(documentscan.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(documentscan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(documentscan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(documentscan.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(documentscan.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentscan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentscan.ExtractedTable,
			Columns: []string{documentscan.ExtractedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentscan.ExtractedTable,
			Columns: []string{documentscan.ExtractedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GeneratedCvsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.GeneratedCvsTable,
			Columns: []string{documentscan.GeneratedCvsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGeneratedCvsIDs(); len(nodes) > 0 && !_u.mutation.GeneratedCvsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.GeneratedCvsTable,
			Columns: []string{documentscan.GeneratedCvsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedCvsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.GeneratedCvsTable,
			Columns: []string{documentscan.GeneratedCvsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.JobsTable,
			Columns: []string{documentscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.JobsTable,
			Columns: []string{documentscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentscan.JobsTable,
			Columns: []string{documentscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentScan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentscan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
