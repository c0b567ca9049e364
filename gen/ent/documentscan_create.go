// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// DocumentScanCreate is the builder for creating a DocumentScan entity.
type DocumentScanCreate struct {
	config
	mutation *DocumentScanMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DocumentScanCreate) SetUserID(v uuid.UUID) *DocumentScanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *DocumentScanCreate) SetDocumentType(v string) *DocumentScanCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableDocumentType(v *string) *DocumentScanCreate {
	if v != nil {
		_c.SetDocumentType(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *DocumentScanCreate) SetFilePath(v string) *DocumentScanCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *DocumentScanCreate) SetFileName(v string) *DocumentScanCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *DocumentScanCreate) SetFileExt(v string) *DocumentScanCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *DocumentScanCreate) SetExtractedText(v string) *DocumentScanCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableExtractedText(v *string) *DocumentScanCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *DocumentScanCreate) SetConfidenceScore(v float64) *DocumentScanCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableConfidenceScore(v *float64) *DocumentScanCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentScanCreate) SetStatus(v string) *DocumentScanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableStatus(v *string) *DocumentScanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DocumentScanCreate) SetErrorMessage(v string) *DocumentScanCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableErrorMessage(v *string) *DocumentScanCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentScanCreate) SetFileSize(v int) *DocumentScanCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableFileSize(v *int) *DocumentScanCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentScanCreate) SetPageCount(v int) *DocumentScanCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillablePageCount(v *int) *DocumentScanCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetProcessingTime sets the "processing_time" field.
func (_c *DocumentScanCreate) SetProcessingTime(v float64) *DocumentScanCreate {
	_c.mutation.SetProcessingTime(v)
	return _c
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableProcessingTime(v *float64) *DocumentScanCreate {
	if v != nil {
		_c.SetProcessingTime(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentScanCreate) SetCreatedAt(v time.Time) *DocumentScanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableCreatedAt(v *time.Time) *DocumentScanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentScanCreate) SetUpdatedAt(v time.Time) *DocumentScanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableUpdatedAt(v *time.Time) *DocumentScanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentScanCreate) SetID(v uuid.UUID) *DocumentScanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableID(v *uuid.UUID) *DocumentScanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtractedID sets the "extracted" edge to the ExtractedData entity by ID.
func (_c *DocumentScanCreate) SetExtractedID(id uuid.UUID) *DocumentScanCreate {
	_c.mutation.SetExtractedID(id)
	return _c
}

// SetNillableExtractedID sets the "extracted" edge to the ExtractedData entity by ID if the given value is not nil.
func (_c *DocumentScanCreate) SetNillableExtractedID(id *uuid.UUID) *DocumentScanCreate {
	if id != nil {
		_c = _c.SetExtractedID(*id)
	}
	return _c
}

// SetExtracted sets the "extracted" edge to the ExtractedData entity.
func (_c *DocumentScanCreate) SetExtracted(v *ExtractedData) *DocumentScanCreate {
	return _c.SetExtractedID(v.ID)
}

// AddGeneratedCvIDs adds the "generated_cvs" edge to the GeneratedCV entity by IDs.
func (_c *DocumentScanCreate) AddGeneratedCvIDs(ids ...uuid.UUID) *DocumentScanCreate {
	_c.mutation.AddGeneratedCvIDs(ids...)
	return _c
}

// AddGeneratedCvs adds the "generated_cvs" edges to the GeneratedCV entity.
func (_c *DocumentScanCreate) AddGeneratedCvs(v ...*GeneratedCV) *DocumentScanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGeneratedCvIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_c *DocumentScanCreate) AddJobIDs(ids ...uuid.UUID) *DocumentScanCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_c *DocumentScanCreate) AddJobs(v ...*ProcessingJob) *DocumentScanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the DocumentScanMutation object of the builder.
func (_c *DocumentScanCreate) Mutation() *DocumentScanMutation {
	return _c.mutation
}

// Save creates the DocumentScan in the database.
func (_c *DocumentScanCreate) Save(ctx context.Context) (*DocumentScan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentScanCreate) SaveX(ctx context.Context) *DocumentScan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentScanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentScanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentScanCreate) defaults() {
	if _, ok := _c.mutation.DocumentType(); !ok {
		v := documentscan.DefaultDocumentType
		_c.mutation.SetDocumentType(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := documentscan.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := documentscan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		v := documentscan.DefaultFileSize
		_c.mutation.SetFileSize(v)
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		v := documentscan.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.ProcessingTime(); !ok {
		v := documentscan.DefaultProcessingTime
		_c.mutation.SetProcessingTime(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentscan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documentscan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentscan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentScanCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DocumentScan.user_id"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "DocumentScan.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := documentscan.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "DocumentScan.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := documentscan.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "DocumentScan.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := documentscan.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "DocumentScan.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := documentscan.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "DocumentScan.confidence_score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DocumentScan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := documentscan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "DocumentScan.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := documentscan.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "DocumentScan.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "DocumentScan.page_count"`)}
	}
	if _, ok := _c.mutation.ProcessingTime(); !ok {
		return &ValidationError{Name: "processing_time", err: errors.New(`ent: missing required field "DocumentScan.processing_time"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentScan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentScan.updated_at"`)}
	}
	return nil
}

func (_c *DocumentScanCreate) sqlSave(ctx context.Context) (*DocumentScan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentScanCreate) createSpec() (*DocumentScan, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentScan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentscan.Table, sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(documentscan.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(documentscan.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(documentscan.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(documentscan.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(documentscan.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(documentscan.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(documentscan.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(documentscan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(documentscan.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(documentscan.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(documentscan.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.ProcessingTime(); ok {
		_spec.SetField(documentscan.FieldProcessingTime, field.TypeFloat64, value)
		_node.ProcessingTime = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentscan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documentscan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExtractedIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GeneratedCvsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentScanCreateBulk is the builder for creating many DocumentScan entities in bulk.
type DocumentScanCreateBulk struct {
	config
	err      error
	builders []*DocumentScanCreate
}

// Save creates the DocumentScan entities in the database.
func (_c *DocumentScanCreateBulk) Save(ctx context.Context) ([]*DocumentScan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentScan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentScanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentScanCreateBulk) SaveX(ctx context.Context) []*DocumentScan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentScanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentScanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
