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
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// GeneratedCVCreate is the builder for creating a GeneratedCV entity.
type GeneratedCVCreate struct {
	config
	mutation *GeneratedCVMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *GeneratedCVCreate) SetUserID(v uuid.UUID) *GeneratedCVCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *GeneratedCVCreate) SetDocumentID(v uuid.UUID) *GeneratedCVCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetTemplateType sets the "template_type" field.
func (_c *GeneratedCVCreate) SetTemplateType(v string) *GeneratedCVCreate {
	_c.mutation.SetTemplateType(v)
	return _c
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableTemplateType(v *string) *GeneratedCVCreate {
	if v != nil {
		_c.SetTemplateType(*v)
	}
	return _c
}

// SetCvFile sets the "cv_file" field.
func (_c *GeneratedCVCreate) SetCvFile(v string) *GeneratedCVCreate {
	_c.mutation.SetCvFile(v)
	return _c
}

// SetNillableCvFile sets the "cv_file" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableCvFile(v *string) *GeneratedCVCreate {
	if v != nil {
		_c.SetCvFile(*v)
	}
	return _c
}

// SetApplicationForm sets the "application_form" field.
func (_c *GeneratedCVCreate) SetApplicationForm(v string) *GeneratedCVCreate {
	_c.mutation.SetApplicationForm(v)
	return _c
}

// SetNillableApplicationForm sets the "application_form" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableApplicationForm(v *string) *GeneratedCVCreate {
	if v != nil {
		_c.SetApplicationForm(*v)
	}
	return _c
}

// SetMergedDocument sets the "merged_document" field.
func (_c *GeneratedCVCreate) SetMergedDocument(v string) *GeneratedCVCreate {
	_c.mutation.SetMergedDocument(v)
	return _c
}

// SetNillableMergedDocument sets the "merged_document" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableMergedDocument(v *string) *GeneratedCVCreate {
	if v != nil {
		_c.SetMergedDocument(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GeneratedCVCreate) SetStatus(v string) *GeneratedCVCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableStatus(v *string) *GeneratedCVCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GeneratedCVCreate) SetErrorMessage(v string) *GeneratedCVCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableErrorMessage(v *string) *GeneratedCVCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCustomData sets the "custom_data" field.
func (_c *GeneratedCVCreate) SetCustomData(v map[string]interface{}) *GeneratedCVCreate {
	_c.mutation.SetCustomData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedCVCreate) SetCreatedAt(v time.Time) *GeneratedCVCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableCreatedAt(v *time.Time) *GeneratedCVCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GeneratedCVCreate) SetUpdatedAt(v time.Time) *GeneratedCVCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableUpdatedAt(v *time.Time) *GeneratedCVCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedCVCreate) SetID(v uuid.UUID) *GeneratedCVCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeneratedCVCreate) SetNillableID(v *uuid.UUID) *GeneratedCVCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSourceDocumentID sets the "source_document" edge to the DocumentScan entity by ID.
func (_c *GeneratedCVCreate) SetSourceDocumentID(id uuid.UUID) *GeneratedCVCreate {
	_c.mutation.SetSourceDocumentID(id)
	return _c
}

// SetSourceDocument sets the "source_document" edge to the DocumentScan entity.
func (_c *GeneratedCVCreate) SetSourceDocument(v *DocumentScan) *GeneratedCVCreate {
	return _c.SetSourceDocumentID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_c *GeneratedCVCreate) AddJobIDs(ids ...uuid.UUID) *GeneratedCVCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_c *GeneratedCVCreate) AddJobs(v ...*ProcessingJob) *GeneratedCVCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the GeneratedCVMutation object of the builder.
func (_c *GeneratedCVCreate) Mutation() *GeneratedCVMutation {
	return _c.mutation
}

// Save creates the GeneratedCV in the database.
func (_c *GeneratedCVCreate) Save(ctx context.Context) (*GeneratedCV, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedCVCreate) SaveX(ctx context.Context) *GeneratedCV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedCVCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedCVCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedCVCreate) defaults() {
	if _, ok := _c.mutation.TemplateType(); !ok {
		v := generatedcv.DefaultTemplateType
		_c.mutation.SetTemplateType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := generatedcv.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generatedcv.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := generatedcv.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generatedcv.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedCVCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GeneratedCV.user_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "GeneratedCV.document_id"`)}
	}
	if _, ok := _c.mutation.TemplateType(); !ok {
		return &ValidationError{Name: "template_type", err: errors.New(`ent: missing required field "GeneratedCV.template_type"`)}
	}
	if v, ok := _c.mutation.TemplateType(); ok {
		if err := generatedcv.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedCV.template_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GeneratedCV.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generatedcv.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedCV.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedCV.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GeneratedCV.updated_at"`)}
	}
	if len(_c.mutation.SourceDocumentIDs()) == 0 {
		return &ValidationError{Name: "source_document", err: errors.New(`ent: missing required edge "GeneratedCV.source_document"`)}
	}
	return nil
}

func (_c *GeneratedCVCreate) sqlSave(ctx context.Context) (*GeneratedCV, error) {
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

func (_c *GeneratedCVCreate) createSpec() (*GeneratedCV, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedCV{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedcv.Table, sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(generatedcv.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TemplateType(); ok {
		_spec.SetField(generatedcv.FieldTemplateType, field.TypeString, value)
		_node.TemplateType = value
	}
	if value, ok := _c.mutation.CvFile(); ok {
		_spec.SetField(generatedcv.FieldCvFile, field.TypeString, value)
		_node.CvFile = &value
	}
	if value, ok := _c.mutation.ApplicationForm(); ok {
		_spec.SetField(generatedcv.FieldApplicationForm, field.TypeString, value)
		_node.ApplicationForm = &value
	}
	if value, ok := _c.mutation.MergedDocument(); ok {
		_spec.SetField(generatedcv.FieldMergedDocument, field.TypeString, value)
		_node.MergedDocument = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generatedcv.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generatedcv.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CustomData(); ok {
		_spec.SetField(generatedcv.FieldCustomData, field.TypeJSON, value)
		_node.CustomData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedcv.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(generatedcv.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SourceDocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedcv.SourceDocumentTable,
			Columns: []string{generatedcv.SourceDocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   generatedcv.JobsTable,
			Columns: []string{generatedcv.JobsColumn},
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

// GeneratedCVCreateBulk is the builder for creating many GeneratedCV entities in bulk.
type GeneratedCVCreateBulk struct {
	config
	err      error
	builders []*GeneratedCVCreate
}

// Save creates the GeneratedCV entities in the database.
func (_c *GeneratedCVCreateBulk) Save(ctx context.Context) ([]*GeneratedCV, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedCV, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedCVMutation)
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
func (_c *GeneratedCVCreateBulk) SaveX(ctx context.Context) []*GeneratedCV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedCVCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedCVCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
