// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// ProcessingJobUpdate is the builder for updating ProcessingJob entities.
type ProcessingJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdate) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProcessingJobUpdate) SetUserID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableUserID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ProcessingJobUpdate) SetJobType(v string) *ProcessingJobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableJobType(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdate) SetStatus(v string) *ProcessingJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStatus(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingJobUpdate) SetDocumentID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableDocumentID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *ProcessingJobUpdate) ClearDocumentID() *ProcessingJobUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetCvID sets the "cv_id" field.
func (_u *ProcessingJobUpdate) SetCvID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetCvID(v)
	return _u
}

// SetNillableCvID sets the "cv_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableCvID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetCvID(*v)
	}
	return _u
}

// ClearCvID clears the value of the "cv_id" field.
func (_u *ProcessingJobUpdate) ClearCvID() *ProcessingJobUpdate {
	_u.mutation.ClearCvID()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProcessingJobUpdate) SetProgress(v int) *ProcessingJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableProgress(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ProcessingJobUpdate) AddProgress(v int) *ProcessingJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *ProcessingJobUpdate) SetResultData(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.SetResultData(v)
	return _u
}

// AppendResultData appends value to the "result_data" field.
func (_u *ProcessingJobUpdate) AppendResultData(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.AppendResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *ProcessingJobUpdate) ClearResultData() *ProcessingJobUpdate {
	_u.mutation.ClearResultData()
	return _u
}

// SetErrorDetails sets the "error_details" field.
func (_u *ProcessingJobUpdate) SetErrorDetails(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorDetails(v)
	return _u
}

// SetNillableErrorDetails sets the "error_details" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorDetails(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorDetails(*v)
	}
	return _u
}

// ClearErrorDetails clears the value of the "error_details" field.
func (_u *ProcessingJobUpdate) ClearErrorDetails() *ProcessingJobUpdate {
	_u.mutation.ClearErrorDetails()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdate) SetStartedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdate) ClearStartedAt() *ProcessingJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdate) SetCompletedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdate) ClearCompletedAt() *ProcessingJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDocument sets the "document" edge to the DocumentScan entity.
func (_u *ProcessingJobUpdate) SetDocument(v *DocumentScan) *ProcessingJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetGeneratedCvID sets the "generated_cv" edge to the GeneratedCV entity by ID.
func (_u *ProcessingJobUpdate) SetGeneratedCvID(id uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetGeneratedCvID(id)
	return _u
}

// SetNillableGeneratedCvID sets the "generated_cv" edge to the GeneratedCV entity by ID if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableGeneratedCvID(id *uuid.UUID) *ProcessingJobUpdate {
	if id != nil {
		_u = _u.SetGeneratedCvID(*id)
	}
	return _u
}

// SetGeneratedCv sets the "generated_cv" edge to the GeneratedCV entity.
func (_u *ProcessingJobUpdate) SetGeneratedCv(v *GeneratedCV) *ProcessingJobUpdate {
	return _u.SetGeneratedCvID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdate) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the DocumentScan entity.
func (_u *ProcessingJobUpdate) ClearDocument() *ProcessingJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearGeneratedCv clears the "generated_cv" edge to the GeneratedCV entity.
func (_u *ProcessingJobUpdate) ClearGeneratedCv() *ProcessingJobUpdate {
	_u.mutation.ClearGeneratedCv()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdate) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := processingjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := processingjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(processingjob.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(processingjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(processingjob.FieldResultData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldResultData, value)
		})
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(processingjob.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorDetails(); ok {
		_spec.SetField(processingjob.FieldErrorDetails, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailsCleared() {
		_spec.ClearField(processingjob.FieldErrorDetails, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GeneratedCvCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.GeneratedCvTable,
			Columns: []string{processingjob.GeneratedCvColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedCvIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.GeneratedCvTable,
			Columns: []string{processingjob.GeneratedCvColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingJobUpdateOne is the builder for updating a single ProcessingJob entity.
type ProcessingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProcessingJobUpdateOne) SetUserID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableUserID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ProcessingJobUpdateOne) SetJobType(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableJobType(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdateOne) SetStatus(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStatus(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingJobUpdateOne) SetDocumentID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *ProcessingJobUpdateOne) ClearDocumentID() *ProcessingJobUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetCvID sets the "cv_id" field.
func (_u *ProcessingJobUpdateOne) SetCvID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetCvID(v)
	return _u
}

// SetNillableCvID sets the "cv_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableCvID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetCvID(*v)
	}
	return _u
}

// ClearCvID clears the value of the "cv_id" field.
func (_u *ProcessingJobUpdateOne) ClearCvID() *ProcessingJobUpdateOne {
	_u.mutation.ClearCvID()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProcessingJobUpdateOne) SetProgress(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableProgress(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ProcessingJobUpdateOne) AddProgress(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *ProcessingJobUpdateOne) SetResultData(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.SetResultData(v)
	return _u
}

// AppendResultData appends value to the "result_data" field.
func (_u *ProcessingJobUpdateOne) AppendResultData(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.AppendResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *ProcessingJobUpdateOne) ClearResultData() *ProcessingJobUpdateOne {
	_u.mutation.ClearResultData()
	return _u
}

// SetErrorDetails sets the "error_details" field.
func (_u *ProcessingJobUpdateOne) SetErrorDetails(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorDetails(v)
	return _u
}

// SetNillableErrorDetails sets the "error_details" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorDetails(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorDetails(*v)
	}
	return _u
}

// ClearErrorDetails clears the value of the "error_details" field.
func (_u *ProcessingJobUpdateOne) ClearErrorDetails() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorDetails()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdateOne) SetStartedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdateOne) ClearStartedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdateOne) SetCompletedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdateOne) ClearCompletedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDocument sets the "document" edge to the DocumentScan entity.
func (_u *ProcessingJobUpdateOne) SetDocument(v *DocumentScan) *ProcessingJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetGeneratedCvID sets the "generated_cv" edge to the GeneratedCV entity by ID.
func (_u *ProcessingJobUpdateOne) SetGeneratedCvID(id uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetGeneratedCvID(id)
	return _u
}

// SetNillableGeneratedCvID sets the "generated_cv" edge to the GeneratedCV entity by ID if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableGeneratedCvID(id *uuid.UUID) *ProcessingJobUpdateOne {
	if id != nil {
		_u = _u.SetGeneratedCvID(*id)
	}
	return _u
}

// SetGeneratedCv sets the "generated_cv" edge to the GeneratedCV entity.
func (_u *ProcessingJobUpdateOne) SetGeneratedCv(v *GeneratedCV) *ProcessingJobUpdateOne {
	return _u.SetGeneratedCvID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdateOne) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the DocumentScan entity.
func (_u *ProcessingJobUpdateOne) ClearDocument() *ProcessingJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearGeneratedCv clears the "generated_cv" edge to the GeneratedCV entity.
func (_u *ProcessingJobUpdateOne) ClearGeneratedCv() *ProcessingJobUpdateOne {
	_u.mutation.ClearGeneratedCv()
	return _u
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdateOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingJobUpdateOne) Select(field string, fields ...string) *ProcessingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingJob entity.
func (_u *ProcessingJobUpdateOne) Save(ctx context.Context) (*ProcessingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) SaveX(ctx context.Context) *ProcessingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdateOne) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := processingjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := processingjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessingJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingjob.FieldID)
		for _, f := range fields {
			if !processingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingjob.FieldID {
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
		_spec.SetField(processingjob.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(processingjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(processingjob.FieldResultData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldResultData, value)
		})
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(processingjob.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorDetails(); ok {
		_spec.SetField(processingjob.FieldErrorDetails, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailsCleared() {
		_spec.ClearField(processingjob.FieldErrorDetails, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GeneratedCvCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.GeneratedCvTable,
			Columns: []string{processingjob.GeneratedCvColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedCvIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.GeneratedCvTable,
			Columns: []string{processingjob.GeneratedCvColumn},
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
	_node = &ProcessingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
