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
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// GeneratedCVUpdate is the builder for updating GeneratedCV entities.
type GeneratedCVUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedCVMutation
}

// Where appends a list predicates to the GeneratedCVUpdate builder.
func (_u *GeneratedCVUpdate) Where(ps ...predicate.GeneratedCV) *GeneratedCVUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GeneratedCVUpdate) SetUserID(v uuid.UUID) *GeneratedCVUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableUserID(v *uuid.UUID) *GeneratedCVUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *GeneratedCVUpdate) SetDocumentID(v uuid.UUID) *GeneratedCVUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableDocumentID(v *uuid.UUID) *GeneratedCVUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTemplateType sets the "template_type" field.
func (_u *GeneratedCVUpdate) SetTemplateType(v string) *GeneratedCVUpdate {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableTemplateType(v *string) *GeneratedCVUpdate {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// SetCvFile sets the "cv_file" field.
func (_u *GeneratedCVUpdate) SetCvFile(v string) *GeneratedCVUpdate {
	_u.mutation.SetCvFile(v)
	return _u
}

// SetNillableCvFile sets the "cv_file" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableCvFile(v *string) *GeneratedCVUpdate {
	if v != nil {
		_u.SetCvFile(*v)
	}
	return _u
}

// ClearCvFile clears the value of the "cv_file" field.
func (_u *GeneratedCVUpdate) ClearCvFile() *GeneratedCVUpdate {
	_u.mutation.ClearCvFile()
	return _u
}

// SetApplicationForm sets the "application_form" field.
func (_u *GeneratedCVUpdate) SetApplicationForm(v string) *GeneratedCVUpdate {
	_u.mutation.SetApplicationForm(v)
	return _u
}

// SetNillableApplicationForm sets the "application_form" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableApplicationForm(v *string) *GeneratedCVUpdate {
	if v != nil {
		_u.SetApplicationForm(*v)
	}
	return _u
}

// ClearApplicationForm clears the value of the "application_form" field.
func (_u *GeneratedCVUpdate) ClearApplicationForm() *GeneratedCVUpdate {
	_u.mutation.ClearApplicationForm()
	return _u
}

// SetMergedDocument sets the "merged_document" field.
func (_u *GeneratedCVUpdate) SetMergedDocument(v string) *GeneratedCVUpdate {
	_u.mutation.SetMergedDocument(v)
	return _u
}

// SetNillableMergedDocument sets the "merged_document" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableMergedDocument(v *string) *GeneratedCVUpdate {
	if v != nil {
		_u.SetMergedDocument(*v)
	}
	return _u
}

// ClearMergedDocument clears the value of the "merged_document" field.
func (_u *GeneratedCVUpdate) ClearMergedDocument() *GeneratedCVUpdate {
	_u.mutation.ClearMergedDocument()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GeneratedCVUpdate) SetStatus(v string) *GeneratedCVUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableStatus(v *string) *GeneratedCVUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GeneratedCVUpdate) SetErrorMessage(v string) *GeneratedCVUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GeneratedCVUpdate) SetNillableErrorMessage(v *string) *GeneratedCVUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GeneratedCVUpdate) ClearErrorMessage() *GeneratedCVUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCustomData sets the "custom_data" field.
func (_u *GeneratedCVUpdate) SetCustomData(v map[string]interface{}) *GeneratedCVUpdate {
	_u.mutation.SetCustomData(v)
	return _u
}

// ClearCustomData clears the value of the "custom_data" field.
func (_u *GeneratedCVUpdate) ClearCustomData() *GeneratedCVUpdate {
	_u.mutation.ClearCustomData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeneratedCVUpdate) SetUpdatedAt(v time.Time) *GeneratedCVUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceDocumentID sets the "source_document" edge to the DocumentScan entity by ID.
func (_u *GeneratedCVUpdate) SetSourceDocumentID(id uuid.UUID) *GeneratedCVUpdate {
	_u.mutation.SetSourceDocumentID(id)
	return _u
}

// SetSourceDocument sets the "source_document" edge to the DocumentScan entity.
func (_u *GeneratedCVUpdate) SetSourceDocument(v *DocumentScan) *GeneratedCVUpdate {
	return _u.SetSourceDocumentID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *GeneratedCVUpdate) AddJobIDs(ids ...uuid.UUID) *GeneratedCVUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *GeneratedCVUpdate) AddJobs(v ...*ProcessingJob) *GeneratedCVUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the GeneratedCVMutation object of the builder.
func (_u *GeneratedCVUpdate) Mutation() *GeneratedCVMutation {
	return _u.mutation
}

// ClearSourceDocument clears the "source_document" edge to the DocumentScan entity.
func (_u *GeneratedCVUpdate) ClearSourceDocument() *GeneratedCVUpdate {
	_u.mutation.ClearSourceDocument()
	return _u
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *GeneratedCVUpdate) ClearJobs() *GeneratedCVUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *GeneratedCVUpdate) RemoveJobIDs(ids ...uuid.UUID) *GeneratedCVUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *GeneratedCVUpdate) RemoveJobs(v ...*ProcessingJob) *GeneratedCVUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedCVUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedCVUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedCVUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedCVUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeneratedCVUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generatedcv.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedCVUpdate) check() error {
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := generatedcv.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedCV.template_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generatedcv.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedCV.status": %w`, err)}
		}
	}
	if _u.mutation.SourceDocumentCleared() && len(_u.mutation.SourceDocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedCV.source_document"`)
	}
	return nil
}

func (_u *GeneratedCVUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedcv.Table, generatedcv.Columns, sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(generatedcv.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(generatedcv.FieldTemplateType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CvFile(); ok {
		_spec.SetField(generatedcv.FieldCvFile, field.TypeString, value)
	}
	if _u.mutation.CvFileCleared() {
		_spec.ClearField(generatedcv.FieldCvFile, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicationForm(); ok {
		_spec.SetField(generatedcv.FieldApplicationForm, field.TypeString, value)
	}
	if _u.mutation.ApplicationFormCleared() {
		_spec.ClearField(generatedcv.FieldApplicationForm, field.TypeString)
	}
	if value, ok := _u.mutation.MergedDocument(); ok {
		_spec.SetField(generatedcv.FieldMergedDocument, field.TypeString, value)
	}
	if _u.mutation.MergedDocumentCleared() {
		_spec.ClearField(generatedcv.FieldMergedDocument, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generatedcv.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generatedcv.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generatedcv.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CustomData(); ok {
		_spec.SetField(generatedcv.FieldCustomData, field.TypeJSON, value)
	}
	if _u.mutation.CustomDataCleared() {
		_spec.ClearField(generatedcv.FieldCustomData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generatedcv.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourceDocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceDocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedcv.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedCVUpdateOne is the builder for updating a single GeneratedCV entity.
type GeneratedCVUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedCVMutation
}

// SetUserID sets the "user_id" field.
func (_u *GeneratedCVUpdateOne) SetUserID(v uuid.UUID) *GeneratedCVUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableUserID(v *uuid.UUID) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *GeneratedCVUpdateOne) SetDocumentID(v uuid.UUID) *GeneratedCVUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableDocumentID(v *uuid.UUID) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTemplateType sets the "template_type" field.
func (_u *GeneratedCVUpdateOne) SetTemplateType(v string) *GeneratedCVUpdateOne {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableTemplateType(v *string) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// SetCvFile sets the "cv_file" field.
func (_u *GeneratedCVUpdateOne) SetCvFile(v string) *GeneratedCVUpdateOne {
	_u.mutation.SetCvFile(v)
	return _u
}

// SetNillableCvFile sets the "cv_file" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableCvFile(v *string) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetCvFile(*v)
	}
	return _u
}

// ClearCvFile clears the value of the "cv_file" field.
func (_u *GeneratedCVUpdateOne) ClearCvFile() *GeneratedCVUpdateOne {
	_u.mutation.ClearCvFile()
	return _u
}

// SetApplicationForm sets the "application_form" field.
func (_u *GeneratedCVUpdateOne) SetApplicationForm(v string) *GeneratedCVUpdateOne {
	_u.mutation.SetApplicationForm(v)
	return _u
}

// SetNillableApplicationForm sets the "application_form" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableApplicationForm(v *string) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetApplicationForm(*v)
	}
	return _u
}

// ClearApplicationForm clears the value of the "application_form" field.
func (_u *GeneratedCVUpdateOne) ClearApplicationForm() *GeneratedCVUpdateOne {
	_u.mutation.ClearApplicationForm()
	return _u
}

// SetMergedDocument sets the "merged_document" field.
func (_u *GeneratedCVUpdateOne) SetMergedDocument(v string) *GeneratedCVUpdateOne {
	_u.mutation.SetMergedDocument(v)
	return _u
}

// SetNillableMergedDocument sets the "merged_document" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableMergedDocument(v *string) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetMergedDocument(*v)
	}
	return _u
}

// ClearMergedDocument clears the value of the "merged_document" field.
func (_u *GeneratedCVUpdateOne) ClearMergedDocument() *GeneratedCVUpdateOne {
	_u.mutation.ClearMergedDocument()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GeneratedCVUpdateOne) SetStatus(v string) *GeneratedCVUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableStatus(v *string) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GeneratedCVUpdateOne) SetErrorMessage(v string) *GeneratedCVUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GeneratedCVUpdateOne) SetNillableErrorMessage(v *string) *GeneratedCVUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GeneratedCVUpdateOne) ClearErrorMessage() *GeneratedCVUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCustomData sets the "custom_data" field.
func (_u *GeneratedCVUpdateOne) SetCustomData(v map[string]interface{}) *GeneratedCVUpdateOne {
	_u.mutation.SetCustomData(v)
	return _u
}

// ClearCustomData clears the value of the "custom_data" field.
func (_u *GeneratedCVUpdateOne) ClearCustomData() *GeneratedCVUpdateOne {
	_u.mutation.ClearCustomData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeneratedCVUpdateOne) SetUpdatedAt(v time.Time) *GeneratedCVUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceDocumentID sets the "source_document" edge to the DocumentScan entity by ID.
func (_u *GeneratedCVUpdateOne) SetSourceDocumentID(id uuid.UUID) *GeneratedCVUpdateOne {
	_u.mutation.SetSourceDocumentID(id)
	return _u
}

// SetSourceDocument sets the "source_document" edge to the DocumentScan entity.
func (_u *GeneratedCVUpdateOne) SetSourceDocument(v *DocumentScan) *GeneratedCVUpdateOne {
	return _u.SetSourceDocumentID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *GeneratedCVUpdateOne) AddJobIDs(ids ...uuid.UUID) *GeneratedCVUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *GeneratedCVUpdateOne) AddJobs(v ...*ProcessingJob) *GeneratedCVUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the GeneratedCVMutation object of the builder.
func (_u *GeneratedCVUpdateOne) Mutation() *GeneratedCVMutation {
	return _u.mutation
}

// ClearSourceDocument clears the "source_document" edge to the DocumentScan entity.
func (_u *GeneratedCVUpdateOne) ClearSourceDocument() *GeneratedCVUpdateOne {
	_u.mutation.ClearSourceDocument()
	return _u
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *GeneratedCVUpdateOne) ClearJobs() *GeneratedCVUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *GeneratedCVUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *GeneratedCVUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *GeneratedCVUpdateOne) RemoveJobs(v ...*ProcessingJob) *GeneratedCVUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the GeneratedCVUpdate builder.
func (_u *GeneratedCVUpdateOne) Where(ps ...predicate.GeneratedCV) *GeneratedCVUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedCVUpdateOne) Select(field string, fields ...string) *GeneratedCVUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedCV entity.
func (_u *GeneratedCVUpdateOne) Save(ctx context.Context) (*GeneratedCV, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedCVUpdateOne) SaveX(ctx context.Context) *GeneratedCV {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedCVUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedCVUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeneratedCVUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generatedcv.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedCVUpdateOne) check() error {
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := generatedcv.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`ent: validator failed for field "GeneratedCV.template_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generatedcv.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedCV.status": %w`, err)}
		}
	}
	if _u.mutation.SourceDocumentCleared() && len(_u.mutation.SourceDocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedCV.source_document"`)
	}
	return nil
}

func (_u *GeneratedCVUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedCV, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedcv.Table, generatedcv.Columns, sqlgraph.NewFieldSpec(generatedcv.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedCV.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedcv.FieldID)
		for _, f := range fields {
			if !generatedcv.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedcv.FieldID {
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
		_spec.SetField(generatedcv.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(generatedcv.FieldTemplateType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CvFile(); ok {
		_spec.SetField(generatedcv.FieldCvFile, field.TypeString, value)
	}
	if _u.mutation.CvFileCleared() {
		_spec.ClearField(generatedcv.FieldCvFile, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicationForm(); ok {
		_spec.SetField(generatedcv.FieldApplicationForm, field.TypeString, value)
	}
	if _u.mutation.ApplicationFormCleared() {
		_spec.ClearField(generatedcv.FieldApplicationForm, field.TypeString)
	}
	if value, ok := _u.mutation.MergedDocument(); ok {
		_spec.SetField(generatedcv.FieldMergedDocument, field.TypeString, value)
	}
	if _u.mutation.MergedDocumentCleared() {
		_spec.ClearField(generatedcv.FieldMergedDocument, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generatedcv.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generatedcv.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generatedcv.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CustomData(); ok {
		_spec.SetField(generatedcv.FieldCustomData, field.TypeJSON, value)
	}
	if _u.mutation.CustomDataCleared() {
		_spec.ClearField(generatedcv.FieldCustomData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generatedcv.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourceDocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceDocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GeneratedCV{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedcv.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
