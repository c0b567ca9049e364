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
	"github.com/mausam-code/complete-agency/gen/ent/predicate"
)

// ExtractedDataUpdate is the builder for updating ExtractedData entities.
type ExtractedDataUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedDataMutation
}

// Where appends a list predicates to the ExtractedDataUpdate builder.
func (_u *ExtractedDataUpdate) Where(ps ...predicate.ExtractedData) *ExtractedDataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedDataUpdate) SetDocumentID(v uuid.UUID) *ExtractedDataUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractedDataUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ExtractedDataUpdate) SetFullName(v string) *ExtractedDataUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableFullName(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *ExtractedDataUpdate) ClearFullName() *ExtractedDataUpdate {
	_u.mutation.ClearFullName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ExtractedDataUpdate) SetEmail(v string) *ExtractedDataUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableEmail(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ExtractedDataUpdate) ClearEmail() *ExtractedDataUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ExtractedDataUpdate) SetPhone(v string) *ExtractedDataUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillablePhone(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ExtractedDataUpdate) ClearPhone() *ExtractedDataUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ExtractedDataUpdate) SetAddress(v string) *ExtractedDataUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableAddress(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ExtractedDataUpdate) ClearAddress() *ExtractedDataUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ExtractedDataUpdate) SetDateOfBirth(v time.Time) *ExtractedDataUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableDateOfBirth(v *time.Time) *ExtractedDataUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ExtractedDataUpdate) ClearDateOfBirth() *ExtractedDataUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *ExtractedDataUpdate) SetCurrentPosition(v string) *ExtractedDataUpdate {
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableCurrentPosition(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// ClearCurrentPosition clears the value of the "current_position" field.
func (_u *ExtractedDataUpdate) ClearCurrentPosition() *ExtractedDataUpdate {
	_u.mutation.ClearCurrentPosition()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ExtractedDataUpdate) SetCompany(v string) *ExtractedDataUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableCompany(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ExtractedDataUpdate) ClearCompany() *ExtractedDataUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *ExtractedDataUpdate) SetExperienceYears(v int) *ExtractedDataUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableExperienceYears(v *int) *ExtractedDataUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *ExtractedDataUpdate) AddExperienceYears(v int) *ExtractedDataUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// ClearExperienceYears clears the value of the "experience_years" field.
func (_u *ExtractedDataUpdate) ClearExperienceYears() *ExtractedDataUpdate {
	_u.mutation.ClearExperienceYears()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ExtractedDataUpdate) SetSkills(v string) *ExtractedDataUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableSkills(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetSkills(*v)
	}
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ExtractedDataUpdate) ClearSkills() *ExtractedDataUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetEducation sets the "education" field.
func (_u *ExtractedDataUpdate) SetEducation(v string) *ExtractedDataUpdate {
	_u.mutation.SetEducation(v)
	return _u
}

// SetNillableEducation sets the "education" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableEducation(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetEducation(*v)
	}
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *ExtractedDataUpdate) ClearEducation() *ExtractedDataUpdate {
	_u.mutation.ClearEducation()
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *ExtractedDataUpdate) SetCertifications(v string) *ExtractedDataUpdate {
	_u.mutation.SetCertifications(v)
	return _u
}

// SetNillableCertifications sets the "certifications" field if the given value is not nil.
func (_u *ExtractedDataUpdate) SetNillableCertifications(v *string) *ExtractedDataUpdate {
	if v != nil {
		_u.SetCertifications(*v)
	}
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *ExtractedDataUpdate) ClearCertifications() *ExtractedDataUpdate {
	_u.mutation.ClearCertifications()
	return _u
}

// SetAdditionalData sets the "additional_data" field.
func (_u *ExtractedDataUpdate) SetAdditionalData(v map[string]interface{}) *ExtractedDataUpdate {
	_u.mutation.SetAdditionalData(v)
	return _u
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (_u *ExtractedDataUpdate) ClearAdditionalData() *ExtractedDataUpdate {
	_u.mutation.ClearAdditionalData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedDataUpdate) SetUpdatedAt(v time.Time) *ExtractedDataUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the DocumentScan entity.
func (_u *ExtractedDataUpdate) SetDocument(v *DocumentScan) *ExtractedDataUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedDataMutation object of the builder.
func (_u *ExtractedDataUpdate) Mutation() *ExtractedDataMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the DocumentScan entity.
func (_u *ExtractedDataUpdate) ClearDocument() *ExtractedDataUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedDataUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedDataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedDataUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extracteddata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedDataUpdate) check() error {
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := extracteddata.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.experience_years": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedData.document"`)
	}
	return nil
}

func (_u *ExtractedDataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteddata.Table, extracteddata.Columns, sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(extracteddata.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(extracteddata.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(extracteddata.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(extracteddata.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(extracteddata.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(extracteddata.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(extracteddata.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(extracteddata.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(extracteddata.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(extracteddata.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(extracteddata.FieldCurrentPosition, field.TypeString, value)
	}
	if _u.mutation.CurrentPositionCleared() {
		_spec.ClearField(extracteddata.FieldCurrentPosition, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(extracteddata.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(extracteddata.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(extracteddata.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(extracteddata.FieldExperienceYears, field.TypeInt, value)
	}
	if _u.mutation.ExperienceYearsCleared() {
		_spec.ClearField(extracteddata.FieldExperienceYears, field.TypeInt)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(extracteddata.FieldSkills, field.TypeString, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(extracteddata.FieldSkills, field.TypeString)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(extracteddata.FieldEducation, field.TypeString, value)
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(extracteddata.FieldEducation, field.TypeString)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(extracteddata.FieldCertifications, field.TypeString, value)
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(extracteddata.FieldCertifications, field.TypeString)
	}
	if value, ok := _u.mutation.AdditionalData(); ok {
		_spec.SetField(extracteddata.FieldAdditionalData, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalDataCleared() {
		_spec.ClearField(extracteddata.FieldAdditionalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extracteddata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedDataUpdateOne is the builder for updating a single ExtractedData entity.
type ExtractedDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedDataMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedDataUpdateOne) SetDocumentID(v uuid.UUID) *ExtractedDataUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ExtractedDataUpdateOne) SetFullName(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableFullName(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *ExtractedDataUpdateOne) ClearFullName() *ExtractedDataUpdateOne {
	_u.mutation.ClearFullName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ExtractedDataUpdateOne) SetEmail(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableEmail(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ExtractedDataUpdateOne) ClearEmail() *ExtractedDataUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ExtractedDataUpdateOne) SetPhone(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillablePhone(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ExtractedDataUpdateOne) ClearPhone() *ExtractedDataUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ExtractedDataUpdateOne) SetAddress(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableAddress(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ExtractedDataUpdateOne) ClearAddress() *ExtractedDataUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ExtractedDataUpdateOne) SetDateOfBirth(v time.Time) *ExtractedDataUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableDateOfBirth(v *time.Time) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ExtractedDataUpdateOne) ClearDateOfBirth() *ExtractedDataUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *ExtractedDataUpdateOne) SetCurrentPosition(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableCurrentPosition(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// ClearCurrentPosition clears the value of the "current_position" field.
func (_u *ExtractedDataUpdateOne) ClearCurrentPosition() *ExtractedDataUpdateOne {
	_u.mutation.ClearCurrentPosition()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ExtractedDataUpdateOne) SetCompany(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableCompany(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ExtractedDataUpdateOne) ClearCompany() *ExtractedDataUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *ExtractedDataUpdateOne) SetExperienceYears(v int) *ExtractedDataUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableExperienceYears(v *int) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *ExtractedDataUpdateOne) AddExperienceYears(v int) *ExtractedDataUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// ClearExperienceYears clears the value of the "experience_years" field.
func (_u *ExtractedDataUpdateOne) ClearExperienceYears() *ExtractedDataUpdateOne {
	_u.mutation.ClearExperienceYears()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ExtractedDataUpdateOne) SetSkills(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableSkills(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetSkills(*v)
	}
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ExtractedDataUpdateOne) ClearSkills() *ExtractedDataUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetEducation sets the "education" field.
func (_u *ExtractedDataUpdateOne) SetEducation(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetEducation(v)
	return _u
}

// SetNillableEducation sets the "education" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableEducation(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetEducation(*v)
	}
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *ExtractedDataUpdateOne) ClearEducation() *ExtractedDataUpdateOne {
	_u.mutation.ClearEducation()
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *ExtractedDataUpdateOne) SetCertifications(v string) *ExtractedDataUpdateOne {
	_u.mutation.SetCertifications(v)
	return _u
}

// SetNillableCertifications sets the "certifications" field if the given value is not nil.
func (_u *ExtractedDataUpdateOne) SetNillableCertifications(v *string) *ExtractedDataUpdateOne {
	if v != nil {
		_u.SetCertifications(*v)
	}
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *ExtractedDataUpdateOne) ClearCertifications() *ExtractedDataUpdateOne {
	_u.mutation.ClearCertifications()
	return _u
}

// SetAdditionalData sets the "additional_data" field.
func (_u *ExtractedDataUpdateOne) SetAdditionalData(v map[string]interface{}) *ExtractedDataUpdateOne {
	_u.mutation.SetAdditionalData(v)
	return _u
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (_u *ExtractedDataUpdateOne) ClearAdditionalData() *ExtractedDataUpdateOne {
	_u.mutation.ClearAdditionalData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedDataUpdateOne) SetUpdatedAt(v time.Time) *ExtractedDataUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the DocumentScan entity.
func (_u *ExtractedDataUpdateOne) SetDocument(v *DocumentScan) *ExtractedDataUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedDataMutation object of the builder.
func (_u *ExtractedDataUpdateOne) Mutation() *ExtractedDataMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the DocumentScan entity.
func (_u *ExtractedDataUpdateOne) ClearDocument() *ExtractedDataUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractedDataUpdate builder.
func (_u *ExtractedDataUpdateOne) Where(ps ...predicate.ExtractedData) *ExtractedDataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedDataUpdateOne) Select(field string, fields ...string) *ExtractedDataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedData entity.
func (_u *ExtractedDataUpdateOne) Save(ctx context.Context) (*ExtractedData, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDataUpdateOne) SaveX(ctx context.Context) *ExtractedData {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedDataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedDataUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extracteddata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedDataUpdateOne) check() error {
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := extracteddata.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.experience_years": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedData.document"`)
	}
	return nil
}

func (_u *ExtractedDataUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedData, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteddata.Table, extracteddata.Columns, sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extracteddata.FieldID)
		for _, f := range fields {
			if !extracteddata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extracteddata.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(extracteddata.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(extracteddata.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(extracteddata.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(extracteddata.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(extracteddata.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(extracteddata.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(extracteddata.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(extracteddata.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(extracteddata.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(extracteddata.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(extracteddata.FieldCurrentPosition, field.TypeString, value)
	}
	if _u.mutation.CurrentPositionCleared() {
		_spec.ClearField(extracteddata.FieldCurrentPosition, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(extracteddata.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(extracteddata.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(extracteddata.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(extracteddata.FieldExperienceYears, field.TypeInt, value)
	}
	if _u.mutation.ExperienceYearsCleared() {
		_spec.ClearField(extracteddata.FieldExperienceYears, field.TypeInt)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(extracteddata.FieldSkills, field.TypeString, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(extracteddata.FieldSkills, field.TypeString)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(extracteddata.FieldEducation, field.TypeString, value)
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(extracteddata.FieldEducation, field.TypeString)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(extracteddata.FieldCertifications, field.TypeString, value)
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(extracteddata.FieldCertifications, field.TypeString)
	}
	if value, ok := _u.mutation.AdditionalData(); ok {
		_spec.SetField(extracteddata.FieldAdditionalData, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalDataCleared() {
		_spec.ClearField(extracteddata.FieldAdditionalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extracteddata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentscan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extracteddata.DocumentTable,
			Columns: []string{extracteddata.DocumentColumn},
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
	_node = &ExtractedData{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
