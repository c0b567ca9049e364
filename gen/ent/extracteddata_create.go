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
)

// ExtractedDataCreate is the builder for creating a ExtractedData entity.
type ExtractedDataCreate struct {
	config
	mutation *ExtractedDataMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedDataCreate) SetDocumentID(v uuid.UUID) *ExtractedDataCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *ExtractedDataCreate) SetFullName(v string) *ExtractedDataCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableFullName(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ExtractedDataCreate) SetEmail(v string) *ExtractedDataCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableEmail(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ExtractedDataCreate) SetPhone(v string) *ExtractedDataCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillablePhone(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ExtractedDataCreate) SetAddress(v string) *ExtractedDataCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableAddress(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *ExtractedDataCreate) SetDateOfBirth(v time.Time) *ExtractedDataCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableDateOfBirth(v *time.Time) *ExtractedDataCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetCurrentPosition sets the "current_position" field.
func (_c *ExtractedDataCreate) SetCurrentPosition(v string) *ExtractedDataCreate {
	_c.mutation.SetCurrentPosition(v)
	return _c
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableCurrentPosition(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetCurrentPosition(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *ExtractedDataCreate) SetCompany(v string) *ExtractedDataCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableCompany(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetExperienceYears sets the "experience_years" field.
func (_c *ExtractedDataCreate) SetExperienceYears(v int) *ExtractedDataCreate {
	_c.mutation.SetExperienceYears(v)
	return _c
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableExperienceYears(v *int) *ExtractedDataCreate {
	if v != nil {
		_c.SetExperienceYears(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *ExtractedDataCreate) SetSkills(v string) *ExtractedDataCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableSkills(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetSkills(*v)
	}
	return _c
}

// SetEducation sets the "education" field.
func (_c *ExtractedDataCreate) SetEducation(v string) *ExtractedDataCreate {
	_c.mutation.SetEducation(v)
	return _c
}

// SetNillableEducation sets the "education" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableEducation(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetEducation(*v)
	}
	return _c
}

// SetCertifications sets the "certifications" field.
func (_c *ExtractedDataCreate) SetCertifications(v string) *ExtractedDataCreate {
	_c.mutation.SetCertifications(v)
	return _c
}

// SetNillableCertifications sets the "certifications" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableCertifications(v *string) *ExtractedDataCreate {
	if v != nil {
		_c.SetCertifications(*v)
	}
	return _c
}

// SetAdditionalData sets the "additional_data" field.
func (_c *ExtractedDataCreate) SetAdditionalData(v map[string]interface{}) *ExtractedDataCreate {
	_c.mutation.SetAdditionalData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedDataCreate) SetCreatedAt(v time.Time) *ExtractedDataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableCreatedAt(v *time.Time) *ExtractedDataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractedDataCreate) SetUpdatedAt(v time.Time) *ExtractedDataCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableUpdatedAt(v *time.Time) *ExtractedDataCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedDataCreate) SetID(v uuid.UUID) *ExtractedDataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedDataCreate) SetNillableID(v *uuid.UUID) *ExtractedDataCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the DocumentScan entity.
func (_c *ExtractedDataCreate) SetDocument(v *DocumentScan) *ExtractedDataCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractedDataMutation object of the builder.
func (_c *ExtractedDataCreate) Mutation() *ExtractedDataMutation {
	return _c.mutation
}

// Save creates the ExtractedData in the database.
func (_c *ExtractedDataCreate) Save(ctx context.Context) (*ExtractedData, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedDataCreate) SaveX(ctx context.Context) *ExtractedData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedDataCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extracteddata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extracteddata.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extracteddata.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedDataCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedData.document_id"`)}
	}
	if v, ok := _c.mutation.ExperienceYears(); ok {
		if err := extracteddata.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "ExtractedData.experience_years": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedData.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractedData.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractedData.document"`)}
	}
	return nil
}

func (_c *ExtractedDataCreate) sqlSave(ctx context.Context) (*ExtractedData, error) {
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

func (_c *ExtractedDataCreate) createSpec() (*ExtractedData, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedData{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extracteddata.Table, sqlgraph.NewFieldSpec(extracteddata.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(extracteddata.FieldFullName, field.TypeString, value)
		_node.FullName = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(extracteddata.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(extracteddata.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(extracteddata.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(extracteddata.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.CurrentPosition(); ok {
		_spec.SetField(extracteddata.FieldCurrentPosition, field.TypeString, value)
		_node.CurrentPosition = &value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(extracteddata.FieldCompany, field.TypeString, value)
		_node.Company = &value
	}
	if value, ok := _c.mutation.ExperienceYears(); ok {
		_spec.SetField(extracteddata.FieldExperienceYears, field.TypeInt, value)
		_node.ExperienceYears = &value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(extracteddata.FieldSkills, field.TypeString, value)
		_node.Skills = &value
	}
	if value, ok := _c.mutation.Education(); ok {
		_spec.SetField(extracteddata.FieldEducation, field.TypeString, value)
		_node.Education = &value
	}
	if value, ok := _c.mutation.Certifications(); ok {
		_spec.SetField(extracteddata.FieldCertifications, field.TypeString, value)
		_node.Certifications = &value
	}
	if value, ok := _c.mutation.AdditionalData(); ok {
		_spec.SetField(extracteddata.FieldAdditionalData, field.TypeJSON, value)
		_node.AdditionalData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extracteddata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extracteddata.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedDataCreateBulk is the builder for creating many ExtractedData entities in bulk.
type ExtractedDataCreateBulk struct {
	config
	err      error
	builders []*ExtractedDataCreate
}

// Save creates the ExtractedData entities in the database.
func (_c *ExtractedDataCreateBulk) Save(ctx context.Context) ([]*ExtractedData, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedData, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedDataMutation)
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
func (_c *ExtractedDataCreateBulk) SaveX(ctx context.Context) []*ExtractedData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
