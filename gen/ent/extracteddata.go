// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
)

// ExtractedData is the model entity for the ExtractedData schema.
type ExtractedData struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName *string `json:"full_name,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// CurrentPosition holds the value of the "current_position" field.
	CurrentPosition *string `json:"current_position,omitempty"`
	// Company holds the value of the "company" field.
	Company *string `json:"company,omitempty"`
	// ExperienceYears holds the value of the "experience_years" field.
	ExperienceYears *int `json:"experience_years,omitempty"`
	// Skills holds the value of the "skills" field.
	Skills *string `json:"skills,omitempty"`
	// Education holds the value of the "education" field.
	Education *string `json:"education,omitempty"`
	// Certifications holds the value of the "certifications" field.
	Certifications *string `json:"certifications,omitempty"`
	// AdditionalData holds the value of the "additional_data" field.
	AdditionalData map[string]interface{} `json:"additional_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedDataQuery when eager-loading is set.
	Edges        ExtractedDataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedDataEdges holds the relations/edges for other nodes in the graph.
type ExtractedDataEdges struct {
	// Document holds the value of the document edge.
	Document *DocumentScan `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedDataEdges) DocumentOrErr() (*DocumentScan, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentscan.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedData) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extracteddata.FieldAdditionalData:
			values[i] = new([]byte)
		case extracteddata.FieldExperienceYears:
			values[i] = new(sql.NullInt64)
		case extracteddata.FieldFullName, extracteddata.FieldEmail, extracteddata.FieldPhone, extracteddata.FieldAddress, extracteddata.FieldCurrentPosition, extracteddata.FieldCompany, extracteddata.FieldSkills, extracteddata.FieldEducation, extracteddata.FieldCertifications:
			values[i] = new(sql.NullString)
		case extracteddata.FieldDateOfBirth, extracteddata.FieldCreatedAt, extracteddata.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extracteddata.FieldID, extracteddata.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedData fields.
func (_m *ExtractedData) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extracteddata.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extracteddata.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extracteddata.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = new(string)
				*_m.FullName = value.String
			}
		case extracteddata.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case extracteddata.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case extracteddata.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case extracteddata.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = new(time.Time)
				*_m.DateOfBirth = value.Time
			}
		case extracteddata.FieldCurrentPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_position", values[i])
			} else if value.Valid {
				_m.CurrentPosition = new(string)
				*_m.CurrentPosition = value.String
			}
		case extracteddata.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = new(string)
				*_m.Company = value.String
			}
		case extracteddata.FieldExperienceYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experience_years", values[i])
			} else if value.Valid {
				_m.ExperienceYears = new(int)
				*_m.ExperienceYears = int(value.Int64)
			}
		case extracteddata.FieldSkills:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skills", values[i])
			} else if value.Valid {
				_m.Skills = new(string)
				*_m.Skills = value.String
			}
		case extracteddata.FieldEducation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field education", values[i])
			} else if value.Valid {
				_m.Education = new(string)
				*_m.Education = value.String
			}
		case extracteddata.FieldCertifications:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field certifications", values[i])
			} else if value.Valid {
				_m.Certifications = new(string)
				*_m.Certifications = value.String
			}
		case extracteddata.FieldAdditionalData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field additional_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdditionalData); err != nil {
					return fmt.Errorf("unmarshal field additional_data: %w", err)
				}
			}
		case extracteddata.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extracteddata.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedData.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedData) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractedData entity.
func (_m *ExtractedData) QueryDocument() *DocumentScanQuery {
	return NewExtractedDataClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ExtractedData.
// Note that you need to call ExtractedData.Unwrap() before calling this method if this ExtractedData
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedData) Update() *ExtractedDataUpdateOne {
	return NewExtractedDataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedData entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedData) Unwrap() *ExtractedData {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedData is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedData) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedData(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	if v := _m.FullName; v != nil {
		builder.WriteString("full_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateOfBirth; v != nil {
		builder.WriteString("date_of_birth=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CurrentPosition; v != nil {
		builder.WriteString("current_position=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Company; v != nil {
		builder.WriteString("company=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExperienceYears; v != nil {
		builder.WriteString("experience_years=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Skills; v != nil {
		builder.WriteString("skills=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Education; v != nil {
		builder.WriteString("education=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Certifications; v != nil {
		builder.WriteString("certifications=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("additional_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdditionalData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedDataSlice is a parsable slice of ExtractedData.
type ExtractedDataSlice []*ExtractedData
