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
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
)

// GeneratedCV is the model entity for the GeneratedCV schema.
type GeneratedCV struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// TemplateType holds the value of the "template_type" field.
	TemplateType string `json:"template_type,omitempty"`
	// CvFile holds the value of the "cv_file" field.
	CvFile *string `json:"cv_file,omitempty"`
	// ApplicationForm holds the value of the "application_form" field.
	ApplicationForm *string `json:"application_form,omitempty"`
	// MergedDocument holds the value of the "merged_document" field.
	MergedDocument *string `json:"merged_document,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CustomData holds the value of the "custom_data" field.
	CustomData map[string]interface{} `json:"custom_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GeneratedCVQuery when eager-loading is set.
	Edges        GeneratedCVEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GeneratedCVEdges holds the relations/edges for other nodes in the graph.
type GeneratedCVEdges struct {
	// SourceDocument holds the value of the source_document edge.
	SourceDocument *DocumentScan `json:"source_document,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ProcessingJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SourceDocumentOrErr returns the SourceDocument value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedCVEdges) SourceDocumentOrErr() (*DocumentScan, error) {
	if e.SourceDocument != nil {
		return e.SourceDocument, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentscan.Label}
	}
	return nil, &NotLoadedError{edge: "source_document"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e GeneratedCVEdges) JobsOrErr() ([]*ProcessingJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedCV) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedcv.FieldCustomData:
			values[i] = new([]byte)
		case generatedcv.FieldTemplateType, generatedcv.FieldCvFile, generatedcv.FieldApplicationForm, generatedcv.FieldMergedDocument, generatedcv.FieldStatus, generatedcv.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case generatedcv.FieldCreatedAt, generatedcv.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case generatedcv.FieldID, generatedcv.FieldUserID, generatedcv.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedCV fields.
func (_m *GeneratedCV) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedcv.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generatedcv.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case generatedcv.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case generatedcv.FieldTemplateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_type", values[i])
			} else if value.Valid {
				_m.TemplateType = value.String
			}
		case generatedcv.FieldCvFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cv_file", values[i])
			} else if value.Valid {
				_m.CvFile = new(string)
				*_m.CvFile = value.String
			}
		case generatedcv.FieldApplicationForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_form", values[i])
			} else if value.Valid {
				_m.ApplicationForm = new(string)
				*_m.ApplicationForm = value.String
			}
		case generatedcv.FieldMergedDocument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_document", values[i])
			} else if value.Valid {
				_m.MergedDocument = new(string)
				*_m.MergedDocument = value.String
			}
		case generatedcv.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case generatedcv.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case generatedcv.FieldCustomData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field custom_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomData); err != nil {
					return fmt.Errorf("unmarshal field custom_data: %w", err)
				}
			}
		case generatedcv.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case generatedcv.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedCV.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedCV) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySourceDocument queries the "source_document" edge of the GeneratedCV entity.
func (_m *GeneratedCV) QuerySourceDocument() *DocumentScanQuery {
	return NewGeneratedCVClient(_m.config).QuerySourceDocument(_m)
}

// QueryJobs queries the "jobs" edge of the GeneratedCV entity.
func (_m *GeneratedCV) QueryJobs() *ProcessingJobQuery {
	return NewGeneratedCVClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this GeneratedCV.
// Note that you need to call GeneratedCV.Unwrap() before calling this method if this GeneratedCV
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedCV) Update() *GeneratedCVUpdateOne {
	return NewGeneratedCVClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedCV entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedCV) Unwrap() *GeneratedCV {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedCV is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedCV) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedCV(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("template_type=")
	builder.WriteString(_m.TemplateType)
	builder.WriteString(", ")
	if v := _m.CvFile; v != nil {
		builder.WriteString("cv_file=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApplicationForm; v != nil {
		builder.WriteString("application_form=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MergedDocument; v != nil {
		builder.WriteString("merged_document=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("custom_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedCVs is a parsable slice of GeneratedCV.
type GeneratedCVs []*GeneratedCV
