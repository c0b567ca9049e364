// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
)

// DocumentScan is the model entity for the DocumentScan schema.
type DocumentScan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// ProcessingTime holds the value of the "processing_time" field.
	ProcessingTime float64 `json:"processing_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentScanQuery when eager-loading is set.
	Edges        DocumentScanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentScanEdges holds the relations/edges for other nodes in the graph.
type DocumentScanEdges struct {
	// Extracted holds the value of the extracted edge.
	Extracted *ExtractedData `json:"extracted,omitempty"`
	// GeneratedCvs holds the value of the generated_cvs edge.
	GeneratedCvs []*GeneratedCV `json:"generated_cvs,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ProcessingJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ExtractedOrErr returns the Extracted value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentScanEdges) ExtractedOrErr() (*ExtractedData, error) {
	if e.Extracted != nil {
		return e.Extracted, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extracteddata.Label}
	}
	return nil, &NotLoadedError{edge: "extracted"}
}

// GeneratedCvsOrErr returns the GeneratedCvs value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentScanEdges) GeneratedCvsOrErr() ([]*GeneratedCV, error) {
	if e.loadedTypes[1] {
		return e.GeneratedCvs, nil
	}
	return nil, &NotLoadedError{edge: "generated_cvs"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentScanEdges) JobsOrErr() ([]*ProcessingJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentScan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentscan.FieldConfidenceScore, documentscan.FieldProcessingTime:
			values[i] = new(sql.NullFloat64)
		case documentscan.FieldFileSize, documentscan.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case documentscan.FieldDocumentType, documentscan.FieldFilePath, documentscan.FieldFileName, documentscan.FieldFileExt, documentscan.FieldExtractedText, documentscan.FieldStatus, documentscan.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case documentscan.FieldCreatedAt, documentscan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case documentscan.FieldID, documentscan.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentScan fields.
func (_m *DocumentScan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentscan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentscan.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case documentscan.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case documentscan.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case documentscan.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case documentscan.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case documentscan.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case documentscan.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case documentscan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case documentscan.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case documentscan.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case documentscan.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case documentscan.FieldProcessingTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time", values[i])
			} else if value.Valid {
				_m.ProcessingTime = value.Float64
			}
		case documentscan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case documentscan.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentScan.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentScan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtracted queries the "extracted" edge of the DocumentScan entity.
func (_m *DocumentScan) QueryExtracted() *ExtractedDataQuery {
	return NewDocumentScanClient(_m.config).QueryExtracted(_m)
}

// QueryGeneratedCvs queries the "generated_cvs" edge of the DocumentScan entity.
func (_m *DocumentScan) QueryGeneratedCvs() *GeneratedCVQuery {
	return NewDocumentScanClient(_m.config).QueryGeneratedCvs(_m)
}

// QueryJobs queries the "jobs" edge of the DocumentScan entity.
func (_m *DocumentScan) QueryJobs() *ProcessingJobQuery {
	return NewDocumentScanClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this DocumentScan.
// Note that you need to call DocumentScan.Unwrap() before calling this method if this DocumentScan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentScan) Update() *DocumentScanUpdateOne {
	return NewDocumentScanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentScan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentScan) Unwrap() *DocumentScan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentScan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentScan) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentScan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("processing_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTime))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentScans is a parsable slice of DocumentScan.
type DocumentScans []*DocumentScan
