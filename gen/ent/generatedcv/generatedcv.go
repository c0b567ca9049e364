// Code generated by ent, DO NOT EDIT.

package generatedcv

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the generatedcv type in the database.
	Label = "generated_cv"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldTemplateType holds the string denoting the template_type field in the database.
	FieldTemplateType = "template_type"
	// FieldCvFile holds the string denoting the cv_file field in the database.
	FieldCvFile = "cv_file"
	// FieldApplicationForm holds the string denoting the application_form field in the database.
	FieldApplicationForm = "application_form"
	// FieldMergedDocument holds the string denoting the merged_document field in the database.
	FieldMergedDocument = "merged_document"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCustomData holds the string denoting the custom_data field in the database.
	FieldCustomData = "custom_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSourceDocument holds the string denoting the source_document edge name in mutations.
	EdgeSourceDocument = "source_document"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the generatedcv in the database.
	Table = "generated_cvs"
	// SourceDocumentTable is the table that holds the source_document relation/edge.
	SourceDocumentTable = "generated_cvs"
	// SourceDocumentInverseTable is the table name for the DocumentScan entity.
	// It exists in this package in order to avoid circular dependency with the "documentscan" package.
	SourceDocumentInverseTable = "document_scans"
	// SourceDocumentColumn is the table column denoting the source_document relation/edge.
	SourceDocumentColumn = "document_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "processing_jobs"
	// JobsInverseTable is the table name for the ProcessingJob entity.
	// It exists in this package in order to avoid circular dependency with the "processingjob" package.
	JobsInverseTable = "processing_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "cv_id"
)

// Columns holds all SQL columns for generatedcv fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDocumentID,
	FieldTemplateType,
	FieldCvFile,
	FieldApplicationForm,
	FieldMergedDocument,
	FieldStatus,
	FieldErrorMessage,
	FieldCustomData,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTemplateType holds the default value on creation for the "template_type" field.
	DefaultTemplateType string
	// TemplateTypeValidator is a validator for the "template_type" field. It is called by the builders before save.
	TemplateTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GeneratedCV queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByTemplateType orders the results by the template_type field.
func ByTemplateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateType, opts...).ToFunc()
}

// ByCvFile orders the results by the cv_file field.
func ByCvFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCvFile, opts...).ToFunc()
}

// ByApplicationForm orders the results by the application_form field.
func ByApplicationForm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationForm, opts...).ToFunc()
}

// ByMergedDocument orders the results by the merged_document field.
func ByMergedDocument(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedDocument, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySourceDocumentField orders the results by source_document field.
func BySourceDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSourceDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceDocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceDocumentTable, SourceDocumentColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
