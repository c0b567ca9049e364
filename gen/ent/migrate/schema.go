// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentScansColumns holds the columns for the "document_scans" table.
	DocumentScansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "document_type", Type: field.TypeString, Default: "other"},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "file_size", Type: field.TypeInt, Default: 0},
		{Name: "page_count", Type: field.TypeInt, Default: 1},
		{Name: "processing_time", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentScansTable holds the schema information for the "document_scans" table.
	DocumentScansTable = &schema.Table{
		Name:       "document_scans",
		Columns:    DocumentScansColumns,
		PrimaryKey: []*schema.Column{DocumentScansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentscan_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentScansColumns[1], DocumentScansColumns[13]},
			},
			{
				Name:    "documentscan_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentScansColumns[1], DocumentScansColumns[8]},
			},
		},
	}
	// ExtractedDataColumns holds the columns for the "extracted_data" table.
	ExtractedDataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "current_position", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "experience_years", Type: field.TypeInt, Nullable: true},
		{Name: "skills", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "education", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "certifications", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "additional_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// ExtractedDataTable holds the schema information for the "extracted_data" table.
	ExtractedDataTable = &schema.Table{
		Name:       "extracted_data",
		Columns:    ExtractedDataColumns,
		PrimaryKey: []*schema.Column{ExtractedDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_data_document_scans_extracted",
				Columns:    []*schema.Column{ExtractedDataColumns[15]},
				RefColumns: []*schema.Column{DocumentScansColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extracteddata_document_id",
				Unique:  true,
				Columns: []*schema.Column{ExtractedDataColumns[15]},
			},
		},
	}
	// GeneratedCvsColumns holds the columns for the "generated_cvs" table.
	GeneratedCvsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "template_type", Type: field.TypeString, Default: "modern"},
		{Name: "cv_file", Type: field.TypeString, Nullable: true},
		{Name: "application_form", Type: field.TypeString, Nullable: true},
		{Name: "merged_document", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "custom_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// GeneratedCvsTable holds the schema information for the "generated_cvs" table.
	GeneratedCvsTable = &schema.Table{
		Name:       "generated_cvs",
		Columns:    GeneratedCvsColumns,
		PrimaryKey: []*schema.Column{GeneratedCvsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_cvs_document_scans_generated_cvs",
				Columns:    []*schema.Column{GeneratedCvsColumns[11]},
				RefColumns: []*schema.Column{DocumentScansColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedcv_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GeneratedCvsColumns[1], GeneratedCvsColumns[9]},
			},
			{
				Name:    "generatedcv_document_id",
				Unique:  false,
				Columns: []*schema.Column{GeneratedCvsColumns[11]},
			},
		},
	}
	// ProcessingJobsColumns holds the columns for the "processing_jobs" table.
	ProcessingJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "result_data", Type: field.TypeJSON, Nullable: true},
		{Name: "error_details", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "cv_id", Type: field.TypeUUID, Nullable: true},
	}
	// ProcessingJobsTable holds the schema information for the "processing_jobs" table.
	ProcessingJobsTable = &schema.Table{
		Name:       "processing_jobs",
		Columns:    ProcessingJobsColumns,
		PrimaryKey: []*schema.Column{ProcessingJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_jobs_document_scans_jobs",
				Columns:    []*schema.Column{ProcessingJobsColumns[10]},
				RefColumns: []*schema.Column{DocumentScansColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "processing_jobs_generated_cvs_jobs",
				Columns:    []*schema.Column{ProcessingJobsColumns[11]},
				RefColumns: []*schema.Column{GeneratedCvsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[1], ProcessingJobsColumns[3], ProcessingJobsColumns[9]},
			},
			{
				Name:    "processingjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[10]},
			},
			{
				Name:    "processingjob_cv_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentScansTable,
		ExtractedDataTable,
		GeneratedCvsTable,
		ProcessingJobsTable,
	}
)

func init() {
	DocumentScansTable.Annotation = &entsql.Annotation{
		Table: "document_scans",
	}
	ExtractedDataTable.ForeignKeys[0].RefTable = DocumentScansTable
	ExtractedDataTable.Annotation = &entsql.Annotation{
		Table: "extracted_data",
	}
	GeneratedCvsTable.ForeignKeys[0].RefTable = DocumentScansTable
	GeneratedCvsTable.Annotation = &entsql.Annotation{
		Table: "generated_cvs",
	}
	ProcessingJobsTable.ForeignKeys[0].RefTable = DocumentScansTable
	ProcessingJobsTable.ForeignKeys[1].RefTable = GeneratedCvsTable
	ProcessingJobsTable.Annotation = &entsql.Annotation{
		Table: "processing_jobs",
	}
}
