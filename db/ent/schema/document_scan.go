package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/constants"
	"github.com/mausam-code/complete-agency/db/ent/schema/utils"
)

type DocumentScan struct{ ent.Schema }

func (DocumentScan) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_scans"},
	}
}

func (DocumentScan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// owner lives in the accounts collaborator; opaque reference only
		field.UUID("user_id", uuid.UUID{}),
		field.String("document_type").Default(string(constants.DocumentTypeOther)).
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("file_path").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("confidence_score").Default(0),
		field.String("status").Default(string(constants.ScanStatusPending)).
			Validate(utils.EnumValidator(constants.ScanStatuses...)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("file_size").NonNegative().Default(0),
		field.Int("page_count").Default(1),
		field.Float("processing_time").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DocumentScan) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE scan -> at most ONE extracted row
		edge.To("extracted", ExtractedData.Type).Unique(),
		// ONE scan -> MANY generated CVs
		edge.To("generated_cvs", GeneratedCV.Type),
		// ONE scan -> MANY jobs (weak link, job side is optional)
		edge.To("jobs", ProcessingJob.Type),
	}
}

func (DocumentScan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "status"),
	}
}
