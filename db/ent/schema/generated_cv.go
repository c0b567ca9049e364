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

type GeneratedCV struct{ ent.Schema }

func (GeneratedCV) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "generated_cvs"},
	}
}

func (GeneratedCV) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.String("template_type").Default(constants.DefaultTemplate).
			Validate(utils.EnumValidator(constants.CVTemplates...)),

		// three independent file slots; all populated together on success
		field.String("cv_file").Optional().Nillable(),
		field.String("application_form").Optional().Nillable(),
		field.String("merged_document").Optional().Nillable(),

		field.String("status").Default(string(constants.GenerationStatusPending)).
			Validate(utils.EnumValidator(constants.GenerationStatuses...)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("custom_data", map[string]any{}).Optional(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (GeneratedCV) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source_document", DocumentScan.Type).
			Ref("generated_cvs").
			Field("document_id").
			Unique().
			Required(),
		edge.To("jobs", ProcessingJob.Type),
	}
}

func (GeneratedCV) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("document_id"),
	}
}
