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
)

type ExtractedData struct{ ent.Schema }

func (ExtractedData) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_data"},
	}
}

func (ExtractedData) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so the 1:1 unique index is visible in the schema
		field.UUID("document_id", uuid.UUID{}),

		// personal
		field.String("full_name").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.String("address").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("date_of_birth").Optional().Nillable(),

		// professional
		field.String("current_position").Optional().Nillable(),
		field.String("company").Optional().Nillable(),
		field.Int("experience_years").Optional().Nillable().NonNegative(),
		field.String("skills").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("education").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("certifications").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),

		// fields not modeled explicitly
		field.JSON("additional_data", map[string]any{}).Optional(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractedData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", DocumentScan.Type).
			Ref("extracted").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ExtractedData) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id").Unique(),
	}
}
