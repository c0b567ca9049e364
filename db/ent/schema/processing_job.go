package schema

import (
	"encoding/json"
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

type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_jobs"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("job_type").NotEmpty().
			Validate(utils.EnumValidator(constants.JobTypes...)),
		field.String("status").Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),

		// weak references: a job survives deletion of its target
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("cv_id", uuid.UUID{}).Optional().Nillable(),

		// advisory, monotonically non-decreasing within a job
		field.Int("progress").Default(0).Min(0).Max(100),
		field.JSON("result_data", json.RawMessage{}).Optional(),
		field.String("error_details").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),

		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ProcessingJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", DocumentScan.Type).
			Ref("jobs").
			Field("document_id").
			Unique(),
		edge.From("generated_cv", GeneratedCV.Type).
			Ref("jobs").
			Field("cv_id").
			Unique(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("document_id"),
		index.Fields("cv_id"),
	}
}
