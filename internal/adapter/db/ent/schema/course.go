package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Course holds the schema definition for the Course entity.
type Course struct {
	ent.Schema
}

// Fields of the Course.
func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.String("slug").
			Unique(),
		field.String("title"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("provider").
			Optional().
			Nillable(),
		field.Text("provider_url").
			Optional().
			Nillable(),
		field.Text("thumbnail_url").
			Optional().
			Nillable(),
		field.String("external_id").
			Optional().
			Nillable(),
		field.UUID("creator_id", uuid.UUID{}),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Course.
func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", User.Type).
			Ref("courses").
			Field("creator_id").
			Unique().
			Required(),
		edge.To("videos", Video.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Course.
func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("creator_id"),
		index.Fields("created_at"),
	}
}
