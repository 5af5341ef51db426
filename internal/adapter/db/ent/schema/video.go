package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Video holds the schema definition for the Video entity.
type Video struct {
	ent.Schema
}

// Fields of the Video.
func (Video) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.String("slug").
			Unique(),
		field.String("title"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Text("url"),
		field.Int("duration_seconds").
			Optional().
			Nillable(),
		field.String("provider").
			Optional().
			Nillable(),
		field.String("external_id").
			Optional().
			Nillable(),
		field.Text("thumbnail_url").
			Optional().
			Nillable(),
		field.Int("position"),
		field.UUID("course_id", uuid.UUID{}),
		field.UUID("creator_id", uuid.UUID{}),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Video.
func (Video) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("videos").
			Field("course_id").
			Unique().
			Required(),
	}
}

// Indexes of the Video.
func (Video) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "position"),
	}
}
