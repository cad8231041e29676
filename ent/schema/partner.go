/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:24:12
 * @LastEditTime: 2025-09-04 11:08:47
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"github.com/anzhiyu-c/arsip-app/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Partner holds the schema definition for the Partner entity.
type Partner struct {
	ent.Schema
}

// Annotations of the Partner.
func (Partner) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("合作单位表"),
	}
}

// Mixin of the Partner.
func (Partner) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ActiveMixin{},
	}
}

// Fields of the Partner.
func (Partner) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("name").
			NotEmpty().
			Comment("单位名称"),
		field.String("contact").
			Optional().
			Comment("联系方式"),
		field.Text("note").
			Optional().
			Comment("备注"),
	}
}

// Edges of the Partner.
func (Partner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
		edge.To("agendas", Agenda.Type),
	}
}
