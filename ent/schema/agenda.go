/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:38:46
 * @LastEditTime: 2025-09-05 10:51:24
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
	"entgo.io/ent/schema/index"
)

// Agenda holds the schema definition for the Agenda entity.
type Agenda struct {
	ent.Schema
}

// Annotations of the Agenda.
func (Agenda) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("部门活动表"),
	}
}

// Mixin of the Agenda.
func (Agenda) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ActiveMixin{},
	}
}

// Fields of the Agenda.
func (Agenda) Fields() []ent.Field {
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
			Comment("活动名称"),
		field.Time("date").
			Comment("活动日期"),
		field.Enum("kind").
			Values("internal", "eksternal").
			Comment("活动类型"),
		field.Enum("status").
			Values("rencana", "selesai", "batal").
			Default("rencana").
			Comment("活动状态"),
		field.Uint("partner_id").
			Optional().
			Nillable().
			Comment("关联的合作方 ID"),
		field.Text("result_note").
			Optional().
			Comment("活动结果记录"),
	}
}

// Edges of the Agenda.
func (Agenda) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("partner", Partner.Type).
			Ref("agendas").
			Field("partner_id").
			Unique(),
	}
}

// Indexes of the Agenda.
func (Agenda) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
		index.Fields("status"),
	}
}
