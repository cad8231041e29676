/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:33:20
 * @LastEditTime: 2025-09-03 09:14:02
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"github.com/anzhiyu-c/arsip-app/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Advisor holds the schema definition for the Advisor entity.
type Advisor struct {
	ent.Schema
}

// Annotations of the Advisor.
func (Advisor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("指导老师表"),
	}
}

// Mixin of the Advisor.
func (Advisor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ActiveMixin{},
	}
}

// Fields of the Advisor.
func (Advisor) Fields() []ent.Field {
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
			Comment("姓名"),
		field.String("role").
			Optional().
			Comment("担任角色"),
		field.String("contact").
			Optional().
			Comment("联系方式"),
		field.Text("note").
			Optional().
			Comment("备注"),
	}
}
