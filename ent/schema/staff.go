/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:29:55
 * @LastEditTime: 2025-09-03 09:12:30
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

// Staff holds the schema definition for the Staff entity.
type Staff struct {
	ent.Schema
}

// Annotations of the Staff.
func (Staff) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("部门成员表"),
	}
}

// Mixin of the Staff.
func (Staff) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ActiveMixin{},
	}
}

// Fields of the Staff.
func (Staff) Fields() []ent.Field {
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
		field.String("position").
			NotEmpty().
			Comment("职务"),
		field.String("contact").
			Optional().
			Comment("联系方式"),
		field.String("period").
			Optional().
			Comment("任期"),
	}
}
