/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:18:40
 * @LastEditTime: 2025-09-07 15:22:06
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

// Document holds the schema definition for the Document entity.
type Document struct {
	ent.Schema
}

// Annotations of the Document.
func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("归档文书表"),
	}
}

// Mixin of the Document.
func (Document) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ActiveMixin{},
	}
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("title").
			NotEmpty().
			Comment("文书标题"),
		field.Enum("doc_type").
			Values("undangan", "balasan", "proposal", "mou").
			Comment("文书类型"),
		field.Time("doc_date").
			Comment("文书日期"),
		field.Uint("partner_id").
			Optional().
			Nillable().
			Comment("关联的合作方 ID"),
		field.String("storage_key").
			Unique().
			Immutable().
			Comment("对象存储键，一经写入不可变"),
		field.Text("note").
			Optional().
			Comment("备注"),
		field.String("created_by").
			Comment("上传者的用户公共 ID"),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("partner", Partner.Type).
			Ref("documents").
			Field("partner_id").
			Unique(),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_type"),
		index.Fields("doc_date"),
	}
}
