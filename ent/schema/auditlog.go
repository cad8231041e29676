/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:44:01
 * @LastEditTime: 2025-09-03 09:20:18
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
type AuditLog struct {
	ent.Schema
}

// Annotations of the AuditLog.
func (AuditLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("操作审计流水表，只追加"),
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("user_id").
			Comment("操作人的用户公共 ID"),
		field.String("table_name").
			Comment("被操作的逻辑表名"),
		field.Enum("action").
			Values("CREATE", "UPDATE", "DEACTIVATE").
			Comment("操作类型"),
		field.String("record_id").
			Comment("被操作记录的公共 ID"),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("table_name"),
		index.Fields("user_id"),
	}
}
