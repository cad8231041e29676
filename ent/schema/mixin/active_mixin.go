/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:05:27
 * @LastEditTime: 2025-09-02 14:31:58
 * @LastEditors: 安知鱼
 */
package mixin

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// ActiveMixin 为业务表提供统一的 is_active 标记。
// 记录不做物理删除，停用即把 is_active 置为 false。
type ActiveMixin struct {
	mixin.Schema
}

// Fields 定义了 is_active 字段.
func (ActiveMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Bool("is_active").
			Default(true).
			Comment("是否活跃，false 表示已停用"),
	}
}
