/*
 * @Description: 操作审计的领域模型
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:05:33
 * @LastEditTime: 2025-09-03 19:47:06
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Actor 描述一次操作的发起人，由认证中间件注入。
type Actor struct {
	UserID string // 用户的公共 ID
	Role   string // 所属角色
}

// AuditEvent 是一条审计流水。
// 它记录"谁在哪张表上对哪条记录做了什么"，只追加、不修改。
type AuditEvent struct {
	ID        uint
	UserID    string    // 操作人的用户 ID
	TableName string    // 被操作的逻辑表名
	Action    string    // CREATE / UPDATE / DEACTIVATE
	RecordID  string    // 被操作记录的公共 ID
	CreatedAt time.Time
}

// ListAuditRequest 审计流水的查询参数。
type ListAuditRequest struct {
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"pageSize,default=20"`
	TableName string `form:"table_name"`
	UserID    string `form:"user_id"`
}

// AuditEventDTO 返回给前端的审计视图。
type AuditEventDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TableName string    `json:"table_name"`
	Action    string    `json:"action"`
	RecordID  string    `json:"record_id"`
	CreatedAt time.Time `json:"created_at"`
}
