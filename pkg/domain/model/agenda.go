/*
 * @Description: 部门活动日程的领域模型
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:47:52
 * @LastEditTime: 2025-09-04 09:22:10
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Agenda 代表一次对内或对外的部门活动。
type Agenda struct {
	ID         uint
	Name       string    // 活动名称
	Date       time.Time // 活动日期
	Kind       string    // internal / eksternal
	Status     string    // rencana / selesai / batal
	PartnerID  *uint     // 对外活动可关联合作方
	ResultNote string    // 活动结果记录
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AgendaRequest 创建或更新活动的请求体。
type AgendaRequest struct {
	Name            string  `json:"name" binding:"required"`
	Date            string  `json:"date" binding:"required"` // 格式 2006-01-02
	Kind            string  `json:"kind" binding:"required"`
	Status          string  `json:"status"`
	PartnerPublicID *string `json:"partner_id"`
	ResultNote      string  `json:"result_note"`
}

// ListAgendasRequest 活动列表的查询参数。
type ListAgendasRequest struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=20"`
	Kind     string `form:"kind"`
	Status   string `form:"status"`
}

// AgendaDTO 返回给前端的活动视图。
type AgendaDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	PartnerID  *string   `json:"partner_id,omitempty"`
	ResultNote string    `json:"result_note"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
