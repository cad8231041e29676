/*
 * @Description: 合作方、部门成员与指导老师的领域模型
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:31:08
 * @LastEditTime: 2025-09-05 21:18:59
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Partner 代表一个外部合作单位。
type Partner struct {
	ID        uint
	Name      string // 单位名称
	Contact   string // 联系方式
	Note      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Staff 代表部门内的一名成员。
type Staff struct {
	ID        uint
	Name      string
	Position  string // 职务
	Contact   string
	Period    string // 任期，如 "2025/2026"
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Advisor 代表一名指导老师。
type Advisor struct {
	ID        uint
	Name      string
	Role      string // 担任角色
	Contact   string
	Note      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartnerRequest 创建或更新合作方的请求体。
type PartnerRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Note    string `json:"note"`
}

// StaffRequest 创建或更新成员的请求体。
type StaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Contact  string `json:"contact"`
	Period   string `json:"period"`
}

// AdvisorRequest 创建或更新指导老师的请求体。
type AdvisorRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Contact string `json:"contact"`
	Note    string `json:"note"`
}

// PartnerDTO 返回给前端的合作方视图。
type PartnerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Note      string    `json:"note"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// StaffDTO 返回给前端的成员视图。
type StaffDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Contact   string    `json:"contact"`
	Period    string    `json:"period"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AdvisorDTO 返回给前端的指导老师视图。
type AdvisorDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Contact   string    `json:"contact"`
	Note      string    `json:"note"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
