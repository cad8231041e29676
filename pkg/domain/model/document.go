/*
 * @Description: 档案文书的领域模型与请求/响应结构
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:12:44
 * @LastEditTime: 2025-09-06 16:40:21
 * @LastEditors: 安知鱼
 */
package model

import (
	"time"
)

// Document 是档案文书的领域模型。
// 它代表一份已归档的 PDF 文书，独立于其持久化实现。
type Document struct {
	ID         uint      // 数据库主键 ID
	Title      string    // 文书标题
	DocType    string    // 文书类型 (undangan/balasan/proposal/mou)
	DocDate    time.Time // 文书日期
	PartnerID  *uint     // 关联的合作方 ID，可为空
	StorageKey string    // 对象存储中的唯一键，一经写入不可变
	Note       string    // 备注
	IsActive   bool      // 是否处于活跃状态，false 表示已移入回收站
	CreatedBy  string    // 上传者的用户 ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UploadDocumentRequest 定义了上传文书时的表单元数据。
// 文件内容以 multipart 流的形式单独传递。
type UploadDocumentRequest struct {
	Title           string `form:"title" binding:"required"`
	DocType         string `form:"doc_type" binding:"required"`
	DocDate         string `form:"doc_date" binding:"required"` // 格式 2006-01-02
	PartnerPublicID string `form:"partner_id"`
	Note            string `form:"note"`
}

// UpdateDocumentRequest 定义了编辑文书元数据的请求体。
// 只允许修改描述性字段，存储键与文件内容不可变。
type UpdateDocumentRequest struct {
	Title           string  `json:"title" binding:"required"`
	DocType         string  `json:"doc_type" binding:"required"`
	DocDate         string  `json:"doc_date" binding:"required"`
	PartnerPublicID *string `json:"partner_id"`
	Note            string  `json:"note"`
}

// ListDocumentsRequest 定义了文书列表的查询参数。
type ListDocumentsRequest struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=20"`
	DocType  string `form:"doc_type"`
	Keyword  string `form:"keyword"`
}

// DocumentDTO 是返回给前端的文书视图。
type DocumentDTO struct {
	ID        string    `json:"id"` // 对外的公共 ID
	Title     string    `json:"title"`
	DocType   string    `json:"doc_type"`
	DocDate   string    `json:"doc_date"`
	PartnerID *string   `json:"partner_id,omitempty"`
	Note      string    `json:"note"`
	IsActive  bool      `json:"is_active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentDownloadResponse 是签名下载地址的响应。
type DocumentDownloadResponse struct {
	URL     string    `json:"url"`
	Expires time.Time `json:"expires"`
}
