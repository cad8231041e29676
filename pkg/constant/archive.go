/*
 * @Description: 档案域的固定枚举与限制常量
 * @Author: 安知鱼
 * @Date: 2025-11-03 10:30:02
 * @LastEditTime: 2026-02-10 19:22:48
 * @LastEditors: 安知鱼
 */
package constant

import "time"

// 受管理表的表名，审计与变更通知都以此为键
const (
	TableDocument = "arsip_dokumen"
	TablePartner  = "mitra"
	TableStaff    = "pengurus"
	TableAdvisor  = "pembina"
	TableAgenda   = "agenda"
	TableAuditLog = "histori_update"
)

// ManagedTables 是支持软删除生命周期与变更订阅的表集合
var ManagedTables = []string{
	TableDocument, TablePartner, TableStaff, TableAdvisor, TableAgenda,
}

// IsManagedTable 检查给定表名是否在受管理集合内
func IsManagedTable(table string) bool {
	for _, t := range ManagedTables {
		if t == table {
			return true
		}
	}
	return false
}

// 文档类型枚举（jenis dokumen）
const (
	DocTypeUndangan = "undangan"
	DocTypeBalasan  = "balasan"
	DocTypeProposal = "proposal"
	DocTypeMou      = "mou"
)

// DocumentTypes 是允许的文档类型集合
var DocumentTypes = []string{DocTypeUndangan, DocTypeBalasan, DocTypeProposal, DocTypeMou}

// IsValidDocumentType 检查文档类型是否合法
func IsValidDocumentType(t string) bool {
	for _, dt := range DocumentTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// 议程类型与状态枚举
const (
	AgendaKindInternal  = "internal"
	AgendaKindEksternal = "eksternal"

	AgendaStatusRencana = "rencana"
	AgendaStatusSelesai = "selesai"
	AgendaStatusBatal   = "batal"
)

// 审计动作，追加进 histori_update 表
const (
	AuditActionCreate     = "CREATE"
	AuditActionUpdate     = "UPDATE"
	AuditActionDeactivate = "DEACTIVATE"
)

// 上传限制与存储命名
const (
	// DefaultMaxUploadBytes 是上传文件的硬性大小上限（5MB）
	DefaultMaxUploadBytes = 5 * 1024 * 1024
	// DefaultBucketName 是默认的对象存储桶名，可由配置覆盖
	DefaultBucketName = "arsip-dokumen"
	// DocumentContentType 是归档文档唯一接受的内容类型
	DocumentContentType = "application/pdf"
	// DocumentExt 是存储键的固定扩展名
	DocumentExt = ".pdf"
	// DownloadURLTTL 下载签名链接的有效期
	DownloadURLTTL = 60 * time.Second
)

// 变更合并（Change Coalescer）的时间窗口。
// 这不是一致性机制：刷新最多滞后 防抖窗口 + 变更通道本身的延迟。
const (
	// RefreshDebounce 把一段突发变更收敛为一次重载
	RefreshDebounce = 600 * time.Millisecond
	// NoticeCooldown 限制面向用户的"数据有变更"提示频率
	NoticeCooldown = 5 * time.Second
)
