/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-11-05 18:07:37
 * @LastEditTime: 2025-11-05 18:07:49
 * @LastEditors: 安知鱼
 */
package constant

import "github.com/anzhiyu-c/arsip-app/internal/pkg/event"

// EventTopic 事件主题类型
type EventTopic = event.Topic

// 导出事件主题常量，供外部使用
const (
	// EventAuditRecorded 审计事件：某张受管理表发生了一次成功的变更
	EventAuditRecorded EventTopic = event.AuditRecorded
)
