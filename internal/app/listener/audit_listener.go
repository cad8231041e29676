/*
 * @Description: 监听审计事件并异步落库
 * @Author: 安知鱼
 * @Date: 2025-09-06 14:20:08
 * @LastEditTime: 2025-09-14 22:30:52
 * @LastEditors: 安知鱼
 */
package listener

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/arsip-app/internal/pkg/event"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"
)

// AuditListener 监听 AuditRecorded 事件，把审计流水写入数据库。
// 落库失败只记录日志，审计不反向阻断业务。
type AuditListener struct {
	auditRepo repository.AuditRepository
}

// NewAuditListener 是 AuditListener 的构造函数。
// 它订阅 AuditRecorded 事件，成为审计流水落库的唯一入口。
func NewAuditListener(eventBus *event.EventBus, auditRepo repository.AuditRepository) *AuditListener {
	listener := &AuditListener{auditRepo: auditRepo}
	eventBus.Subscribe(event.AuditRecorded, listener.handleAuditRecorded)
	return listener
}

// handleAuditRecorded 是事件处理器，负责持久化一条审计流水。
func (l *AuditListener) handleAuditRecorded(payload interface{}) {
	ev, ok := payload.(*model.AuditEvent)
	if !ok {
		log.Printf("[AuditListener] 错误：收到的 AuditRecorded 事件负载类型不正确")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := l.auditRepo.Create(ctx, ev); err != nil {
		log.Printf("[AuditListener] 错误: 写入审计流水失败 (表: %s, 操作: %s, 记录: %s): %v",
			ev.TableName, ev.Action, ev.RecordID, err)
	}
}
