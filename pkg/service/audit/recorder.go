/*
 * @Description: 操作审计记录服务
 * @Author: 安知鱼
 * @Date: 2025-09-03 17:05:33
 * @LastEditTime: 2025-09-10 16:22:08
 * @LastEditors: 安知鱼
 */
package audit

import (
	"context"
	"time"

	"github.com/anzhiyu-c/arsip-app/internal/pkg/event"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"
)

// Recorder 把审计事件投递到事件总线，业务侧调用后即返回。
// 审计失败不应阻断主业务流程，真正的落库由监听器异步完成。
type Recorder interface {
	Record(actor model.Actor, tableName, action, recordID string)
}

// Service 提供审计流水的查询能力。
type Service interface {
	Recorder
	List(ctx context.Context, req *model.ListAuditRequest) ([]*model.AuditEvent, int, error)
}

type auditServiceImpl struct {
	bus       *event.EventBus
	auditRepo repository.AuditRepository
}

// NewAuditService 是 auditServiceImpl 的构造函数
func NewAuditService(bus *event.EventBus, auditRepo repository.AuditRepository) Service {
	return &auditServiceImpl{
		bus:       bus,
		auditRepo: auditRepo,
	}
}

// Record 发布一条审计事件，不等待落库结果。
func (s *auditServiceImpl) Record(actor model.Actor, tableName, action, recordID string) {
	s.bus.Publish(event.AuditRecorded, &model.AuditEvent{
		UserID:    actor.UserID,
		TableName: tableName,
		Action:    action,
		RecordID:  recordID,
		CreatedAt: time.Now(),
	})
}

func (s *auditServiceImpl) List(ctx context.Context, req *model.ListAuditRequest) ([]*model.AuditEvent, int, error) {
	return s.auditRepo.List(ctx, req)
}
