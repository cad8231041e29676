/*
 * @Description: 受管理表的软删除生命周期服务
 * @Author: 安知鱼
 * @Date: 2025-09-04 14:02:18
 * @LastEditTime: 2025-09-16 19:10:34
 * @LastEditors: 安知鱼
 */
package lifecycle

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
	"github.com/anzhiyu-c/arsip-app/pkg/service/audit"
)

// ChangePublisher 把表级变更通知发布给订阅方。
type ChangePublisher interface {
	Publish(ctx context.Context, table string) error
}

type Service interface {
	// Deactivate 把记录移入回收站。对已停用的记录再次停用是非法迁移。
	Deactivate(ctx context.Context, actor model.Actor, table, publicID string) error
	// Restore 把回收站中的记录恢复为活跃。对活跃记录执行恢复是非法迁移。
	Restore(ctx context.Context, actor model.Actor, table, publicID string) error
}

type lifecycleServiceImpl struct {
	lifecycleRepo repository.LifecycleRepository
	auditor       audit.Recorder
	publisher     ChangePublisher
}

// NewLifecycleService 是 lifecycleServiceImpl 的构造函数
func NewLifecycleService(
	lifecycleRepo repository.LifecycleRepository,
	auditor audit.Recorder,
	publisher ChangePublisher,
) Service {
	return &lifecycleServiceImpl{
		lifecycleRepo: lifecycleRepo,
		auditor:       auditor,
		publisher:     publisher,
	}
}

func (s *lifecycleServiceImpl) Deactivate(ctx context.Context, actor model.Actor, table, publicID string) error {
	if err := s.transition(ctx, actor, table, publicID, false); err != nil {
		return err
	}
	s.auditor.Record(actor, table, constant.AuditActionDeactivate, publicID)
	s.notifyChanged(table)
	return nil
}

func (s *lifecycleServiceImpl) Restore(ctx context.Context, actor model.Actor, table, publicID string) error {
	if err := s.transition(ctx, actor, table, publicID, true); err != nil {
		return err
	}
	// 恢复在审计流水中记为一次 UPDATE
	s.auditor.Record(actor, table, constant.AuditActionUpdate, publicID)
	s.notifyChanged(table)
	return nil
}

// transition 执行一次 is_active 状态迁移。
// 权限与参数检查都先于任何存储访问；目标状态与当前状态相同视为非法迁移。
func (s *lifecycleServiceImpl) transition(ctx context.Context, actor model.Actor, table, publicID string, targetActive bool) error {
	if !constant.CanManage(actor.Role) {
		return constant.ErrPermission
	}
	if !constant.IsManagedTable(table) {
		return fmt.Errorf("表 '%s' 不支持生命周期操作: %w", table, constant.ErrValidation)
	}

	id, err := idgen.DecodePublicIDForTable(publicID, table)
	if err != nil {
		return err
	}

	active, err := s.lifecycleRepo.IsActive(ctx, table, id)
	if err != nil {
		return err
	}
	if active == targetActive {
		if targetActive {
			return fmt.Errorf("记录 '%s' 并未停用: %w", publicID, constant.ErrInvalidTransition)
		}
		return fmt.Errorf("记录 '%s' 已处于停用状态: %w", publicID, constant.ErrInvalidTransition)
	}

	return s.lifecycleRepo.SetActive(ctx, table, id, targetActive)
}

func (s *lifecycleServiceImpl) notifyChanged(table string) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, table); err != nil {
		log.Printf("[Lifecycle] 发布 %s 的变更通知失败: %v", table, err)
	}
}
