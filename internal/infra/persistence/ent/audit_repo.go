/*
 * @Description: 审计流水仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:52:28
 * @LastEditTime: 2025-09-03 21:10:06
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"

	"github.com/anzhiyu-c/arsip-app/ent"
	"github.com/anzhiyu-c/arsip-app/ent/auditlog"
)

type entAuditRepository struct {
	client *ent.Client
}

// NewEntAuditRepository 是 entAuditRepository 的构造函数
func NewEntAuditRepository(client *ent.Client) repository.AuditRepository {
	return &entAuditRepository{client: client}
}

func (r *entAuditRepository) Create(ctx context.Context, ev *model.AuditEvent) error {
	saved, err := r.client.AuditLog.Create().
		SetUserID(ev.UserID).
		SetTableName(ev.TableName).
		SetAction(auditlog.Action(ev.Action)).
		SetRecordID(ev.RecordID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("写入审计流水失败: %w", err)
	}
	ev.ID = saved.ID
	ev.CreatedAt = saved.CreatedAt
	return nil
}

func (r *entAuditRepository) List(ctx context.Context, req *model.ListAuditRequest) ([]*model.AuditEvent, int, error) {
	query := r.client.AuditLog.Query()

	if req.TableName != "" {
		query = query.Where(auditlog.TableName(req.TableName))
	}
	if req.UserID != "" {
		query = query.Where(auditlog.UserID(req.UserID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("统计审计流水数量失败: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	events, err := query.
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询审计流水失败: %w", err)
	}

	result := make([]*model.AuditEvent, len(events))
	for i, e := range events {
		result[i] = &model.AuditEvent{
			ID:        e.ID,
			UserID:    e.UserID,
			TableName: e.TableName,
			Action:    string(e.Action),
			RecordID:  e.RecordID,
			CreatedAt: e.CreatedAt,
		}
	}
	return result, total, nil
}
