/*
 * @Description: 活动日程仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:44:02
 * @LastEditTime: 2025-09-05 11:20:17
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"

	"github.com/anzhiyu-c/arsip-app/ent"
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
)

type entAgendaRepository struct {
	client *ent.Client
}

// NewEntAgendaRepository 是 entAgendaRepository 的构造函数
func NewEntAgendaRepository(client *ent.Client) repository.AgendaRepository {
	return &entAgendaRepository{client: client}
}

func (r *entAgendaRepository) Create(ctx context.Context, a *model.Agenda) error {
	create := r.client.Agenda.Create().
		SetName(a.Name).
		SetDate(a.Date).
		SetKind(agenda.Kind(a.Kind)).
		SetStatus(agenda.Status(a.Status)).
		SetResultNote(a.ResultNote)
	if a.PartnerID != nil {
		create.SetPartnerID(*a.PartnerID)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("创建活动失败: %w", err)
	}
	a.ID = saved.ID
	a.IsActive = saved.IsActive
	a.CreatedAt = saved.CreatedAt
	a.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *entAgendaRepository) GetByID(ctx context.Context, id uint) (*model.Agenda, error) {
	a, err := r.client.Agenda.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询活动失败: %w", err)
	}
	return toDomainAgenda(a), nil
}

func (r *entAgendaRepository) Update(ctx context.Context, a *model.Agenda) error {
	update := r.client.Agenda.UpdateOneID(a.ID).
		SetName(a.Name).
		SetDate(a.Date).
		SetKind(agenda.Kind(a.Kind)).
		SetStatus(agenda.Status(a.Status)).
		SetResultNote(a.ResultNote)
	if a.PartnerID != nil {
		update.SetPartnerID(*a.PartnerID)
	} else {
		update.ClearPartnerID()
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新活动失败: %w", err)
	}
	return nil
}

func (r *entAgendaRepository) ListActive(ctx context.Context, req *model.ListAgendasRequest) ([]*model.Agenda, int, error) {
	query := r.client.Agenda.Query().
		Where(agenda.IsActive(true))

	if req.Kind != "" {
		query = query.Where(agenda.KindEQ(agenda.Kind(req.Kind)))
	}
	if req.Status != "" {
		query = query.Where(agenda.StatusEQ(agenda.Status(req.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("统计活动数量失败: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	list, err := query.
		Order(ent.Desc(agenda.FieldDate)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询活动列表失败: %w", err)
	}

	result := make([]*model.Agenda, len(list))
	for i, a := range list {
		result[i] = toDomainAgenda(a)
	}
	return result, total, nil
}

// toDomainAgenda 将 *ent.Agenda 转换为 *model.Agenda.
func toDomainAgenda(a *ent.Agenda) *model.Agenda {
	if a == nil {
		return nil
	}
	return &model.Agenda{
		ID:         a.ID,
		Name:       a.Name,
		Date:       a.Date,
		Kind:       string(a.Kind),
		Status:     string(a.Status),
		PartnerID:  a.PartnerID,
		ResultNote: a.ResultNote,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
