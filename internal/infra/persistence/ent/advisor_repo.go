/*
 * @Description: 指导老师仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:36:19
 * @LastEditTime: 2025-09-04 17:35:48
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
	"github.com/anzhiyu-c/arsip-app/ent/advisor"
)

type entAdvisorRepository struct {
	client *ent.Client
}

// NewEntAdvisorRepository 是 entAdvisorRepository 的构造函数
func NewEntAdvisorRepository(client *ent.Client) repository.AdvisorRepository {
	return &entAdvisorRepository{client: client}
}

func (r *entAdvisorRepository) Create(ctx context.Context, a *model.Advisor) error {
	saved, err := r.client.Advisor.Create().
		SetName(a.Name).
		SetRole(a.Role).
		SetContact(a.Contact).
		SetNote(a.Note).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("创建指导老师失败: %w", err)
	}
	a.ID = saved.ID
	a.IsActive = saved.IsActive
	a.CreatedAt = saved.CreatedAt
	a.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *entAdvisorRepository) GetByID(ctx context.Context, id uint) (*model.Advisor, error) {
	a, err := r.client.Advisor.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询指导老师失败: %w", err)
	}
	return toDomainAdvisor(a), nil
}

func (r *entAdvisorRepository) Update(ctx context.Context, a *model.Advisor) error {
	_, err := r.client.Advisor.UpdateOneID(a.ID).
		SetName(a.Name).
		SetRole(a.Role).
		SetContact(a.Contact).
		SetNote(a.Note).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新指导老师失败: %w", err)
	}
	return nil
}

func (r *entAdvisorRepository) ListActive(ctx context.Context) ([]*model.Advisor, error) {
	list, err := r.client.Advisor.Query().
		Where(advisor.IsActive(true)).
		Order(ent.Asc(advisor.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询指导老师列表失败: %w", err)
	}
	result := make([]*model.Advisor, len(list))
	for i, a := range list {
		result[i] = toDomainAdvisor(a)
	}
	return result, nil
}

// toDomainAdvisor 将 *ent.Advisor 转换为 *model.Advisor.
func toDomainAdvisor(a *ent.Advisor) *model.Advisor {
	if a == nil {
		return nil
	}
	return &model.Advisor{
		ID:        a.ID,
		Name:      a.Name,
		Role:      a.Role,
		Contact:   a.Contact,
		Note:      a.Note,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
