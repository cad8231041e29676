/*
 * @Description: 部门成员仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:30:44
 * @LastEditTime: 2025-09-04 17:33:05
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
	"github.com/anzhiyu-c/arsip-app/ent/staff"
)

type entStaffRepository struct {
	client *ent.Client
}

// NewEntStaffRepository 是 entStaffRepository 的构造函数
func NewEntStaffRepository(client *ent.Client) repository.StaffRepository {
	return &entStaffRepository{client: client}
}

func (r *entStaffRepository) Create(ctx context.Context, s *model.Staff) error {
	saved, err := r.client.Staff.Create().
		SetName(s.Name).
		SetPosition(s.Position).
		SetContact(s.Contact).
		SetPeriod(s.Period).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("创建成员失败: %w", err)
	}
	s.ID = saved.ID
	s.IsActive = saved.IsActive
	s.CreatedAt = saved.CreatedAt
	s.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *entStaffRepository) GetByID(ctx context.Context, id uint) (*model.Staff, error) {
	s, err := r.client.Staff.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询成员失败: %w", err)
	}
	return toDomainStaff(s), nil
}

func (r *entStaffRepository) Update(ctx context.Context, s *model.Staff) error {
	_, err := r.client.Staff.UpdateOneID(s.ID).
		SetName(s.Name).
		SetPosition(s.Position).
		SetContact(s.Contact).
		SetPeriod(s.Period).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新成员失败: %w", err)
	}
	return nil
}

func (r *entStaffRepository) ListActive(ctx context.Context) ([]*model.Staff, error) {
	list, err := r.client.Staff.Query().
		Where(staff.IsActive(true)).
		Order(ent.Asc(staff.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询成员列表失败: %w", err)
	}
	result := make([]*model.Staff, len(list))
	for i, s := range list {
		result[i] = toDomainStaff(s)
	}
	return result, nil
}

// toDomainStaff 将 *ent.Staff 转换为 *model.Staff.
func toDomainStaff(s *ent.Staff) *model.Staff {
	if s == nil {
		return nil
	}
	return &model.Staff{
		ID:        s.ID,
		Name:      s.Name,
		Position:  s.Position,
		Contact:   s.Contact,
		Period:    s.Period,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
