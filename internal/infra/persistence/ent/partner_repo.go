/*
 * @Description: 合作方仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:22:10
 * @LastEditTime: 2025-09-04 17:30:52
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
	"github.com/anzhiyu-c/arsip-app/ent/partner"
)

type entPartnerRepository struct {
	client *ent.Client
}

// NewEntPartnerRepository 是 entPartnerRepository 的构造函数
func NewEntPartnerRepository(client *ent.Client) repository.PartnerRepository {
	return &entPartnerRepository{client: client}
}

func (r *entPartnerRepository) Create(ctx context.Context, p *model.Partner) error {
	saved, err := r.client.Partner.Create().
		SetName(p.Name).
		SetContact(p.Contact).
		SetNote(p.Note).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("创建合作方失败: %w", err)
	}
	p.ID = saved.ID
	p.IsActive = saved.IsActive
	p.CreatedAt = saved.CreatedAt
	p.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *entPartnerRepository) GetByID(ctx context.Context, id uint) (*model.Partner, error) {
	p, err := r.client.Partner.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询合作方失败: %w", err)
	}
	return toDomainPartner(p), nil
}

func (r *entPartnerRepository) Update(ctx context.Context, p *model.Partner) error {
	_, err := r.client.Partner.UpdateOneID(p.ID).
		SetName(p.Name).
		SetContact(p.Contact).
		SetNote(p.Note).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新合作方失败: %w", err)
	}
	return nil
}

func (r *entPartnerRepository) ListActive(ctx context.Context) ([]*model.Partner, error) {
	partners, err := r.client.Partner.Query().
		Where(partner.IsActive(true)).
		Order(ent.Asc(partner.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询合作方列表失败: %w", err)
	}
	result := make([]*model.Partner, len(partners))
	for i, p := range partners {
		result[i] = toDomainPartner(p)
	}
	return result, nil
}

// toDomainPartner 将 *ent.Partner 转换为 *model.Partner.
func toDomainPartner(p *ent.Partner) *model.Partner {
	if p == nil {
		return nil
	}
	return &model.Partner{
		ID:        p.ID,
		Name:      p.Name,
		Contact:   p.Contact,
		Note:      p.Note,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
