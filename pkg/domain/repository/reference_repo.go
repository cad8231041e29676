/*
 * @Description: 合作方、成员、指导老师仓储接口
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:26:50
 * @LastEditTime: 2025-09-05 22:03:17
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
)

type PartnerRepository interface {
	Create(ctx context.Context, p *model.Partner) error
	GetByID(ctx context.Context, id uint) (*model.Partner, error)
	Update(ctx context.Context, p *model.Partner) error
	ListActive(ctx context.Context) ([]*model.Partner, error)
}

type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	GetByID(ctx context.Context, id uint) (*model.Staff, error)
	Update(ctx context.Context, s *model.Staff) error
	ListActive(ctx context.Context) ([]*model.Staff, error)
}

type AdvisorRepository interface {
	Create(ctx context.Context, a *model.Advisor) error
	GetByID(ctx context.Context, id uint) (*model.Advisor, error)
	Update(ctx context.Context, a *model.Advisor) error
	ListActive(ctx context.Context) ([]*model.Advisor, error)
}
