/*
 * @Description: 跨表软删除仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 17:01:15
 * @LastEditTime: 2025-09-08 10:44:29
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"

	"github.com/anzhiyu-c/arsip-app/ent"
)

type entLifecycleRepository struct {
	client *ent.Client
}

// NewEntLifecycleRepository 是 entLifecycleRepository 的构造函数
func NewEntLifecycleRepository(client *ent.Client) repository.LifecycleRepository {
	return &entLifecycleRepository{client: client}
}

func (r *entLifecycleRepository) IsActive(ctx context.Context, table string, id uint) (bool, error) {
	var (
		active bool
		err    error
	)
	switch table {
	case constant.TableDocument:
		var d *ent.Document
		d, err = r.client.Document.Get(ctx, id)
		if err == nil {
			active = d.IsActive
		}
	case constant.TablePartner:
		var p *ent.Partner
		p, err = r.client.Partner.Get(ctx, id)
		if err == nil {
			active = p.IsActive
		}
	case constant.TableStaff:
		var s *ent.Staff
		s, err = r.client.Staff.Get(ctx, id)
		if err == nil {
			active = s.IsActive
		}
	case constant.TableAdvisor:
		var a *ent.Advisor
		a, err = r.client.Advisor.Get(ctx, id)
		if err == nil {
			active = a.IsActive
		}
	case constant.TableAgenda:
		var a *ent.Agenda
		a, err = r.client.Agenda.Get(ctx, id)
		if err == nil {
			active = a.IsActive
		}
	default:
		return false, fmt.Errorf("不支持软删除的表: %s", table)
	}

	if err != nil {
		if ent.IsNotFound(err) {
			return false, constant.ErrNotFound
		}
		return false, fmt.Errorf("查询 %s 记录状态失败: %w", table, err)
	}
	return active, nil
}

func (r *entLifecycleRepository) SetActive(ctx context.Context, table string, id uint, active bool) error {
	var err error
	switch table {
	case constant.TableDocument:
		_, err = r.client.Document.UpdateOneID(id).SetIsActive(active).Save(ctx)
	case constant.TablePartner:
		_, err = r.client.Partner.UpdateOneID(id).SetIsActive(active).Save(ctx)
	case constant.TableStaff:
		_, err = r.client.Staff.UpdateOneID(id).SetIsActive(active).Save(ctx)
	case constant.TableAdvisor:
		_, err = r.client.Advisor.UpdateOneID(id).SetIsActive(active).Save(ctx)
	case constant.TableAgenda:
		_, err = r.client.Agenda.UpdateOneID(id).SetIsActive(active).Save(ctx)
	default:
		return fmt.Errorf("不支持软删除的表: %s", table)
	}

	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新 %s 记录状态失败: %w", table, err)
	}
	return nil
}
