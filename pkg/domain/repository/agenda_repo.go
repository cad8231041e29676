/*
 * @Description: 活动日程仓储接口
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:31:02
 * @LastEditTime: 2025-09-04 10:15:36
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
)

type AgendaRepository interface {
	Create(ctx context.Context, a *model.Agenda) error
	GetByID(ctx context.Context, id uint) (*model.Agenda, error)
	Update(ctx context.Context, a *model.Agenda) error
	// ListActive 按活动日期倒序返回活跃的活动。
	ListActive(ctx context.Context, req *model.ListAgendasRequest) ([]*model.Agenda, int, error)
}
