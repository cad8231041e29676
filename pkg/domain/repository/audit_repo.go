/*
 * @Description: 审计流水仓储接口
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:34:27
 * @LastEditTime: 2025-09-03 20:01:55
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
)

// AuditRepository 是只追加的审计流水仓储。
type AuditRepository interface {
	Create(ctx context.Context, ev *model.AuditEvent) error
	List(ctx context.Context, req *model.ListAuditRequest) ([]*model.AuditEvent, int, error)
}
