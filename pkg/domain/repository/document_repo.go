/*
 * @Description: 文书仓储接口
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:20:18
 * @LastEditTime: 2025-09-07 14:02:41
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
)

type DocumentRepository interface {
	// Create 持久化一份新文书，成功后回填 ID 与时间戳。
	Create(ctx context.Context, doc *model.Document) error
	GetByID(ctx context.Context, id uint) (*model.Document, error)
	// UpdateMetadata 只更新描述性字段，存储键不可变。
	UpdateMetadata(ctx context.Context, doc *model.Document) error
	// ListActive 返回活跃文书，按文书日期倒序、创建时间倒序。
	ListActive(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.Document, int, error)
	// ListTrash 返回回收站中的文书。
	ListTrash(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.Document, int, error)
	CountTrash(ctx context.Context) (int, error)
	ExistsByStorageKey(ctx context.Context, key string) (bool, error)
}
