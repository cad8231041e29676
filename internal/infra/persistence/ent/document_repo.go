/*
 * @Description: 文书仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:05:33
 * @LastEditTime: 2025-09-10 10:28:47
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
	"github.com/anzhiyu-c/arsip-app/ent/document"
)

type entDocumentRepository struct {
	client *ent.Client
}

// NewEntDocumentRepository 是 entDocumentRepository 的构造函数
func NewEntDocumentRepository(client *ent.Client) repository.DocumentRepository {
	return &entDocumentRepository{client: client}
}

func (r *entDocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	create := r.client.Document.Create().
		SetTitle(doc.Title).
		SetDocType(document.DocType(doc.DocType)).
		SetDocDate(doc.DocDate).
		SetStorageKey(doc.StorageKey).
		SetNote(doc.Note).
		SetCreatedBy(doc.CreatedBy)
	if doc.PartnerID != nil {
		create.SetPartnerID(*doc.PartnerID)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("存储键已存在: %w", constant.ErrConflict)
		}
		return fmt.Errorf("创建文书记录失败: %w", err)
	}

	doc.ID = saved.ID
	doc.IsActive = saved.IsActive
	doc.CreatedAt = saved.CreatedAt
	doc.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *entDocumentRepository) GetByID(ctx context.Context, id uint) (*model.Document, error) {
	d, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询文书失败: %w", err)
	}
	return toDomainDocument(d), nil
}

func (r *entDocumentRepository) UpdateMetadata(ctx context.Context, doc *model.Document) error {
	update := r.client.Document.UpdateOneID(doc.ID).
		SetTitle(doc.Title).
		SetDocType(document.DocType(doc.DocType)).
		SetDocDate(doc.DocDate).
		SetNote(doc.Note)
	if doc.PartnerID != nil {
		update.SetPartnerID(*doc.PartnerID)
	} else {
		update.ClearPartnerID()
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新文书元数据失败: %w", err)
	}
	return nil
}

func (r *entDocumentRepository) ListActive(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.Document, int, error) {
	return r.list(ctx, req, true)
}

func (r *entDocumentRepository) ListTrash(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.Document, int, error) {
	return r.list(ctx, req, false)
}

func (r *entDocumentRepository) list(ctx context.Context, req *model.ListDocumentsRequest, active bool) ([]*model.Document, int, error) {
	query := r.client.Document.Query().
		Where(document.IsActive(active))

	if req.DocType != "" {
		query = query.Where(document.DocTypeEQ(document.DocType(req.DocType)))
	}
	if req.Keyword != "" {
		query = query.Where(document.TitleContains(req.Keyword))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("统计文书数量失败: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	docs, err := query.
		Order(ent.Desc(document.FieldDocDate), ent.Desc(document.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询文书列表失败: %w", err)
	}

	result := make([]*model.Document, len(docs))
	for i, d := range docs {
		result[i] = toDomainDocument(d)
	}
	return result, total, nil
}

func (r *entDocumentRepository) CountTrash(ctx context.Context) (int, error) {
	count, err := r.client.Document.Query().
		Where(document.IsActive(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计回收站文书数量失败: %w", err)
	}
	return count, nil
}

func (r *entDocumentRepository) ExistsByStorageKey(ctx context.Context, key string) (bool, error) {
	exists, err := r.client.Document.Query().
		Where(document.StorageKey(key)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("查询存储键是否存在失败: %w", err)
	}
	return exists, nil
}

// toDomainDocument 将 *ent.Document 转换为 *model.Document.
func toDomainDocument(d *ent.Document) *model.Document {
	if d == nil {
		return nil
	}
	return &model.Document{
		ID:         d.ID,
		Title:      d.Title,
		DocType:    string(d.DocType),
		DocDate:    d.DocDate,
		PartnerID:  d.PartnerID,
		StorageKey: d.StorageKey,
		Note:       d.Note,
		IsActive:   d.IsActive,
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
