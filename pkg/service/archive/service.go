/*
 * @Description: 档案文书服务：列表、元数据维护与下载
 * @Author: 安知鱼
 * @Date: 2025-09-03 17:40:12
 * @LastEditTime: 2025-09-15 10:30:56
 * @LastEditors: 安知鱼
 */
package archive

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/arsip-app/internal/infra/storage"
	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
	"github.com/anzhiyu-c/arsip-app/pkg/service/audit"
)

// dateLayout 是请求中文书日期的格式。
const dateLayout = "2006-01-02"

// ChangePublisher 把表级变更通知发布给订阅方。
type ChangePublisher interface {
	Publish(ctx context.Context, table string) error
}

type Service interface {
	// Upload 接收文件流与元数据，完成存储写入与记录落库。
	Upload(ctx context.Context, actor model.Actor, req *model.UploadDocumentRequest, file UploadFile) (*model.DocumentDTO, error)
	// List 返回活跃文书列表。
	List(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.DocumentDTO, int, error)
	// ListTrash 返回回收站中的文书列表。
	ListTrash(ctx context.Context, actor model.Actor, req *model.ListDocumentsRequest) ([]*model.DocumentDTO, int, error)
	// CountTrash 返回回收站中的文书数量。
	CountTrash(ctx context.Context, actor model.Actor) (int, error)
	// UpdateMetadata 编辑文书的描述性字段。
	UpdateMetadata(ctx context.Context, actor model.Actor, publicID string, req *model.UpdateDocumentRequest) (*model.DocumentDTO, error)
	// GetDownloadURL 为文书生成限时下载链接。
	GetDownloadURL(ctx context.Context, actor model.Actor, publicID string) (*model.DocumentDownloadResponse, error)
}

type archiveServiceImpl struct {
	docRepo        repository.DocumentRepository
	partnerRepo    repository.PartnerRepository
	provider       storage.IStorageProvider
	auditor        audit.Recorder
	publisher      ChangePublisher
	maxUploadBytes int64
}

// NewArchiveService 是 archiveServiceImpl 的构造函数
func NewArchiveService(
	docRepo repository.DocumentRepository,
	partnerRepo repository.PartnerRepository,
	provider storage.IStorageProvider,
	auditor audit.Recorder,
	publisher ChangePublisher,
	maxUploadBytes int64,
) Service {
	if maxUploadBytes <= 0 {
		maxUploadBytes = constant.DefaultMaxUploadBytes
	}
	return &archiveServiceImpl{
		docRepo:        docRepo,
		partnerRepo:    partnerRepo,
		provider:       provider,
		auditor:        auditor,
		publisher:      publisher,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *archiveServiceImpl) List(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.DocumentDTO, int, error) {
	docs, total, err := s.docRepo.ListActive(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	dtos, err := toDocumentDTOs(docs)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

func (s *archiveServiceImpl) ListTrash(ctx context.Context, actor model.Actor, req *model.ListDocumentsRequest) ([]*model.DocumentDTO, int, error) {
	if !constant.CanManage(actor.Role) {
		return nil, 0, constant.ErrPermission
	}
	docs, total, err := s.docRepo.ListTrash(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	dtos, err := toDocumentDTOs(docs)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

func (s *archiveServiceImpl) CountTrash(ctx context.Context, actor model.Actor) (int, error) {
	if !constant.CanManage(actor.Role) {
		return 0, constant.ErrPermission
	}
	return s.docRepo.CountTrash(ctx)
}

func (s *archiveServiceImpl) UpdateMetadata(ctx context.Context, actor model.Actor, publicID string, req *model.UpdateDocumentRequest) (*model.DocumentDTO, error) {
	if !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}

	docID, err := idgen.DecodePublicIDForTable(publicID, constant.TableDocument)
	if err != nil {
		return nil, err
	}

	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if !constant.IsValidDocumentType(req.DocType) {
		return nil, fmt.Errorf("未知的文书类型 '%s': %w", req.DocType, constant.ErrValidation)
	}
	docDate, err := time.Parse(dateLayout, req.DocDate)
	if err != nil {
		return nil, fmt.Errorf("文书日期格式不正确 '%s': %w", req.DocDate, constant.ErrValidation)
	}

	var partnerID *uint
	if req.PartnerPublicID != nil && *req.PartnerPublicID != "" {
		id, err := s.resolvePartner(ctx, *req.PartnerPublicID)
		if err != nil {
			return nil, err
		}
		partnerID = &id
	}

	doc.Title = req.Title
	doc.DocType = req.DocType
	doc.DocDate = docDate
	doc.PartnerID = partnerID
	doc.Note = req.Note

	if err := s.docRepo.UpdateMetadata(ctx, doc); err != nil {
		return nil, err
	}

	s.auditor.Record(actor, constant.TableDocument, constant.AuditActionUpdate, publicID)
	s.notifyChanged(constant.TableDocument)

	return toDocumentDTO(doc)
}

func (s *archiveServiceImpl) GetDownloadURL(ctx context.Context, actor model.Actor, publicID string) (*model.DocumentDownloadResponse, error) {
	if !constant.CanUpload(actor.Role) {
		return nil, constant.ErrPermission
	}

	docID, err := idgen.DecodePublicIDForTable(publicID, constant.TableDocument)
	if err != nil {
		return nil, err
	}

	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	url, err := s.provider.SignedURL(ctx, doc.StorageKey, constant.DownloadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("生成下载链接失败 (%v): %w", err, constant.ErrStorage)
	}

	return &model.DocumentDownloadResponse{
		URL:     url,
		Expires: time.Now().Add(constant.DownloadURLTTL),
	}, nil
}

// resolvePartner 把合作方公共 ID 解析为内部 ID，并确认记录存在且活跃。
func (s *archiveServiceImpl) resolvePartner(ctx context.Context, publicID string) (uint, error) {
	id, err := idgen.DecodePublicIDForTable(publicID, constant.TablePartner)
	if err != nil {
		return 0, err
	}
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !partner.IsActive {
		return 0, fmt.Errorf("合作方 '%s' 已停用: %w", publicID, constant.ErrValidation)
	}
	return id, nil
}

// notifyChanged 发布表级变更通知，失败只记录不影响主流程。
func (s *archiveServiceImpl) notifyChanged(table string) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, table); err != nil {
		logFeedError(table, err)
	}
}

// logFeedError 记录变更通知发布失败，通知属于尽力而为。
func logFeedError(table string, err error) {
	log.Printf("[Archive] 发布 %s 的变更通知失败: %v", table, err)
}

func toDocumentDTOs(docs []*model.Document) ([]*model.DocumentDTO, error) {
	result := make([]*model.DocumentDTO, len(docs))
	for i, d := range docs {
		dto, err := toDocumentDTO(d)
		if err != nil {
			return nil, err
		}
		result[i] = dto
	}
	return result, nil
}

func toDocumentDTO(doc *model.Document) (*model.DocumentDTO, error) {
	publicID, err := idgen.GeneratePublicID(doc.ID, idgen.EntityTypeDocument)
	if err != nil {
		return nil, fmt.Errorf("生成文书公共ID失败: %w", err)
	}

	dto := &model.DocumentDTO{
		ID:        publicID,
		Title:     doc.Title,
		DocType:   doc.DocType,
		DocDate:   doc.DocDate.Format(dateLayout),
		Note:      doc.Note,
		IsActive:  doc.IsActive,
		CreatedBy: doc.CreatedBy,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}

	if doc.PartnerID != nil {
		partnerPublicID, err := idgen.GeneratePublicID(*doc.PartnerID, idgen.EntityTypePartner)
		if err != nil {
			return nil, fmt.Errorf("生成合作方公共ID失败: %w", err)
		}
		dto.PartnerID = &partnerPublicID
	}
	return dto, nil
}
