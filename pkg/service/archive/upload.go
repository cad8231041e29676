/*
 * @Description: 文书上传的事务协调：先写存储，再落库，失败补偿
 * @Author: 安知鱼
 * @Date: 2025-09-04 09:12:30
 * @LastEditTime: 2025-09-16 18:44:05
 * @LastEditors: 安知鱼
 */
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
)

// UploadFile 描述一次上传的文件流及其来源信息。
// Name 与 ContentType 来自 multipart 表单，用于文件类型判定。
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Upload 完成一次文书归档。
// 顺序是固定的：校验、写对象存储、写数据库、审计与通知。
// 存储键冲突时用时间戳后缀重试一次；落库失败时尽力删除已写入的对象。
func (s *archiveServiceImpl) Upload(ctx context.Context, actor model.Actor, req *model.UploadDocumentRequest, file UploadFile) (*model.DocumentDTO, error) {
	if !constant.CanUpload(actor.Role) {
		return nil, constant.ErrPermission
	}

	// 所有校验都发生在第一次存储交互之前
	if req.Title == "" {
		return nil, fmt.Errorf("文书标题不能为空: %w", constant.ErrValidation)
	}
	if !constant.IsValidDocumentType(req.DocType) {
		return nil, fmt.Errorf("未知的文书类型 '%s': %w", req.DocType, constant.ErrValidation)
	}
	// 类型判定对缺失或非标准的 Content-Type 宽容：扩展名与类型任一匹配即接受
	if !strings.HasSuffix(strings.ToLower(file.Name), constant.DocumentExt) &&
		!strings.Contains(strings.ToLower(file.ContentType), "pdf") {
		return nil, fmt.Errorf("仅接受 PDF 文件, 实际为 '%s' (%s): %w", file.Name, file.ContentType, constant.ErrValidation)
	}
	if file.Size <= 0 {
		return nil, fmt.Errorf("文件内容为空: %w", constant.ErrValidation)
	}
	if file.Size > s.maxUploadBytes {
		return nil, fmt.Errorf("文件大小 %d 超出上限 %d: %w", file.Size, s.maxUploadBytes, constant.ErrValidation)
	}
	docDate, err := time.Parse(dateLayout, req.DocDate)
	if err != nil {
		return nil, fmt.Errorf("文书日期格式不正确 '%s': %w", req.DocDate, constant.ErrValidation)
	}

	var partnerID *uint
	if req.PartnerPublicID != "" {
		id, err := s.resolvePartner(ctx, req.PartnerPublicID)
		if err != nil {
			return nil, err
		}
		partnerID = &id
	}

	storageKey, err := s.putWithRetry(ctx, docDate, req.DocType, req.Title, file.Reader)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		Title:      req.Title,
		DocType:    req.DocType,
		DocDate:    docDate,
		PartnerID:  partnerID,
		StorageKey: storageKey,
		Note:       req.Note,
		CreatedBy:  actor.UserID,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		// 落库失败则补偿删除已写入的对象，补偿失败只记录。
		// 残留对象由孤儿扫描任务兜底发现。
		if delErr := s.provider.Delete(ctx, storageKey); delErr != nil {
			log.Printf("[Archive] 补偿删除对象 '%s' 失败: %v", storageKey, delErr)
		}
		return nil, fmt.Errorf("保存文书记录失败 (%v): %w", err, constant.ErrPersistence)
	}

	publicID, err := idgen.GeneratePublicID(doc.ID, idgen.EntityTypeDocument)
	if err != nil {
		return nil, fmt.Errorf("生成文书公共ID失败: %w", err)
	}

	s.auditor.Record(actor, constant.TableDocument, constant.AuditActionCreate, publicID)
	s.notifyChanged(constant.TableDocument)

	return toDocumentDTO(doc)
}

// putWithRetry 把文件写入对象存储。
// 首选键冲突时追加毫秒时间戳再试一次，第二次冲突直接返回。
// 文件内容先读入内存，保证重试时流可以重放（上限已在调用侧校验）。
func (s *archiveServiceImpl) putWithRetry(ctx context.Context, docDate time.Time, docType, title string, file io.Reader) (string, error) {
	content, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	if int64(len(content)) > s.maxUploadBytes {
		return "", fmt.Errorf("文件大小超出上限 %d: %w", s.maxUploadBytes, constant.ErrValidation)
	}

	key := BuildStorageKey(docDate, docType, title)

	err = s.provider.Put(ctx, key, bytes.NewReader(content), constant.DocumentContentType, false)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, constant.ErrConflict) {
		return "", fmt.Errorf("写入对象存储失败 (%v): %w", err, constant.ErrStorage)
	}

	retryKey := RetryStorageKey(key, time.Now())
	log.Printf("[Archive] 存储键 '%s' 已存在，重试为 '%s'", key, retryKey)

	if err := s.provider.Put(ctx, retryKey, bytes.NewReader(content), constant.DocumentContentType, false); err != nil {
		if errors.Is(err, constant.ErrConflict) {
			return "", fmt.Errorf("重试键 '%s' 仍然冲突: %w", retryKey, constant.ErrConflict)
		}
		return "", fmt.Errorf("写入对象存储失败 (%v): %w", err, constant.ErrStorage)
	}
	return retryKey, nil
}
