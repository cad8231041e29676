/*
 * @Description: 部门活动日程服务
 * @Author: 安知鱼
 * @Date: 2025-09-05 16:40:08
 * @LastEditTime: 2025-09-18 09:15:41
 * @LastEditors: 安知鱼
 */
package agenda

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
	"github.com/anzhiyu-c/arsip-app/pkg/service/audit"
)

const dateLayout = "2006-01-02"

// ChangePublisher 把表级变更通知发布给订阅方。
type ChangePublisher interface {
	Publish(ctx context.Context, table string) error
}

type Service interface {
	Create(ctx context.Context, actor model.Actor, req *model.AgendaRequest) (*model.AgendaDTO, error)
	Update(ctx context.Context, actor model.Actor, publicID string, req *model.AgendaRequest) (*model.AgendaDTO, error)
	List(ctx context.Context, req *model.ListAgendasRequest) ([]*model.AgendaDTO, int, error)
}

type agendaServiceImpl struct {
	agendaRepo  repository.AgendaRepository
	partnerRepo repository.PartnerRepository
	auditor     audit.Recorder
	publisher   ChangePublisher
}

// NewAgendaService 是 agendaServiceImpl 的构造函数
func NewAgendaService(
	agendaRepo repository.AgendaRepository,
	partnerRepo repository.PartnerRepository,
	auditor audit.Recorder,
	publisher ChangePublisher,
) Service {
	return &agendaServiceImpl{
		agendaRepo:  agendaRepo,
		partnerRepo: partnerRepo,
		auditor:     auditor,
		publisher:   publisher,
	}
}

func (s *agendaServiceImpl) Create(ctx context.Context, actor model.Actor, req *model.AgendaRequest) (*model.AgendaDTO, error) {
	if !constant.CanUpload(actor.Role) {
		return nil, constant.ErrPermission
	}

	item, err := s.buildAgenda(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.agendaRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	dto, err := toAgendaDTO(item)
	if err != nil {
		return nil, err
	}
	s.auditor.Record(actor, constant.TableAgenda, constant.AuditActionCreate, dto.ID)
	s.notifyChanged()
	return dto, nil
}

func (s *agendaServiceImpl) Update(ctx context.Context, actor model.Actor, publicID string, req *model.AgendaRequest) (*model.AgendaDTO, error) {
	if !constant.CanUpload(actor.Role) {
		return nil, constant.ErrPermission
	}

	id, err := idgen.DecodePublicIDForTable(publicID, constant.TableAgenda)
	if err != nil {
		return nil, err
	}
	existing, err := s.agendaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := s.buildAgenda(ctx, req)
	if err != nil {
		return nil, err
	}
	// 状态迁移（rencana -> selesai/batal 等）是管理级操作
	if item.Status != existing.Status && !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}
	item.ID = existing.ID
	item.IsActive = existing.IsActive

	if err := s.agendaRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.auditor.Record(actor, constant.TableAgenda, constant.AuditActionUpdate, publicID)
	s.notifyChanged()
	return toAgendaDTO(item)
}

func (s *agendaServiceImpl) List(ctx context.Context, req *model.ListAgendasRequest) ([]*model.AgendaDTO, int, error) {
	list, total, err := s.agendaRepo.ListActive(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	result := make([]*model.AgendaDTO, len(list))
	for i, a := range list {
		if result[i], err = toAgendaDTO(a); err != nil {
			return nil, 0, err
		}
	}
	return result, total, nil
}

// buildAgenda 校验请求并组装领域模型，活动状态缺省为 rencana。
func (s *agendaServiceImpl) buildAgenda(ctx context.Context, req *model.AgendaRequest) (*model.Agenda, error) {
	if req.Kind != constant.AgendaKindInternal && req.Kind != constant.AgendaKindEksternal {
		return nil, fmt.Errorf("未知的活动类型 '%s': %w", req.Kind, constant.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = constant.AgendaStatusRencana
	}
	switch status {
	case constant.AgendaStatusRencana, constant.AgendaStatusSelesai, constant.AgendaStatusBatal:
	default:
		return nil, fmt.Errorf("未知的活动状态 '%s': %w", status, constant.ErrValidation)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("活动日期格式不正确 '%s': %w", req.Date, constant.ErrValidation)
	}

	var partnerID *uint
	if req.PartnerPublicID != nil && *req.PartnerPublicID != "" {
		id, err := idgen.DecodePublicIDForTable(*req.PartnerPublicID, constant.TablePartner)
		if err != nil {
			return nil, err
		}
		if _, err := s.partnerRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		partnerID = &id
	}

	return &model.Agenda{
		Name:       req.Name,
		Date:       date,
		Kind:       req.Kind,
		Status:     status,
		PartnerID:  partnerID,
		ResultNote: req.ResultNote,
	}, nil
}

func (s *agendaServiceImpl) notifyChanged() {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, constant.TableAgenda); err != nil {
		log.Printf("[Agenda] 发布 %s 的变更通知失败: %v", constant.TableAgenda, err)
	}
}

func toAgendaDTO(a *model.Agenda) (*model.AgendaDTO, error) {
	publicID, err := idgen.GeneratePublicID(a.ID, idgen.EntityTypeAgenda)
	if err != nil {
		return nil, err
	}

	dto := &model.AgendaDTO{
		ID:         publicID,
		Name:       a.Name,
		Date:       a.Date.Format(dateLayout),
		Kind:       a.Kind,
		Status:     a.Status,
		ResultNote: a.ResultNote,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
	}
	if a.PartnerID != nil {
		partnerPublicID, err := idgen.GeneratePublicID(*a.PartnerID, idgen.EntityTypePartner)
		if err != nil {
			return nil, err
		}
		dto.PartnerID = &partnerPublicID
	}
	return dto, nil
}
