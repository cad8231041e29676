/*
 * @Description: 合作方、部门成员与指导老师的维护服务
 * @Author: 安知鱼
 * @Date: 2025-09-05 14:18:55
 * @LastEditTime: 2025-09-18 09:02:23
 * @LastEditors: 安知鱼
 */
package reference

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
	"github.com/anzhiyu-c/arsip-app/pkg/service/audit"
)

// ChangePublisher 把表级变更通知发布给订阅方。
type ChangePublisher interface {
	Publish(ctx context.Context, table string) error
}

type Service interface {
	CreatePartner(ctx context.Context, actor model.Actor, req *model.PartnerRequest) (*model.PartnerDTO, error)
	UpdatePartner(ctx context.Context, actor model.Actor, publicID string, req *model.PartnerRequest) (*model.PartnerDTO, error)
	ListPartners(ctx context.Context) ([]*model.PartnerDTO, error)

	CreateStaff(ctx context.Context, actor model.Actor, req *model.StaffRequest) (*model.StaffDTO, error)
	UpdateStaff(ctx context.Context, actor model.Actor, publicID string, req *model.StaffRequest) (*model.StaffDTO, error)
	ListStaff(ctx context.Context) ([]*model.StaffDTO, error)

	CreateAdvisor(ctx context.Context, actor model.Actor, req *model.AdvisorRequest) (*model.AdvisorDTO, error)
	UpdateAdvisor(ctx context.Context, actor model.Actor, publicID string, req *model.AdvisorRequest) (*model.AdvisorDTO, error)
	ListAdvisors(ctx context.Context) ([]*model.AdvisorDTO, error)
}

type referenceServiceImpl struct {
	partnerRepo repository.PartnerRepository
	staffRepo   repository.StaffRepository
	advisorRepo repository.AdvisorRepository
	auditor     audit.Recorder
	publisher   ChangePublisher
}

// NewReferenceService 是 referenceServiceImpl 的构造函数
func NewReferenceService(
	partnerRepo repository.PartnerRepository,
	staffRepo repository.StaffRepository,
	advisorRepo repository.AdvisorRepository,
	auditor audit.Recorder,
	publisher ChangePublisher,
) Service {
	return &referenceServiceImpl{
		partnerRepo: partnerRepo,
		staffRepo:   staffRepo,
		advisorRepo: advisorRepo,
		auditor:     auditor,
		publisher:   publisher,
	}
}

func (s *referenceServiceImpl) CreatePartner(ctx context.Context, actor model.Actor, req *model.PartnerRequest) (*model.PartnerDTO, error) {
	if !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}

	partner := &model.Partner{
		Name:    req.Name,
		Contact: req.Contact,
		Note:    req.Note,
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}

	dto, err := toPartnerDTO(partner)
	if err != nil {
		return nil, err
	}
	s.auditor.Record(actor, constant.TablePartner, constant.AuditActionCreate, dto.ID)
	s.notifyChanged(constant.TablePartner)
	return dto, nil
}

func (s *referenceServiceImpl) UpdatePartner(ctx context.Context, actor model.Actor, publicID string, req *model.PartnerRequest) (*model.PartnerDTO, error) {
	if !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}

	id, err := idgen.DecodePublicIDForTable(publicID, constant.TablePartner)
	if err != nil {
		return nil, err
	}
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	partner.Name = req.Name
	partner.Contact = req.Contact
	partner.Note = req.Note
	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, err
	}

	s.auditor.Record(actor, constant.TablePartner, constant.AuditActionUpdate, publicID)
	s.notifyChanged(constant.TablePartner)
	return toPartnerDTO(partner)
}

func (s *referenceServiceImpl) ListPartners(ctx context.Context) ([]*model.PartnerDTO, error) {
	partners, err := s.partnerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.PartnerDTO, len(partners))
	for i, p := range partners {
		if result[i], err = toPartnerDTO(p); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *referenceServiceImpl) CreateStaff(ctx context.Context, actor model.Actor, req *model.StaffRequest) (*model.StaffDTO, error) {
	if !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}

	staff := &model.Staff{
		Name:     req.Name,
		Position: req.Position,
		Contact:  req.Contact,
		Period:   req.Period,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	dto, err := toStaffDTO(staff)
	if err != nil {
		return nil, err
	}
	s.auditor.Record(actor, constant.TableStaff, constant.AuditActionCreate, dto.ID)
	s.notifyChanged(constant.TableStaff)
	return dto, nil
}

func (s *referenceServiceImpl) UpdateStaff(ctx context.Context, actor model.Actor, publicID string, req *model.StaffRequest) (*model.StaffDTO, error) {
	if !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}

	id, err := idgen.DecodePublicIDForTable(publicID, constant.TableStaff)
	if err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	staff.Name = req.Name
	staff.Position = req.Position
	staff.Contact = req.Contact
	staff.Period = req.Period
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	s.auditor.Record(actor, constant.TableStaff, constant.AuditActionUpdate, publicID)
	s.notifyChanged(constant.TableStaff)
	return toStaffDTO(staff)
}

func (s *referenceServiceImpl) ListStaff(ctx context.Context) ([]*model.StaffDTO, error) {
	list, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.StaffDTO, len(list))
	for i, st := range list {
		if result[i], err = toStaffDTO(st); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *referenceServiceImpl) CreateAdvisor(ctx context.Context, actor model.Actor, req *model.AdvisorRequest) (*model.AdvisorDTO, error) {
	if !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}

	advisor := &model.Advisor{
		Name:    req.Name,
		Role:    req.Role,
		Contact: req.Contact,
		Note:    req.Note,
	}
	if err := s.advisorRepo.Create(ctx, advisor); err != nil {
		return nil, err
	}

	dto, err := toAdvisorDTO(advisor)
	if err != nil {
		return nil, err
	}
	s.auditor.Record(actor, constant.TableAdvisor, constant.AuditActionCreate, dto.ID)
	s.notifyChanged(constant.TableAdvisor)
	return dto, nil
}

func (s *referenceServiceImpl) UpdateAdvisor(ctx context.Context, actor model.Actor, publicID string, req *model.AdvisorRequest) (*model.AdvisorDTO, error) {
	if !constant.CanManage(actor.Role) {
		return nil, constant.ErrPermission
	}

	id, err := idgen.DecodePublicIDForTable(publicID, constant.TableAdvisor)
	if err != nil {
		return nil, err
	}
	advisor, err := s.advisorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	advisor.Name = req.Name
	advisor.Role = req.Role
	advisor.Contact = req.Contact
	advisor.Note = req.Note
	if err := s.advisorRepo.Update(ctx, advisor); err != nil {
		return nil, err
	}

	s.auditor.Record(actor, constant.TableAdvisor, constant.AuditActionUpdate, publicID)
	s.notifyChanged(constant.TableAdvisor)
	return toAdvisorDTO(advisor)
}

func (s *referenceServiceImpl) ListAdvisors(ctx context.Context) ([]*model.AdvisorDTO, error) {
	list, err := s.advisorRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.AdvisorDTO, len(list))
	for i, a := range list {
		if result[i], err = toAdvisorDTO(a); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *referenceServiceImpl) notifyChanged(table string) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, table); err != nil {
		log.Printf("[Reference] 发布 %s 的变更通知失败: %v", table, err)
	}
}

func toPartnerDTO(p *model.Partner) (*model.PartnerDTO, error) {
	publicID, err := idgen.GeneratePublicID(p.ID, idgen.EntityTypePartner)
	if err != nil {
		return nil, err
	}
	return &model.PartnerDTO{
		ID:        publicID,
		Name:      p.Name,
		Contact:   p.Contact,
		Note:      p.Note,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}, nil
}

func toStaffDTO(s *model.Staff) (*model.StaffDTO, error) {
	publicID, err := idgen.GeneratePublicID(s.ID, idgen.EntityTypeStaff)
	if err != nil {
		return nil, err
	}
	return &model.StaffDTO{
		ID:        publicID,
		Name:      s.Name,
		Position:  s.Position,
		Contact:   s.Contact,
		Period:    s.Period,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}, nil
}

func toAdvisorDTO(a *model.Advisor) (*model.AdvisorDTO, error) {
	publicID, err := idgen.GeneratePublicID(a.ID, idgen.EntityTypeAdvisor)
	if err != nil {
		return nil, err
	}
	return &model.AdvisorDTO{
		ID:        publicID,
		Name:      a.Name,
		Role:      a.Role,
		Contact:   a.Contact,
		Note:      a.Note,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}, nil
}
