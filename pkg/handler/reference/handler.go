package reference

import (
	"net/http"

	"github.com/anzhiyu-c/arsip-app/internal/app/middleware"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/response"
	"github.com/anzhiyu-c/arsip-app/pkg/service/reference"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理合作方、成员与指导老师的 API 请求。
type Handler struct {
	referenceSvc reference.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(referenceSvc reference.Service) *Handler {
	return &Handler{referenceSvc: referenceSvc}
}

// --- 合作方 ---

// CreatePartner 处理新增合作方的请求。
// @Summary      新增合作方
// @Tags         基础数据
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=model.PartnerDTO}  "创建成功"
// @Router       /reference/partners [post]
func (h *Handler) CreatePartner(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.referenceSvc.CreatePartner(c.Request.Context(), actor, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "创建成功")
}

// UpdatePartner 处理更新合作方的请求。
// @Summary      更新合作方
// @Tags         基础数据
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "合作方公共ID"
// @Success      200  {object}  response.Response{data=model.PartnerDTO}  "更新成功"
// @Router       /reference/partners/{id} [put]
func (h *Handler) UpdatePartner(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.referenceSvc.UpdatePartner(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "更新成功")
}

// ListPartners 处理合作方列表请求。
// @Summary      获取合作方列表
// @Tags         基础数据
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.PartnerDTO}  "获取成功"
// @Router       /reference/partners [get]
func (h *Handler) ListPartners(c *gin.Context) {
	list, err := h.referenceSvc.ListPartners(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, list, "获取成功")
}

// --- 部门成员 ---

// CreateStaff 处理新增成员的请求。
// @Summary      新增成员
// @Tags         基础数据
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=model.StaffDTO}  "创建成功"
// @Router       /reference/staff [post]
func (h *Handler) CreateStaff(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.referenceSvc.CreateStaff(c.Request.Context(), actor, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "创建成功")
}

// UpdateStaff 处理更新成员的请求。
// @Summary      更新成员
// @Tags         基础数据
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "成员公共ID"
// @Success      200  {object}  response.Response{data=model.StaffDTO}  "更新成功"
// @Router       /reference/staff/{id} [put]
func (h *Handler) UpdateStaff(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.referenceSvc.UpdateStaff(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "更新成功")
}

// ListStaff 处理成员列表请求。
// @Summary      获取成员列表
// @Tags         基础数据
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.StaffDTO}  "获取成功"
// @Router       /reference/staff [get]
func (h *Handler) ListStaff(c *gin.Context) {
	list, err := h.referenceSvc.ListStaff(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, list, "获取成功")
}

// --- 指导老师 ---

// CreateAdvisor 处理新增指导老师的请求。
// @Summary      新增指导老师
// @Tags         基础数据
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=model.AdvisorDTO}  "创建成功"
// @Router       /reference/advisors [post]
func (h *Handler) CreateAdvisor(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.AdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.referenceSvc.CreateAdvisor(c.Request.Context(), actor, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "创建成功")
}

// UpdateAdvisor 处理更新指导老师的请求。
// @Summary      更新指导老师
// @Tags         基础数据
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "指导老师公共ID"
// @Success      200  {object}  response.Response{data=model.AdvisorDTO}  "更新成功"
// @Router       /reference/advisors/{id} [put]
func (h *Handler) UpdateAdvisor(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.AdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.referenceSvc.UpdateAdvisor(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "更新成功")
}

// ListAdvisors 处理指导老师列表请求。
// @Summary      获取指导老师列表
// @Tags         基础数据
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.AdvisorDTO}  "获取成功"
// @Router       /reference/advisors [get]
func (h *Handler) ListAdvisors(c *gin.Context) {
	list, err := h.referenceSvc.ListAdvisors(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, list, "获取成功")
}
