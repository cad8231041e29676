package agenda

import (
	"net/http"

	"github.com/anzhiyu-c/arsip-app/internal/app/middleware"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/response"
	"github.com/anzhiyu-c/arsip-app/pkg/service/agenda"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理工作议程相关的 API 请求。
type Handler struct {
	agendaSvc agenda.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(agendaSvc agenda.Service) *Handler {
	return &Handler{agendaSvc: agendaSvc}
}

// Create 处理新增议程的请求。
// @Summary      新增工作议程
// @Tags         工作议程
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=model.AgendaDTO}  "创建成功"
// @Router       /agendas [post]
func (h *Handler) Create(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.AgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.agendaSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "创建成功")
}

// Update 处理更新议程的请求。
// @Summary      更新工作议程
// @Tags         工作议程
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "议程公共ID"
// @Success      200  {object}  response.Response{data=model.AgendaDTO}  "更新成功"
// @Router       /agendas/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.AgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.agendaSvc.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "更新成功")
}

// List 处理议程列表请求。
// @Summary      获取议程列表
// @Tags         工作议程
// @Produce      json
// @Success      200  {object}  response.Response  "获取成功"
// @Router       /agendas [get]
func (h *Handler) List(c *gin.Context) {
	var req model.ListAgendasRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	list, total, err := h.agendaSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list, "total": total}, "获取成功")
}
