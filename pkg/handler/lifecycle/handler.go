package lifecycle

import (
	"github.com/anzhiyu-c/arsip-app/internal/app/middleware"
	"github.com/anzhiyu-c/arsip-app/pkg/response"
	"github.com/anzhiyu-c/arsip-app/pkg/service/lifecycle"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理记录停用与恢复的 API 请求。
type Handler struct {
	lifecycleSvc lifecycle.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(lifecycleSvc lifecycle.Service) *Handler {
	return &Handler{lifecycleSvc: lifecycleSvc}
}

// Deactivate 处理软删除请求，记录保留在数据库中，仅从常规视图隐藏。
// @Summary      停用记录
// @Tags         生命周期
// @Produce      json
// @Param        table  path  string  true  "逻辑表名"
// @Param        id     path  string  true  "记录公共ID"
// @Success      200  {object}  response.Response  "停用成功"
// @Router       /lifecycle/{table}/{id} [delete]
func (h *Handler) Deactivate(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	if err := h.lifecycleSvc.Deactivate(c.Request.Context(), actor, c.Param("table"), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "停用成功")
}

// Restore 处理恢复请求，把已停用的记录重新放回常规视图。
// @Summary      恢复记录
// @Tags         生命周期
// @Produce      json
// @Param        table  path  string  true  "逻辑表名"
// @Param        id     path  string  true  "记录公共ID"
// @Success      200  {object}  response.Response  "恢复成功"
// @Router       /lifecycle/{table}/{id}/restore [post]
func (h *Handler) Restore(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	if err := h.lifecycleSvc.Restore(c.Request.Context(), actor, c.Param("table"), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "恢复成功")
}
