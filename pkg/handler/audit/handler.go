package audit

import (
	"log"
	"net/http"

	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
	"github.com/anzhiyu-c/arsip-app/pkg/response"
	"github.com/anzhiyu-c/arsip-app/pkg/service/audit"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理审计流水的查询请求。
type Handler struct {
	auditSvc audit.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(auditSvc audit.Service) *Handler {
	return &Handler{auditSvc: auditSvc}
}

// List 处理审计流水的分页查询。
// @Summary      获取审计流水
// @Tags         审计
// @Produce      json
// @Param        page        query  int     false  "页码"
// @Param        pageSize    query  int     false  "每页数量"
// @Param        table_name  query  string  false  "按逻辑表名过滤"
// @Param        user_id     query  string  false  "按操作人过滤"
// @Success      200  {object}  response.Response  "获取成功"
// @Router       /audit/events [get]
func (h *Handler) List(c *gin.Context) {
	var req model.ListAuditRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	events, total, err := h.auditSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	dtos := make([]*model.AuditEventDTO, 0, len(events))
	for _, e := range events {
		publicID, err := idgen.GeneratePublicID(e.ID, idgen.EntityTypeAuditLog)
		if err != nil {
			log.Printf("[AuditHandler] 警告: 生成审计记录 %d 的公共ID失败: %v", e.ID, err)
			continue
		}
		dtos = append(dtos, &model.AuditEventDTO{
			ID:        publicID,
			UserID:    e.UserID,
			TableName: e.TableName,
			Action:    e.Action,
			RecordID:  e.RecordID,
			CreatedAt: e.CreatedAt,
		})
	}

	response.Success(c, gin.H{"list": dtos, "total": total}, "获取成功")
}
