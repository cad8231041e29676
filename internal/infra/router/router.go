/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:30:55
 * @LastEditTime: 2026-02-11 18:26:37
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/arsip-app/internal/app/middleware"
	agenda_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/agenda"
	archive_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/archive"
	audit_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/audit"
	lifecycle_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/lifecycle"
	realtime_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/realtime"
	reference_handler "github.com/anzhiyu-c/arsip-app/pkg/handler/reference"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		// 🚫 强制禁用所有形式的缓存
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		// 继续处理请求
		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	archiveHandler   *archive_handler.Handler
	referenceHandler *reference_handler.Handler
	agendaHandler    *agenda_handler.Handler
	lifecycleHandler *lifecycle_handler.Handler
	auditHandler     *audit_handler.Handler
	realtimeHandler  *realtime_handler.Handler
	mw               *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	archiveHandler *archive_handler.Handler,
	referenceHandler *reference_handler.Handler,
	agendaHandler *agenda_handler.Handler,
	lifecycleHandler *lifecycle_handler.Handler,
	auditHandler *audit_handler.Handler,
	realtimeHandler *realtime_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		archiveHandler:   archiveHandler,
		referenceHandler: referenceHandler,
		agendaHandler:    agendaHandler,
		lifecycleHandler: lifecycleHandler,
		auditHandler:     auditHandler,
		realtimeHandler:  realtimeHandler,
		mw:               mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 main.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	// 创建 /api 分组
	apiGroup := engine.Group("/api")
	// 应用全局反缓存中间件
	apiGroup.Use(NoCacheMiddleware())

	// 本地存储的签名下载链接，由 HMAC 签名保护，无需登录态
	apiGroup.GET("/download/local/*key", r.archiveHandler.DownloadLocal)

	// 以下路由都要求有效的登录态
	authGroup := apiGroup.Group("")
	authGroup.Use(r.mw.JWTAuth())
	{
		// 归档文书：全部成员可读，上传与下载链接需要上传权限
		archiveGroup := authGroup.Group("/archive")
		{
			archiveGroup.GET("/documents", r.archiveHandler.List)
			archiveGroup.GET("/documents/:id/download", r.mw.RequireUploadRole(), r.archiveHandler.GetDownloadURL)
			archiveGroup.POST("/documents", r.mw.RequireUploadRole(), r.archiveHandler.Upload)

			// 回收站与元数据维护属于管理操作
			manageGroup := archiveGroup.Group("")
			manageGroup.Use(r.mw.RequireManageRole())
			{
				manageGroup.GET("/documents/trash", r.archiveHandler.ListTrash)
				manageGroup.GET("/documents/trash/count", r.archiveHandler.CountTrash)
				manageGroup.PUT("/documents/:id", r.archiveHandler.UpdateMetadata)
			}
		}

		// 基础数据：合作方、成员、指导老师
		referenceGroup := authGroup.Group("/reference")
		{
			referenceGroup.GET("/partners", r.referenceHandler.ListPartners)
			referenceGroup.GET("/staff", r.referenceHandler.ListStaff)
			referenceGroup.GET("/advisors", r.referenceHandler.ListAdvisors)

			manageGroup := referenceGroup.Group("")
			manageGroup.Use(r.mw.RequireManageRole())
			{
				manageGroup.POST("/partners", r.referenceHandler.CreatePartner)
				manageGroup.PUT("/partners/:id", r.referenceHandler.UpdatePartner)
				manageGroup.POST("/staff", r.referenceHandler.CreateStaff)
				manageGroup.PUT("/staff/:id", r.referenceHandler.UpdateStaff)
				manageGroup.POST("/advisors", r.referenceHandler.CreateAdvisor)
				manageGroup.PUT("/advisors/:id", r.referenceHandler.UpdateAdvisor)
			}
		}

		// 工作议程：录入级即可创建与编辑，状态迁移由服务层再做管理级检查
		agendaGroup := authGroup.Group("/agendas")
		{
			agendaGroup.GET("", r.agendaHandler.List)
			agendaGroup.POST("", r.mw.RequireUploadRole(), r.agendaHandler.Create)
			agendaGroup.PUT("/:id", r.mw.RequireUploadRole(), r.agendaHandler.Update)
		}

		// 软删除生命周期，对所有受管理表统一生效
		lifecycleGroup := authGroup.Group("/lifecycle")
		lifecycleGroup.Use(r.mw.RequireManageRole())
		{
			lifecycleGroup.DELETE("/:table/:id", r.lifecycleHandler.Deactivate)
			lifecycleGroup.POST("/:table/:id/restore", r.lifecycleHandler.Restore)
		}

		// 审计流水只对管理角色开放
		auditGroup := authGroup.Group("/audit")
		auditGroup.Use(r.mw.RequireManageRole())
		{
			auditGroup.GET("/events", r.auditHandler.List)
		}

		// 数据变更事件流
		authGroup.GET("/realtime/stream", r.realtimeHandler.Stream)
	}
}
