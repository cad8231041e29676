package archive

import (
	"io"
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/arsip-app/internal/app/middleware"
	"github.com/anzhiyu-c/arsip-app/internal/infra/storage"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/response"
	"github.com/anzhiyu-c/arsip-app/pkg/service/archive"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理档案文书相关的 API 请求。
type Handler struct {
	archiveSvc archive.Service
	provider   storage.IStorageProvider
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(archiveSvc archive.Service, provider storage.IStorageProvider) *Handler {
	return &Handler{archiveSvc: archiveSvc, provider: provider}
}

// Upload 处理文书上传请求。
// @Summary      上传文书
// @Description  上传一份 PDF 文书并登记元数据
// @Tags         档案
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF 文件"
// @Success      200  {object}  response.Response{data=model.DocumentDTO}  "归档成功"
// @Failure      400  {object}  response.Response  "参数无效"
// @Failure      409  {object}  response.Response  "存储键冲突"
// @Router       /archive/documents [post]
func (h *Handler) Upload(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req model.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少上传文件: "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "读取上传文件失败: "+err.Error())
		return
	}
	defer file.Close()

	dto, err := h.archiveSvc.Upload(c.Request.Context(), actor, &req, archive.UploadFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "归档成功")
}

// List 处理活跃文书列表请求。
// @Summary      获取文书列表
// @Tags         档案
// @Produce      json
// @Success      200  {object}  response.Response  "获取成功"
// @Router       /archive/documents [get]
func (h *Handler) List(c *gin.Context) {
	var req model.ListDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	list, total, err := h.archiveSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list, "total": total}, "获取成功")
}

// ListTrash 处理回收站文书列表请求。
// @Summary      获取回收站文书列表
// @Tags         档案
// @Produce      json
// @Success      200  {object}  response.Response  "获取成功"
// @Failure      403  {object}  response.Response  "无权限"
// @Router       /archive/documents/trash [get]
func (h *Handler) ListTrash(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req model.ListDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	list, total, err := h.archiveSvc.ListTrash(c.Request.Context(), actor, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list, "total": total}, "获取成功")
}

// CountTrash 处理回收站文书计数请求。
// @Summary      获取回收站文书数量
// @Tags         档案
// @Produce      json
// @Success      200  {object}  response.Response  "获取成功"
// @Router       /archive/documents/trash/count [get]
func (h *Handler) CountTrash(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	count, err := h.archiveSvc.CountTrash(c.Request.Context(), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, gin.H{"count": count}, "获取成功")
}

// UpdateMetadata 处理文书元数据编辑请求。
// @Summary      编辑文书元数据
// @Tags         档案
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "文书公共ID"
// @Success      200  {object}  response.Response{data=model.DocumentDTO}  "更新成功"
// @Failure      403  {object}  response.Response  "无权限"
// @Router       /archive/documents/{id} [put]
func (h *Handler) UpdateMetadata(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)
	publicID := c.Param("id")

	var req model.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	dto, err := h.archiveSvc.UpdateMetadata(c.Request.Context(), actor, publicID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "更新成功")
}

// GetDownloadURL 处理文书下载链接请求。
// @Summary      获取文书下载链接
// @Description  生成一个限时的签名下载链接
// @Tags         档案
// @Produce      json
// @Param        id  path  string  true  "文书公共ID"
// @Success      200  {object}  response.Response{data=model.DocumentDownloadResponse}  "获取成功"
// @Router       /archive/documents/{id}/download-url [get]
func (h *Handler) GetDownloadURL(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)
	publicID := c.Param("id")

	result, err := h.archiveSvc.GetDownloadURL(c.Request.Context(), actor, publicID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// DownloadLocal 校验签名后直接流式返回本地存储中的对象。
// 只有本地存储驱动会生成指向此接口的链接。
func (h *Handler) DownloadLocal(c *gin.Context) {
	local, ok := h.provider.(*storage.LocalProvider)
	if !ok {
		response.Fail(c, http.StatusNotFound, "当前存储驱动不支持本地下载")
		return
	}

	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的过期时间")
		return
	}
	sign := c.Query("sign")
	if !local.VerifySign(key, expires, sign) {
		response.Fail(c, http.StatusForbidden, "签名无效或已过期")
		return
	}

	reader, err := local.Open(key)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment")
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// 连接中断时无法再写响应体，只能放弃
		return
	}
}
