/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-11-02 12:16:18
 * @LastEditTime: 2026-01-18 19:08:52
 * @LastEditors: 安知鱼
 */
package response

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"

	"github.com/gin-gonic/gin"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码。
// 这对于返回 201 Created 等状态非常有用。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// FailWithError 根据业务标准错误选择合适的 HTTP 状态码。
// 调用方负责用户文案；这里只做错误到状态码的映射。
func FailWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrValidation), errors.Is(err, constant.ErrBadRequest),
		errors.Is(err, constant.ErrInvalidPublicID):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrUnauthorized):
		Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, constant.ErrPermission):
		Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, constant.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrConflict), errors.Is(err, constant.ErrInvalidTransition):
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, constant.ErrStorage):
		Fail(c, http.StatusBadGateway, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, err.Error())
	}
}
