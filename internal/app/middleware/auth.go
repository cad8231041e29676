/*
 * @Description: JWT 认证与角色权限中间件
 * @Author: 安知鱼
 * @Date: 2025-09-03 11:15:02
 * @LastEditTime: 2026-02-10 18:40:11
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net/http"
	"strings"

	"github.com/anzhiyu-c/arsip-app/internal/pkg/auth"
	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/response"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	jwtSecret []byte
}

func NewMiddleware(jwtSecret []byte) *Middleware {
	return &Middleware{jwtSecret: jwtSecret}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1], m.jwtSecret)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// RequireUploadRole 要求当前用户属于可上传档案的角色。
func (m *Middleware) RequireUploadRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok || !constant.CanUpload(actor.Role) {
			response.Fail(c, http.StatusForbidden, "没有上传档案的权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManageRole 要求当前用户属于可管理档案的角色。
func (m *Middleware) RequireManageRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok || !constant.CanManage(actor.Role) {
			response.Fail(c, http.StatusForbidden, "没有管理档案的权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentActor 从 gin.Context 中取出经过认证的操作人。
func CurrentActor(c *gin.Context) (model.Actor, bool) {
	val, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return model.Actor{}, false
	}
	claims, ok := val.(*auth.CustomClaims)
	if !ok {
		return model.Actor{}, false
	}
	return model.Actor{UserID: claims.UserID, Role: claims.Role}, true
}
