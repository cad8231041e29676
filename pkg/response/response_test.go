package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"

	"github.com/gin-gonic/gin"
)

func TestFailWithErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"校验失败映射400", constant.ErrValidation, http.StatusBadRequest},
		{"无效公共ID映射400", fmt.Errorf("公共ID 'zzzz' 无法解码: %w", constant.ErrInvalidPublicID), http.StatusBadRequest},
		{"未授权映射401", constant.ErrUnauthorized, http.StatusUnauthorized},
		{"权限不足映射403", constant.ErrPermission, http.StatusForbidden},
		{"未找到映射404", constant.ErrNotFound, http.StatusNotFound},
		{"存储键冲突映射409", constant.ErrConflict, http.StatusConflict},
		{"非法状态迁移映射409", constant.ErrInvalidTransition, http.StatusConflict},
		{"对象存储失败映射502", constant.ErrStorage, http.StatusBadGateway},
		{"落库失败映射500", constant.ErrPersistence, http.StatusInternalServerError},
		{"未知错误映射500", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FailWithError(c, tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("FailWithError(%v) 状态码 = %d, want %d", tt.err, w.Code, tt.wantCode)
			}
		})
	}
}
