package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/anzhiyu-c/arsip-app/internal/pkg/auth"
	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var testSecret = []byte("unit-test-secret")

// newAuthedEngine 搭一个带认证链路的最小引擎，/manage 额外要求管理角色。
func newAuthedEngine(mw *Middleware) *gin.Engine {
	engine := gin.New()
	group := engine.Group("", mw.JWTAuth())
	group.GET("/me", func(c *gin.Context) {
		actor, _ := CurrentActor(c)
		c.String(http.StatusOK, actor.Role)
	})
	group.GET("/manage", mw.RequireManageRole(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doRequest(engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	mw := NewMiddleware(testSecret)
	engine := newAuthedEngine(mw)

	token, err := auth.GenerateToken(3, constant.RoleStaff, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doRequest(engine, "/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("携带有效Token的请求状态码 = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != constant.RoleStaff {
		t.Errorf("解析出的角色 = %q, want %q", got, constant.RoleStaff)
	}
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	mw := NewMiddleware(testSecret)
	engine := newAuthedEngine(mw)

	wrongSecretToken, err := auth.GenerateToken(3, constant.RoleStaff, []byte("other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"缺失Token", ""},
		{"格式错误的Token", "not-a-jwt"},
		{"密钥不匹配的Token", wrongSecretToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doRequest(engine, "/me", tt.token); w.Code != http.StatusUnauthorized {
				t.Errorf("状态码 = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestRequireManageRoleTiering(t *testing.T) {
	mw := NewMiddleware(testSecret)
	engine := newAuthedEngine(mw)

	staffToken, err := auth.GenerateToken(3, constant.RoleStaff, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	sekretarisToken, err := auth.GenerateToken(4, constant.RoleSekretaris, testSecret)
	if err != nil {
		t.Fatal(err)
	}

	// 上传级角色被管理级路由拒绝
	if w := doRequest(engine, "/manage", staffToken); w.Code != http.StatusForbidden {
		t.Errorf("上传级角色访问管理路由状态码 = %d, want %d", w.Code, http.StatusForbidden)
	}
	if w := doRequest(engine, "/manage", sekretarisToken); w.Code != http.StatusOK {
		t.Errorf("管理级角色访问管理路由状态码 = %d, want %d", w.Code, http.StatusOK)
	}
}
