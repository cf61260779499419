package route

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/service"
	"terminal-terrace/blog/internal/testutils"
)

func setupEngine(t *testing.T) (http.Handler, *service.Container) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	conf := &config.AppConfig{
		Server: config.ServerConfig{Mode: "test", AllowOrigins: []string{"http://admin.example.com"}},
		Cache:  config.CacheConfig{Prefix: "test"},
		JWT:    config.JWTConfig{Secret: testutils.TestJWTSecret, ExpireTime: 1},
		Site:   config.SiteConfig{Name: "Test Blog", URL: "http://blog.example.com", PerPage: 10},
	}
	c := service.NewContainer(db, cache.NewMemoryStore(), conf)
	return SetupRouter(c, conf), c
}

func TestSetupRouter_Routes(t *testing.T) {
	r, c := setupEngine(t)
	author := testutils.CreateTestUser(c.DB)
	testutils.CreateTestArticle(c.DB, author.ID, testutils.Published(), testutils.WithTitle("Routed", "routed"))

	tests := []struct {
		name         string
		method       string
		path         string
		token        string
		expectStatus int
		expectBody   string
	}{
		{"健康检查", http.MethodGet, "/ping", "", http.StatusOK, "pong"},
		{"公开文章列表", http.MethodGet, "/api/articles", "", http.StatusOK, `"slug":"routed"`},
		{"标签列表", http.MethodGet, "/api/tags", "", http.StatusOK, `"status":"success"`},
		{"分类列表", http.MethodGet, "/api/categories", "", http.StatusOK, `"status":"success"`},
		{"后台需要登录", http.MethodGet, "/api/admin/articles", "", http.StatusUnauthorized, `"status":"error"`},
		{"后台已登录", http.MethodGet, "/api/admin/articles", testutils.BearerToken(author), http.StatusOK, `"slug":"routed"`},
		{"当前用户", http.MethodGet, "/api/auth/me", testutils.BearerToken(author), http.StatusOK, author.Email},
		{"接口文档", http.MethodGet, "/swagger/doc.json", "", http.StatusOK, "/admin/articles"},
		{"首页", http.MethodGet, "/", "", http.StatusOK, "Routed"},
		{"文章页", http.MethodGet, "/articles/routed", "", http.StatusOK, "Routed"},
		{"未知路径", http.MethodGet, "/no/such/page", "", http.StatusNotFound, "页面不存在"},
		{"未知接口", http.MethodGet, "/api/nope", "", http.StatusNotFound, `"status":"error"`},
		{"未知后台接口", http.MethodDelete, "/api/admin/unknown/1", "", http.StatusNotFound, "接口不存在: /api/admin/unknown/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectBody), w.Body.String())
		})
	}
}

func TestSetupRouter_CORS(t *testing.T) {
	r, _ := setupEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/articles", nil)
	req.Header.Set("Origin", "http://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
