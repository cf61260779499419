package tag_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/middleware"
	model "terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/tag"
	"terminal-terrace/blog/internal/testutils"
)

func TestHandler_AdminWriteRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dto.SetupValidator()

	f := setup(t)
	r := gin.New()
	api := r.Group("/api")
	admin := api.Group("/admin", middleware.JWTAuth(testutils.TestJWTSecret))
	tag.SetupTagRoutes(api, admin, f.tags)

	adminToken := testutils.BearerToken(testutils.CreateTestUser(f.db, testutils.AsAdmin()))
	authorToken := testutils.BearerToken(testutils.CreateTestUser(f.db))

	call := func(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
		var buf bytes.Buffer
		if body != nil {
			_ = json.NewEncoder(&buf).Encode(body)
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		var out map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		return w, out
	}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		status int
	}{
		{"未登录创建", http.MethodPost, "/api/admin/tags", "", gin.H{"name": "Go"}, http.StatusUnauthorized},
		{"作者创建被拒", http.MethodPost, "/api/admin/tags", authorToken, gin.H{"name": "Go"}, http.StatusForbidden},
		{"作者更新被拒", http.MethodPut, "/api/admin/tags/1", authorToken, gin.H{"name": "Go"}, http.StatusForbidden},
		{"作者删除被拒", http.MethodDelete, "/api/admin/tags/1", authorToken, nil, http.StatusForbidden},
		{"作者可读列表", http.MethodGet, "/api/admin/tags", authorToken, nil, http.StatusOK},
		{"空白名称", http.MethodPost, "/api/admin/tags", adminToken, gin.H{"name": "   "}, http.StatusUnprocessableEntity},
		{"管理员创建", http.MethodPost, "/api/admin/tags", adminToken, gin.H{"name": "Go"}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := call(tt.method, tt.path, tt.token, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			switch tt.status {
			case http.StatusForbidden:
				assert.Equal(t, "需要超级管理员权限", body["message"])
			case http.StatusUnprocessableEntity:
				assert.Contains(t, body["meta"].(map[string]any)["errors"], "name")
			}
		})
	}

	var count int64
	f.db.Model(&model.Tag{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
