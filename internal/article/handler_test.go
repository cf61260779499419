package article_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/middleware"
	"terminal-terrace/blog/internal/testutils"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    struct {
		Errors     map[string][]string `json:"errors"`
		Pagination struct {
			CurrentPage int   `json:"current_page"`
			TotalPages  int   `json:"total_pages"`
			TotalItems  int64 `json:"total_items"`
			PerPage     int   `json:"per_page"`
		} `json:"pagination"`
	} `json:"meta"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dto.SetupValidator()

	svc, db := setupArticleService(t)
	r := gin.New()
	api := r.Group("/api")
	admin := api.Group("/admin", middleware.JWTAuth(testutils.TestJWTSecret))
	article.SetupArticleRoutes(api, admin, svc)
	return r, db
}

func doRequest(r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
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

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_PublicEndpoints(t *testing.T) {
	r, db := setupRouter(t)
	author := testutils.CreateTestUser(db)
	published := testutils.CreateTestArticle(db, author.ID, testutils.Published())
	draft := testutils.CreateTestArticle(db, author.ID)

	tests := []struct {
		name         string
		path         string
		expectStatus int
	}{
		{"已发布文章", "/api/articles/" + itoa(published.ID), http.StatusOK},
		{"草稿不可见", "/api/articles/" + itoa(draft.ID), http.StatusNotFound},
		{"不存在", "/api/articles/9999", http.StatusNotFound},
		{"非法 ID", "/api/articles/abc", http.StatusBadRequest},
		{"列表", "/api/articles?page=1&per_page=5", http.StatusOK},
		{"非法排序字段", "/api/articles?sort_by=views", http.StatusUnprocessableEntity},
		{"非法页码", "/api/articles?page=-1", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(r, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.expectStatus, w.Code)
			assert.Equal(t, tt.expectStatus, env.Code)
		})
	}
}

func TestHandler_ListEnvelope(t *testing.T) {
	r, db := setupRouter(t)
	author := testutils.CreateTestUser(db)
	for i := 0; i < 3; i++ {
		testutils.CreateTestArticle(db, author.ID, testutils.Published())
	}

	w, env := doRequest(r, http.MethodGet, "/api/articles?per_page=2&page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, 2, env.Meta.Pagination.CurrentPage)
	assert.Equal(t, 2, env.Meta.Pagination.TotalPages)
	assert.Equal(t, int64(3), env.Meta.Pagination.TotalItems)

	var items []dto.ArticleResource
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 1)
}

func TestHandler_CreateArticle(t *testing.T) {
	r, db := setupRouter(t)
	token := testutils.BearerToken(testutils.CreateTestUser(db))

	t.Run("未认证", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/admin/articles", "", gin.H{"title": "x", "content": "y"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "error", env.Status)
	})

	t.Run("无效令牌", func(t *testing.T) {
		w, _ := doRequest(r, http.MethodPost, "/api/admin/articles", "Bearer broken", gin.H{"title": "x", "content": "y"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("校验失败", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/admin/articles", token, gin.H{"slug": "Not A Slug", "status": "archived"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, env.Meta.Errors, "title")
		assert.Contains(t, env.Meta.Errors, "content")
		assert.Contains(t, env.Meta.Errors, "slug")
		assert.Contains(t, env.Meta.Errors, "status")
	})

	t.Run("标题仅含空白", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/admin/articles", token, gin.H{"title": "   ", "content": "y"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, env.Meta.Errors, "title")
		assert.Equal(t, []string{"字段 'title' 不能为空白"}, env.Meta.Errors["title"])
	})

	t.Run("类型错误", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/admin/articles", token, gin.H{"title": 12, "content": "y"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, env.Meta.Errors, "title")
	})

	t.Run("创建成功", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/admin/articles", token, gin.H{"title": "Brand New", "content": "# Hi"})
		require.Equal(t, http.StatusCreated, w.Code)

		var res dto.ArticleResource
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "brand-new", res.Slug)
		assert.Equal(t, "draft", res.Status)
	})
}

func TestHandler_UpdateAndDeleteOwnership(t *testing.T) {
	r, db := setupRouter(t)
	owner := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, owner.ID)
	path := "/api/admin/articles/" + itoa(art.ID)

	w, _ := doRequest(r, http.MethodPut, path, testutils.BearerToken(other), gin.H{"title": "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doRequest(r, http.MethodDelete, path, testutils.BearerToken(other), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := doRequest(r, http.MethodPut, path, testutils.BearerToken(owner), gin.H{"title": "Yes"})
	require.Equal(t, http.StatusOK, w.Code)
	var res dto.ArticleResource
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "Yes", res.Title)

	w, _ = doRequest(r, http.MethodDelete, path, testutils.BearerToken(owner), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(r, http.MethodGet, path, testutils.BearerToken(owner), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
