package category_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/blog/internal/category"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/middleware"
	model "terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/testutils"
)

func TestHandler_DeleteTechCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dto.SetupValidator()

	svc, _, db := setupCategoryService(t)
	r := gin.New()
	api := r.Group("/api")
	admin := api.Group("/admin", middleware.JWTAuth(testutils.TestJWTSecret))
	category.SetupCategoryRoutes(api, admin, svc)

	adminUser := testutils.CreateTestUser(db, testutils.AsAdmin())
	token := testutils.BearerToken(adminUser)

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

	w, body := call(http.MethodPost, "/api/admin/categories", token, gin.H{"name": "Tech", "slug": "tech"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint(body["data"].(map[string]any)["id"].(float64))
	path := "/api/admin/categories/" + strconv.FormatUint(uint64(id), 10)

	w, body = call(http.MethodPost, "/api/admin/categories", token, gin.H{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, body["meta"].(map[string]any)["errors"], "name")

	w, _ = call(http.MethodDelete, path, testutils.BearerToken(testutils.CreateTestUser(db)), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var tech model.Category
	require.NoError(t, db.First(&tech, id).Error)
	author := testutils.CreateTestUser(db)
	testutils.CreateTestArticle(db, author.ID, testutils.InCategory(&tech))

	w, body = call(http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, body["message"], "1")

	db.Exec("UPDATE articles SET category_id = NULL")
	w, _ = call(http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(http.MethodGet, "/api/categories/"+strconv.FormatUint(uint64(id), 10), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
