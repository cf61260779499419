package page_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/category"
	"terminal-terrace/blog/internal/page"
	"terminal-terrace/blog/internal/tag"
	"terminal-terrace/blog/internal/testutils"
)

var site = config.SiteConfig{
	Name:        "Terrace Blog",
	URL:         "https://blog.example.com/",
	Description: "Notes",
	Author:      "Terrace",
	PerPage:     2,
}

func setupPages(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutils.SetupTestDB(t)
	registry := testutils.SetupTestRegistry(t)
	h := page.NewPageHandler(
		article.NewArticleService(article.NewArticleRepository(db), registry),
		tag.NewTagService(tag.NewTagRepository(db), registry),
		category.NewCategoryService(category.NewCategoryRepository(db), registry),
		func() config.SiteConfig { return site },
	)

	r := gin.New()
	page.SetupPageRoutes(r, h)
	r.NoRoute(h.NotFound)
	return r, db
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHome(t *testing.T) {
	r, db := setupPages(t)
	author := testutils.CreateTestUser(db)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.WithTitle("Oldest", "oldest"), testutils.CreatedAt(base))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.WithTitle("Middle", "middle"), testutils.CreatedAt(base.Add(time.Hour)))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.WithTitle("Newest", "newest"), testutils.CreatedAt(base.Add(2*time.Hour)))
	testutils.CreateTestArticle(db, author.ID, testutils.WithTitle("Secret draft", "secret-draft"))

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<title>Terrace Blog</title>")
	assert.Contains(t, body, `href="/articles/newest"`)
	assert.Contains(t, body, `href="/articles/middle"`)
	assert.NotContains(t, body, "Oldest")
	assert.NotContains(t, body, "Secret draft")
	assert.Contains(t, body, `href="/?page=2"`)
	assert.Contains(t, body, `<link rel="canonical" href="https://blog.example.com/">`)

	w = get(r, "/?page=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Oldest")
	assert.Contains(t, w.Body.String(), `rel="prev" href="/"`)

	// 非法页码按第一页处理
	w = get(r, "/?page=abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Newest")
}

func TestArticlePage(t *testing.T) {
	r, db := setupPages(t)
	author := testutils.CreateTestUser(db, testutils.WithName("Ada"))
	golang := testutils.CreateTestTag(db, testutils.WithTagName("Go", "go"))
	tech := testutils.CreateTestCategory(db, testutils.WithCategoryName("Tech", "tech"))
	art := testutils.CreateTestArticle(db, author.ID, testutils.Published(),
		testutils.WithTitle("Hello <World>", "hello-world"),
		testutils.WithContent("# Title\n\n<script>alert(1)</script>\n\nSome **bold** text."),
		testutils.InCategory(tech), testutils.WithTags(golang))
	// 没有摘要时 description 取正文
	require.NoError(t, db.Exec("UPDATE articles SET description = '' WHERE id = ?", art.ID).Error)
	draft := testutils.CreateTestArticle(db, author.ID)

	w := get(r, "/articles/hello-world")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "<title>Hello &lt;World&gt; - Terrace Blog</title>")
	assert.Contains(t, body, "<strong>bold</strong>")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, `<script type="application/ld+json">`)
	assert.Contains(t, body, `"@type":"BlogPosting"`)
	assert.Contains(t, body, `"keywords":"Go"`)
	assert.Contains(t, body, `"articleSection":"Tech"`)
	assert.Contains(t, body, `<link rel="canonical" href="https://blog.example.com/articles/hello-world">`)
	assert.Contains(t, body, `<meta property="article:tag" content="Go">`)
	assert.Contains(t, body, `<meta name="description" content="Title`)

	w = get(r, "/articles/"+draft.Slug)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "页面不存在")

	w = get(r, "/articles/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaxonomyPages(t *testing.T) {
	r, db := setupPages(t)
	author := testutils.CreateTestUser(db)
	golang := testutils.CreateTestTag(db, testutils.WithTagName("Go", "go"))
	tech := testutils.CreateTestCategory(db, testutils.WithCategoryName("Tech", "tech"))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(),
		testutils.WithTitle("Tagged", "tagged"), testutils.WithTags(golang))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(),
		testutils.WithTitle("Categorised", "categorised"), testutils.InCategory(tech))

	w := get(r, "/tags/go")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tagged")
	assert.NotContains(t, w.Body.String(), "Categorised")
	assert.Contains(t, w.Body.String(), "共 1 篇文章")

	w = get(r, "/categories/tech")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Categorised")
	assert.NotContains(t, w.Body.String(), `href="/articles/tagged"`)

	assert.Equal(t, http.StatusNotFound, get(r, "/tags/nope").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/categories/nope").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/no/such/page").Code)
}
