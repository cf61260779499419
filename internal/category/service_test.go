package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/category"
	"terminal-terrace/blog/internal/dto"
	model "terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/taxonomy"
	"terminal-terrace/blog/internal/testutils"
	authsdk "terminal-terrace/blog/packages/auth-sdk"
	"terminal-terrace/blog/packages/response"
)

func setupCategoryService(t *testing.T) (*category.CategoryService, *article.ArticleService, *gorm.DB) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	registry := testutils.SetupTestRegistry(t)
	return category.NewCategoryService(category.NewCategoryRepository(db), registry),
		article.NewArticleService(article.NewArticleRepository(db), registry),
		db
}

func requireCode(t *testing.T, err error, code response.ResponseCode) *response.BusinessError {
	t.Helper()
	var bizErr *response.BusinessError
	require.True(t, errors.As(err, &bizErr), "expected BusinessError, got %v", err)
	assert.Equal(t, code, bizErr.Code)
	return bizErr
}

func TestCreateAndUpdate(t *testing.T) {
	svc, _, db := setupCategoryService(t)
	admin := testutils.UserContext(testutils.CreateTestUser(db, testutils.AsAdmin()))
	author := testutils.UserContext(testutils.CreateTestUser(db))
	ctx := context.Background()

	res, err := svc.Create(ctx, admin, dto.CreateCategoryRequest{Name: "Tech Notes", Description: "All things tech"})
	require.NoError(t, err)
	assert.Equal(t, "tech-notes", res.Slug)
	assert.Equal(t, "All things tech", res.Description)

	_, err = svc.Create(ctx, author, dto.CreateCategoryRequest{Name: "Life"})
	requireCode(t, err, response.Forbidden)

	_, err = svc.Create(ctx, admin, dto.CreateCategoryRequest{Name: "Tech Notes"})
	bizErr := requireCode(t, err, response.InvalidParameter)
	assert.Contains(t, bizErr.FieldErrors(), "name")

	_, err = svc.Create(ctx, admin, dto.CreateCategoryRequest{Name: "   ", Slug: "blank"})
	bizErr = requireCode(t, err, response.InvalidParameter)
	assert.Contains(t, bizErr.FieldErrors(), "name")

	blank := " "
	_, err = svc.Update(ctx, admin, res.ID, dto.UpdateCategoryRequest{Name: &blank})
	bizErr = requireCode(t, err, response.InvalidParameter)
	assert.Contains(t, bizErr.FieldErrors(), "name")

	desc := ""
	updated, err := svc.Update(ctx, admin, res.ID, dto.UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Tech Notes", updated.Name)
	assert.Empty(t, updated.Description)

	_, err = svc.Update(ctx, author, res.ID, dto.UpdateCategoryRequest{Description: &desc})
	requireCode(t, err, response.Forbidden)
}

func TestList_SearchAndCounts(t *testing.T) {
	svc, _, db := setupCategoryService(t)
	author := testutils.CreateTestUser(db)
	tech := testutils.CreateTestCategory(db, testutils.WithCategoryName("Tech", "tech"))
	life := testutils.CreateTestCategory(db, testutils.WithCategoryName("Life", "life"))
	testutils.CreateTestCategory(db, testutils.WithCategoryName("100% Opinion", "opinion"))

	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.InCategory(tech))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.InCategory(tech))
	testutils.CreateTestArticle(db, author.ID, testutils.InCategory(life))

	tests := []struct {
		name   string
		params taxonomy.ListParams
		expect map[string]int64
		order  []string
	}{
		{
			name:   "默认按名称升序",
			params: taxonomy.ListParams{},
			expect: map[string]int64{"tech": 2, "life": 0, "opinion": 0},
			order:  []string{"opinion", "life", "tech"},
		},
		{
			name:   "按文章数倒序",
			params: taxonomy.ListParams{SortBy: taxonomy.SortArticlesCount, SortDirection: "desc"},
			expect: map[string]int64{"tech": 2, "life": 0, "opinion": 0},
			order:  []string{"tech", "life", "opinion"},
		},
		{
			name:   "搜索 % 按字面匹配",
			params: taxonomy.ListParams{Search: "100%"},
			expect: map[string]int64{"opinion": 0},
			order:  []string{"opinion"},
		},
		{
			name:   "搜索不区分大小写",
			params: taxonomy.ListParams{Search: "TECH"},
			expect: map[string]int64{"tech": 2},
			order:  []string{"tech"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(context.Background(), tt.params)
			require.NoError(t, err)

			order := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				order = append(order, item.Slug)
				assert.Equal(t, tt.expect[item.Slug], item.ArticlesCount, item.Slug)
			}
			assert.Equal(t, tt.order, order)
			assert.Equal(t, int64(len(tt.order)), page.Pagination.TotalItems)
		})
	}
}

func TestDelete_ReferencedCategory(t *testing.T) {
	svc, articles, db := setupCategoryService(t)
	admin := testutils.UserContext(testutils.CreateTestUser(db, testutils.AsAdmin()))
	author := testutils.UserContext(testutils.CreateTestUser(db))
	ctx := context.Background()

	tech, err := svc.Create(ctx, admin, dto.CreateCategoryRequest{Name: "Tech", Slug: "tech"})
	require.NoError(t, err)

	art, err := articles.Create(ctx, author, dto.CreateArticleRequest{Title: "In tech", Content: "x", CategoryID: &tech.ID})
	require.NoError(t, err)

	err = svc.Delete(ctx, admin, tech.ID)
	bizErr := requireCode(t, err, response.Conflict)
	assert.Contains(t, bizErr.Msg, "1")
	assert.Equal(t, int64(1), bizErr.Details["count"])

	// 移出分类后即可删除
	zero := uint(0)
	_, err = articles.Update(ctx, author, art.ID, dto.UpdateArticleRequest{CategoryID: &zero})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, admin, tech.ID))
	var count int64
	db.Model(&model.Category{}).Where("id = ?", tech.ID).Count(&count)
	assert.Zero(t, count)

	_, err = svc.Get(ctx, tech.ID)
	requireCode(t, err, response.NotFound)
}

func TestDelete_Forbidden(t *testing.T) {
	svc, _, db := setupCategoryService(t)
	c := testutils.CreateTestCategory(db)

	err := svc.Delete(context.Background(), testutils.UserContext(testutils.CreateTestUser(db)), c.ID)
	requireCode(t, err, response.Forbidden)

	err = svc.Delete(context.Background(), &authsdk.UserContext{}, c.ID)
	requireCode(t, err, response.Forbidden)
}

func TestCategoryRename_RefreshesArticles(t *testing.T) {
	svc, articles, db := setupCategoryService(t)
	admin := testutils.UserContext(testutils.CreateTestUser(db, testutils.AsAdmin()))
	author := testutils.CreateTestUser(db)
	c := testutils.CreateTestCategory(db, testutils.WithCategoryName("Tech", "tech"))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.InCategory(c))
	ctx := context.Background()

	page, err := articles.ListPublished(ctx, article.ListParams{Category: "tech"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	newSlug := "technology"
	_, err = svc.Update(ctx, admin, c.ID, dto.UpdateCategoryRequest{Slug: &newSlug})
	require.NoError(t, err)

	page, err = articles.ListPublished(ctx, article.ListParams{Category: "tech"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	page, err = articles.ListPublished(ctx, article.ListParams{Category: "technology"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "technology", page.Items[0].Category.Slug)
}

func TestArticlesCount_FollowsCategoryMoveAndDelete(t *testing.T) {
	svc, articles, db := setupCategoryService(t)
	author := testutils.UserContext(testutils.CreateTestUser(db))
	ctx := context.Background()
	c1 := testutils.CreateTestCategory(db, testutils.WithCategoryName("C1", "c1"))
	c2 := testutils.CreateTestCategory(db, testutils.WithCategoryName("C2", "c2"))
	golang := testutils.CreateTestTag(db, testutils.WithTagName("Go", "go"))

	counts := func() map[string]int64 {
		t.Helper()
		out := make(map[string]int64)
		for _, c := range []*model.Category{c1, c2} {
			res, err := svc.Get(ctx, c.ID)
			require.NoError(t, err)
			out[res.Slug] = res.ArticlesCount
		}
		page, err := svc.List(ctx, taxonomy.ListParams{})
		require.NoError(t, err)
		for _, item := range page.Items {
			assert.Equal(t, out[item.Slug], item.ArticlesCount, "列表与详情的计数应一致: %s", item.Slug)
		}
		return out
	}

	art, err := articles.Create(ctx, author, dto.CreateArticleRequest{
		Title: "Moving", Content: "x", Status: model.StatusPublished, CategoryID: &c1.ID, TagIDs: []uint{golang.ID},
	})
	require.NoError(t, err)
	// 预热缓存
	require.Equal(t, map[string]int64{"c1": 1, "c2": 0}, counts())

	_, err = articles.Update(ctx, author, art.ID, dto.UpdateArticleRequest{CategoryID: &c2.ID})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"c1": 0, "c2": 1}, counts())

	require.NoError(t, articles.Delete(ctx, author, art.ID))
	assert.Equal(t, map[string]int64{"c1": 0, "c2": 0}, counts())

	// 引用数归零后可删除
	admin := testutils.UserContext(testutils.CreateTestUser(db, testutils.AsAdmin()))
	require.NoError(t, svc.Delete(ctx, admin, c2.ID))
}
