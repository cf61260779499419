package article

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/middleware"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(articleService *ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListArticles 公开文章列表
// @Summary 获取已发布文章列表（分页）
// @Tags Article
// @Produce json
// @Param search query string false "搜索标题/正文/摘要"
// @Param category query string false "分类 slug"
// @Param tags[] query []string false "标签 slug，任意匹配"
// @Param sort_by query string false "排序字段" Enums(created_at, title)
// @Param sort_direction query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(15)
// @Success 200 {object} response.Response{data=[]dto.ArticleResource}
// @Failure 422 {object} response.Response
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var q dto.ArticleListQuery
	if !dto.BindQuery(c, &q) {
		return
	}

	page, err := h.articleService.ListPublished(c.Request.Context(), ListParams{
		Search:        q.Search,
		Category:      q.Category,
		Tags:          q.AllTags(),
		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
		Page:          q.Page,
		PerPage:       q.PerPage,
	})
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.PaginatedResponse(c, page.Items, page.Pagination)
}

// GetArticle 公开文章详情
// @Summary 获取已发布文章详情
// @Tags Article
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=dto.ArticleResource}
// @Failure 404 {object} response.Response
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的文章ID")
	if !ok {
		return
	}

	art, err := h.articleService.GetPublished(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, art)
}

// AdminListArticles 当前用户的文章列表
// @Summary 获取我的文章列表（后台）
// @Tags AdminArticle
// @Produce json
// @Security BearerAuth
// @Param search query string false "搜索标题/正文/摘要"
// @Param status query string false "状态" Enums(all, draft, published)
// @Param category query string false "分类 slug"
// @Param tags[] query []string false "标签 slug，任意匹配"
// @Param sort_by query string false "排序字段" Enums(created_at, updated_at, title)
// @Param sort_direction query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(15)
// @Success 200 {object} response.Response{data=[]dto.ArticleResource}
// @Failure 401 {object} response.Response
// @Router /admin/articles [get]
func (h *ArticleHandler) AdminListArticles(c *gin.Context) {
	var q dto.AdminArticleListQuery
	if !dto.BindQuery(c, &q) {
		return
	}

	page, err := h.articleService.ListForUser(c.Request.Context(), middleware.CurrentUser(c), ListParams{
		Search:        q.Search,
		Status:        q.Status,
		Category:      q.Category,
		Tags:          q.AllTags(),
		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
		Page:          q.Page,
		PerPage:       q.PerPage,
	})
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.PaginatedResponse(c, page.Items, page.Pagination)
}

// AdminGetArticle 后台文章详情
// @Summary 获取我的文章详情（后台）
// @Tags AdminArticle
// @Produce json
// @Security BearerAuth
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=dto.ArticleResource}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/articles/{id} [get]
func (h *ArticleHandler) AdminGetArticle(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的文章ID")
	if !ok {
		return
	}

	art, err := h.articleService.GetForUser(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, art)
}

// CreateArticle 创建文章
// @Summary 创建文章
// @Tags AdminArticle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateArticleRequest true "创建文章请求"
// @Success 201 {object} response.Response{data=dto.ArticleResource}
// @Failure 422 {object} response.Response
// @Router /admin/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	art, err := h.articleService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, art)
}

// UpdateArticle 更新文章
// @Summary 更新文章（部分字段）
// @Tags AdminArticle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "文章ID"
// @Param request body dto.UpdateArticleRequest true "更新文章请求"
// @Success 200 {object} response.Response{data=dto.ArticleResource}
// @Failure 403 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的文章ID")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	art, err := h.articleService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, art)
}

// DeleteArticle 删除文章
// @Summary 删除文章
// @Tags AdminArticle
// @Produce json
// @Security BearerAuth
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的文章ID")
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}
