package category

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/middleware"
	"terminal-terrace/blog/internal/taxonomy"
)

type CategoryHandler struct {
	categoryService *CategoryService
}

func NewCategoryHandler(categoryService *CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories 分类列表
// @Summary 获取分类列表（分页）
// @Tags Category
// @Produce json
// @Param search query string false "按名称搜索"
// @Param sort_by query string false "排序字段" Enums(name, created_at, articles_count)
// @Param sort_direction query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]dto.CategoryResource}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var q dto.TaxonomyListQuery
	if !dto.BindQuery(c, &q) {
		return
	}

	page, err := h.categoryService.List(c.Request.Context(), taxonomy.ListParams{
		Search:        q.Search,
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

// GetCategory 分类详情
// @Summary 获取分类详情
// @Tags Category
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response{data=dto.CategoryResource}
// @Failure 404 {object} response.Response
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的分类ID")
	if !ok {
		return
	}

	t, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, t)
}

// CreateCategory 创建分类
// @Summary 创建分类（超级管理员）
// @Tags AdminCategory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "创建分类请求"
// @Success 201 {object} response.Response{data=dto.CategoryResource}
// @Failure 403 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	t, err := h.categoryService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, t)
}

// UpdateCategory 更新分类
// @Summary 更新分类（超级管理员）
// @Tags AdminCategory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param request body dto.UpdateCategoryRequest true "更新分类请求"
// @Success 200 {object} response.Response{data=dto.CategoryResource}
// @Failure 403 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的分类ID")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	t, err := h.categoryService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, t)
}

// DeleteCategory 删除分类
// @Summary 删除分类（超级管理员），仍被文章引用时返回 409
// @Tags AdminCategory
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的分类ID")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}
