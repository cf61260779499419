package tag

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/middleware"
	"terminal-terrace/blog/internal/taxonomy"
)

type TagHandler struct {
	tagService *TagService
}

func NewTagHandler(tagService *TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags 标签列表
// @Summary 获取标签列表（分页）
// @Tags Tag
// @Produce json
// @Param search query string false "按名称搜索"
// @Param sort_by query string false "排序字段" Enums(name, created_at, articles_count)
// @Param sort_direction query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]dto.TagResource}
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	var q dto.TaxonomyListQuery
	if !dto.BindQuery(c, &q) {
		return
	}

	page, err := h.tagService.List(c.Request.Context(), taxonomy.ListParams{
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

// GetTag 标签详情
// @Summary 获取标签详情
// @Tags Tag
// @Produce json
// @Param id path int true "标签ID"
// @Success 200 {object} response.Response{data=dto.TagResource}
// @Failure 404 {object} response.Response
// @Router /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的标签ID")
	if !ok {
		return
	}

	t, err := h.tagService.Get(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, t)
}

// CreateTag 创建标签
// @Summary 创建标签（超级管理员）
// @Tags AdminTag
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTagRequest true "创建标签请求"
// @Success 201 {object} response.Response{data=dto.TagResource}
// @Failure 403 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	t, err := h.tagService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, t)
}

// UpdateTag 更新标签
// @Summary 更新标签（超级管理员）
// @Tags AdminTag
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "标签ID"
// @Param request body dto.UpdateTagRequest true "更新标签请求"
// @Success 200 {object} response.Response{data=dto.TagResource}
// @Failure 403 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的标签ID")
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	t, err := h.tagService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, t)
}

// DeleteTag 删除标签
// @Summary 删除标签（超级管理员），仍被文章引用时返回 409
// @Tags AdminTag
// @Produce json
// @Security BearerAuth
// @Param id path int true "标签ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := dto.ParseID(c, "无效的标签ID")
	if !ok {
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}
