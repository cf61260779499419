package page

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/labstack/gommon/log"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/category"
	"terminal-terrace/blog/internal/markdown"
	"terminal-terrace/blog/internal/tag"
	"terminal-terrace/blog/packages/response"
)

type PageHandler struct {
	articles   *article.ArticleService
	tags       *tag.TagService
	categories *category.CategoryService
	site       func() config.SiteConfig
	templates  map[string]*template.Template
}

// NewPageHandler site 在每次请求时读取，配置热加载后立即生效
func NewPageHandler(articles *article.ArticleService, tags *tag.TagService, categories *category.CategoryService, site func() config.SiteConfig) *PageHandler {
	return &PageHandler{
		articles:   articles,
		tags:       tags,
		categories: categories,
		site:       site,
		templates:  loadTemplates(),
	}
}

// Home 首页，已发布文章分页列表
func (h *PageHandler) Home(c *gin.Context) {
	site := h.site()
	data, err := h.list(c, site, "/", article.ListParams{})
	if err != nil {
		h.renderError(c, site, err)
		return
	}
	data.Title = site.Name
	data.Heading = "最新文章"
	data.Description = site.Description
	h.render(c, http.StatusOK, "list", data)
}

// Article 文章详情页
func (h *PageHandler) Article(c *gin.Context) {
	site := h.site()
	a, err := h.articles.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.renderError(c, site, err)
		return
	}

	description := a.Description
	if description == "" {
		description = markdown.ExtractText(a.Content, DescriptionLength)
	}

	h.render(c, http.StatusOK, "article", &pageData{
		Site:        site,
		Title:       fmt.Sprintf("%s - %s", a.Title, site.Name),
		Description: description,
		Canonical:   absoluteURL(site, "/articles/"+a.Slug),
		Article:     &articleView{ArticleResource: *a, HTML: markdown.RenderOrFallback(a.Content)},
		JSONLD:      blogPosting(site, a, description),
	})
}

// Tag 标签下的文章列表
func (h *PageHandler) Tag(c *gin.Context) {
	site := h.site()
	t, err := h.tags.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.renderError(c, site, err)
		return
	}

	data, err := h.list(c, site, "/tags/"+t.Slug, article.ListParams{Tags: []string{t.Slug}})
	if err != nil {
		h.renderError(c, site, err)
		return
	}
	data.Title = fmt.Sprintf("#%s - %s", t.Name, site.Name)
	data.Heading = "#" + t.Name
	data.Intro = fmt.Sprintf("共 %d 篇文章", t.ArticlesCount)
	data.Description = fmt.Sprintf("标签 %s 下的文章", t.Name)
	h.render(c, http.StatusOK, "list", data)
}

// Category 分类下的文章列表
func (h *PageHandler) Category(c *gin.Context) {
	site := h.site()
	cat, err := h.categories.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.renderError(c, site, err)
		return
	}

	data, err := h.list(c, site, "/categories/"+cat.Slug, article.ListParams{Category: cat.Slug})
	if err != nil {
		h.renderError(c, site, err)
		return
	}
	data.Title = fmt.Sprintf("%s - %s", cat.Name, site.Name)
	data.Heading = cat.Name
	data.Intro = cat.Description
	data.Description = cat.Description
	if data.Description == "" {
		data.Description = fmt.Sprintf("分类 %s 下的文章", cat.Name)
	}
	h.render(c, http.StatusOK, "list", data)
}

// list 分页参数来自 ?page=，非法值按第一页处理
func (h *PageHandler) list(c *gin.Context, site config.SiteConfig, path string, p article.ListParams) (*pageData, error) {
	p.Page, _ = strconv.Atoi(c.Query("page"))
	p.PerPage = site.PerPage

	page, err := h.articles.ListPublished(c.Request.Context(), p)
	if err != nil {
		return nil, err
	}

	data := &pageData{
		Site:       site,
		Canonical:  absoluteURL(site, path),
		Articles:   summaries(page.Items),
		Pagination: page.Pagination,
	}
	if cur := page.Pagination.CurrentPage; cur > 1 {
		data.PrevURL = pageURL(path, cur-1)
	}
	if cur := page.Pagination.CurrentPage; cur < page.Pagination.TotalPages {
		data.NextURL = pageURL(path, cur+1)
	}
	return data, nil
}

func pageURL(path string, page int) string {
	if page <= 1 {
		return path
	}
	return fmt.Sprintf("%s?page=%d", path, page)
}

func (h *PageHandler) render(c *gin.Context, status int, name string, data *pageData) {
	c.Render(status, render.HTML{Template: h.templates[name], Name: "layout", Data: data})
}

// renderError 业务错误按其状态码渲染错误页
func (h *PageHandler) renderError(c *gin.Context, site config.SiteConfig, err error) {
	status := http.StatusInternalServerError
	heading := "服务器内部错误"

	var bizErr *response.BusinessError
	if errors.As(err, &bizErr) {
		status = bizErr.HTTPStatus()
		if status < http.StatusInternalServerError {
			heading = bizErr.Msg
		}
	}
	if status == http.StatusNotFound {
		heading = "页面不存在"
	}
	if status >= http.StatusInternalServerError {
		log.Errorf("%s %s 渲染页面失败: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	h.render(c, status, "error", &pageData{
		Site:    site,
		Title:   fmt.Sprintf("%d - %s", status, site.Name),
		Heading: heading,
		Status:  status,
	})
}

// NotFound 未匹配的页面路由
func (h *PageHandler) NotFound(c *gin.Context) {
	h.renderError(c, h.site(), response.NewNotFoundError("页面", c.Request.URL.Path))
}
