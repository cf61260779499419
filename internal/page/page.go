// Package page 服务端渲染的博客页面
package page

import (
	"embed"
	"encoding/json"
	"html/template"
	"strings"
	"time"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/markdown"
	"terminal-terrace/blog/packages/response"
)

//go:embed templates/*.html
var templateFS embed.FS

// ExcerptLength 列表摘要的最大字符数
const ExcerptLength = 200

// DescriptionLength meta description 的最大字符数
const DescriptionLength = 160

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("2006-01-02") },
	"iso":  func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
}

// loadTemplates 每个页面一份模板集，共用 layout
func loadTemplates() map[string]*template.Template {
	base := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html"))

	pages := map[string]*template.Template{}
	for _, name := range []string{"list", "article", "error"} {
		t := template.Must(base.Clone())
		pages[name] = template.Must(t.ParseFS(templateFS, "templates/"+name+".html"))
	}
	return pages
}

// articleSummary 列表项
type articleSummary struct {
	dto.ArticleResource
	Excerpt string
}

// articleView 详情页
type articleView struct {
	dto.ArticleResource
	HTML template.HTML
}

type pageData struct {
	Site        config.SiteConfig
	Title       string
	Description string
	Canonical   string

	Heading    string
	Intro      string
	Articles   []articleSummary
	Pagination response.Pagination
	PrevURL    string
	NextURL    string

	Article *articleView
	JSONLD  template.JS

	Status int
}

func summaries(items []dto.ArticleResource) []articleSummary {
	out := make([]articleSummary, 0, len(items))
	for _, item := range items {
		excerpt := item.Description
		if excerpt == "" {
			excerpt = markdown.ExtractText(item.Content, ExcerptLength)
		}
		out = append(out, articleSummary{ArticleResource: item, Excerpt: excerpt})
	}
	return out
}

// absoluteURL 配置了站点地址时返回绝对地址
func absoluteURL(site config.SiteConfig, path string) string {
	if site.URL == "" {
		return ""
	}
	return strings.TrimRight(site.URL, "/") + path
}

// blogPosting 生成 schema.org BlogPosting 结构化数据
func blogPosting(site config.SiteConfig, a *dto.ArticleResource, description string) template.JS {
	doc := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      a.Title,
		"description":   description,
		"datePublished": a.CreatedAt.UTC().Format(time.RFC3339),
		"dateModified":  a.UpdatedAt.UTC().Format(time.RFC3339),
		"author": map[string]any{
			"@type": "Person",
			"name":  a.Author.Name,
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  site.Name,
		},
	}
	if url := absoluteURL(site, "/articles/"+a.Slug); url != "" {
		doc["url"] = url
		doc["mainEntityOfPage"] = map[string]any{"@type": "WebPage", "@id": url}
	}
	if a.Category != nil {
		doc["articleSection"] = a.Category.Name
	}
	if len(a.Tags) > 0 {
		names := make([]string, 0, len(a.Tags))
		for _, t := range a.Tags {
			names = append(names, t.Name)
		}
		doc["keywords"] = strings.Join(names, ", ")
	}

	// json.Marshal 会转义 <、>、&，可以直接放进 script
	raw, err := json.Marshal(doc)
	if err != nil {
		return template.JS("{}")
	}
	return template.JS(raw)
}
