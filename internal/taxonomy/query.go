// Package taxonomy 标签与分类共用的列表参数
package taxonomy

import "strings"

const (
	DefaultPerPage = 20
	MaxPerPage     = 100

	SortName          = "name"
	SortCreatedAt     = "created_at"
	SortArticlesCount = "articles_count"
)

// ListParams 标签/分类列表查询参数，规范化后作为缓存键
type ListParams struct {
	Search        string `json:"search"`
	SortBy        string `json:"sort_by"`
	SortDirection string `json:"sort_direction"`
	Page          int    `json:"page"`
	PerPage       int    `json:"per_page"`
}

// Normalize 填充默认值：按名称升序，每页 20 条，最多 100 条
func (p ListParams) Normalize() ListParams {
	n := ListParams{
		Search:        strings.TrimSpace(p.Search),
		SortBy:        p.SortBy,
		SortDirection: strings.ToLower(p.SortDirection),
		Page:          p.Page,
		PerPage:       p.PerPage,
	}
	switch n.SortBy {
	case SortName, SortCreatedAt, SortArticlesCount:
	default:
		n.SortBy = SortName
	}
	if n.SortDirection != "desc" {
		n.SortDirection = "asc"
	}
	if n.Page < 1 {
		n.Page = 1
	}
	if n.PerPage < 1 {
		n.PerPage = DefaultPerPage
	}
	if n.PerPage > MaxPerPage {
		n.PerPage = MaxPerPage
	}
	return n
}

// Offset 分页偏移
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Desc 是否降序
func (p ListParams) Desc() bool {
	return p.SortDirection == "desc"
}
