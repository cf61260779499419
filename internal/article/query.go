package article

import (
	"sort"
	"strings"

	model "terminal-terrace/blog/internal/model/article"
)

// Scope 列表的可见范围
type Scope int

const (
	ScopePublic Scope = iota
	ScopeAdmin
)

const (
	DefaultPerPage    = 15
	MaxPublicPerPage  = 50
	MaxAdminPerPage   = 100
	StatusAll         = "all"
	SortCreatedAt     = "created_at"
	SortUpdatedAt     = "updated_at"
	SortTitle         = "title"
	SortDirectionAsc  = "asc"
	SortDirectionDesc = "desc"
)

// ListParams 文章列表查询参数，规范化后作为缓存键
type ListParams struct {
	Search        string   `json:"search"`
	Status        string   `json:"status"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	SortBy        string   `json:"sort_by"`
	SortDirection string   `json:"sort_direction"`
	Page          int      `json:"page"`
	PerPage       int      `json:"per_page"`
	AuthorID      uint     `json:"author_id,omitempty"`
}

// Normalize 填充默认值并规范化，等价的请求得到相同的参数
//
// 公开范围强制只查已发布文章；标签去重并排序。
func (p ListParams) Normalize(scope Scope) ListParams {
	n := ListParams{
		Search:        strings.TrimSpace(p.Search),
		Category:      strings.ToLower(strings.TrimSpace(p.Category)),
		Tags:          normalizeSlugs(p.Tags),
		SortDirection: strings.ToLower(p.SortDirection),
		Page:          p.Page,
		PerPage:       p.PerPage,
	}

	maxPerPage := MaxPublicPerPage
	switch scope {
	case ScopeAdmin:
		maxPerPage = MaxAdminPerPage
		n.AuthorID = p.AuthorID
		n.Status = p.Status
		if n.Status != model.StatusDraft && n.Status != model.StatusPublished {
			n.Status = StatusAll
		}
		n.SortBy = pick(p.SortBy, SortCreatedAt, SortUpdatedAt, SortTitle)
	default:
		n.Status = model.StatusPublished
		n.SortBy = pick(p.SortBy, SortCreatedAt, SortTitle)
	}

	if n.SortDirection != SortDirectionAsc {
		n.SortDirection = SortDirectionDesc
	}
	if n.Page < 1 {
		n.Page = 1
	}
	if n.PerPage < 1 {
		n.PerPage = DefaultPerPage
	}
	if n.PerPage > maxPerPage {
		n.PerPage = maxPerPage
	}
	return n
}

// Offset 分页偏移
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// pick 返回 value，不在允许列表中时返回第一个允许值
func pick(value string, allowed ...string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return allowed[0]
}

func normalizeSlugs(slugs []string) []string {
	if len(slugs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(slugs))
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
