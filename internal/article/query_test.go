package article

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "terminal-terrace/blog/internal/model/article"
)

func TestListParams_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		scope  Scope
		in     ListParams
		expect ListParams
	}{
		{
			name:  "公开范围默认值",
			scope: ScopePublic,
			in:    ListParams{},
			expect: ListParams{
				Status: model.StatusPublished, SortBy: SortCreatedAt, SortDirection: SortDirectionDesc,
				Page: 1, PerPage: DefaultPerPage,
			},
		},
		{
			name:  "公开范围忽略状态与作者",
			scope: ScopePublic,
			in:    ListParams{Status: model.StatusDraft, AuthorID: 7, SortBy: SortUpdatedAt, PerPage: 500},
			expect: ListParams{
				Status: model.StatusPublished, SortBy: SortCreatedAt, SortDirection: SortDirectionDesc,
				Page: 1, PerPage: MaxPublicPerPage,
			},
		},
		{
			name:  "标签去重排序并小写",
			scope: ScopePublic,
			in:    ListParams{Tags: []string{"Go", "rust", " go ", ""}, Category: " Tech ", Search: "  hello ", SortDirection: "ASC"},
			expect: ListParams{
				Search: "hello", Category: "tech", Tags: []string{"go", "rust"},
				Status: model.StatusPublished, SortBy: SortCreatedAt, SortDirection: SortDirectionAsc,
				Page: 1, PerPage: DefaultPerPage,
			},
		},
		{
			name:  "后台范围保留作者与状态",
			scope: ScopeAdmin,
			in:    ListParams{Status: model.StatusDraft, AuthorID: 7, SortBy: SortUpdatedAt, Page: 3, PerPage: 500},
			expect: ListParams{
				Status: model.StatusDraft, AuthorID: 7, SortBy: SortUpdatedAt, SortDirection: SortDirectionDesc,
				Page: 3, PerPage: MaxAdminPerPage,
			},
		},
		{
			name:  "后台未知状态视为全部",
			scope: ScopeAdmin,
			in:    ListParams{Status: "archived", SortBy: "views"},
			expect: ListParams{
				Status: StatusAll, SortBy: SortCreatedAt, SortDirection: SortDirectionDesc,
				Page: 1, PerPage: DefaultPerPage,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.in.Normalize(tt.scope))
		})
	}
}

func TestListParams_NormalizeIsIdempotent(t *testing.T) {
	p := ListParams{Tags: []string{"b", "a", "A"}, Page: 2, PerPage: 10}.Normalize(ScopePublic)
	assert.Equal(t, p, p.Normalize(ScopePublic))
}

func TestListParams_Offset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, ListParams{Page: 3, PerPage: 10}.Offset())
}
