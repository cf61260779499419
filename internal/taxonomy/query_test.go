package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    ListParams
		expected ListParams
	}{
		{
			name:     "默认值",
			input:    ListParams{},
			expected: ListParams{SortBy: SortName, SortDirection: "asc", Page: 1, PerPage: DefaultPerPage},
		},
		{
			name:     "保留合法参数",
			input:    ListParams{Search: "  go ", SortBy: SortArticlesCount, SortDirection: "DESC", Page: 3, PerPage: 5},
			expected: ListParams{Search: "go", SortBy: SortArticlesCount, SortDirection: "desc", Page: 3, PerPage: 5},
		},
		{
			name:     "非法排序与超大分页",
			input:    ListParams{SortBy: "id; drop table", PerPage: 1000},
			expected: ListParams{SortBy: SortName, SortDirection: "asc", Page: 1, PerPage: MaxPerPage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, got.Normalize())
		})
	}
}

func TestListParams_Offset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, PerPage: 20}.Offset())
	assert.Equal(t, 40, ListParams{Page: 3, PerPage: 20}.Offset())
}
