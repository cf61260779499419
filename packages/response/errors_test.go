package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *BusinessError
		want int
	}{
		{"默认为内部错误", NewBusinessError(), http.StatusInternalServerError},
		{"资源不存在", NewNotFoundError("文章", 7), http.StatusNotFound},
		{"无权限", NewForbiddenError("nope"), http.StatusForbidden},
		{"引用冲突", NewResourceInUseError("分类", 1, "文章", 3), http.StatusConflict},
		{"校验失败", NewValidationError(map[string][]string{"title": {"x"}}), http.StatusUnprocessableEntity},
		{"非法错误码回落到500", NewBusinessError(WithErrorCode(ResponseCode(7))), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestNewResourceInUseError_MessageCarriesCount(t *testing.T) {
	err := NewResourceInUseError("标签", 12, "文章", 4)

	assert.Contains(t, err.Msg, "4")
	assert.Contains(t, err.Msg, "标签")
	assert.Contains(t, err.Msg, "id=12")
	assert.Equal(t, int64(4), err.Details["count"])
	assert.Equal(t, "文章", err.Details["referrer"])
}

func TestBusinessError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewBusinessError(WithError(cause), WithErrorMessage("查询失败"))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "查询失败: connection refused", err.Error())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		total          int64
		wantTotalPages int
	}{
		{"整除", 1, 10, 30, 3},
		{"有余数向上取整", 3, 10, 25, 3},
		{"空结果", 1, 15, 0, 0},
		{"单条", 1, 50, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.total, p.TotalItems)
		})
	}
}
