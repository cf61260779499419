package dto

import (
	"strconv"

	res "terminal-terrace/blog/packages/response"

	"github.com/gin-gonic/gin"
)

// ParseID 解析路径参数 id，失败时已写出 400
func ParseID(c *gin.Context, msg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage(msg),
		))
		return 0, false
	}
	return uint(id), true
}
