package dto

import (
	"errors"
	"net/http"

	res "terminal-terrace/blog/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/labstack/gommon/log"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

// CreatedResponse 201 创建成功
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, res.CustomResponse(
		res.WithCode(res.Created),
		res.WithMessage("created"),
		res.WithData(data),
	))
}

// PaginatedResponse 列表响应，分页信息放在 meta.pagination
func PaginatedResponse(c *gin.Context, data any, pagination res.Pagination) {
	c.JSON(http.StatusOK, res.CustomResponse(
		res.WithData(data),
		res.WithPagination(pagination),
	))
}

// ErrorResponse 按业务错误的状态码输出，非业务错误记录日志后按 500 处理
func ErrorResponse(c *gin.Context, err error) {
	var bizErr *res.BusinessError
	if !errors.As(err, &bizErr) {
		log.Errorf("%s %s 未处理的错误: %v", c.Request.Method, c.Request.URL.Path, err)
		bizErr = res.NewBusinessError(
			res.WithErrorCode(res.Fail),
			res.WithErrorMessage("服务器内部错误"),
			res.WithError(err),
		)
	} else if bizErr.HTTPStatus() >= http.StatusInternalServerError {
		log.Errorf("%s %s %v", c.Request.Method, c.Request.URL.Path, bizErr)
	}

	opts := []res.ResponseOptions{
		res.WithCode(res.ResponseCode(bizErr.HTTPStatus())),
		res.WithMessage(bizErr.Msg),
	}
	if fields := bizErr.FieldErrors(); len(fields) > 0 {
		opts = append(opts, res.WithMeta(gin.H{"errors": fields}))
	} else if len(bizErr.Details) > 0 {
		opts = append(opts, res.WithMeta(bizErr.Details))
	}

	body := res.CustomResponse(opts...)
	body.Status = res.StatusError
	c.AbortWithStatusJSON(bizErr.HTTPStatus(), body)
}
