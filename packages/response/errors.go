package response

import (
	"fmt"
	"net/http"
)

// 业务错误码，与 HTTP 状态码一一对应
const (
	// 失败（未预期的内部错误）
	Fail ResponseCode = http.StatusInternalServerError
	// 参数解析错误
	ParseError ResponseCode = http.StatusBadRequest
	// 未认证
	Unauthorized ResponseCode = http.StatusUnauthorized
	// 无权限
	Forbidden ResponseCode = http.StatusForbidden
	// 资源不存在
	NotFound ResponseCode = http.StatusNotFound
	// 资源仍被引用
	Conflict ResponseCode = http.StatusConflict
	// 参数校验失败
	InvalidParameter ResponseCode = http.StatusUnprocessableEntity
)

type BusinessError struct {
	Code    ResponseCode
	Msg     string
	Err     error
	Details map[string]any
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// HTTPStatus 返回错误对应的 HTTP 状态码
func (e *BusinessError) HTTPStatus() int {
	if e.Code < 100 || e.Code > 599 {
		return http.StatusInternalServerError
	}
	return int(e.Code)
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

// WithDetail 附加结构化上下文（资源名、ID、引用计数等）
func WithDetail(key string, value any) ErrorOption {
	return func(be *BusinessError) {
		if be.Details == nil {
			be.Details = make(map[string]any)
		}
		be.Details[key] = value
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// NewNotFoundError 资源不存在
func NewNotFoundError(resource string, id any) *BusinessError {
	return NewBusinessError(
		WithErrorCode(NotFound),
		WithErrorMessage(fmt.Sprintf("%s (id=%v) 不存在", resource, id)),
		WithDetail("resource", resource),
		WithDetail("id", id),
	)
}

// NewForbiddenError 当前用户无权操作该资源
func NewForbiddenError(msg string) *BusinessError {
	return NewBusinessError(
		WithErrorCode(Forbidden),
		WithErrorMessage(msg),
	)
}

// NewResourceInUseError 资源仍被其他资源引用，拒绝删除
func NewResourceInUseError(resource string, id any, referrer string, count int64) *BusinessError {
	return NewBusinessError(
		WithErrorCode(Conflict),
		WithErrorMessage(fmt.Sprintf("%s (id=%v) 仍被 %d 个%s引用，无法删除", resource, id, count, referrer)),
		WithDetail("resource", resource),
		WithDetail("id", id),
		WithDetail("referrer", referrer),
		WithDetail("count", count),
	)
}

// NewValidationError 字段级校验失败，errors 为 字段 -> 错误信息列表
func NewValidationError(errors map[string][]string) *BusinessError {
	return NewBusinessError(
		WithErrorCode(InvalidParameter),
		WithErrorMessage("参数校验失败"),
		WithDetail("errors", errors),
	)
}

// FieldErrors 取出校验错误中的字段信息
func (e *BusinessError) FieldErrors() map[string][]string {
	if e.Details == nil {
		return nil
	}
	fields, _ := e.Details["errors"].(map[string][]string)
	return fields
}

// NewInternalError 内部错误，保留原始错误用于日志
func NewInternalError(msg string, err error) *BusinessError {
	return NewBusinessError(
		WithErrorCode(Fail),
		WithErrorMessage(msg),
		WithError(err),
	)
}

// FieldErrors 字段 -> 错误信息列表，用于收集多个字段的校验错误
type FieldErrors map[string][]string

// Add 追加一条字段错误
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Err 没有错误时返回 nil，否则返回 422 校验错误
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationError(f)
}
