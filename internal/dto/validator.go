package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	res "terminal-terrace/blog/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	validatorOnce sync.Once
)

// IsSlug 是否为合法 slug：小写字母数字，以单个连字符分隔
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// IsBlank 去除首尾空白后是否为空
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NotBlank 去除首尾空白后为空时返回 422 字段错误
func NotBlank(field, value string) error {
	if !IsBlank(value) {
		return nil
	}
	return res.NewValidationError(map[string][]string{
		field: {fmt.Sprintf("字段 '%s' 不能为空白", field)},
	})
}

// SetupValidator 注册自定义校验规则，并让错误中的字段名使用 json/form 标签
func SetupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return toSnakeCase(fld.Name)
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return IsSlug(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return !IsBlank(fl.Field().String())
		})
	})
}

// BindJSON 绑定并校验请求体，失败时已写出响应
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		ValidationErrorResponse(c, err)
		return false
	}
	return true
}

// BindQuery 绑定并校验查询参数，失败时已写出响应
func BindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		ValidationErrorResponse(c, err)
		return false
	}
	return true
}

// Validate 校验 gRPC 与命令行传入的请求结构，失败时返回 422 业务错误
func Validate(req any) error {
	SetupValidator()
	err := binding.Validator.ValidateStruct(req)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return res.NewValidationError(FieldErrors(validationErrs))
	}
	return res.NewBusinessError(
		res.WithErrorCode(res.InvalidParameter),
		res.WithErrorMessage("参数错误: "+err.Error()),
	)
}

// ValidationErrorResponse 处理验证错误，返回 422 与字段级错误信息
func ValidationErrorResponse(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ErrorResponse(c, res.NewValidationError(FieldErrors(validationErrs)))
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		ErrorResponse(c, res.NewValidationError(map[string][]string{
			typeErr.Field: {fmt.Sprintf("字段 '%s' 类型错误，应为 %s", typeErr.Field, typeErr.Type)},
		}))
	case errors.As(err, &syntaxErr):
		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage("请求体不是合法的 JSON"),
		))
	default:
		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.InvalidParameter),
			res.WithErrorMessage("参数错误: "+err.Error()),
		))
	}
}

// FieldErrors 将校验错误转换为 字段 -> 错误信息列表
func FieldErrors(errs validator.ValidationErrors) map[string][]string {
	fields := make(map[string][]string, len(errs))
	for _, fe := range errs {
		name := fieldName(fe)
		fields[name] = append(fields[name], fieldMessage(name, fe))
	}
	return fields
}

// fieldName 嵌套字段保留路径，如 tags[0]
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("字段 '%s' 是必填项", field)
	case "max":
		return fmt.Sprintf("字段 '%s' 不能超过 %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("字段 '%s' 不能少于 %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("字段 '%s' 不能为空白", field)
	case "slug":
		return fmt.Sprintf("字段 '%s' 只能包含小写字母、数字和连字符", field)
	case "gt":
		return fmt.Sprintf("字段 '%s' 必须大于 %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("字段 '%s' 必须大于等于 %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("字段 '%s' 必须是合法的邮箱地址", field)
	default:
		return fmt.Sprintf("字段 '%s' 验证失败: %s", field, fe.Tag())
	}
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
