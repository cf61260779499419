package grpc

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"terminal-terrace/blog/packages/response"
)

// toStatus 将业务错误转换为 gRPC 状态
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var bizErr *response.BusinessError
	if !errors.As(err, &bizErr) {
		return status.Error(codes.Internal, "服务器内部错误")
	}

	var code codes.Code
	switch bizErr.HTTPStatus() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = codes.InvalidArgument
	case http.StatusUnauthorized:
		code = codes.Unauthenticated
	case http.StatusForbidden:
		code = codes.PermissionDenied
	case http.StatusNotFound:
		code = codes.NotFound
	case http.StatusConflict:
		code = codes.FailedPrecondition
	default:
		return status.Error(codes.Internal, "服务器内部错误")
	}
	return status.Error(code, bizErr.Msg)
}
