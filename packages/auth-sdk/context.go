package authsdk

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

// BearerToken 从 "Bearer xxx" 形式的 header 中取出 token
func BearerToken(header string) (string, bool) {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:]), true
	}
	return "", false
}

// ExtractTokenFromContext 从 gRPC context 的 metadata 中提取 JWT token
// 支持两种方式：
// 1. authorization header (Bearer token)
// 2. x-access-token header
func ExtractTokenFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrNoToken
	}

	if values := md.Get("authorization"); len(values) > 0 {
		if token, ok := BearerToken(values[0]); ok {
			return token, nil
		}
		return values[0], nil
	}

	if values := md.Get("x-access-token"); len(values) > 0 {
		return values[0], nil
	}

	return "", ErrNoToken
}

// GetUserFromContext 从 gRPC context 获取用户信息
// 如果没有 token 或解析失败，返回空的 UserContext（UserID=0）
func GetUserFromContext(ctx context.Context, secret string) *UserContext {
	token, err := ExtractTokenFromContext(ctx)
	if err != nil {
		return &UserContext{} // 未登录用户
	}

	user, err := ParseToken(token, secret)
	if err != nil {
		return &UserContext{} // token 无效
	}

	return user
}
