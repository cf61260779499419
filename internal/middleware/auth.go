package middleware

import (
	"terminal-terrace/blog/internal/dto"
	authsdk "terminal-terrace/blog/packages/auth-sdk"
	"terminal-terrace/blog/packages/response"

	"github.com/gin-gonic/gin"
)

const userContextKey = "auth_user"

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context, secret string) (*authsdk.UserContext, error) {
	// 优先从 Authorization header 获取
	tokenString, ok := authsdk.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		// 兼容前端以 cookie 携带的 access_token
		cookie, err := c.Cookie("access_token")
		if err != nil || cookie == "" {
			return nil, authsdk.ErrNoToken
		}
		tokenString = cookie
	}

	return authsdk.ParseToken(tokenString, secret)
}

func setUser(c *gin.Context, user *authsdk.UserContext) {
	c.Set(userContextKey, user)
	c.Set("user_id", user.UserID)
	c.Set("user_role", user.Role)
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := parseToken(c, secret)
		if err != nil {
			msg := "无效的认证令牌"
			switch err {
			case authsdk.ErrNoToken:
				msg = "未提供认证令牌"
			case authsdk.ErrExpiredToken:
				msg = "认证令牌已过期"
			}
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(msg),
			))
			return
		}

		// 将用户信息存入上下文
		setUser(c, user)
		c.Next()
	}
}

// RequireAdmin 仅允许超级管理员，需在 JWTAuth 之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin() {
			dto.ErrorResponse(c, response.NewForbiddenError("需要超级管理员权限"))
			return
		}
		c.Next()
	}
}

// CurrentUser 当前登录用户，未登录时返回空的 UserContext
func CurrentUser(c *gin.Context) *authsdk.UserContext {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*authsdk.UserContext); ok {
			return user
		}
	}
	return &authsdk.UserContext{}
}
