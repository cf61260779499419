package auth

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/middleware"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(api *gin.RouterGroup, authService *AuthService, secret string) {
	h := NewAuthHandler(authService)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.JWTAuth(secret), h.Me)
	}
}
