package page

import "github.com/gin-gonic/gin"

// SetupPageRoutes 注册页面路由
func SetupPageRoutes(r gin.IRoutes, h *PageHandler) {
	r.GET("/", h.Home)
	r.GET("/articles/:slug", h.Article)
	r.GET("/tags/:slug", h.Tag)
	r.GET("/categories/:slug", h.Category)
}
