package tag

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/middleware"
)

// SetupTagRoutes 设置标签相关路由，admin 分组需已挂载认证中间件
func SetupTagRoutes(api *gin.RouterGroup, admin *gin.RouterGroup, tagService *TagService) {
	tagHandler := NewTagHandler(tagService)

	tags := api.Group("/tags")
	{
		tags.GET("", tagHandler.ListTags)
		tags.GET("/:id", tagHandler.GetTag)
	}

	// 写操作仅限超级管理员，服务层同样校验
	adminTags := admin.Group("/tags")
	{
		adminTags.GET("", tagHandler.ListTags)
		adminTags.POST("", middleware.RequireAdmin(), tagHandler.CreateTag)
		adminTags.GET("/:id", tagHandler.GetTag)
		adminTags.PUT("/:id", middleware.RequireAdmin(), tagHandler.UpdateTag)
		adminTags.DELETE("/:id", middleware.RequireAdmin(), tagHandler.DeleteTag)
	}
}
