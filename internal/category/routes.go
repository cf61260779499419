package category

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/blog/internal/middleware"
)

// SetupCategoryRoutes 设置分类相关路由，admin 分组需已挂载认证中间件
func SetupCategoryRoutes(api *gin.RouterGroup, admin *gin.RouterGroup, categoryService *CategoryService) {
	categoryHandler := NewCategoryHandler(categoryService)

	categories := api.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
	}

	// 写操作仅限超级管理员，服务层同样校验
	adminCategories := admin.Group("/categories")
	{
		adminCategories.GET("", categoryHandler.ListCategories)
		adminCategories.POST("", middleware.RequireAdmin(), categoryHandler.CreateCategory)
		adminCategories.GET("/:id", categoryHandler.GetCategory)
		adminCategories.PUT("/:id", middleware.RequireAdmin(), categoryHandler.UpdateCategory)
		adminCategories.DELETE("/:id", middleware.RequireAdmin(), categoryHandler.DeleteCategory)
	}
}
