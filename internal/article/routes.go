package article

import (
	"github.com/gin-gonic/gin"
)

// SetupArticleRoutes 设置文章相关路由，admin 分组需已挂载认证中间件
func SetupArticleRoutes(api *gin.RouterGroup, admin *gin.RouterGroup, articleService *ArticleService) {
	articleHandler := NewArticleHandler(articleService)

	// 公开路由
	articles := api.Group("/articles")
	{
		articles.GET("", articleHandler.ListArticles)   // 已发布文章列表
		articles.GET("/:id", articleHandler.GetArticle) // 已发布文章详情
	}

	// 后台路由 - 仅作者本人
	adminArticles := admin.Group("/articles")
	{
		adminArticles.GET("", articleHandler.AdminListArticles)
		adminArticles.POST("", articleHandler.CreateArticle)
		adminArticles.GET("/:id", articleHandler.AdminGetArticle)
		adminArticles.PUT("/:id", articleHandler.UpdateArticle)
		adminArticles.DELETE("/:id", articleHandler.DeleteArticle)
	}
}
