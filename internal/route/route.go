package route

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"terminal-terrace/blog/config"
	_ "terminal-terrace/blog/docs"
	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/auth"
	"terminal-terrace/blog/internal/category"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/middleware"
	"terminal-terrace/blog/internal/page"
	"terminal-terrace/blog/internal/service"
	"terminal-terrace/blog/internal/tag"
	"terminal-terrace/blog/packages/response"
)

// defaultOrigins 本地开发的后台前端
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func initRoute(r *gin.Engine, c *service.Container, conf *config.AppConfig) {
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API 路由组
	api := r.Group("/api")
	admin := api.Group("/admin", middleware.JWTAuth(conf.JWT.Secret))
	{
		auth.SetupAuthRoutes(api, c.Auth, conf.JWT.Secret)
		article.SetupArticleRoutes(api, admin, c.Articles)
		tag.SetupTagRoutes(api, admin, c.Tags)
		category.SetupCategoryRoutes(api, admin, c.Categories)
	}

	// 页面路由，站点配置每次请求读取以支持热加载
	site := func() config.SiteConfig {
		if current := config.Get(); current != nil {
			return current.Site
		}
		return conf.Site
	}
	pages := page.NewPageHandler(c.Articles, c.Tags, c.Categories, site)
	page.SetupPageRoutes(r, pages)
	r.NoRoute(func(ctx *gin.Context) {
		// /api 下返回 JSON 信封，其余返回 HTML 页面
		if path := ctx.Request.URL.Path; path == "/api" || strings.HasPrefix(path, "/api/") {
			dto.ErrorResponse(ctx, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("接口不存在: "+path),
			))
			return
		}
		pages.NotFound(ctx)
	})
}

// SetupRouter 创建 gin 引擎并注册中间件与全部路由
func SetupRouter(c *service.Container, conf *config.AppConfig) *gin.Engine {
	gin.SetMode(conf.Server.Mode)
	dto.SetupValidator()

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery())

	allowedOrigins := defaultOrigins
	if len(conf.Server.AllowOrigins) > 0 {
		allowedOrigins = conf.Server.AllowOrigins
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r, c, conf)

	return r
}
