package service

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/auth"
	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/category"
	"terminal-terrace/blog/internal/tag"
	"terminal-terrace/blog/packages/database"
)

// Container 汇总各领域服务，HTTP、gRPC 与命令行共用同一份实例
type Container struct {
	DB         *gorm.DB
	Registry   *cache.Registry
	Articles   *article.ArticleService
	Tags       *tag.TagService
	Categories *category.CategoryService
	Auth       *auth.AuthService
}

// NewContainer 按配置组装服务
func NewContainer(db *gorm.DB, store cache.Store, conf *config.AppConfig) *Container {
	registry := cache.NewBlogRegistry(cache.New(store, conf.Cache.Prefix), TTLs(conf.Cache))

	return &Container{
		DB:         db,
		Registry:   registry,
		Articles:   article.NewArticleService(article.NewArticleRepository(db), registry),
		Tags:       tag.NewTagService(tag.NewTagRepository(db), registry),
		Categories: category.NewCategoryService(category.NewCategoryRepository(db), registry),
		Auth:       auth.NewAuthService(auth.NewUserRepository(db), conf.JWT.Secret, conf.JWT.TTL()),
	}
}

// NewCacheStore 按 cache.driver 选择存储；none 返回 nil，即关闭缓存
func NewCacheStore(conf config.CacheConfig, redisClient *database.RedisClient) (cache.Store, error) {
	switch conf.Driver {
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("cache.driver=redis 但 Redis 未初始化")
		}
		return cache.NewRedisStore(redisClient.Client), nil
	case "memory":
		return cache.NewMemoryStore(), nil
	case "none":
		log.Warn("缓存已关闭")
		return nil, nil
	default:
		return nil, fmt.Errorf("不支持的缓存驱动: %s", conf.Driver)
	}
}

// TTLs 将配置转换为各资源的过期时间
func TTLs(conf config.CacheConfig) cache.TTLs {
	convert := func(t config.CacheTTL) cache.TTL {
		return cache.TTL{List: t.List, Detail: t.Detail}
	}
	return cache.TTLs{
		Articles:   convert(conf.Articles),
		Admin:      convert(conf.Admin),
		Tags:       convert(conf.Tags),
		Categories: convert(conf.Categories),
	}
}
