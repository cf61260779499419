package article

import (
	"context"

	"github.com/labstack/gommon/log"

	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/dto"
)

type articlePage = dto.Page[dto.ArticleResource]

// ArticleCache 公开与后台文章的缓存
type ArticleCache struct {
	registry *cache.Registry
	public   *cache.ResourceCache
	admin    *cache.ResourceCache
}

func NewArticleCache(registry *cache.Registry) *ArticleCache {
	public, _ := registry.Resource(cache.Articles)
	admin, _ := registry.Resource(cache.AdminArticles)
	return &ArticleCache{registry: registry, public: public, admin: admin}
}

func (c *ArticleCache) List(ctx context.Context, p ListParams, fn func() (*articlePage, error)) (*articlePage, error) {
	return cache.RememberList(ctx, c.public, p, fn)
}

func (c *ArticleCache) Detail(ctx context.Context, id uint, fn func() (*dto.ArticleResource, error)) (*dto.ArticleResource, error) {
	return cache.RememberDetail(ctx, c.public, id, fn)
}

func (c *ArticleCache) AdminList(ctx context.Context, userID uint, p ListParams, fn func() (*articlePage, error)) (*articlePage, error) {
	return cache.RememberList(ctx, c.admin.ForUser(userID), p, fn)
}

func (c *ArticleCache) AdminDetail(ctx context.Context, userID, id uint, fn func() (*dto.ArticleResource, error)) (*dto.ArticleResource, error) {
	return cache.RememberDetail(ctx, c.admin.ForUser(userID), id, fn)
}

// Invalidate 文章变更后清除公开缓存、依赖资源以及操作者的后台缓存
func (c *ArticleCache) Invalidate(ctx context.Context, actorID, id uint) {
	c.registry.Invalidate(ctx, cache.Articles, id)
	if err := c.admin.ForUser(actorID).ClearResource(ctx, id); err != nil {
		log.Warnf("清除后台文章缓存失败 user=%d id=%d: %v", actorID, id, err)
	}
}
