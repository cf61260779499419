package cache

// 资源名
const (
	Articles      = "articles"
	AdminArticles = "admin:articles"
	Tags          = "tags"
	Categories    = "categories"
)

// TTLs 各资源的过期配置
type TTLs struct {
	Articles   TTL
	Admin      TTL
	Tags       TTL
	Categories TTL
}

// NewBlogRegistry 注册博客的四类资源缓存及其依赖关系
func NewBlogRegistry(c *Cache, ttls TTLs) *Registry {
	r := NewRegistry()
	r.Register(NewResourceCache(c, Articles, ttls.Articles))
	r.Register(NewResourceCache(c, AdminArticles, ttls.Admin))
	r.Register(NewResourceCache(c, Tags, ttls.Tags))
	r.Register(NewResourceCache(c, Categories, ttls.Categories))

	// 文章变更影响标签与分类的文章数
	r.DependsOn(Articles, Tags, Categories)
	// 标签与分类变更影响文章中嵌入的标签、分类信息
	r.DependsOn(Tags, Articles, AdminArticles)
	r.DependsOn(Categories, Articles, AdminArticles)
	return r
}

// ApplyTTLs 热更新过期配置
func (r *Registry) ApplyTTLs(ttls TTLs) {
	set := map[string]TTL{
		Articles:      ttls.Articles,
		AdminArticles: ttls.Admin,
		Tags:          ttls.Tags,
		Categories:    ttls.Categories,
	}
	for name, ttl := range set {
		if rc, ok := r.resources[name]; ok {
			rc.SetTTL(ttl)
		}
	}
}
