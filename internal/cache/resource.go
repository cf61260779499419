package cache

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"
)

// TTL 列表与详情的过期时间
type TTL struct {
	List   time.Duration
	Detail time.Duration
}

// ResourceCache 单个资源的缓存服务
//
// 标签布局（以 articles 为例）：
//
//	列表  articles, articles:list
//	详情  articles, articles:detail:{id}
//
// 带作用域时（如 admin:articles 的某个用户）额外挂上作用域标签：
//
//	admin:articles, admin:articles:user:{uid}, admin:articles:user:{uid}:list
type ResourceCache struct {
	cache *Cache
	name  string
	scope string
	// 与作用域视图共享，热加载后同时生效
	ttl *atomic.Pointer[TTL]
}

func NewResourceCache(c *Cache, name string, ttl TTL) *ResourceCache {
	r := &ResourceCache{cache: c, name: name, scope: name, ttl: &atomic.Pointer[TTL]{}}
	r.ttl.Store(&ttl)
	return r
}

// Name 资源名
func (r *ResourceCache) Name() string {
	return r.name
}

// TTL 当前过期配置
func (r *ResourceCache) TTL() TTL {
	return *r.ttl.Load()
}

// SetTTL 更新过期配置，配置热加载时使用
func (r *ResourceCache) SetTTL(ttl TTL) {
	r.ttl.Store(&ttl)
}

// Scoped 返回挂在 {name}:{suffix} 作用域下的视图
func (r *ResourceCache) Scoped(suffix string) *ResourceCache {
	return &ResourceCache{
		cache: r.cache,
		name:  r.name,
		scope: r.name + ":" + suffix,
		ttl:   r.ttl,
	}
}

// ForUser 用户作用域
func (r *ResourceCache) ForUser(userID uint) *ResourceCache {
	return r.Scoped("user:" + strconv.FormatUint(uint64(userID), 10))
}

func (r *ResourceCache) baseTags() []string {
	if r.scope == r.name {
		return []string{r.name}
	}
	return []string{r.name, r.scope}
}

func (r *ResourceCache) listTag() string {
	return r.scope + ":list"
}

func (r *ResourceCache) detailTag(id uint) string {
	return r.scope + ":detail:" + strconv.FormatUint(uint64(id), 10)
}

func (r *ResourceCache) list() *TaggedCache {
	return r.cache.Tags(append(r.baseTags(), r.listTag())...)
}

func (r *ResourceCache) detail(id uint) *TaggedCache {
	return r.cache.Tags(append(r.baseTags(), r.detailTag(id))...)
}

// RememberList 按规范化后的查询参数缓存列表结果
func RememberList[T any](ctx context.Context, r *ResourceCache, params any, fn func() (T, error)) (T, error) {
	return Remember(ctx, r.list(), "list:"+Key(params), r.TTL().List, fn)
}

// RememberDetail 按 id 缓存详情
func RememberDetail[T any](ctx context.Context, r *ResourceCache, id uint, fn func() (T, error)) (T, error) {
	return Remember(ctx, r.detail(id), "detail:"+strconv.FormatUint(uint64(id), 10), r.TTL().Detail, fn)
}

// ClearList 清除当前作用域的所有列表
func (r *ResourceCache) ClearList(ctx context.Context) error {
	return r.cache.Tags(r.listTag()).Flush(ctx)
}

// ClearDetail 清除当前作用域的某个详情
func (r *ResourceCache) ClearDetail(ctx context.Context, id uint) error {
	return r.cache.Tags(r.detailTag(id)).Flush(ctx)
}

// ClearResource 清除列表与指定详情
func (r *ResourceCache) ClearResource(ctx context.Context, id uint) error {
	return errors.Join(r.ClearList(ctx), r.ClearDetail(ctx, id))
}

// ClearAll 清除当前作用域下的全部条目
func (r *ResourceCache) ClearAll(ctx context.Context) error {
	return r.cache.Tags(r.scope).Flush(ctx)
}
