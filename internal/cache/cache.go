package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

// Cache 带前缀的缓存入口，store 为 nil 时缓存关闭
type Cache struct {
	store  Store
	prefix string
}

func New(store Store, prefix string) *Cache {
	return &Cache{store: store, prefix: prefix}
}

// Enabled 是否配置了存储
func (c *Cache) Enabled() bool {
	return c != nil && c.store != nil
}

// Tags 返回带标签的缓存视图
func (c *Cache) Tags(tags ...string) *TaggedCache {
	return &TaggedCache{cache: c, tags: tags}
}

func (c *Cache) tagKey(tag string) string {
	return c.prefix + ":tag:" + tag
}

// TaggedCache 标签缓存
//
// 每个标签对应一个版本号 {prefix}:tag:{tag}，条目键为
// {prefix}:{sha1(各标签版本)}:{key}。刷新标签只需自增版本号，
// 旧条目不再可达并随 TTL 过期。
type TaggedCache struct {
	cache *Cache
	tags  []string
}

func (t *TaggedCache) namespace(ctx context.Context) (string, error) {
	keys := make([]string, len(t.tags))
	for i, tag := range t.tags {
		keys[i] = t.cache.tagKey(tag)
	}

	versions, err := t.cache.store.GetMulti(ctx, keys)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(t.tags))
	for i, tag := range t.tags {
		version := "0"
		if i < len(versions) && versions[i] != nil {
			version = string(versions[i])
		}
		parts[i] = tag + "=" + version
	}

	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:]), nil
}

func (t *TaggedCache) itemKey(ctx context.Context, key string) (string, error) {
	ns, err := t.namespace(ctx)
	if err != nil {
		return "", err
	}
	return t.cache.prefix + ":" + ns + ":" + key, nil
}

// Get 读取并反序列化到 dest，未命中返回 ErrMiss
func (t *TaggedCache) Get(ctx context.Context, key string, dest any) error {
	itemKey, err := t.itemKey(ctx, key)
	if err != nil {
		return err
	}
	data, err := t.cache.store.Get(ctx, itemKey)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Put 序列化后写入
func (t *TaggedCache) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	itemKey, err := t.itemKey(ctx, key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return t.cache.store.Set(ctx, itemKey, data, ttl)
}

// Flush 使所有带这些标签的条目失效
func (t *TaggedCache) Flush(ctx context.Context) error {
	if !t.cache.Enabled() {
		return nil
	}
	var errs []error
	for _, tag := range t.tags {
		if _, err := t.cache.store.Incr(ctx, t.cache.tagKey(tag)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Remember 旁路缓存：命中则返回缓存值，否则调用 fn 并写入缓存。
// 存储出错时记录警告并直接返回 fn 的结果。
func Remember[T any](ctx context.Context, t *TaggedCache, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	if !t.cache.Enabled() {
		return fn()
	}

	var cached T
	err := t.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrMiss) {
		log.Warnf("读取缓存失败 key=%s tags=%v: %v", key, t.tags, err)
	}

	value, err := fn()
	if err != nil {
		return value, err
	}

	if err := t.Put(ctx, key, value, ttl); err != nil {
		log.Warnf("写入缓存失败 key=%s tags=%v: %v", key, t.tags, err)
	}
	return value, nil
}

// Key 将参数结构序列化后取 sha1，作为列表缓存键
func Key(params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		// 不可序列化的参数退化为不可共享的键
		return "unhashable:" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}
