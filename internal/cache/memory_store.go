package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval 过期条目的清理周期
const DefaultCleanupInterval = time.Minute

// MemoryStore 进程内存储，用于测试与单机部署
//
// 标签失效后旧版本的条目不会再被读取，由后台清理按 TTL 回收。
type MemoryStore struct {
	items *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return newMemoryStore(DefaultCleanupInterval)
}

func newMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.lookup(key)
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (s *MemoryStore) GetMulti(_ context.Context, keys []string) ([][]byte, error) {
	result := make([][]byte, len(keys))
	for i, key := range keys {
		if v, ok := s.lookup(key); ok {
			result[i] = v
		}
	}
	return result, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	s.items.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.items.Delete(key)
	}
	return nil
}

// Incr 计数器以 int64 保存，不存在时从 1 开始
func (s *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	if err := s.items.Add(key, int64(1), gocache.NoExpiration); err == nil {
		return 1, nil
	}
	n, err := s.items.IncrementInt64(key, 1)
	if err != nil {
		return 0, fmt.Errorf("value is not an integer: %w", err)
	}
	return n, nil
}

// Len 当前未过期的条目数
func (s *MemoryStore) Len() int {
	return len(s.items.Items())
}

func (s *MemoryStore) lookup(key string) ([]byte, bool) {
	v, ok := s.items.Get(key)
	if !ok {
		return nil, false
	}
	switch value := v.(type) {
	case []byte:
		return value, true
	case int64:
		return []byte(strconv.FormatInt(value, 10)), true
	default:
		return nil, false
	}
}
