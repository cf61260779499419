// Package cache 基于标签版本号的缓存
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss 缓存未命中
var ErrMiss = errors.New("cache: miss")

// Store 键值存储接口，实现为 Redis 或进程内存
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// GetMulti 批量读取，未命中的位置为 nil
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Incr 自增计数器，用于标签版本号
	Incr(ctx context.Context, key string) (int64, error)
}
