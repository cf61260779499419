package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/testutils"
)

func TestNewCacheStore(t *testing.T) {
	client, _ := testutils.SetupTestRedis(t)

	tests := []struct {
		name      string
		driver    string
		withRedis bool
		wantNil   bool
		wantErr   bool
	}{
		{"redis", "redis", true, false, false},
		{"redis 未初始化", "redis", false, true, true},
		{"memory", "memory", false, false, false},
		{"none 关闭缓存", "none", false, true, false},
		{"未知驱动", "memcached", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisClient := client
			if !tt.withRedis {
				redisClient = nil
			}
			store, err := NewCacheStore(config.CacheConfig{Driver: tt.driver}, redisClient)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, store == nil)
		})
	}
}

func TestTTLs(t *testing.T) {
	ttls := TTLs(config.CacheConfig{
		Articles:   config.CacheTTL{List: 6 * time.Hour, Detail: 24 * time.Hour},
		Admin:      config.CacheTTL{List: time.Hour, Detail: 2 * time.Hour},
		Tags:       config.CacheTTL{List: 24 * time.Hour, Detail: 72 * time.Hour},
		Categories: config.CacheTTL{List: 7 * 24 * time.Hour, Detail: 14 * 24 * time.Hour},
	})

	assert.Equal(t, cache.TTL{List: 6 * time.Hour, Detail: 24 * time.Hour}, ttls.Articles)
	assert.Equal(t, cache.TTL{List: time.Hour, Detail: 2 * time.Hour}, ttls.Admin)
	assert.Equal(t, 72*time.Hour, ttls.Tags.Detail)
	assert.Equal(t, 14*24*time.Hour, ttls.Categories.Detail)
}

func TestNewContainer_WithoutCache(t *testing.T) {
	db := testutils.SetupTestDB(t)
	conf := &config.AppConfig{
		Cache: config.CacheConfig{Prefix: "test"},
		JWT:   config.JWTConfig{Secret: testutils.TestJWTSecret, ExpireTime: 1},
	}

	c := NewContainer(db, nil, conf)
	author := testutils.CreateTestUser(db)
	testutils.CreateTestArticle(db, author.ID, testutils.Published())

	page, err := c.Articles.ListPublished(context.Background(), articleParams())
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	// 无缓存时直接读库
	testutils.CreateTestArticle(db, author.ID, testutils.Published())
	page, err = c.Articles.ListPublished(context.Background(), articleParams())
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	assert.NoError(t, c.Registry.Flush(context.Background()))
}

func articleParams() article.ListParams {
	return article.ListParams{}
}
