package testutils

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/model"
	dbPkg "terminal-terrace/blog/packages/database"
)

// SetupTestDB 创建测试数据库并迁移所有表
// 设置 TEST_DATABASE_DSN 时使用 PostgreSQL 并在事务中运行，测试结束后回滚；
// 否则使用内存 sqlite，每个测试独立一份
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormConf := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // 测试中不输出 SQL
		TranslateError: true,
	}

	if dsn := os.Getenv("TEST_DATABASE_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), gormConf)
		if err != nil {
			t.Fatalf("Failed to connect to test database: %v", err)
		}
		if err := model.InitTable(db); err != nil {
			t.Fatalf("Failed to migrate test database: %v", err)
		}

		tx := db.Begin()
		t.Cleanup(func() {
			tx.Rollback()
			sqlDB, _ := db.DB()
			sqlDB.Close()
		})
		return tx
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConf)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sqlite handle: %v", err)
	}
	// 内存库只存在于单个连接上
	sqlDB.SetMaxOpenConns(1)

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// SetupTestRedis 启动一个 miniredis 并返回连接到它的客户端
func SetupTestRedis(t *testing.T) (*dbPkg.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("Invalid miniredis port: %v", err)
	}

	client, err := dbPkg.InitRedis(&dbPkg.RedisConfig{
		ServiceName: "blog-test",
		Host:        mr.Host(),
		Port:        port,
	})
	if err != nil {
		t.Fatalf("Failed to connect to miniredis: %v", err)
	}
	t.Cleanup(func() {
		client.Close()
	})
	return client, mr
}

// TestTTLs 测试用的缓存过期时间
var TestTTLs = cache.TTLs{
	Articles:   cache.TTL{List: time.Hour, Detail: time.Hour},
	Admin:      cache.TTL{List: time.Hour, Detail: time.Hour},
	Tags:       cache.TTL{List: time.Hour, Detail: time.Hour},
	Categories: cache.TTL{List: time.Hour, Detail: time.Hour},
}

// SetupTestRegistry 基于内存存储的缓存注册表
func SetupTestRegistry(t *testing.T) *cache.Registry {
	t.Helper()
	return cache.NewBlogRegistry(cache.New(cache.NewMemoryStore(), "test"), TestTTLs)
}
