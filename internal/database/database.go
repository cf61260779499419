package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/model"
	"terminal-terrace/blog/packages/database"
)

var (
	PostgresDB *gorm.DB
	Redis      *database.RedisClient
)

// InitDatabase 初始化数据库并迁移表结构
func InitDatabase() error {
	db, err := Open(config.Conf.Database)
	if err != nil {
		return err
	}
	PostgresDB = db

	// 初始化数据库表
	return model.InitTable(PostgresDB)
}

// InitRedis 初始化缓存使用的 Redis
func InitRedis() error {
	redisConf := config.Conf.Redis

	var err error
	Redis, err = database.InitRedis(&database.RedisConfig{
		ServiceName: "blog",
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
		PoolSize:    redisConf.PoolSize,
	})
	return err
}

// Open 按驱动打开数据库连接，sqlite 用于本地开发
func Open(databaseConf config.DatabaseConfig) (*gorm.DB, error) {
	switch databaseConf.Driver {
	case "", "postgres":
		return database.InitPostgres(
			&database.PostgresConfig{
				ServiceName:     "blog",
				Username:        databaseConf.Username,
				Password:        databaseConf.Password,
				Host:            databaseConf.Host,
				Port:            databaseConf.Port,
				Database:        databaseConf.Database,
				SSLMode:         databaseConf.SSLMode,
				TimeZone:        databaseConf.TimeZone,
				LogLevel:        databaseConf.LogLevel,
				MaxIdleConns:    databaseConf.MaxIdleConns,
				MaxOpenConns:    databaseConf.MaxOpenConns,
				ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
			},
		)
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(databaseConf.Database), &gorm.Config{
			Logger:         database.GormLogger(databaseConf.LogLevel),
			TranslateError: true,
		})
		if err != nil {
			return nil, fmt.Errorf("打开 sqlite 失败: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite 单写者
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", databaseConf.Driver)
	}
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}

// Close 关闭数据库与 Redis 连接
func Close() {
	if PostgresDB != nil {
		if sqlDB, err := PostgresDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if Redis != nil {
		_ = Redis.Close()
	}
}
