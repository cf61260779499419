// Package cli blogctl 运维命令
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/database"
	"terminal-terrace/blog/internal/service"
	dbPkg "terminal-terrace/blog/packages/database"
	"terminal-terrace/blog/packages/logger"
)

// App 命令共享的运行环境，DB 与 Store 为空时按配置文件初始化
type App struct {
	ConfigPath string
	Conf       *config.AppConfig
	DB         *gorm.DB
	Store      cache.Store

	redis     *dbPkg.RedisClient
	container *service.Container
}

// NewRootCmd 创建 blogctl 根命令
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "博客运维命令行",
		Long:          "blogctl 用于迁移数据库、导入种子数据、管理用户与清理缓存。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "config.yaml", "配置文件路径")

	root.AddCommand(newMigrateCmd(app))
	root.AddCommand(newSeedCmd(app))
	root.AddCommand(newUserCmd(app))
	root.AddCommand(newCacheCmd(app))
	return root
}

// open 初始化配置、数据库与缓存存储
func (a *App) open() error {
	if a.Conf == nil {
		conf, err := config.LoadFile(a.ConfigPath)
		if err != nil {
			return err
		}
		a.Conf = conf
		if _, err := logger.Setup(logger.Config{Level: conf.Log.Level, Format: conf.Log.Format}); err != nil {
			return err
		}
	}

	if a.DB == nil {
		db, err := database.Open(a.Conf.Database)
		if err != nil {
			return fmt.Errorf("连接数据库失败: %w", err)
		}
		a.DB = db
	}

	if a.Store == nil && a.Conf.Cache.Driver != "none" {
		if a.Conf.Cache.Driver == "redis" {
			client, err := dbPkg.InitRedis(&dbPkg.RedisConfig{
				ServiceName: "blogctl",
				Host:        a.Conf.Redis.Host,
				Port:        a.Conf.Redis.Port,
				Password:    a.Conf.Redis.Password,
				DB:          a.Conf.Redis.DB,
			})
			if err != nil {
				return fmt.Errorf("连接 Redis 失败: %w", err)
			}
			a.redis = client
		}
		store, err := service.NewCacheStore(a.Conf.Cache, a.redis)
		if err != nil {
			return err
		}
		a.Store = store
	}
	return nil
}

// services 懒加载服务容器
func (a *App) services() (*service.Container, error) {
	if a.container != nil {
		return a.container, nil
	}
	if err := a.open(); err != nil {
		return nil, err
	}
	a.container = service.NewContainer(a.DB, a.Store, a.Conf)
	return a.container, nil
}

// Close 释放连接
func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
