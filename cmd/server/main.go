package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/gommon/log"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/database"
	"terminal-terrace/blog/internal/grpc"
	"terminal-terrace/blog/internal/route"
	"terminal-terrace/blog/internal/service"
	"terminal-terrace/blog/packages/logger"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g cmd/server/main.go -d ../../ -o ../../docs --parseInternal

// @title			Blog API
// @version		1.0
// @description	个人博客 REST API：公开文章、标签、分类与后台内容管理
// @BasePath		/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	// 1. 加载配置
	config.MustLoad(*configPath)
	conf := config.Get()

	// 2. 初始化日志
	closer, err := logger.Setup(logger.Config{
		Level:  conf.Log.Level,
		Format: conf.Log.Format,
		Output: conf.Log.Output,
		Path:   conf.Log.Path,
	})
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer closer.Close()

	// 3. 初始化数据库与缓存
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	defer database.Close()

	if conf.Cache.Driver == "redis" {
		if err := database.InitRedis(); err != nil {
			log.Fatalf("Redis 初始化失败: %v", err)
		}
	}
	store, err := service.NewCacheStore(conf.Cache, database.Redis)
	if err != nil {
		log.Fatalf("缓存初始化失败: %v", err)
	}
	container := service.NewContainer(database.GetDB(), store, conf)

	// 4. 配置热加载：缓存过期时间、日志级别与站点信息
	if err := config.Watch(*configPath, func(c *config.AppConfig) {
		container.Registry.ApplyTTLs(service.TTLs(c.Cache))
		logger.SetLevel(c.Log.Level)
	}); err != nil {
		log.Warnf("配置热加载未启用: %v", err)
	}

	// 5. 启动 HTTP 服务
	srv := &http.Server{
		Addr:         conf.Server.Addr(),
		Handler:      route.SetupRouter(container, conf),
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}
	go func() {
		log.Infof("HTTP 服务启动: %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP 服务异常退出: %v", err)
		}
	}()

	// 6. 启动 gRPC 服务
	var grpcServer *grpc.Server
	if conf.GRPC.Enabled {
		blogService := grpc.NewBlogServiceImpl(container.Articles, container.Tags, container.Categories, conf.JWT.Secret)
		grpcServer, err = grpc.NewServer(conf.GRPC.Host, conf.GRPC.Port, blogService)
		if err != nil {
			log.Fatalf("gRPC 服务初始化失败: %v", err)
		}
		go func() {
			log.Infof("gRPC 服务启动: %s", grpcServer.GetAddr())
			if err := grpcServer.Start(); err != nil {
				log.Errorf("gRPC 服务异常退出: %v", err)
			}
		}()
	}

	// 7. 等待退出信号并优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if grpcServer != nil {
		grpcServer.Stop()
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("HTTP 服务关闭失败: %v", err)
	}
	log.Info("服务已退出")
}
