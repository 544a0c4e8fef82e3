package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kama_community_server/internal/bot"
	"kama_community_server/internal/config"
	dao "kama_community_server/internal/dao/mysql"
	myredis "kama_community_server/internal/dao/redis"
	"kama_community_server/internal/handler"
	"kama_community_server/internal/https_server"
	"kama_community_server/internal/infrastructure/logger"
	"kama_community_server/internal/service"
	"kama_community_server/internal/service/chat"
	"kama_community_server/internal/service/message"
	"kama_community_server/pkg/constants"
	"kama_community_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()
	zap.L().Info("日志初始化成功")
	if conf.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry)

	// 4. 初始化数据库
	repos, db, err := dao.Init(&conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("数据库初始化失败", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	zap.L().Info("数据库初始化成功")

	// 5. 初始化 Redis，不可用时降级为直接读库
	var cache myredis.AsyncCacheService
	if redisCache, err := myredis.Init(&conf.RedisConfig); err != nil {
		zap.L().Warn("Redis 不可用，社区缓存关闭", zap.Error(err))
	} else {
		cache = redisCache
		zap.L().Info("Redis 初始化成功")
	}

	// 6. 事件管道
	var broker chat.MessageBroker
	if conf.KafkaConfig.MessageMode == "kafka" {
		broker = chat.NewKafkaBroker(conf.KafkaConfig)
	} else {
		broker = chat.NewChannelBroker(constants.CHANNEL_SIZE)
	}

	// 7. 机器人
	registry := bot.NewRegistry()
	if conf.BuiltinBots {
		if err := registry.Register(bot.NewSystemBot(registry)); err != nil {
			zap.L().Fatal("注册内置机器人失败", zap.Error(err))
		}
	}
	dispatcher := bot.NewDispatcher(registry, time.Duration(conf.BotTimeout)*time.Second)

	// 8. Service 层 (依赖注入)
	msgOpts := message.Options{
		DefaultLimit: conf.DefaultMessageLimit,
		MaxLimit:     conf.MaxMessageLimit,
	}
	if conf.SanitizeContent {
		msgOpts.Sanitizer = message.NewContentPolicy()
	}
	svc := service.NewServices(service.Deps{
		Repos:    repos,
		Cache:    cache,
		CacheTTL: time.Duration(conf.CacheTTL) * time.Minute,
		Broker:   broker,
		Message:  msgOpts,
	})
	broker.SetHandler(chat.NewBotEventHandler(dispatcher, svc.Message, repos))
	broker.Start()
	zap.L().Info("事件管道启动", zap.String("mode", conf.KafkaConfig.MessageMode), zap.Int("bots", len(registry.Bots())))

	// 9. HTTP 服务
	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("初始化校验翻译失败", zap.Error(err))
	}
	engine := https_server.Init(conf, handler.NewHandlers(svc))
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("HTTP 服务启动", zap.String("addr", srv.Addr), zap.String("prefix", conf.APIPrefix))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("HTTP 服务关闭失败", zap.Error(err))
	}
	broker.Close()
	if cache != nil {
		cache.Close()
	}
	zap.L().Info("服务器已关闭")
}
