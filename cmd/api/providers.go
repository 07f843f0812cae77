package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/config"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/messaging"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/mysql"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/redis"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/middleware"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/router"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/jwt"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/mq"
)

// App 进程持有的顶层对象
type App struct {
	Engine *gin.Engine
}

// provideDB 打开MySQL连接,cleanup关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideRedis 连接Redis,cleanup关闭客户端
func provideRedis(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire, cfg.JWT.Issuer)
}

func provideCartStore(client *goredis.Client, cfg *config.Config) *redis.CartStore {
	return redis.NewCartStore(client, cfg.Cart.TTL)
}

// provideEventPublisher 目录事件发布器
// mq.url为空时使用NopPublisher;RabbitMQ连不上时记录警告并同样降级,不阻止启动
func provideEventPublisher(cfg *config.Config, logger zerolog.Logger) (book.EventPublisher, func(), error) {
	if cfg.MQ.URL == "" {
		logger.Info().Msg("未配置mq.url,目录事件不发布")
		return book.NopPublisher{}, func() {}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		logger.Warn().Err(err).Str("exchange", cfg.MQ.Exchange).Msg("RabbitMQ不可用,目录事件不发布")
		return book.NopPublisher{}, func() {}, nil
	}

	cleanup := func() {
		if err := pub.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭RabbitMQ连接失败")
		}
	}
	return messaging.NewCatalogPublisher(pub), cleanup, nil
}

func provideRouterOptions(cfg *config.Config) router.Options {
	return router.Options{Swagger: cfg.Server.Swagger}
}

func provideEngine(
	opts router.Options,
	logger zerolog.Logger,
	handlers router.Handlers,
	auth *middleware.AuthMiddleware,
) *gin.Engine {
	return router.New(opts, logger, handlers, auth)
}

// ginMode 配置中的运行模式 → gin模式
func ginMode(mode string) (string, error) {
	switch mode {
	case "", "debug":
		return gin.DebugMode, nil
	case "release":
		return gin.ReleaseMode, nil
	case "test":
		return gin.TestMode, nil
	default:
		return "", fmt.Errorf("未知的运行模式: %s", mode)
	}
}
