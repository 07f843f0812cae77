package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appadmin "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/admin"
	appbook "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/book"
	appcart "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/cart"
	apporder "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/order"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/config"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/mysql"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/redis"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/handler"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/middleware"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/router"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/logger"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/metrics"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/tracing"
)

// shutdownTimeout 收到信号后等待处理中请求完成的最长时间
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("服务异常退出")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	mode, err := ginMode(cfg.Server.Mode)
	if err != nil {
		return err
	}
	gin.SetMode(mode)

	ctx := context.Background()
	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Options{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn().Err(err).Msg("关闭TracerProvider失败")
		}
	}()

	metrics.InitMetrics()

	app, cleanup, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("mode", mode).
			Bool("swagger", cfg.Server.Swagger).
			Msg("服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("监听失败: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("收到关闭信号,开始优雅关闭")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭HTTP服务失败: %w", err)
	}
	log.Info().Msg("服务已安全关闭")
	return nil
}

// newApp 手动依赖注入
// 依赖链:Repository ← Service ← UseCase ← Handler ← Router
// 与wire.go中InitializeApp描述的是同一张依赖图
func newApp(cfg *config.Config, log zerolog.Logger) (*App, func(), error) {
	db, closeDB, err := provideDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	redisClient, closeRedis, err := provideRedis(cfg)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	events, closeEvents, err := provideEventPublisher(cfg, log)
	if err != nil {
		closeRedis()
		closeDB()
		return nil, nil, err
	}
	cleanup := func() {
		closeEvents()
		closeRedis()
		closeDB()
	}

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	userRepo := mysql.NewUserRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessions := redis.NewSessionStore(redisClient)
	carts := provideCartStore(redisClient, cfg)
	jwtManager := provideJWTManager(cfg)

	// 领域层
	bookService := book.NewService(bookRepo)
	adminService := admin.NewService(userRepo)

	// 应用层 + 接口层
	handlers := router.Handlers{
		Book: handler.NewBookHandler(
			appbook.NewListBooksUseCase(bookService),
			appbook.NewGetBookUseCase(bookService),
			appbook.NewCreateBookUseCase(bookService, events),
			appbook.NewUpdateBookUseCase(bookService, events),
			appbook.NewDeleteBookUseCase(bookService, events),
		),
		Admin: handler.NewAdminHandler(
			appadmin.NewLoginUseCase(adminService, jwtManager, sessions),
			appadmin.NewGetSessionUseCase(sessions),
		),
		Cart: handler.NewCartHandler(appcart.NewService(carts, bookService)),
		Order: handler.NewOrderHandler(
			apporder.NewCreateOrderUseCase(orderRepo, bookService, carts, txManager),
			apporder.NewListOrdersUseCase(orderRepo),
			apporder.NewGetOrderUseCase(orderRepo),
			apporder.NewUpdateOrderStatusUseCase(orderRepo),
		),
	}
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	engine := provideEngine(provideRouterOptions(cfg), log, handlers, authMiddleware)
	return &App{Engine: engine}, cleanup, nil
}
