//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 生成代码: wire gen ./cmd/api
// main.go中的newApp是同一张依赖图的手写版本

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	appadmin "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/admin"
	appbook "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/book"
	appcart "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/cart"
	apporder "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/order"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/cart"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/config"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/mysql"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/persistence/redis"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/handler"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/middleware"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/router"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/jwt"
)

// infrastructureSet 数据库、Redis、消息队列
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideEventPublisher,
)

// repositorySet 仓储与存储
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
	mysql.NewUserRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	wire.Bind(new(apporder.Transactor), new(*mysql.TxManager)),
	redis.NewSessionStore,
	wire.Bind(new(admin.SessionStore), new(*redis.SessionStore)),
	provideCartStore,
	wire.Bind(new(cart.Store), new(*redis.CartStore)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
	admin.NewService,
	wire.Bind(new(appcart.BookReader), new(book.Service)),
	wire.Bind(new(apporder.BookReader), new(book.Service)),
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appadmin.NewLoginUseCase,
	appadmin.NewGetSessionUseCase,
	appcart.NewService,
	apporder.NewCreateOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewUpdateOrderStatusUseCase,
)

// authSet Token签发与校验
var authSet = wire.NewSet(
	provideJWTManager,
	wire.Bind(new(jwt.Verifier), new(*jwt.Manager)),
	wire.Bind(new(appadmin.TokenIssuer), new(*jwt.Manager)),
	middleware.NewAuthMiddleware,
)

// httpSet 处理器与路由
var httpSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewAdminHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	wire.Struct(new(router.Handlers), "*"),
	provideRouterOptions,
	provideEngine,
	wire.Struct(new(App), "*"),
)

// InitializeApp 组装整个应用
// 返回的cleanup按创建的逆序关闭消息队列、Redis和数据库连接
func InitializeApp(cfg *config.Config, logger zerolog.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		authSet,
		httpSet,
	)
	return nil, nil, nil
}
