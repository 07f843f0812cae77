// Package router 组装gin引擎：全局中间件、/api路由、健康检查与监控端点
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/AhmadAyoub1/bookstore-backend-render/docs"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/handler"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/middleware"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/response"
)

// Options 路由开关
type Options struct {
	Swagger bool
}

// Handlers 各模块的HTTP处理器
type Handlers struct {
	Book  *handler.BookHandler
	Admin *handler.AdminHandler
	Cart  *handler.CartHandler
	Order *handler.OrderHandler
}

// New 创建gin引擎并注册全部路由
//
// 中间件顺序：Tracing → RequestLogger → Recovery → CORS → Metrics
// Recovery放在日志之后，panic转成的500也会出现在访问日志里
func New(opts Options, logger zerolog.Logger, h Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Tracing(),
		middleware.RequestLogger(logger),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.Metrics(),
	)

	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := auth.RequireAdmin()
	api := r.Group("/api")
	{
		books := api.Group("/books")
		{
			books.GET("", h.Book.List)
			books.GET("/:id", h.Book.Get)
			books.POST("", admin, h.Book.Create)
			books.PUT("/:id", admin, h.Book.Update)
			books.DELETE("/:id", admin, h.Book.Delete)
		}

		admins := api.Group("/admin")
		{
			admins.POST("/login", h.Admin.Login)
			admins.GET("/session", admin, h.Admin.Session)
		}

		carts := api.Group("/cart/:cartId")
		{
			carts.GET("", h.Cart.Get)
			carts.DELETE("", h.Cart.Clear)
			carts.POST("/items", h.Cart.AddItem)
			carts.PUT("/items/:bookId", h.Cart.SetItem)
			carts.DELETE("/items/:bookId", h.Cart.RemoveItem)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", h.Order.CreateOrder)
			orders.GET("", admin, h.Order.ListOrders)
			orders.GET("/:id", admin, h.Order.GetOrder)
			orders.PATCH("/:id/status", admin, h.Order.UpdateStatus)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrRouteNotFound)
	})

	return r
}
