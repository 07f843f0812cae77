// Package messaging 把目录事件发布到RabbitMQ
package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/circuitbreaker"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/metrics"
)

// BreakerName 目录事件熔断器名称(metrics标签)
const BreakerName = "catalog-events"

// PublishTimeout 单次发布的超时时间
const PublishTimeout = 2 * time.Second

// Publisher 底层消息发布能力,由*mq.Publisher实现
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// CatalogPublisher 实现book.EventPublisher
// 1. 熔断器保护:Broker不可用时快速失败,不拖慢图书写接口
// 2. 发布失败只记录日志和指标,不影响已完成的写操作
type CatalogPublisher struct {
	pub     Publisher
	breaker *circuitbreaker.CircuitBreaker
}

var _ book.EventPublisher = (*CatalogPublisher)(nil)

// NewCatalogPublisher 创建目录事件发布器
func NewCatalogPublisher(pub Publisher) *CatalogPublisher {
	return newCatalogPublisher(pub, circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	})
}

func newCatalogPublisher(pub Publisher, cfg circuitbreaker.Config) *CatalogPublisher {
	next := cfg.OnStateChange
	cfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		metrics.SetBreakerState(name, int(to))
		if next != nil {
			next(name, from, to)
		}
	}
	metrics.SetBreakerState(BreakerName, int(circuitbreaker.StateClosed))
	return &CatalogPublisher{
		pub:     pub,
		breaker: circuitbreaker.NewCircuitBreaker(BreakerName, cfg),
	}
}

// Publish 发布事件,路由键即事件类型
// 使用脱离请求取消的ctx:客户端断开不应让已提交的变更丢失事件
func (p *CatalogPublisher) Publish(ctx context.Context, event book.Event) {
	log := zerolog.Ctx(ctx)

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	err := p.breaker.Execute(func() error {
		return p.pub.Publish(pubCtx, event.Type, event)
	})
	switch {
	case err == nil:
		metrics.RecordEventPublish(event.Type, "success")
	case errors.Is(err, circuitbreaker.ErrOpenState):
		metrics.RecordEventPublish(event.Type, "rejected")
		log.Warn().Str("event", event.Type).Uint("book_id", event.BookID).Msg("熔断器打开,目录事件被丢弃")
	default:
		metrics.RecordEventPublish(event.Type, "failure")
		log.Error().Err(err).Str("event", event.Type).Uint("book_id", event.BookID).Msg("发布目录事件失败")
	}
}
