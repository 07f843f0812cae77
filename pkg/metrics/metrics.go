// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三组：
//   - HTTP：请求总数、耗时分布、处理中请求数（由中间件记录）
//   - 业务：图书变更次数、下单次数、订单金额分布
//   - 基础设施：目录事件发布结果、熔断器状态
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾，标签只用有限取值
// （method/route/status/op/result），不要用book_id这类高基数字段。
//
// 使用示例：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//	metrics.CatalogMutationsTotal.WithLabelValues("create", "success").Inc()
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、route（gin路由模板，如/api/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// CatalogMutationsTotal 图书变更次数
	// 标签：op（create/update/delete）、result（success/failure）
	CatalogMutationsTotal *prometheus.CounterVec

	// OrdersPlacedTotal 成功下单总数
	OrdersPlacedTotal prometheus.Counter

	// OrderAmountCents 订单金额分布（分）
	OrderAmountCents prometheus.Histogram

	// EventsPublishedTotal 目录事件发布次数
	// 标签：routing_key、result（success/failure/rejected）
	EventsPublishedTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec
)

// InitMetrics 注册所有指标到默认Registry
// 可重复调用，只有第一次生效（promauto重复注册会panic）
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "route", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "route"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_mutations_total",
				Help: "图书变更次数",
			},
			[]string{"op", "result"},
		)

		OrdersPlacedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_placed_total",
				Help: "成功下单总数",
			},
		)

		OrderAmountCents = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_amount_cents",
				Help:    "订单金额分布（分）",
				Buckets: []float64{1000, 2500, 5000, 10000, 25000, 50000, 100000},
			},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_events_published_total",
				Help: "目录事件发布次数",
			},
			[]string{"routing_key", "result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)
	})
}

// RecordMutation 记录一次图书变更
func RecordMutation(op string, err error) {
	if CatalogMutationsTotal == nil {
		return
	}
	CatalogMutationsTotal.WithLabelValues(op, resultLabel(err)).Inc()
}

// RecordOrderPlaced 记录一次成功下单
func RecordOrderPlaced(totalCents int64) {
	if OrdersPlacedTotal == nil {
		return
	}
	OrdersPlacedTotal.Inc()
	OrderAmountCents.Observe(float64(totalCents))
}

// RecordEventPublish 记录一次事件发布结果
func RecordEventPublish(routingKey, result string) {
	if EventsPublishedTotal == nil {
		return
	}
	EventsPublishedTotal.WithLabelValues(routingKey, result).Inc()
}

// SetBreakerState 记录熔断器当前状态
func SetBreakerState(name string, state int) {
	if CircuitBreakerState == nil {
		return
	}
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
