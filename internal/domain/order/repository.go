package order

import (
	"context"
)

// Repository 订单仓储接口
type Repository interface {
	// Create 保存订单及明细,回填ID和时间戳
	Create(ctx context.Context, order *Order) error

	// FindByID 查询订单(含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// List 按创建时间倒序列出全部订单(含明细)
	List(ctx context.Context) ([]*Order, error)

	// UpdateStatus 仅当当前状态为from时更新为to,否则返回ErrInvalidStatusTransition
	UpdateStatus(ctx context.Context, id uint, from, to Status) error
}
