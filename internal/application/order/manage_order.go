package order

import (
	"context"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/order"
)

// ListOrdersUseCase 订单列表(管理员),最新在前
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context) ([]OrderView, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = NewOrderView(o)
	}
	return views, nil
}

// GetOrderUseCase 订单详情(管理员)
type GetOrderUseCase struct {
	orderRepo order.Repository
}

func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*OrderView, error) {
	if id == 0 {
		return nil, order.ErrOrderNotFound
	}
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewOrderView(o)
	return &view, nil
}

// UpdateOrderStatusUseCase 修改订单状态(管理员)
// 1. 状态名解析失败 → 400
// 2. 状态机不允许 → 400
// 3. 条件更新(WHERE status = 当前状态),并发修改时只有一个请求成功
type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
}

// NewUpdateOrderStatusUseCase 创建状态修改用例
func NewUpdateOrderStatusUseCase(orderRepo order.Repository) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orderRepo: orderRepo}
}

// Execute 执行状态修改,返回修改后的订单
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, id uint, status string) (*OrderView, error) {
	if id == 0 {
		return nil, order.ErrOrderNotFound
	}
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target, err := order.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	from := o.Status
	if err := o.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.UpdateStatus(ctx, id, from, target); err != nil {
		return nil, err
	}

	updated, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewOrderView(updated)
	return &view, nil
}
