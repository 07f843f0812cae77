package dto

import (
	apporder "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/order"
)

// CreateOrderRequest HTTP下单请求
// items和cartId至少提供一个;两者都提供时以items为准,下单成功后清空cartId对应的购物车
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" form:"customerName" example:"Ann"`
	CustomerEmail   string             `json:"customerEmail" form:"customerEmail" example:"ann@example.com"`
	ShippingAddress string             `json:"shippingAddress" form:"shippingAddress" example:"1 Main St"`
	Items           []OrderItemRequest `json:"items"`
	CartID          string             `json:"cartId" form:"cartId" example:"c1a2b3"`
}

// OrderItemRequest 订单明细
type OrderItemRequest struct {
	BookID   uint `json:"bookId" example:"1"`
	Quantity int  `json:"quantity" example:"2"`
}

// ToApp HTTP DTO → 应用层请求
func (r CreateOrderRequest) ToApp() apporder.CreateOrderRequest {
	items := make([]apporder.CreateOrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = apporder.CreateOrderItem{BookID: item.BookID, Quantity: item.Quantity}
	}
	return apporder.CreateOrderRequest{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		ShippingAddress: r.ShippingAddress,
		Items:           items,
		CartID:          r.CartID,
	}
}

// UpdateOrderStatusRequest 修改订单状态
type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" example:"paid"`
}
