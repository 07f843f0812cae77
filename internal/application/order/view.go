package order

import (
	"time"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/order"
)

// OrderItemView 订单明细响应,price为下单时单价(元)
type OrderItemView struct {
	BookID   uint    `json:"bookId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderView 订单响应
type OrderView struct {
	ID              uint            `json:"id"`
	OrderNo         string          `json:"orderNo"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	ShippingAddress string          `json:"shippingAddress"`
	Status          string          `json:"status"`
	Total           float64         `json:"total"`
	Items           []OrderItemView `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NewOrderView 领域实体 → 响应DTO(金额分→元)
func NewOrderView(o *order.Order) OrderView {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemView{
			BookID:   item.BookID,
			Title:    item.Title,
			Price:    order.FromCents(item.Price),
			Quantity: item.Quantity,
		}
	}
	return OrderView{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		CustomerName:    o.Customer.Name,
		CustomerEmail:   o.Customer.Email,
		ShippingAddress: o.Customer.ShippingAddress,
		Status:          o.Status.String(),
		Total:           order.FromCents(o.Total),
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}
