package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/order"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// orderRepository 订单仓储实现
// 订单和明细通过GORM关联一次Create写入(GORM为关联写入开启事务)
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 保存订单及明细
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Failed to create order")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 查询订单(预加载明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := dbFrom(ctx, r.db).Preload("Items", orderItemsByID).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to fetch order")
	}
	return toOrderEntity(&model), nil
}

// List 全部订单,最新在前
func (r *orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var models []OrderModel
	err := dbFrom(ctx, r.db).
		Preload("Items", orderItemsByID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to fetch orders")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, nil
}

// UpdateStatus 条件更新状态(乐观并发控制)
// WHERE status = from 保证两个并发请求只有一个能完成同一次切换
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, from, to order.Status) error {
	db := dbFrom(ctx, r.db)
	result := db.Model(&OrderModel{}).
		Where("id = ? AND status = ?", id, int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update order")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// 没有命中:订单不存在,或状态已被其他请求修改
	var count int64
	if err := db.Model(&OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(err, "Failed to update order")
	}
	if count == 0 {
		return order.ErrOrderNotFound
	}
	return order.ErrInvalidStatusTransition
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return &OrderModel{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		CustomerName:    o.Customer.Name,
		CustomerEmail:   o.Customer.Email,
		ShippingAddress: o.Customer.ShippingAddress,
		Total:           o.Total,
		Status:          int(o.Status),
		Items:           items,
	}
}

func toOrderEntity(m *OrderModel) *order.Order {
	items := make([]order.Item, len(m.Items))
	for i, item := range m.Items {
		items[i] = order.Item{
			BookID:   item.BookID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return &order.Order{
		ID:      m.ID,
		OrderNo: m.OrderNo,
		Customer: order.Customer{
			Name:            m.CustomerName,
			Email:           m.CustomerEmail,
			ShippingAddress: m.ShippingAddress,
		},
		Total:     m.Total,
		Status:    order.Status(m.Status),
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
