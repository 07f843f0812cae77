package order

import (
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrInvalidStatusTransition 状态机不允许此切换
	ErrInvalidStatusTransition = apperrors.ErrInvalidOrderStatus

	// ErrInvalidStatus 未知的状态名
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid order status")

	// ErrEmptyOrder 订单没有任何商品
	ErrEmptyOrder = apperrors.New(apperrors.ErrCodeEmptyOrder, "Order must contain at least one item")

	// ErrInvalidQuantity 数量不在1-999之间
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "Quantity must be between 1 and 999")

	// ErrInvalidBook 明细缺少bookId
	ErrInvalidBook = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid book id")

	// ErrMissingCustomer 缺少收货人或地址
	ErrMissingCustomer = apperrors.New(apperrors.ErrCodeMissingFields, "Customer name and shipping address are required")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid customer email")
)
