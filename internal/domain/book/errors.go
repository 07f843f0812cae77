package book

import (
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrMissingFields 创建时缺少title/author/price/category
	ErrMissingFields = apperrors.New(apperrors.ErrCodeMissingFields, "Missing required fields")

	// ErrAllFieldsRequired 更新时六个字段必须全部提供
	ErrAllFieldsRequired = apperrors.New(apperrors.ErrCodeIncompleteFields, "All fields are required (including image and description)")

	// ErrInvalidPrice 价格无法解析为数字
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "Invalid price")
)
