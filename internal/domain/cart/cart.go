package cart

import (
	"context"
	"regexp"

	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// MaxQuantity 单本书在购物车中的最大数量
const MaxQuantity = 999

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

var (
	// ErrInvalidCartID 购物车标识不合法
	ErrInvalidCartID = apperrors.New(apperrors.ErrCodeInvalidCart, "Invalid cart id")

	// ErrInvalidQuantity 数量不在1-999之间
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "Quantity must be between 1 and 999")
)

// ValidateID 校验客户端生成的购物车标识
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return ErrInvalidCartID
	}
	return nil
}

// ValidateQuantity 校验数量
func ValidateQuantity(q int) error {
	if q < 1 || q > MaxQuantity {
		return ErrInvalidQuantity
	}
	return nil
}

// Line 购物车中的一行(只存bookId和数量,价格在查看时从目录读取)
type Line struct {
	BookID   uint
	Quantity int
}

// Store 购物车存储接口
// 由Redis实现,每次写操作刷新过期时间
type Store interface {
	// Lines 读取购物车,按bookId升序;不存在的购物车返回空列表
	Lines(ctx context.Context, cartID string) ([]Line, error)

	// Add 数量累加,累加后超过上限返回ErrInvalidQuantity
	Add(ctx context.Context, cartID string, bookID uint, quantity int) error

	// Set 设置数量(覆盖)
	Set(ctx context.Context, cartID string, bookID uint, quantity int) error

	// Remove 移除一行,不存在时不报错
	Remove(ctx context.Context, cartID string, bookID uint) error

	// Clear 清空购物车
	Clear(ctx context.Context, cartID string) error
}
