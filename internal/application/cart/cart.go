package cart

import (
	"context"
	"errors"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/cart"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/order"
)

// BookReader 读取图书(价格、书名),由book.Service实现
type BookReader interface {
	Get(ctx context.Context, id uint) (*book.Book, error)
}

// ItemView 购物车中的一行
type ItemView struct {
	BookID   uint    `json:"bookId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CartView 购物车响应
type CartView struct {
	CartID string     `json:"cartId"`
	Items  []ItemView `json:"items"`
	Total  float64    `json:"total"`
}

// Service 购物车用例
// 设计说明:
// 1. Redis只保存bookId和数量,价格和书名每次查看时从目录读取
// 2. 图书已被删除的行不出现在视图中(存储中的行保留到过期或被移除)
// 3. 金额按分累加后再转回元,避免浮点误差
type Service struct {
	store cart.Store
	books BookReader
}

// NewService 创建购物车用例
func NewService(store cart.Store, books BookReader) *Service {
	return &Service{store: store, books: books}
}

// View 查看购物车
func (s *Service) View(ctx context.Context, cartID string) (*CartView, error) {
	if err := cart.ValidateID(cartID); err != nil {
		return nil, err
	}
	lines, err := s.store.Lines(ctx, cartID)
	if err != nil {
		return nil, err
	}

	view := &CartView{CartID: cartID, Items: make([]ItemView, 0, len(lines))}
	var total int64
	for _, l := range lines {
		b, err := s.books.Get(ctx, l.BookID)
		if errors.Is(err, book.ErrBookNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		subtotal := order.ToCents(b.Price) * int64(l.Quantity)
		total += subtotal
		view.Items = append(view.Items, ItemView{
			BookID:   b.ID,
			Title:    b.Title,
			Price:    b.Price,
			Quantity: l.Quantity,
			Subtotal: order.FromCents(subtotal),
		})
	}
	view.Total = order.FromCents(total)
	return view, nil
}

// AddItem 加入购物车,已存在时累加数量
func (s *Service) AddItem(ctx context.Context, cartID string, bookID uint, quantity int) (*CartView, error) {
	if err := s.checkLine(ctx, cartID, bookID, quantity); err != nil {
		return nil, err
	}
	if err := s.store.Add(ctx, cartID, bookID, quantity); err != nil {
		return nil, err
	}
	return s.View(ctx, cartID)
}

// SetItem 修改数量
func (s *Service) SetItem(ctx context.Context, cartID string, bookID uint, quantity int) (*CartView, error) {
	if err := s.checkLine(ctx, cartID, bookID, quantity); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, cartID, bookID, quantity); err != nil {
		return nil, err
	}
	return s.View(ctx, cartID)
}

// RemoveItem 移除一行,图书不存在也可以移除
func (s *Service) RemoveItem(ctx context.Context, cartID string, bookID uint) (*CartView, error) {
	if err := cart.ValidateID(cartID); err != nil {
		return nil, err
	}
	if err := s.store.Remove(ctx, cartID, bookID); err != nil {
		return nil, err
	}
	return s.View(ctx, cartID)
}

// Clear 清空购物车
func (s *Service) Clear(ctx context.Context, cartID string) error {
	if err := cart.ValidateID(cartID); err != nil {
		return err
	}
	return s.store.Clear(ctx, cartID)
}

// checkLine 校验购物车标识、数量,并确认图书存在
func (s *Service) checkLine(ctx context.Context, cartID string, bookID uint, quantity int) error {
	if err := cart.ValidateID(cartID); err != nil {
		return err
	}
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}
	_, err := s.books.Get(ctx, bookID)
	return err
}
