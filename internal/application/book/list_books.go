package book

import (
	"context"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 过滤条件原样交给领域服务,由其构建谓词列表
// 2. 不分页,按createdAt倒序返回全部匹配记录
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询参数(均来自query string)
type ListBooksRequest struct {
	Category string
	Featured string // 只有"true"生效
	Search   string
}

// Execute 执行列表查询,没有结果时返回空数组而不是null
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) ([]BookView, error) {
	books, err := uc.bookService.List(ctx, book.Filter{
		Category: req.Category,
		Featured: req.Featured,
		Search:   req.Search,
	})
	if err != nil {
		return nil, err
	}

	views := make([]BookView, len(books))
	for i, b := range books {
		views[i] = NewBookView(b)
	}
	return views, nil
}

// GetBookUseCase 图书详情
type GetBookUseCase struct {
	bookService book.Service
}

func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookView, error) {
	b, err := uc.bookService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewBookView(b)
	return &view, nil
}
