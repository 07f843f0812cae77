package book

import (
	"context"
	"time"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/metrics"
)

// 图书写操作用例(管理员)
// 设计说明:
// 1. 校验和持久化由领域服务完成,应用层负责编排
// 2. 写成功后发布目录事件,发布结果不影响响应
// 3. 每次写操作按结果记录catalog_mutations_total指标

// BookRequest 创建/更新请求
// Price和Featured保留客户端提交的原始类型
type BookRequest struct {
	Title       string
	Author      string
	Price       interface{}
	Category    string
	Description string
	CoverImage  string
	Featured    interface{}
}

func (r BookRequest) fields() book.Fields {
	return book.Fields{
		Title:       r.Title,
		Author:      r.Author,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		Featured:    r.Featured,
	}
}

// CreateBookUseCase 创建图书
type CreateBookUseCase struct {
	bookService book.Service
	events      book.EventPublisher
	now         func() time.Time
}

// NewCreateBookUseCase 创建图书用例
func NewCreateBookUseCase(bookService book.Service, events book.EventPublisher) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService, events: events, now: time.Now}
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, req BookRequest) (*BookView, error) {
	b, err := uc.bookService.Create(ctx, req.fields())
	metrics.RecordMutation("create", err)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, book.NewEvent(book.EventCreated, b, uc.now()))
	view := NewBookView(b)
	return &view, nil
}

// UpdateBookUseCase 全量更新图书
type UpdateBookUseCase struct {
	bookService book.Service
	events      book.EventPublisher
	now         func() time.Time
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, events book.EventPublisher) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService, events: events, now: time.Now}
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req BookRequest) (*BookView, error) {
	b, err := uc.bookService.Update(ctx, id, req.fields())
	metrics.RecordMutation("update", err)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, book.NewEvent(book.EventUpdated, b, uc.now()))
	view := NewBookView(b)
	return &view, nil
}

// DeleteBookUseCase 删除图书
type DeleteBookUseCase struct {
	bookService book.Service
	events      book.EventPublisher
	now         func() time.Time
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, events book.EventPublisher) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService, events: events, now: time.Now}
}

// Execute 执行删除,事件携带删除前的快照
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	b, err := uc.bookService.Delete(ctx, id)
	metrics.RecordMutation("delete", err)
	if err != nil {
		return err
	}

	uc.events.Publish(ctx, book.NewEvent(book.EventDeleted, b, uc.now()))
	return nil
}
