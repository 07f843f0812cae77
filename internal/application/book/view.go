package book

import (
	"time"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
)

// BookView 图书响应DTO
// description/coverImage为nil时序列化为null
type BookView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	CoverImage  *string   `json:"coverImage"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewBookView 领域实体 → 响应DTO
func NewBookView(b *book.Book) BookView {
	return BookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		Category:    b.Category,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		Featured:    b.Featured,
		CreatedAt:   b.CreatedAt,
	}
}
