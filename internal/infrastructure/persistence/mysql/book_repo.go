package mysql

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责领域实体与GORM模型之间的转换(价格、推荐标记的规范化在这里完成)
// 3. 记录不存在转换为ErrBookNotFound,其余数据库错误包装为服务端错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 插入图书并回填ID
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Failed to create book")
	}
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to fetch book")
	}
	return toBookEntity(&model), nil
}

// Update 覆盖可修改字段
// 使用map而不是Save:显式列出列名,id和createdAt不会被写入,零值也会更新
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	m := toBookModel(b)
	err := dbFrom(ctx, r.db).Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"title":       m.Title,
		"author":      m.Author,
		"price":       m.Price,
		"category":    m.Category,
		"description": m.Description,
		"coverImage":  m.CoverImage,
		"featured":    m.Featured,
	}).Error
	if err != nil {
		return apperrors.Wrap(err, "Failed to update book")
	}
	return nil
}

// Delete 物理删除
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	if err := dbFrom(ctx, r.db).Delete(&BookModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "Failed to delete book")
	}
	return nil
}

// List 依次应用谓词(AND),按createdAt倒序
// id作为第二排序键,保证同一时间创建的记录顺序稳定
func (r *bookRepository) List(ctx context.Context, predicates []book.Predicate) ([]*book.Book, error) {
	query := dbFrom(ctx, r.db).Model(&BookModel{})
	for _, p := range predicates {
		query = query.Where(p.Clause, p.Args...)
	}

	var models []BookModel
	if err := query.Order("createdAt DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "Failed to fetch books")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	var featured int8
	if b.Featured {
		featured = 1
	}
	return &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Price:       strconv.FormatFloat(b.Price, 'f', 2, 64),
		Category:    b.Category,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		Featured:    featured,
		CreatedAt:   b.CreatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
// DECIMAL列读出为"12.50"这类文本,统一还原为浮点数;TINYINT非0即为推荐
func toBookEntity(m *BookModel) *book.Book {
	price, _ := book.ParsePrice(m.Price)
	return &book.Book{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Price:       price,
		Category:    m.Category,
		Description: m.Description,
		CoverImage:  m.CoverImage,
		Featured:    m.Featured != 0,
		CreatedAt:   m.CreatedAt,
	}
}
