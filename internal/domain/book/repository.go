package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 查不到记录统一返回ErrBookNotFound,其余存储错误包装为服务端错误
type Repository interface {
	// Create 插入图书,成功后回填book.ID
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 覆盖全部可修改字段(不修改id和createdAt)
	Update(ctx context.Context, book *Book) error

	// Delete 按ID删除(物理删除)
	Delete(ctx context.Context, id uint) error

	// List 按谓词列表查询,按createdAt倒序
	List(ctx context.Context, predicates []Predicate) ([]*Book, error)
}
