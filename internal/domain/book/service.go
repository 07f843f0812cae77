package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 读路径:Filter → 谓词列表 → 仓储查询
// 2. 写路径:字段校验与类型转换在访问存储之前完成,校验失败不产生任何写操作
// 3. 写入后按ID重新读取,返回存储层实际保存的值
type Service interface {
	// List 按条件查询图书,按createdAt倒序
	List(ctx context.Context, filter Filter) ([]*Book, error)

	// Get 根据ID获取图书
	Get(ctx context.Context, id uint) (*Book, error)

	// Create 创建图书
	// 业务规则:
	// - title/author/price/category必须有值
	// - description/coverImage为空时存NULL
	// - featured仅当提交true或"true"时为true
	Create(ctx context.Context, fields Fields) (*Book, error)

	// Update 全量更新图书
	// 业务规则:
	// - 先检查图书存在,再校验字段
	// - 六个字段(含description、coverImage)都必须有值
	Update(ctx context.Context, id uint, fields Fields) (*Book, error)

	// Delete 删除图书并返回删除前的记录,不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) (*Book, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Book, error) {
	return s.repo.List(ctx, filter.Predicates())
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	if id == 0 {
		return nil, ErrBookNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, fields Fields) (*Book, error) {
	// 1. 必填校验
	if !truthy(fields.Title) || !truthy(fields.Author) || !truthy(fields.Price) || !truthy(fields.Category) {
		return nil, ErrMissingFields
	}

	// 2. 价格转换
	price, err := coercePrice(fields.Price)
	if err != nil {
		return nil, err
	}

	// 3. 持久化并回读
	b := newBook(fields, price)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, b.ID)
}

func (s *service) Update(ctx context.Context, id uint, fields Fields) (*Book, error) {
	// 1. 存在性检查优先于字段校验
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 全字段校验
	if !truthy(fields.Title) || !truthy(fields.Author) || !truthy(fields.Price) ||
		!truthy(fields.Category) || !truthy(fields.Description) || !truthy(fields.CoverImage) {
		return nil, ErrAllFieldsRequired
	}

	price, err := coercePrice(fields.Price)
	if err != nil {
		return nil, err
	}

	// 3. 覆盖可修改字段,保留ID和CreatedAt
	b := newBook(fields, price)
	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) (*Book, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
