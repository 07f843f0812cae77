package admin

import (
	"context"
)

// Repository 管理员仓储接口
type Repository interface {
	// Create 插入账号,邮箱重复返回ErrEmailTaken
	Create(ctx context.Context, admin *Admin) error

	// FindAdminByEmail 按邮箱查找role=admin的账号,找不到返回ErrAdminNotFound
	FindAdminByEmail(ctx context.Context, email string) (*Admin, error)
}
