package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// userRepository 管理员账号仓储(users表)
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建管理员仓储
func NewUserRepository(db *gorm.DB) admin.Repository {
	return &userRepository{db: db}
}

// Create 插入账号
func (r *userRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := &UserModel{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return admin.ErrEmailTaken
		}
		return apperrors.Wrap(err, "Failed to create user")
	}
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	return nil
}

// FindAdminByEmail 按邮箱查找管理员
// 条件同时限定role,普通用户即使邮箱匹配也查不到
func (r *userRepository) FindAdminByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var model UserModel
	err := dbFrom(ctx, r.db).
		Where("email = ? AND role = ?", email, admin.RoleAdmin).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, "Server error")
	}

	return &admin.Admin{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Password:  model.Password,
		Role:      model.Role,
		CreatedAt: model.CreatedAt,
	}, nil
}
