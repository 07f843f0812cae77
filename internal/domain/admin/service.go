package admin

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// PasswordCost bcrypt计算成本
const PasswordCost = 10

// Service 管理员领域服务
// 设计说明：
// 1. 登录失败不区分"邮箱不存在"和"密码错误",防止账号枚举
// 2. 邮箱不存在时也执行一次bcrypt比较,两种失败耗时接近
type Service interface {
	// Authenticate 校验邮箱和密码
	Authenticate(ctx context.Context, email, password string) (*Admin, error)

	// CreateAdmin 创建管理员账号（初始化命令使用）
	CreateAdmin(ctx context.Context, name, email, password string) (*Admin, error)
}

type service struct {
	repo Repository
}

// NewService 创建管理员服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func timingDummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("bookstore-timing-dummy"), PasswordCost)
	})
	return dummyHash
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*Admin, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	a, err := s.repo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			_ = bcrypt.CompareHashAndPassword(timingDummyHash(), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "Server error")
	}
	return a, nil
}

func (s *service) CreateAdmin(ctx context.Context, name, email, password string) (*Admin, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "Server error")
	}

	a := &Admin{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     RoleAdmin,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
