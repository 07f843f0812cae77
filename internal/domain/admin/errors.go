package admin

import (
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

var (
	// ErrAdminNotFound 仓储层查不到管理员
	// 不直接返回给客户端,Authenticate会转换为ErrInvalidCredentials
	ErrAdminNotFound = apperrors.ErrUserNotFound

	// ErrInvalidCredentials 邮箱不存在和密码错误返回同一个错误
	ErrInvalidCredentials = apperrors.ErrInvalidCredentials

	// ErrCredentialsRequired 邮箱或密码为空
	ErrCredentialsRequired = apperrors.New(apperrors.ErrCodeMissingCredentials, "Email and password required")

	// ErrEmailTaken 创建管理员时邮箱已存在
	ErrEmailTaken = apperrors.New(apperrors.ErrCodeDuplicateEntry, "Email already registered")
)

// ErrSessionNotFound 没有登录记录(从未登录或已过期)
var ErrSessionNotFound = apperrors.ErrSessionNotFound
