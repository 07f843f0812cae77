package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，HTTP层按码段映射状态码（见HTTPStatus）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码判断是否为同一类错误
// 预定义错误经WithCause派生后仍可用errors.Is匹配
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithCause 复制错误并附带内部原因
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Err: err}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为服务端错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx/409xx: 参数错误、业务规则校验失败 → 400
// - 401xx: 认证失败 → 401
// - 404xx: 资源不存在 → 404
// - 5xxxx: 服务端错误 → 500

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
	ErrCodePanic         = 50003 // 未捕获的panic

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized       = 40100 // 未携带Token
	ErrCodeInvalidToken       = 40101 // Token无效
	ErrCodeTokenExpired       = 40102 // Token过期
	ErrCodeInvalidCredentials = 40103 // 邮箱或密码错误
	ErrCodeForbidden          = 40104 // 非管理员

	// 资源错误（40400-40499）
	ErrCodeNotFound        = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound    = 40401 // 用户不存在
	ErrCodeBookNotFound    = 40402 // 图书不存在
	ErrCodeOrderNotFound   = 40403 // 订单不存在
	ErrCodeRouteNotFound   = 40404 // 路由不存在
	ErrCodeSessionNotFound = 40405 // 登录记录不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError      = 40000 // 业务错误(通用)
	ErrCodeInvalidQuantity    = 40001 // 购买数量非法
	ErrCodeInvalidOrderStatus = 40002 // 订单状态非法
	ErrCodeEmptyOrder         = 40003 // 订单没有商品
	ErrCodeInvalidCart        = 40004 // 购物车标识非法
	ErrCodeDuplicateEntry     = 40009 // 重复记录(通用)

	// 参数错误（40900-40999）
	ErrCodeInvalidParams      = 40900 // 参数错误
	ErrCodeBindError          = 40901 // 参数绑定失败
	ErrCodeMissingFields      = 40902 // 缺少必填字段
	ErrCodeIncompleteFields   = 40903 // 更新时字段不全
	ErrCodeInvalidPrice       = 40904 // 价格无法解析
	ErrCodeMissingCredentials = 40905 // 登录缺少邮箱或密码
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "Server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error")
	ErrRedisError    = New(ErrCodeRedisError, "Cache error")
	ErrPanic         = New(ErrCodePanic, "Something went wrong!")

	// 认证授权
	ErrUnauthorized       = New(ErrCodeUnauthorized, "Access denied. No token provided.")
	ErrInvalidToken       = New(ErrCodeInvalidToken, "Invalid token")
	ErrTokenExpired       = New(ErrCodeTokenExpired, "Invalid token")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "Invalid credentials")
	ErrForbidden          = New(ErrCodeForbidden, "Admin access required")

	// 资源不存在
	ErrNotFound        = New(ErrCodeNotFound, "Not found")
	ErrUserNotFound    = New(ErrCodeUserNotFound, "User not found")
	ErrBookNotFound    = New(ErrCodeBookNotFound, "Book not found")
	ErrOrderNotFound   = New(ErrCodeOrderNotFound, "Order not found")
	ErrRouteNotFound   = New(ErrCodeRouteNotFound, "Route not found")
	ErrSessionNotFound = New(ErrCodeSessionNotFound, "Session not found")

	// 业务规则
	ErrInvalidOrderStatus = New(ErrCodeInvalidOrderStatus, "Order status does not allow this transition")
	ErrDuplicateEntry     = New(ErrCodeDuplicateEntry, "Duplicate entry")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "Invalid request body")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrInternal.Message)
}

// HTTPStatus 按错误码段映射HTTP状态码
func HTTPStatus(code int) int {
	switch code / 100 {
	case 400, 409:
		return http.StatusBadRequest
	case 401:
		return http.StatusUnauthorized
	case 404:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
