package dto

// LoginRequest 管理员登录请求
// 空值校验在领域服务中完成,保证返回"Email and password required"
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"admin@bookstore.com"`
	Password string `json:"password" form:"password" example:"admin123"`
}
