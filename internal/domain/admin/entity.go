package admin

import (
	"time"
)

// RoleAdmin 管理员角色标识(同时写入Token的role声明)
const RoleAdmin = "admin"

// Admin 管理员账号
// 存储在users表中,Role为"admin"的行才能登录后台
type Admin struct {
	ID        uint
	Name      string
	Email     string
	Password  string // bcrypt哈希值,不返回给客户端
	Role      string
	CreatedAt time.Time
}

// IsAdmin 是否具有管理员角色
func (a *Admin) IsAdmin() bool {
	return a.Role == RoleAdmin
}
