package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/jwt"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/response"
)

// Context中保存的管理员信息key
const (
	ContextKeyAdminID = "admin_id"
	ContextKeyRole    = "role"
)

// AuthMiddleware 管理员鉴权中间件
// 设计说明：
// 1. 无状态：只校验签名、过期时间和role声明，不访问数据库和Redis
// 2. 校验通过后将admin_id、role注入gin.Context
type AuthMiddleware struct {
	verifier jwt.Verifier
	now      func() time.Time
}

// NewAuthMiddleware 创建鉴权中间件
func NewAuthMiddleware(verifier jwt.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, now: time.Now}
}

// RequireAdmin 要求管理员Token
// 使用方式：
//
//	books.POST("", authMiddleware.RequireAdmin(), bookHandler.Create)
//
// 失败响应（均为401）：
//   - 没有Token：Access denied. No token provided.
//   - Token无效或过期：Invalid token
//   - role不是admin：Admin access required
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从Header提取Token
		// 格式：Authorization: Bearer <token>，取空格后的部分
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			response.Abort(c, apperrors.ErrUnauthorized)
			return
		}

		// 2. 验证Token并解析Claims
		claims, err := m.verifier.Verify(tokenString, m.now())
		if err != nil {
			response.Abort(c, err)
			return
		}

		// 3. 校验角色
		if claims.Role != admin.RoleAdmin {
			response.Abort(c, apperrors.ErrForbidden)
			return
		}

		c.Set(ContextKeyAdminID, claims.AdminID)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// bearerToken 只接受"Bearer <token>",其它格式视为未携带Token
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetAdminID 从Context获取当前管理员ID，未通过RequireAdmin时返回0
func GetAdminID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyAdminID); exists {
		if uid, ok := id.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetRole 从Context获取当前角色
func GetRole(c *gin.Context) string {
	return c.GetString(ContextKeyRole)
}
