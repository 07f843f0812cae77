package admin

import (
	"context"
	"time"
)

// Session 登录记录
// 仅用于展示,鉴权中间件不读取
type Session struct {
	AdminID uint
	Email   string
	LoginAt time.Time
	IP      string
}

// SessionStore 登录记录存储
type SessionStore interface {
	// Save 覆盖写入,ttl与Token有效期一致
	Save(ctx context.Context, s Session, ttl time.Duration) error

	// Get 不存在时返回ErrSessionNotFound
	Get(ctx context.Context, adminID uint) (*Session, error)

	Delete(ctx context.Context, adminID uint) error
}
