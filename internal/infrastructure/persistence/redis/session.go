package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// SessionStore 管理员登录记录
// Key设计：admin_session:{admin_id}，Hash字段 admin_id/email/login_at/ip
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建登录记录存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

var _ admin.SessionStore = (*SessionStore)(nil)

func sessionKey(adminID uint) string {
	return fmt.Sprintf("admin_session:%d", adminID)
}

// Save 写入登录记录并设置过期时间
// HSet和Expire放在同一个MULTI中，不会留下没有TTL的key
func (s *SessionStore) Save(ctx context.Context, sess admin.Session, ttl time.Duration) error {
	key := sessionKey(sess.AdminID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, map[string]interface{}{
			"admin_id": sess.AdminID,
			"email":    sess.Email,
			"login_at": sess.LoginAt.UTC().Format(time.RFC3339),
			"ip":       sess.IP,
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return apperrors.ErrRedisError.WithCause(err)
	}
	return nil
}

// Get 读取登录记录
func (s *SessionStore) Get(ctx context.Context, adminID uint) (*admin.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(adminID)).Result()
	if err != nil {
		return nil, apperrors.ErrRedisError.WithCause(err)
	}
	if len(fields) == 0 {
		return nil, admin.ErrSessionNotFound
	}

	id, err := strconv.ParseUint(fields["admin_id"], 10, 64)
	if err != nil {
		return nil, apperrors.ErrRedisError.WithCause(fmt.Errorf("corrupt session admin_id %q: %w", fields["admin_id"], err))
	}
	loginAt, err := time.Parse(time.RFC3339, fields["login_at"])
	if err != nil {
		return nil, apperrors.ErrRedisError.WithCause(fmt.Errorf("corrupt session login_at %q: %w", fields["login_at"], err))
	}

	return &admin.Session{
		AdminID: uint(id),
		Email:   fields["email"],
		LoginAt: loginAt,
		IP:      fields["ip"],
	}, nil
}

// Delete 删除登录记录，不存在时不报错
func (s *SessionStore) Delete(ctx context.Context, adminID uint) error {
	if err := s.client.Del(ctx, sessionKey(adminID)).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(err)
	}
	return nil
}
