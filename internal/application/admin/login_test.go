package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
)

type stubAdminService struct {
	admin.Service
	admin *admin.Admin
	err   error
}

func (s *stubAdminService) Authenticate(context.Context, string, string) (*admin.Admin, error) {
	return s.admin, s.err
}

type stubIssuer struct{ expire time.Duration }

func (s stubIssuer) GenerateToken(adminID uint, role string, now time.Time) (string, time.Time, error) {
	return "token-" + role, now.Add(s.expire), nil
}

type memSessions struct {
	saved   []admin.Session
	ttls    []time.Duration
	saveErr error
}

func (m *memSessions) Save(_ context.Context, s admin.Session, ttl time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, s)
	m.ttls = append(m.ttls, ttl)
	return nil
}

func (m *memSessions) Get(_ context.Context, id uint) (*admin.Session, error) {
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].AdminID == id {
			s := m.saved[i]
			return &s, nil
		}
	}
	return nil, admin.ErrSessionNotFound
}

func (m *memSessions) Delete(context.Context, uint) error { return nil }

func TestLoginUseCase(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	a := &admin.Admin{ID: 1, Name: "Admin", Email: "admin@bookstore.com", Role: admin.RoleAdmin}

	t.Run("登录成功并写入登录记录", func(t *testing.T) {
		sessions := &memSessions{}
		uc := NewLoginUseCase(&stubAdminService{admin: a}, stubIssuer{expire: 24 * time.Hour}, sessions)
		uc.now = func() time.Time { return now }

		resp, err := uc.Execute(context.Background(), LoginRequest{Email: a.Email, Password: "admin123", IP: "1.2.3.4"})
		require.NoError(t, err)
		assert.Equal(t, "token-admin", resp.Token)
		assert.Equal(t, AdminInfo{ID: 1, Name: "Admin", Email: "admin@bookstore.com"}, resp.Admin)

		require.Len(t, sessions.saved, 1)
		assert.Equal(t, "1.2.3.4", sessions.saved[0].IP)
		assert.Equal(t, now, sessions.saved[0].LoginAt)
		assert.Equal(t, 24*time.Hour, sessions.ttls[0], "TTL与Token有效期一致")

		view, err := NewGetSessionUseCase(sessions).Execute(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "admin@bookstore.com", view.Email)
	})

	t.Run("登录记录写入失败不影响登录", func(t *testing.T) {
		sessions := &memSessions{saveErr: errors.New("redis down")}
		uc := NewLoginUseCase(&stubAdminService{admin: a}, stubIssuer{expire: time.Hour}, sessions)

		resp, err := uc.Execute(context.Background(), LoginRequest{Email: a.Email, Password: "admin123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("凭证错误原样返回", func(t *testing.T) {
		sessions := &memSessions{}
		uc := NewLoginUseCase(&stubAdminService{err: admin.ErrInvalidCredentials}, stubIssuer{}, sessions)

		_, err := uc.Execute(context.Background(), LoginRequest{Email: "x@y.z", Password: "bad"})
		assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
		assert.Empty(t, sessions.saved)
	})

	t.Run("没有登录记录", func(t *testing.T) {
		_, err := NewGetSessionUseCase(&memSessions{}).Execute(context.Background(), 42)
		assert.ErrorIs(t, err, admin.ErrSessionNotFound)
	})
}
