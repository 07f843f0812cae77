package admin

import (
	"context"
	"time"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
)

// SessionView 登录记录响应
type SessionView struct {
	AdminID uint      `json:"adminId"`
	Email   string    `json:"email"`
	LoginAt time.Time `json:"loginAt"`
	IP      string    `json:"ip"`
}

// GetSessionUseCase 查询当前管理员的最近一次登录记录
type GetSessionUseCase struct {
	sessions admin.SessionStore
}

func NewGetSessionUseCase(sessions admin.SessionStore) *GetSessionUseCase {
	return &GetSessionUseCase{sessions: sessions}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, adminID uint) (*SessionView, error) {
	s, err := uc.sessions.Get(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return &SessionView{AdminID: s.AdminID, Email: s.Email, LoginAt: s.LoginAt, IP: s.IP}, nil
}
