package admin

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/admin"
)

// TokenIssuer 签发访问Token,由*jwt.Manager实现
type TokenIssuer interface {
	GenerateToken(adminID uint, role string, now time.Time) (string, time.Time, error)
}

// LoginUseCase 管理员登录用例
// 设计说明：
// 1. 验证邮箱密码（领域服务，失败统一返回Invalid credentials）
// 2. 签发Token
// 3. 写入登录记录，失败只记日志，不影响登录
type LoginUseCase struct {
	adminService admin.Service
	tokens       TokenIssuer
	sessions     admin.SessionStore
	now          func() time.Time
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	adminService admin.Service,
	tokens TokenIssuer,
	sessions admin.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		adminService: adminService,
		tokens:       tokens,
		sessions:     sessions,
		now:          time.Now,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
	IP       string // 客户端IP，仅写入登录记录
}

// AdminInfo 返回给前端的管理员信息（不含密码和角色）
type AdminInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	a, err := uc.adminService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	token, expiresAt, err := uc.tokens.GenerateToken(a.ID, a.Role, now)
	if err != nil {
		return nil, err
	}

	sess := admin.Session{AdminID: a.ID, Email: a.Email, LoginAt: now, IP: req.IP}
	if err := uc.sessions.Save(ctx, sess, expiresAt.Sub(now)); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Uint("admin_id", a.ID).Msg("保存登录记录失败")
	}

	return &LoginResponse{
		Token: token,
		Admin: AdminInfo{ID: a.ID, Name: a.Name, Email: a.Email},
	}, nil
}
