package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// DefaultIssuer Token签发方
const DefaultIssuer = "bookstore"

// Manager JWT管理器
// 设计说明：
// 1. 只签发一种Token（管理员访问Token），HS256对称签名
// 2. 校验是纯函数：只依赖token字符串和传入的当前时间，不访问任何存储
type Manager struct {
	secret []byte        // JWT签名密钥
	expire time.Duration // Token有效期
	issuer string
}

// NewManager 创建JWT管理器
func NewManager(secret string, expire time.Duration, issuer string) *Manager {
	if issuer == "" {
		issuer = DefaultIssuer
	}
	return &Manager{
		secret: []byte(secret),
		expire: expire,
		issuer: issuer,
	}
}

// Claims 自定义JWT Claims
// 载荷字段与前端约定一致：{"id": 1, "role": "admin"}
type Claims struct {
	AdminID uint   `json:"id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier Token校验接口（中间件依赖此接口，便于测试替换）
type Verifier interface {
	Verify(tokenString string, now time.Time) (*Claims, error)
}

// Expire 返回Token有效期（登录记录的TTL与其一致）
func (m *Manager) Expire() time.Duration {
	return m.expire
}

// GenerateToken 签发Token
// 返回token字符串和过期时间
func (m *Manager) GenerateToken(adminID uint, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.expire)
	claims := Claims{
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   strconv.FormatUint(uint64(adminID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "Server error")
	}
	return signed, expiresAt, nil
}

// Verify 解析并验证Token
// 学习要点：
// 1. 验证签名算法（只接受HMAC，防止alg=none或非对称算法混淆）
// 2. 以传入的now判断exp，测试时无需sleep
// 3. 过期返回ErrTokenExpired，其余失败统一返回ErrInvalidToken
func (m *Manager) Verify(tokenString string, now time.Time) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(m.issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired.WithCause(err)
		}
		return nil, apperrors.ErrInvalidToken.WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
