package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/infrastructure/config"
)

// pingTimeout 启动时连通性检查的超时
const pingTimeout = 5 * time.Second

// clientOptions redis段配置 → go-redis连接池参数
func clientOptions(rc config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         rc.Addr(),
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		MinIdleConns: rc.MinIdleConns,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
	}
}

// NewClient 创建购物车和登录记录共用的Redis客户端
// Ping失败时关闭客户端并返回错误,进程不带着不可用的Redis启动
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(clientOptions(cfg.Redis))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr(), err)
	}
	return client, nil
}
