package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/cart"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

// CartStore 购物车存储
// Key设计：cart:{cartId}，Hash字段为bookId，值为数量
// 每次写操作刷新TTL，长期不活跃的购物车自动过期
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore 创建购物车存储
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

var _ cart.Store = (*CartStore)(nil)

func cartKey(cartID string) string {
	return "cart:" + cartID
}

// addScript 检查上限后累加，超过上限返回-1且不修改
// 读改写在同一个脚本内完成，并发累加不会越过上限
var addScript = redis.NewScript(`
local cur = tonumber(redis.call('HGET', KEYS[1], ARGV[1]) or '0')
local n = cur + tonumber(ARGV[2])
if n > tonumber(ARGV[3]) then
  return -1
end
redis.call('HSET', KEYS[1], ARGV[1], n)
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return n
`)

// Lines 读取购物车，按bookId升序
func (s *CartStore) Lines(ctx context.Context, cartID string) ([]cart.Line, error) {
	fields, err := s.client.HGetAll(ctx, cartKey(cartID)).Result()
	if err != nil {
		return nil, apperrors.ErrRedisError.WithCause(err)
	}

	lines := make([]cart.Line, 0, len(fields))
	for field, value := range fields {
		bookID, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, apperrors.ErrRedisError.WithCause(fmt.Errorf("corrupt cart field %q: %w", field, err))
		}
		qty, err := strconv.Atoi(value)
		if err != nil {
			return nil, apperrors.ErrRedisError.WithCause(fmt.Errorf("corrupt cart quantity %q: %w", value, err))
		}
		lines = append(lines, cart.Line{BookID: uint(bookID), Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].BookID < lines[j].BookID })
	return lines, nil
}

// Add 数量累加
func (s *CartStore) Add(ctx context.Context, cartID string, bookID uint, quantity int) error {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}

	n, err := addScript.Run(ctx, s.client,
		[]string{cartKey(cartID)},
		bookField(bookID), quantity, cart.MaxQuantity, s.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return apperrors.ErrRedisError.WithCause(err)
	}
	if n < 0 {
		return cart.ErrInvalidQuantity
	}
	return nil
}

// Set 覆盖数量
func (s *CartStore) Set(ctx context.Context, cartID string, bookID uint, quantity int) error {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}

	key := cartKey(cartID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, bookField(bookID), quantity)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return apperrors.ErrRedisError.WithCause(err)
	}
	return nil
}

// Remove 移除一行
func (s *CartStore) Remove(ctx context.Context, cartID string, bookID uint) error {
	key := cartKey(cartID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, key, bookField(bookID))
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return apperrors.ErrRedisError.WithCause(err)
	}
	return nil
}

// Clear 删除整个购物车
func (s *CartStore) Clear(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(err)
	}
	return nil
}

func bookField(bookID uint) string {
	return strconv.FormatUint(uint64(bookID), 10)
}
