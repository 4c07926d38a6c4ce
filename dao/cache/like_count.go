package cache

import (
	"Portfolio/config"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	likeCountKey        = "portfolio:like:count"
	likeCountVersionKey = "portfolio:like:count:version"
)

// 版本号未变化时才回填, 防止旧的计数覆盖写入后的新值
var refillScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if not v then v = '0' end
if v ~= ARGV[1] then return 0 end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// LikeCountStorage 点赞总数缓存, redis 为 nil 时视为未启用
type LikeCountStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewLikeCountStorage(redis *redis.Client, conf *config.Config) *LikeCountStorage {
	return &LikeCountStorage{redis: redis, ttl: conf.Redis.CountTTL()}
}

func (s *LikeCountStorage) Enabled() bool {
	return s != nil && s.redis != nil
}

// Get 第二个返回值表示是否命中
func (s *LikeCountStorage) Get(ctx context.Context) (int64, bool, error) {
	if !s.Enabled() {
		return 0, false, nil
	}
	val, err := s.redis.Get(ctx, likeCountKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

// Version 回源前读取, 交给 Refill 做比较
func (s *LikeCountStorage) Version(ctx context.Context) (string, error) {
	if !s.Enabled() {
		return "0", nil
	}
	v, err := s.redis.Get(ctx, likeCountVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return v, err
}

// Refill 仅当版本号仍为 version 时写入, 返回是否写入
func (s *LikeCountStorage) Refill(ctx context.Context, version string, count int64) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	n, err := refillScript.Run(ctx, s.redis,
		[]string{likeCountVersionKey, likeCountKey},
		version, count, s.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Invalidate 写入后调用: 版本号加一并删除计数, 在同一事务中执行
func (s *LikeCountStorage) Invalidate(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, likeCountVersionKey)
		pipe.Del(ctx, likeCountKey)
		return nil
	})
	return err
}
