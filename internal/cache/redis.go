package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// likeCountTTL keeps counters warm for an hour after last touch.
const likeCountTTL = time.Hour

// ErrCacheMiss is returned when no counter is stored for a user.
var ErrCacheMiss = errors.New("cache miss")

// RedisCache holds the hot received-likes counters. The database stays the
// source of truth; callers fall back to it on a miss.
type RedisCache struct {
	Client *redis.Client
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisCache initializes a Redis client. Only Addr is mandatory.
func NewRedisCache(opts Options) *RedisCache {
	redisOpts := &redis.Options{
		Addr: opts.Addr,
	}
	if opts.Password != "" {
		redisOpts.Password = opts.Password
	}
	if opts.DB != 0 {
		redisOpts.DB = opts.DB
	}
	return &RedisCache{Client: redis.NewClient(redisOpts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func likeCountKey(userID uint64) string {
	return fmt.Sprintf("likes:received:%d", userID)
}

// IncrLikesReceived bumps the counter for a user who just got liked.
// Only has effect when the counter is already warm: a cold counter will be
// seeded from the database on the next read.
func (c *RedisCache) IncrLikesReceived(ctx context.Context, userID uint64) error {
	key := likeCountKey(userID)

	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}

	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, likeCountTTL).Err()
}

// SetLikesReceived seeds the counter, refreshing its TTL.
func (c *RedisCache) SetLikesReceived(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, likeCountKey(userID), count, likeCountTTL).Err()
}

// GetLikesReceived returns the cached counter or ErrCacheMiss.
func (c *RedisCache) GetLikesReceived(ctx context.Context, userID uint64) (int64, error) {
	key := likeCountKey(userID)

	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	} else if err != nil {
		return 0, err
	}

	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, likeCountTTL).Err()
	return strconv.ParseInt(val, 10, 64)
}
