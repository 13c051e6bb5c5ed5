package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hallkeeper/hall-service/internal/config"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// Store counts hits for a key inside a fixed window.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

var hitScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return { n, redis.call('PTTL', KEYS[1]) }
`)

type redisStore struct {
	client redis.Scripter
}

// NewRedisStore returns a Store backed by an atomic INCR/PEXPIRE script.
func NewRedisStore(client redis.Scripter) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := hitScript.Run(ctx, s.client, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected limiter reply: %v", res)
	}
	return res[0], time.Duration(res[1]) * time.Millisecond, nil
}

// Limiter throttles attempts per client IP and route.
type Limiter struct {
	store   Store
	max     int64
	window  time.Duration
	prefix  string
	enabled bool
	logger  *zap.Logger
}

// NewLimiter constructs a limiter from configuration.
func NewLimiter(cfg config.RateLimitConfig, store Store, logger *zap.Logger) *Limiter {
	limit := int64(cfg.MaxAttempts)
	if limit <= 0 {
		limit = 10
	}
	return &Limiter{
		store:   store,
		max:     limit,
		window:  cfg.Window(),
		prefix:  cfg.Prefix,
		enabled: cfg.Enabled && store != nil,
		logger:  logger,
	}
}

// Handle is the fiber middleware. It fails open when the store errors.
func (l *Limiter) Handle(c *fiber.Ctx) error {
	if !l.enabled {
		return c.Next()
	}

	// The registered route path, not the request path: routing ignores case
	// and trailing slashes, so spellings of one endpoint share a counter.
	key := l.prefix + ":" + c.Method() + ":" + c.Route().Path + ":" + c.IP()
	count, ttl, err := l.store.Hit(c.UserContext(), key, l.window)
	if err != nil {
		l.logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
		return c.Next()
	}

	remaining := l.max - count
	if remaining < 0 {
		remaining = 0
	}
	c.Set("X-RateLimit-Limit", strconv.FormatInt(l.max, 10))
	c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

	if count > l.max {
		if ttl <= 0 {
			ttl = l.window
		}
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
		return apperrors.NewTooManyRequests("Too many attempts. Please try again later.")
	}
	return c.Next()
}
