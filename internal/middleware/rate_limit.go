package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shipper1953/carton-service/internal/domain/dto"
	"github.com/shipper1953/carton-service/internal/i18n"
)

// defaultNumShards is the shard count used by NewRateLimiter.
const defaultNumShards = 16

// visitor tracks rate limit state for a single identifier.
type visitor struct {
	tokens    int
	lastReset time.Time
}

// limiterShard holds the visitors whose identifiers hash to it.
type limiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter implements a fixed-window rate limiter keyed by client IP.
// Visitors are spread across shards by identifier hash so concurrent
// requests from different clients do not contend on one lock.
type RateLimiter struct {
	shards   []*limiterShard
	rate     int
	window   time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a sharded rate limiter with the specified rate
// and window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a rate limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*limiterShard, numShards)
	for i := range shards {
		shards[i] = &limiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

// shardFor returns the shard owning the identifier, by FNV-1a hash.
func (rl *RateLimiter) shardFor(identifier string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// check consumes a token for the identifier, resetting the bucket when the
// window has elapsed.
func (rl *RateLimiter) check(identifier string) (allowed bool, remaining int) {
	shard := rl.shardFor(identifier)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	v, exists := shard.visitors[identifier]
	if !exists || now.Sub(v.lastReset) > rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1
	}

	if v.tokens <= 0 {
		return false, 0
	}

	v.tokens--
	return true, v.tokens
}

// RateLimit returns a middleware that limits requests per IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.ClientIP()

		allowed, remaining := rl.check(identifier)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			locale := i18n.GetLocale(c)
			requestID := GetRequestID(c)
			c.Header("Retry-After", rl.window.String())
			errorResp := dto.NewError(dto.ErrCodeRateLimit,
				i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

// cleanup removes stale visitors from every shard so the maps do not grow
// unbounded.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * rl.window)
			for _, shard := range rl.shards {
				shard.mu.Lock()
				for id, v := range shard.visitors {
					if v.lastReset.Before(cutoff) {
						delete(shard.visitors, id)
					}
				}
				shard.mu.Unlock()
			}
		case <-rl.stopCh:
			return
		}
	}
}

// Stats reports the tracked visitor count in total and per shard.
func (rl *RateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		total += perShard[i]
		shard.mu.Unlock()
	}
	return total, perShard
}

// Stop shuts down the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}
