package security

import (
	"context"
	"fmt"
	"time"

	"go-apply-portal/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// UploadLimiter enforces rate limits on attachment uploads using a Redis
// sliding window. Without Redis it fails open so a storage outage never
// blocks an applicant mid-form.
type UploadLimiter struct {
	maxPerMinute int // Max uploads per minute per IP
	maxPerDay    int // Max uploads per day per applicant
}

// Lua script for sliding window rate limiting
// KEYS[1] = rate limit key
// ARGV[1] = max count allowed
// ARGV[2] = window size in seconds
// ARGV[3] = current timestamp
// Returns: 1 if allowed, 0 if rate limited
const uploadRateLimitScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)

local count = redis.call('ZCARD', key)

if count >= limit then
    return 0
end

redis.call('ZADD', key, now, now .. '-' .. math.random(1000000))
redis.call('EXPIRE', key, window)
return 1
`

// NewUploadLimiter creates an upload rate limiter
func NewUploadLimiter(perMin, perDay int) *UploadLimiter {
	if perMin <= 0 {
		perMin = 10
	}
	if perDay <= 0 {
		perDay = 50
	}
	return &UploadLimiter{
		maxPerMinute: perMin,
		maxPerDay:    perDay,
	}
}

// AllowUpload checks if an upload is allowed based on rate limits.
// Returns (allowed, retryAfterSeconds, error).
func (ul *UploadLimiter) AllowUpload(ctx context.Context, ip string, applicantID int64) (bool, int, error) {
	client := redis.Client()
	if client == nil {
		// Fail open: uploads proceed when Redis is not connected
		return true, 0, nil
	}

	now := time.Now().Unix()

	ipKey := fmt.Sprintf("ratelimit:upload:ip:%s", ip)
	allowed, err := ul.checkLimit(ctx, client, ipKey, ul.maxPerMinute, 60, now)
	if err != nil {
		return true, 0, fmt.Errorf("rate limit check failed: %w", err)
	}
	if !allowed {
		return false, 60, nil
	}

	applicantKey := fmt.Sprintf("ratelimit:upload:applicant:%d", applicantID)
	allowed, err = ul.checkLimit(ctx, client, applicantKey, ul.maxPerDay, 86400, now)
	if err != nil {
		return true, 0, fmt.Errorf("rate limit check failed: %w", err)
	}
	if !allowed {
		return false, 3600, nil
	}

	return true, 0, nil
}

func (ul *UploadLimiter) checkLimit(ctx context.Context, client *goredis.Client, key string, limit, windowSeconds int, now int64) (bool, error) {
	res, err := client.Eval(ctx, uploadRateLimitScript, []string{key},
		limit, windowSeconds, now).Int64()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
