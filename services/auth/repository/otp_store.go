package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/constants"
	"github.com/alshuail/authnotify/internal/pkg/database"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/go-redis/redis/v8"
)

// Passcode store defaults
const (
	DefaultOTPTTL         = 5 * time.Minute
	DefaultOTPMaxAttempts = 3
	DefaultOTPCooldown    = 60 * time.Second
)

// issueScript replaces the record unless a live one is still inside its cooldown.
// ARGV: code_hash, now_ms, expires_at_ms, ttl_ms, cooldown_ms
// Returns {1, 0} when issued, {0, retry_after_ms} when cooling down.
var issueScript = redis.NewScript(`
local now = tonumber(ARGV[2])
local created = redis.call('HGET', KEYS[1], 'created_at')
if created then
	local expires = tonumber(redis.call('HGET', KEYS[1], 'expires_at') or '0')
	local elapsed = now - tonumber(created)
	if expires > now and elapsed < tonumber(ARGV[5]) then
		return {0, tonumber(ARGV[5]) - elapsed}
	end
end
redis.call('DEL', KEYS[1])
redis.call('HSET', KEYS[1], 'code_hash', ARGV[1], 'created_at', ARGV[2], 'expires_at', ARGV[3], 'attempts', '0')
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return {1, 0}
`)

// verifyScript checks one candidate digest and consumes the record on success.
// ARGV: candidate_hash, now_ms, max_attempts
// Returns {status, remaining_attempts}.
var verifyScript = redis.NewScript(`
local rec = redis.call('HMGET', KEYS[1], 'code_hash', 'expires_at', 'attempts')
if not rec[1] then
	return {0, 0}
end
if tonumber(ARGV[2]) > tonumber(rec[2]) then
	redis.call('DEL', KEYS[1])
	return {1, 0}
end
local max = tonumber(ARGV[3])
if tonumber(rec[3]) >= max then
	redis.call('DEL', KEYS[1])
	return {2, 0}
end
if rec[1] ~= ARGV[1] then
	local attempts = redis.call('HINCRBY', KEYS[1], 'attempts', 1)
	return {3, max - attempts}
end
redis.call('DEL', KEYS[1])
return {4, 0}
`)

var verifyStatuses = []models.OtpVerifyStatus{
	models.OtpNotFound,
	models.OtpExpired,
	models.OtpAttemptsExceeded,
	models.OtpMismatch,
	models.OtpVerified,
}

// RedisOtpStore keeps passcodes in Redis hashes shared by every instance
type RedisOtpStore struct {
	redisClient *database.RedisClient
	ttl         time.Duration
	maxAttempts int
	cooldown    time.Duration
	now         func() time.Time
}

// NewRedisOtpStore creates a Redis backed passcode store
func NewRedisOtpStore(cfg models.OTPConfig, redisClient *database.RedisClient) *RedisOtpStore {
	ttl, maxAttempts, cooldown := otpLimits(cfg)
	return &RedisOtpStore{
		redisClient: redisClient,
		ttl:         ttl,
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
		now:         time.Now,
	}
}

func otpLimits(cfg models.OTPConfig) (time.Duration, int, time.Duration) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultOTPMaxAttempts
	}
	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = DefaultOTPCooldown
	}
	return ttl, maxAttempts, cooldown
}

// Issue stores a new passcode for key unless the previous one is still cooling down
func (s *RedisOtpStore) Issue(ctx context.Context, key, code string) (*models.OtpRecord, error) {
	now := s.now()
	record := &models.OtpRecord{
		Key:       key,
		CodeHash:  utils.HashSecret(code),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	res, err := issueScript.Run(ctx, s.redisClient.Client,
		[]string{fmt.Sprintf(constants.KeyOTP, key)},
		record.CodeHash,
		strconv.FormatInt(now.UnixMilli(), 10),
		strconv.FormatInt(record.ExpiresAt.UnixMilli(), 10),
		strconv.FormatInt(s.ttl.Milliseconds(), 10),
		strconv.FormatInt(s.cooldown.Milliseconds(), 10),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to issue otp: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected issue script result: %v", res)
	}

	if res[0] == 0 {
		return nil, apperror.NewRateLimitError("Please wait before requesting a new code",
			time.Duration(res[1])*time.Millisecond)
	}
	return record, nil
}

// Verify checks candidate against the stored digest
func (s *RedisOtpStore) Verify(ctx context.Context, key, candidate string) (models.OtpVerifyResult, error) {
	res, err := verifyScript.Run(ctx, s.redisClient.Client,
		[]string{fmt.Sprintf(constants.KeyOTP, key)},
		utils.HashSecret(candidate),
		strconv.FormatInt(s.now().UnixMilli(), 10),
		strconv.Itoa(s.maxAttempts),
	).Int64Slice()
	if err != nil {
		return models.OtpVerifyResult{}, fmt.Errorf("failed to verify otp: %w", err)
	}
	if len(res) != 2 || res[0] < 0 || int(res[0]) >= len(verifyStatuses) {
		return models.OtpVerifyResult{}, fmt.Errorf("unexpected verify script result: %v", res)
	}

	return models.OtpVerifyResult{
		Status:            verifyStatuses[res[0]],
		RemainingAttempts: int(res[1]),
	}, nil
}

// Delete removes any passcode stored for key
func (s *RedisOtpStore) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyOTP, key)); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}
