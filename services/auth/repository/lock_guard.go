package repository

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/constants"
	"github.com/alshuail/authnotify/internal/pkg/database"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// Lockout defaults
const (
	DefaultLockMaxAttempts = 5
	DefaultLockDuration    = 30 * time.Minute
)

// recordFailureScript counts one failure and locks the account at the threshold.
// KEYS: lock key, failure counter key
// ARGV: max_attempts, lock_ms, window_ms, locked_until_ms
// Returns {state, locked_until_ms, failures}; state 0 counted, 1 already locked, 2 locked now.
var recordFailureScript = redis.NewScript(`
local lockedUntil = redis.call('GET', KEYS[1])
if lockedUntil then
	return {1, tonumber(lockedUntil), 0}
end
local failures = redis.call('INCR', KEYS[2])
if failures == 1 and tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[2], ARGV[3])
end
if failures >= tonumber(ARGV[1]) then
	redis.call('SET', KEYS[1], ARGV[4], 'PX', ARGV[2])
	redis.call('DEL', KEYS[2])
	return {2, tonumber(ARGV[4]), failures}
end
return {0, 0, failures}
`)

// LockGuard locks accounts in Redis after repeated login failures
type LockGuard struct {
	redisClient *database.RedisClient
	maxAttempts int
	duration    time.Duration
	window      time.Duration
	now         func() time.Time
}

// NewLockGuard creates a Redis backed lock guard
func NewLockGuard(cfg models.LockConfig, redisClient *database.RedisClient) *LockGuard {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultLockMaxAttempts
	}
	duration := cfg.Duration
	if duration <= 0 {
		duration = DefaultLockDuration
	}
	return &LockGuard{
		redisClient: redisClient,
		maxAttempts: maxAttempts,
		duration:    duration,
		window:      cfg.FailureWindow,
		now:         time.Now,
	}
}

func lockKeys(accountID string) []string {
	return []string{
		fmt.Sprintf(constants.KeyAccountLock, accountID),
		fmt.Sprintf(constants.KeyAccountFailures, accountID),
	}
}

// Status returns the current lock state of accountID
func (g *LockGuard) Status(ctx context.Context, accountID string) (models.AccountLockState, error) {
	state := models.AccountLockState{AccountID: accountID}

	values, err := g.redisClient.Client.MGet(ctx, lockKeys(accountID)...).Result()
	if err != nil {
		return state, fmt.Errorf("failed to read lock state: %w", err)
	}

	if raw, ok := values[0].(string); ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return state, fmt.Errorf("corrupt lock value for %s: %w", accountID, err)
		}
		g.fillLock(&state, ms)
	}
	if raw, ok := values[1].(string); ok {
		failures, err := strconv.Atoi(raw)
		if err != nil {
			return state, fmt.Errorf("corrupt failure counter for %s: %w", accountID, err)
		}
		state.FailedAttempts = failures
	}
	return state, nil
}

// RecordFailure counts one failed login; the boolean is true when this failure locked the account
func (g *LockGuard) RecordFailure(ctx context.Context, accountID string) (models.AccountLockState, bool, error) {
	state := models.AccountLockState{AccountID: accountID}
	lockedUntil := g.now().Add(g.duration)

	res, err := recordFailureScript.Run(ctx, g.redisClient.Client, lockKeys(accountID),
		strconv.Itoa(g.maxAttempts),
		strconv.FormatInt(g.duration.Milliseconds(), 10),
		strconv.FormatInt(g.window.Milliseconds(), 10),
		strconv.FormatInt(lockedUntil.UnixMilli(), 10),
	).Int64Slice()
	if err != nil {
		return state, false, fmt.Errorf("failed to record login failure: %w", err)
	}
	if len(res) != 3 {
		return state, false, fmt.Errorf("unexpected lock script result: %v", res)
	}

	switch res[0] {
	case 1:
		g.fillLock(&state, res[1])
		return state, false, nil
	case 2:
		state.FailedAttempts = int(res[2])
		g.fillLock(&state, res[1])
		return state, true, nil
	default:
		state.FailedAttempts = int(res[2])
		return state, false, nil
	}
}

// Reset clears the failure counter and any lock
func (g *LockGuard) Reset(ctx context.Context, accountID string) error {
	if err := g.redisClient.Delete(ctx, lockKeys(accountID)...); err != nil {
		return fmt.Errorf("failed to reset lock state: %w", err)
	}
	return nil
}

// MaxAttempts returns the failure threshold
func (g *LockGuard) MaxAttempts() int {
	return g.maxAttempts
}

func (g *LockGuard) fillLock(state *models.AccountLockState, untilMs int64) {
	until := time.UnixMilli(untilMs)
	now := g.now()
	if !until.After(now) {
		return
	}
	state.LockedUntil = &until
	state.RemainingMinutes = int(math.Ceil(until.Sub(now).Minutes()))
}
