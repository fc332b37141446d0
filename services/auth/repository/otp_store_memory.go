package repository

import (
	"context"
	"sync"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
)

// MemoryOtpStore keeps passcodes in process memory. Only valid for a single instance.
type MemoryOtpStore struct {
	mu          sync.Mutex
	records     map[string]*models.OtpRecord
	ttl         time.Duration
	maxAttempts int
	cooldown    time.Duration
	now         func() time.Time
}

// NewMemoryOtpStore creates an in-process passcode store
func NewMemoryOtpStore(cfg models.OTPConfig) *MemoryOtpStore {
	ttl, maxAttempts, cooldown := otpLimits(cfg)
	return &MemoryOtpStore{
		records:     make(map[string]*models.OtpRecord),
		ttl:         ttl,
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
		now:         time.Now,
	}
}

// Issue stores a new passcode for key unless the previous one is still cooling down
func (s *MemoryOtpStore) Issue(_ context.Context, key, code string) (*models.OtpRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.records[key]; ok && !existing.Expired(now) {
		if elapsed := now.Sub(existing.CreatedAt); elapsed < s.cooldown {
			return nil, apperror.NewRateLimitError("Please wait before requesting a new code", s.cooldown-elapsed)
		}
	}

	record := &models.OtpRecord{
		Key:       key,
		CodeHash:  utils.HashSecret(code),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.records[key] = record

	issued := *record
	return &issued, nil
}

// Verify checks candidate against the stored digest
func (s *MemoryOtpStore) Verify(_ context.Context, key, candidate string) (models.OtpVerifyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		return models.OtpVerifyResult{Status: models.OtpNotFound}, nil
	}
	if record.Expired(s.now()) {
		delete(s.records, key)
		return models.OtpVerifyResult{Status: models.OtpExpired}, nil
	}
	if record.Attempts >= s.maxAttempts {
		delete(s.records, key)
		return models.OtpVerifyResult{Status: models.OtpAttemptsExceeded}, nil
	}
	if !utils.SecretMatches(candidate, record.CodeHash) {
		record.Attempts++
		return models.OtpVerifyResult{
			Status:            models.OtpMismatch,
			RemainingAttempts: s.maxAttempts - record.Attempts,
		}, nil
	}

	delete(s.records, key)
	return models.OtpVerifyResult{Status: models.OtpVerified}, nil
}

// Delete removes any passcode stored for key
func (s *MemoryOtpStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored records, expired ones included
func (s *MemoryOtpStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Run reclaims expired records every interval until ctx is done
func (s *MemoryOtpStore) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				logger.Debug("Reclaimed expired passcodes", logger.Int("count", n))
			}
		}
	}
}

func (s *MemoryOtpStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, record := range s.records {
		if record.Expired(now) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}
