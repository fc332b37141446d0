package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestRetrier_Execute(t *testing.T) {
	errTransient := errors.New("503 from provider")

	tests := []struct {
		name          string
		failures      int
		err           error
		maxRetries    int
		expectError   bool
		expectedCalls int
	}{
		{"Success first try", 0, nil, 2, false, 1},
		{"Success after one retry", 1, errTransient, 2, false, 2},
		{"Exhausted", 10, errTransient, 2, true, 3},
		{"Permanent stops immediately", 10, Permanent(errors.New("400 invalid number")), 2, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			r := New(fastConfig(tt.maxRetries), logger.NewNopZapLogger())
			calls := 0

			// Act
			err := r.Execute(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})

			// Assert
			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_Execute_ContextCancelled(t *testing.T) {
	r := New(Config{MaxRetries: 5, BaseDelay: time.Second, Multiplier: 2}, logger.NewNopZapLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	calls := 0
	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("timeout")
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}

func TestCalculateDelay(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}, logger.NewNopZapLogger())

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(2), "capped at max delay")
}

func TestTransientOnly(t *testing.T) {
	assert.True(t, TransientOnly(errors.New("connection reset")))
	assert.False(t, TransientOnly(Permanent(errors.New("bad request"))))
	assert.False(t, TransientOnly(context.Canceled))
	assert.False(t, TransientOnly(nil))
	assert.True(t, IsPermanent(Permanent(errors.New("x"))))
	assert.Nil(t, Permanent(nil))
}
