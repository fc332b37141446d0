package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

const minProductionSecretLength = 32

// Validate rejects configurations the services must not start with. Production
// is fail-closed: no signing secret, a fixed test code or a process-local OTP store
// are all fatal there.
func Validate(cfg *models.Config) error {
	var problems []string

	if cfg.OTP.Length < 4 || cfg.OTP.Length > 10 {
		problems = append(problems, fmt.Sprintf("otp length %d out of range [4,10]", cfg.OTP.Length))
	}
	if cfg.OTP.TTL <= 0 {
		problems = append(problems, "otp ttl must be positive")
	}
	if cfg.OTP.MaxAttempts < 1 {
		problems = append(problems, "otp max attempts must be at least 1")
	}
	if cfg.OTP.Cooldown < 0 {
		problems = append(problems, "otp cooldown must not be negative")
	}
	if cfg.OTP.Store != "redis" && cfg.OTP.Store != "memory" {
		problems = append(problems, fmt.Sprintf("unknown otp store %q", cfg.OTP.Store))
	}
	if cfg.Lock.MaxAttempts < 1 || cfg.Lock.Duration <= 0 {
		problems = append(problems, "lock policy needs positive attempts and duration")
	}
	if cfg.Notification.Workers < 1 {
		problems = append(problems, "notification workers must be at least 1")
	}
	if _, err := time.LoadLocation(cfg.Notification.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("unknown timezone %q", cfg.Notification.Timezone))
	}
	for _, ch := range append(append([]models.Channel{}, cfg.OTP.Channels...), cfg.Notification.DefaultChannels...) {
		if !ch.Valid() {
			problems = append(problems, fmt.Sprintf("unknown channel %q", ch))
		}
	}

	if cfg.App.IsProduction() {
		if len(cfg.JWT.Secret) < minProductionSecretLength {
			problems = append(problems, fmt.Sprintf("jwt secret must be at least %d characters in production", minProductionSecretLength))
		}
		if cfg.OTP.UseTestCode {
			problems = append(problems, "fixed test code is not allowed in production")
		}
		if cfg.OTP.AllowUndelivered {
			problems = append(problems, "undelivered codes are not allowed in production")
		}
		if cfg.OTP.Store != "redis" {
			problems = append(problems, "production requires the shared redis otp store")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
