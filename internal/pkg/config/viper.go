package config

import (
	"log"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitViperConfig loads configuration through viper: an optional config.yaml under
// configDir, overridden by environment variables (otp.ttl is read from OTP_TTL).
func InitViperConfig(configDir string) *models.Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
	}

	return loadConfig(viperSource{v: v})
}

type viperSource struct {
	v *viper.Viper
}

func (s viperSource) String(key, defaultValue string) string {
	if !s.v.IsSet(key) {
		return defaultValue
	}
	return s.v.GetString(key)
}

func (s viperSource) Int(key string, defaultValue int) int {
	if !s.v.IsSet(key) {
		return defaultValue
	}
	return s.v.GetInt(key)
}

func (s viperSource) Bool(key string, defaultValue bool) bool {
	if !s.v.IsSet(key) {
		return defaultValue
	}
	return s.v.GetBool(key)
}

func (s viperSource) Duration(key string, defaultValue time.Duration) time.Duration {
	if !s.v.IsSet(key) {
		return defaultValue
	}
	value, err := parseDuration(s.v.GetString(key))
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
