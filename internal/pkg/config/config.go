package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads configuration from the environment. When APP_ENV is local the
// given .env file is loaded first.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(envSource{})
}

// source reads a dotted key such as "otp.ttl"; envSource maps it to OTP_TTL
type source interface {
	String(key, defaultValue string) string
	Int(key string, defaultValue int) int
	Bool(key string, defaultValue bool) bool
	Duration(key string, defaultValue time.Duration) time.Duration
}

type envSource struct{}

func envKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (envSource) String(key, defaultValue string) string {
	return GetEnv(envKey(key), defaultValue)
}

func (envSource) Int(key string, defaultValue int) int {
	return GetEnvAsInt(envKey(key), defaultValue)
}

func (envSource) Bool(key string, defaultValue bool) bool {
	return GetEnvAsBool(envKey(key), defaultValue)
}

func (envSource) Duration(key string, defaultValue time.Duration) time.Duration {
	return GetEnvAsDuration(envKey(key), defaultValue)
}

func loadConfig(src source) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = src.String("app.name", "authnotify")
	configs.App.Environment = src.String("app.env", "local")
	configs.App.Debug = src.Bool("app.debug", false)
	configs.App.Version = src.String("app.version", "")

	// Server config
	configs.Server.Host = src.String("server.host", "")
	configs.Server.Port = src.Int("server.port", 8080)
	configs.Server.ReadTimeout = src.Int("server.read_timeout", 15)
	configs.Server.WriteTimeout = src.Int("server.write_timeout", 30)
	configs.Server.ShutdownTimeout = src.Int("server.shutdown_timeout", 30)

	// Database config
	configs.Database.Driver = src.String("db.driver", "pgx")
	configs.Database.Host = src.String("db.host", "localhost")
	configs.Database.Port = src.Int("db.port", 5432)
	configs.Database.Username = src.String("db.username", "")
	configs.Database.Password = src.String("db.password", "")
	configs.Database.Database = src.String("db.database", "")
	configs.Database.SSLMode = src.String("db.ssl_mode", "disable")
	configs.Database.MaxConns = src.Int("db.max_conns", 10)
	configs.Database.IdleConns = src.Int("db.idle_conns", 5)

	// Redis config
	configs.Redis.Host = src.String("redis.host", "localhost")
	configs.Redis.Port = src.Int("redis.port", 6379)
	configs.Redis.Password = src.String("redis.password", "")
	configs.Redis.DB = src.Int("redis.db", 0)
	configs.Redis.PoolSize = src.Int("redis.pool_size", 10)

	// NSQ config
	configs.NSQ.Address = src.String("nsq.address", "localhost:4150")
	configs.NSQ.LookupdAddress = splitList(src.String("nsq.lookupd_address", ""))
	configs.NSQ.DispatchTopic = src.String("nsq.dispatch_topic", "notification.dispatch")
	configs.NSQ.Channel = src.String("nsq.channel", "notification-service")

	// JWT config
	configs.JWT.Secret = src.String("jwt.secret", "")
	configs.JWT.MemberExpiration = src.Int("jwt.member_expiration", 30*24*60)
	configs.JWT.AdminExpiration = src.Int("jwt.admin_expiration", 12*60)
	configs.JWT.Issuer = src.String("jwt.issuer", "alshuail-auth")

	// OTP config
	configs.OTP.Length = src.Int("otp.length", 6)
	configs.OTP.TTL = src.Duration("otp.ttl", 5*time.Minute)
	configs.OTP.MaxAttempts = src.Int("otp.max_attempts", 3)
	configs.OTP.Cooldown = src.Duration("otp.cooldown", 60*time.Second)
	configs.OTP.Store = src.String("otp.store", "redis")
	configs.OTP.UseTestCode = src.Bool("otp.use_test_code", false)
	configs.OTP.TestCode = src.String("otp.test_code", "123456")
	configs.OTP.AllowUndelivered = src.Bool("otp.allow_undelivered", false)
	configs.OTP.Channels = parseChannels(src.String("otp.channels", "whatsapp,sms"))

	// Account lock config
	configs.Lock.MaxAttempts = src.Int("lock.max_attempts", 5)
	configs.Lock.Duration = src.Duration("lock.duration", 30*time.Minute)
	configs.Lock.FailureWindow = src.Duration("lock.failure_window", 24*time.Hour)

	// Delivery channels
	configs.Channels.WhatsApp.URL = src.String("whatsapp.url", "")
	configs.Channels.WhatsApp.Token = src.String("whatsapp.token", "")
	configs.Channels.WhatsApp.From = src.String("whatsapp.from", "")
	configs.Channels.SMS.URL = src.String("sms.url", "")
	configs.Channels.SMS.UserID = src.String("sms.user_id", "")
	configs.Channels.SMS.Password = src.String("sms.password", "")
	configs.Channels.SMS.SenderID = src.String("sms.sender_id", "")
	configs.Channels.SMS.APIKey = src.String("sms.api_key", "")
	configs.Channels.Push.URL = src.String("push.url", "")
	configs.Channels.Push.ServerKey = src.String("push.server_key", "")
	configs.Channels.CallTimeout = src.Duration("channel.call_timeout", 10*time.Second)
	configs.Channels.MaxRetries = src.Int("channel.max_retries", 2)

	// Notification config
	configs.Notification.Timezone = src.String("notification.timezone", "Asia/Riyadh")
	configs.Notification.Workers = src.Int("notification.workers", 4)
	configs.Notification.ChannelInterval = src.Duration("notification.channel_interval", 200*time.Millisecond)
	configs.Notification.DefaultChannels = parseChannels(src.String("notification.default_channels", "whatsapp,push,sms"))

	// Service API keys
	configs.APIKeys.AuthService = src.String("api_key.auth_service", "")
	configs.APIKeys.NotificationService = src.String("api_key.notification_service", "")
	configs.APIKeys.AdminDashboard = src.String("api_key.admin_dashboard", "")

	// Logger config
	configs.Logger.Level = src.String("log.level", "info")
	configs.Logger.FilePath = src.String("log.file_path", "")
	configs.Logger.SecurityFilePath = src.String("log.security_file_path", "")

	return configs
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseChannels(raw string) []models.Channel {
	parts := splitList(raw)
	channels := make([]models.Channel, 0, len(parts))
	for _, part := range parts {
		channels = append(channels, models.Channel(strings.ToLower(part)))
	}
	return channels
}

// GetEnv returns the variable or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("5m") or bare seconds ("300")
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := parseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func parseDuration(raw string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(raw)
}
