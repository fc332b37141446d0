package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NSQ          NSQConfig
	JWT          JWTConfig
	OTP          OTPConfig
	Lock         LockConfig
	Channels     ChannelsConfig
	Notification NotificationConfig
	APIKeys      APIKeyConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// IsProduction reports whether the service runs with production guarantees
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress []string
	DispatchTopic  string
	Channel        string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret           string
	MemberExpiration int // in minutes
	AdminExpiration  int // in minutes
	Issuer           string
}

// OTPConfig controls one-time passcode issuance and verification
type OTPConfig struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
	Cooldown    time.Duration
	Store       string // "redis" or "memory"
	UseTestCode bool
	TestCode    string
	// AllowUndelivered keeps a successful response when every channel failed (non-production only)
	AllowUndelivered bool
	Channels         []Channel
}

// LockConfig controls account lockout after repeated login failures
type LockConfig struct {
	MaxAttempts   int
	Duration      time.Duration
	FailureWindow time.Duration
}

// ChannelsConfig holds provider credentials for every delivery channel
type ChannelsConfig struct {
	WhatsApp    WhatsAppConfig
	SMS         SMSConfig
	Push        PushConfig
	CallTimeout time.Duration
	MaxRetries  int
}

// WhatsAppConfig holds chat-gateway credentials
type WhatsAppConfig struct {
	URL   string
	Token string
	From  string
}

// Configured reports whether the chat gateway can be called
func (c WhatsAppConfig) Configured() bool {
	return c.URL != "" && c.Token != ""
}

// SMSConfig holds SMS provider credentials
type SMSConfig struct {
	URL      string
	UserID   string
	Password string
	SenderID string
	APIKey   string
}

// Configured reports whether the SMS provider can be called
func (c SMSConfig) Configured() bool {
	return c.URL != "" && c.UserID != "" && c.Password != ""
}

// PushConfig holds push provider credentials
type PushConfig struct {
	URL       string
	ServerKey string
}

// Configured reports whether the push provider can be called
func (c PushConfig) Configured() bool {
	return c.URL != "" && c.ServerKey != ""
}

// NotificationConfig tunes the notification dispatcher
type NotificationConfig struct {
	Timezone        string
	Workers         int
	ChannelInterval time.Duration
	DefaultChannels []Channel
}

// APIKeyConfig contains service-to-service API keys
type APIKeyConfig struct {
	AuthService         string
	NotificationService string
	AdminDashboard      string
}

// LoggerConfig configures the operational and security log outputs
type LoggerConfig struct {
	Level            string
	FilePath         string
	SecurityFilePath string
}
