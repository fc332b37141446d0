package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// SecurityLogger is the dedicated security event stream. It is kept apart from
// the operational logger so audit records can be shipped and retained on their own.
type SecurityLogger struct {
	*logrus.Logger
	file *os.File
}

// SecurityConfig holds security stream configuration
type SecurityConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewSecurityLogger creates the JSON security stream writing to stdout and, when set, a file
func NewSecurityLogger(config SecurityConfig) (*SecurityLogger, error) {
	return newSecurityLogger(config, os.Stdout)
}

func newSecurityLogger(config SecurityConfig, out io.Writer) (*SecurityLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	securityLogger := &SecurityLogger{Logger: logger}
	logger.SetOutput(out)

	if config.FilePath != "" {
		file, err := openLogFile(config.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to setup security log file: %w", err)
		}
		securityLogger.file = file
		logger.SetOutput(io.MultiWriter(out, file))
	}

	if config.Service != "" {
		logger.AddHook(&serviceHook{service: config.Service})
	}

	return securityLogger, nil
}

// NewSecurityLoggerWithWriter builds a security stream over an arbitrary writer
func NewSecurityLoggerWithWriter(out io.Writer) *SecurityLogger {
	securityLogger, _ := newSecurityLogger(SecurityConfig{Level: "info"}, out)
	return securityLogger
}

// Close closes the security log file if one was opened
func (sl *SecurityLogger) Close() error {
	if sl.file != nil {
		return sl.file.Close()
	}
	return nil
}

type serviceHook struct {
	service string
}

func (h *serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.service
	entry.Data["stream"] = "security"
	return nil
}
