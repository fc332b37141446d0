// Package nsq wraps go-nsq producers and consumers with JSON payloads and the
// service logger.
package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/alshuail/authnotify/internal/pkg/nsq Publisher

// Publisher publishes JSON messages to a topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
	logger   *logger.ZapLogger
}

// NewProducer creates a producer and pings nsqd
func NewProducer(address string, zapLogger *logger.ZapLogger) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(nsqLogAdapter{zapLogger}, nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer, logger: zapLogger}, nil
}

// Publish sends a JSON message to topic
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Published message",
		logger.String("topic", topic),
		logger.Int("bytes", len(body)))
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// nsqLogAdapter routes go-nsq's internal logging through zap
type nsqLogAdapter struct {
	logger *logger.ZapLogger
}

func (a nsqLogAdapter) Output(calldepth int, s string) error {
	if a.logger != nil {
		a.logger.Warn("nsq", logger.String("detail", s))
	}
	return nil
}
