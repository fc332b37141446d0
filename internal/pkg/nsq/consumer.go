package nsq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// MessageHandler processes one message body. Returning an error requeues the
// message unless the error is wrapped with Drop.
type MessageHandler func(ctx context.Context, body []byte) error

// ConsumerConfig tunes a consumer
type ConsumerConfig struct {
	Topic          string
	Channel        string
	MaxInFlight    int
	MaxAttempts    uint16
	HandlerTimeout time.Duration
}

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	config   ConsumerConfig
	handler  MessageHandler
	logger   *logger.ZapLogger
}

type dropError struct{ err error }

func (d *dropError) Error() string { return d.err.Error() }
func (d *dropError) Unwrap() error { return d.err }

// Drop marks a message as unprocessable: it is finished without a requeue
func Drop(err error) error {
	return &dropError{err: err}
}

// IsDropped reports whether err was marked with Drop
func IsDropped(err error) bool {
	var drop *dropError
	return errors.As(err, &drop)
}

// NewConsumer creates a consumer for a topic/channel. Call Connect to start receiving.
func NewConsumer(cfg ConsumerConfig, handler MessageHandler, zapLogger *logger.ZapLogger) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxInFlight > 0 {
		config.MaxInFlight = cfg.MaxInFlight
	}
	if cfg.MaxAttempts > 0 {
		config.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.HandlerTimeout <= 0 {
		cfg.HandlerTimeout = time.Minute
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(nsqLogAdapter{zapLogger}, nsq.LogLevelWarning)

	c := &Consumer{consumer: consumer, config: cfg, handler: handler, logger: zapLogger}
	consumer.AddHandler(nsq.HandlerFunc(c.handle))
	return c, nil
}

func (c *Consumer) handle(message *nsq.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.HandlerTimeout)
	defer cancel()

	err := c.handler(ctx, message.Body)
	if err == nil {
		return nil
	}

	if IsDropped(err) {
		c.logger.Error("Dropping unprocessable message",
			logger.String("topic", c.config.Topic),
			logger.Err(err))
		message.Finish()
		return nil
	}

	c.logger.Warn("Message processing failed, requeueing",
		logger.String("topic", c.config.Topic),
		logger.Int("attempts", int(message.Attempts)),
		logger.Err(err))
	return err
}

// Connect starts consuming from lookupd when addresses are given, else from nsqd
func (c *Consumer) Connect(nsqdAddress string, lookupdAddresses []string) error {
	if len(lookupdAddresses) > 0 {
		if err := c.consumer.ConnectToNSQLookupds(lookupdAddresses); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
		return nil
	}
	if err := c.consumer.ConnectToNSQD(nsqdAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message; malformed bodies are marked for Drop
func UnmarshalMessage(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return Drop(fmt.Errorf("failed to unmarshal message: %w", err))
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
