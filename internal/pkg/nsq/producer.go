package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/retry"
)

// Topics published by the voting platform
const (
	TopicVotesSettled   = "votes.settled"
	TopicAdminOTPIssued = "admin.otp.issued"
)

// Publisher publishes JSON encoded messages to a topic
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
	Stop()
}

type rawPublisher interface {
	Publish(topic string, body []byte) error
	Stop()
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer rawPublisher
	retrier  *retry.Retrier
}

// NewProducer creates a new NSQ producer and pings nsqd
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return newProducer(producer), nil
}

func newProducer(p rawPublisher) *Producer {
	return &Producer{producer: p, retrier: retry.New(retry.DefaultConfig())}
}

// Publish marshals message and sends it with retries
func (p *Producer) Publish(ctx context.Context, topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.retrier.Execute(ctx, "nsq.publish."+topic, func(context.Context) error {
		return p.producer.Publish(topic, body)
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// NopPublisher drops every message. It is used when NSQ is disabled.
type NopPublisher struct{}

// Publish logs and discards the message
func (NopPublisher) Publish(_ context.Context, topic string, _ interface{}) error {
	logger.Debug("NSQ disabled, event dropped", logger.String("topic", topic))
	return nil
}

// Stop does nothing
func (NopPublisher) Stop() {}
