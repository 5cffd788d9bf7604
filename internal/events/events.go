// Package events publishes asset change notifications.
package events

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	kafka "github.com/segmentio/kafka-go"

	"iptrack/internal/domain"
)

const (
	TypeCreated = "asset.created"
	TypeUpdated = "asset.updated"
	TypeDeleted = "asset.deleted"
)

// Event describes one change to an asset. Data carries the record after the
// change and is empty for deletions.
type Event struct {
	Type    string      `json:"type"`
	Kind    domain.Kind `json:"kind"`
	AssetID string      `json:"asset_id"`
	At      time.Time   `json:"at"`
	Data    any         `json:"data,omitempty"`
}

// Publisher delivers events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// DefaultWriteTimeout bounds one publish when no timeout is configured.
const DefaultWriteTimeout = 2 * time.Second

// New returns a Kafka publisher when brokers are configured and a log-only
// publisher otherwise.
func New(brokers []string, topic string, timeout time.Duration, logger zerolog.Logger) Publisher {
	if len(brokers) == 0 {
		return NewLogPublisher(logger)
	}
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	return NewKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           timeout,
		MaxAttempts:            3,
	}, timeout, logger)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON keyed by asset id, so every change to
// one asset lands on the same partition in order. Each publish gives up
// after timeout.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
	logger  zerolog.Logger
}

func NewKafkaPublisher(w messageWriter, timeout time.Duration, logger zerolog.Logger) *KafkaPublisher {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	return &KafkaPublisher{writer: w, timeout: timeout, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("events: encode %s: %w", ev.Type, err)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.AssetID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(ev.Type)},
			{Key: "kind", Value: []byte(ev.Kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("events: publish %s: %w", ev.Type, err)
	}
	p.logger.Debug().Str("type", ev.Type).Str("kind", string(ev.Kind)).Str("asset_id", ev.AssetID).Msg("event published")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher records events in the service log only.
type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev Event) error {
	p.logger.Info().Str("type", ev.Type).Str("kind", string(ev.Kind)).Str("asset_id", ev.AssetID).Msg("asset event")
	return nil
}

func (p *LogPublisher) Close() error { return nil }
