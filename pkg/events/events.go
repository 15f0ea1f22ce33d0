// Package events publishes domain events such as booking confirmations and
// contact submissions. Nothing in the site consumes them; they are the hook
// for whatever clinic system picks bookings up.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"cemdon/pkg/config"
	"cemdon/pkg/kafka"
	kafka_config "cemdon/pkg/kafka/config"
	kafka_middleware "cemdon/pkg/kafka/middleware"
	"cemdon/pkg/logger"
	"cemdon/pkg/metrics"
)

const (
	TypeBookingConfirmed = "booking.confirmed"
	TypeContactReceived  = "contact.received"

	schemaVersion = "1"
)

type Event struct {
	Type          string
	Key           string
	CorrelationID string
	Payload       any
	OccurredAt    time.Time
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// New builds the publisher selected by cfg.EventSink for one topic.
func New(cfg *config.Config, topic, source string, m *metrics.EventMetrics) (Publisher, error) {
	if cfg.EventSink != config.SinkKafka {
		return NewLogPublisher(cfg.Log, topic), nil
	}

	kcfg, err := kafka_config.Load()
	if err != nil {
		return nil, err
	}
	kcfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kcfg, topic, cfg.Log)
	if err != nil {
		return nil, err
	}
	if kcfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware(m))
	}
	return NewKafkaPublisher(producer, source), nil
}

// KafkaPublisher writes events as JSON messages keyed by Event.Key.
type KafkaPublisher struct {
	producer *kafka.Producer
	source   string
}

func NewKafkaPublisher(producer *kafka.Producer, source string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, source: source}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := kafka.NewMessage().
		WithKey(event.Key).
		WithValue(event.Payload).
		WithEventType(event.Type).
		WithCorrelationID(event.CorrelationID).
		WithSchemaVersion(schemaVersion).
		WithSource(p.source).
		WithTimestamp(event.OccurredAt).
		Build()
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher writes events to the service log. It is the default sink
// when no broker is configured.
type LogPublisher struct {
	log   *logger.Logger
	topic string
}

func NewLogPublisher(log *logger.Logger, topic string) *LogPublisher {
	return &LogPublisher{log: log, topic: topic}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}
	p.log.Info("Event published",
		"topic", p.topic,
		"event_type", event.Type,
		"key", event.Key,
		"correlation_id", event.CorrelationID,
		"payload", json.RawMessage(payload),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

// MemoryPublisher keeps events in memory. Handy in tests and local runs.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// FailWith makes every later Publish return err.
func (p *MemoryPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *MemoryPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}

func (p *MemoryPublisher) Close() error {
	return nil
}
