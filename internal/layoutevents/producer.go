package layoutevents

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"venueplan/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Publisher announces persisted layout changes
type Publisher interface {
	PublishLayoutSaved(ctx context.Context, event *LayoutSaved) error
	PublishTemplateSaved(ctx context.Context, event *TemplateSaved) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka layout producer
type KafkaProducerConfig struct {
	Brokers          []string
	LayoutTopic      string
	TemplateTopic    string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		LayoutTopic:      "layout-events",
		TemplateTopic:    "layout-template-events",
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// SaramaConfig translates the producer configuration
func (c *KafkaProducerConfig) SaramaConfig() *sarama.Config {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = c.RequiredAcks
	saramaConfig.Producer.Compression = c.CompressionType
	saramaConfig.Producer.Retry.Max = c.RetryMax
	saramaConfig.Producer.Timeout = c.Timeout
	saramaConfig.Producer.Idempotent = c.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = c.MaxMessageBytes

	// Idempotent producers need a single in-flight request
	if c.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Keyed by event id so one event's layouts stay ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	return saramaConfig
}

// KafkaPublisher publishes layout events to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

// NewKafkaPublisher connects a sync producer to the configured brokers
func NewKafkaPublisher(config *KafkaProducerConfig) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(config.Brokers, config.SaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.GetDefault().Info("Kafka layout producer created", slog.Any("brokers", config.Brokers))
	return NewPublisher(producer, config), nil
}

// NewPublisher wraps an existing producer
func NewPublisher(producer sarama.SyncProducer, config *KafkaProducerConfig) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, config: config}
}

func (p *KafkaPublisher) PublishLayoutSaved(ctx context.Context, event *LayoutSaved) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.Type = EventLayoutSaved
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal layout event: %w", err)
	}

	return p.send(ctx, p.config.LayoutTopic, event.EventID, payload, []sarama.RecordHeader{
		{Key: []byte("message_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("event_id"), Value: []byte(event.EventID)},
		{Key: []byte("producer"), Value: []byte("venueplan")},
	}, event.OccurredAt)
}

func (p *KafkaPublisher) PublishTemplateSaved(ctx context.Context, event *TemplateSaved) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.Type = EventTemplateSaved
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal template event: %w", err)
	}

	return p.send(ctx, p.config.TemplateTopic, event.TemplateID, payload, []sarama.RecordHeader{
		{Key: []byte("message_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("template_id"), Value: []byte(event.TemplateID)},
		{Key: []byte("producer"), Value: []byte("venueplan")},
	}, event.OccurredAt)
}

func (p *KafkaPublisher) send(ctx context.Context, topic, key string, payload []byte, headers []sarama.RecordHeader, at time.Time) error {
	message := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(payload),
		Headers:   headers,
		Timestamp: at,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send message to Kafka topic %s: %w", topic, err)
	}

	logger.GetDefault().DebugContext(ctx, "Layout event published",
		slog.String("topic", topic),
		slog.String("key", key),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

// Close closes the Kafka producer
func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishLayoutSaved(context.Context, *LayoutSaved) error     { return nil }
func (NopPublisher) PublishTemplateSaved(context.Context, *TemplateSaved) error { return nil }
func (NopPublisher) Close() error                                               { return nil }
