// Package kafka publishes ledger events to a Kafka topic, keyed by account so
// that one account's events stay ordered within a partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes ledger events with a synchronous kafka.Writer.
type Publisher struct {
	writer messageWriter
}

var _ events.LedgerEventPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher for topic on brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers cannot be empty")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Debug(fmt.Sprintf(msg, args...))
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error(fmt.Sprintf(msg, args...))
		}),
	}
	logger.Info("Kafka writer initialized", slog.Any("brokers", brokers), slog.String("topic", topic))
	return &Publisher{writer: writer}, nil
}

// Publish writes all events in one batch.
func (p *Publisher) Publish(ctx context.Context, evts ...events.LedgerEvent) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		data, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(evt.AccountID, 10)),
			Value: data,
			Time:  evt.Timestamp,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(evt.EventType)},
				{Key: "event-id", Value: []byte(evt.EventID)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to publish %d ledger events to kafka: %w", len(msgs), err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
