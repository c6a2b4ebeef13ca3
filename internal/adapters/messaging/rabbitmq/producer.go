// Package rabbitmq publishes ledger events to a durable topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/ports/events"
	"github.com/rabbitmq/amqp091-go"
)

// channel is the part of *amqp091.Channel the producer uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// EventProducer holds the RabbitMQ connection and channel for publishing ledger events.
type EventProducer struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  channel
	exchange string
}

var _ events.LedgerEventPublisher = (*EventProducer)(nil)

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// NewEventProducer dials RabbitMQ and declares the exchange events are published to.
func NewEventProducer(amqpURL, exchange string) (*EventProducer, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	// Bounded dial timeout so startup does not hang indefinitely.
	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	p, err := newEventProducer(ch, exchange)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newEventProducer(ch channel, exchange string) (*EventProducer, error) {
	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &EventProducer{channel: ch, exchange: exchange}, nil
}

// Publish sends each event as a persistent JSON message routed by its event type.
// It stops at the first failure.
func (p *EventProducer) Publish(ctx context.Context, evts ...events.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, evt := range evts {
		body, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventID, err)
		}
		err = p.channel.PublishWithContext(ctx,
			p.exchange,       // exchange
			evt.RoutingKey(), // routing key
			false,            // mandatory
			false,            // immediate
			amqp091.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp091.Persistent,
				MessageId:    evt.EventID,
				Timestamp:    evt.Timestamp,
				Type:         evt.EventType,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to publish event %s to %s: %w", evt.EventID, p.exchange, err)
		}
	}
	return nil
}

// Close gracefully closes the channel and connection to RabbitMQ.
func (p *EventProducer) Close() error {
	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
