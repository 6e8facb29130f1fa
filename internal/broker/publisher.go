// Package broker publishes event lifecycle messages to a RabbitMQ topic exchange.
package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const publishTimeout = 5 * time.Second

type Publisher struct {
	url      string
	exchange string
	logger   logger.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects and declares a durable topic exchange.
// An empty url yields a publisher that only logs.
func NewPublisher(url, exchange string, log logger.Logger) (*Publisher, error) {
	p := &Publisher{url: url, exchange: exchange, logger: log}
	if url == "" {
		log.Warn("broker url is empty, lifecycle messages disabled")
		return p, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureConnection(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Publisher) Enabled() bool {
	return p.url != ""
}

// ensureConnection must be called with p.mu held.
func (p *Publisher) ensureConnection() error {
	if p.conn != nil && !p.conn.IsClosed() && p.channel != nil && !p.channel.IsClosed() {
		return nil
	}

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return fmt.Errorf("dial rabbitmq: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	p.channel = ch
	return nil
}

// Publish sends msg with its kind as the routing key. Failures are logged, never returned.
func (p *Publisher) Publish(ctx context.Context, msg domain.LifecycleMessage) {
	if !p.Enabled() {
		p.logger.Debug("lifecycle message skipped (broker disabled)",
			logger.String("kind", string(msg.Kind)),
			logger.String("event_id", msg.EventID),
		)
		return
	}

	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("failed to marshal lifecycle message",
			logger.String("kind", string(msg.Kind)),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ensureConnection(); err != nil {
		p.logger.Error("failed to reconnect to broker",
			logger.String("error", err.Error()),
		)
		return
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		string(msg.Kind),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("failed to publish lifecycle message",
			logger.String("kind", string(msg.Kind)),
			logger.String("event_id", msg.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	p.logger.Debug("lifecycle message published",
		logger.String("kind", string(msg.Kind)),
		logger.String("event_id", msg.EventID),
	)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil && !p.channel.IsClosed() {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	return nil
}
