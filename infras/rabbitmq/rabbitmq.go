package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"hotel/config"
	"hotel/shared/constant"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const exchangeKind = "topic"

type Message struct {
	RoutingKey string
	Body       any
	Headers    map[string]string
}

// ToPublishing encodes the body as JSON and marks the message persistent.
func (m *Message) ToPublishing() (amqp.Publishing, error) {
	body, err := json.Marshal(m.Body)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal message body: %w", err)
	}

	headers := amqp.Table{}
	for key, value := range m.Headers {
		headers[key] = value
	}

	return amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Headers:      headers,
		Body:         body,
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, message Message) error
	Close() error
}

type publisherImpl struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// New dials the broker and declares the durable topic exchange events are published to.
func New(cfg *config.Config) (Publisher, error) {
	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(cfg.RabbitMQ.Exchange, exchangeKind, true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.RabbitMQ.Exchange, err)
	}

	log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("Connected to RabbitMQ")

	return &publisherImpl{
		conn:     conn,
		channel:  channel,
		exchange: cfg.RabbitMQ.Exchange,
	}, nil
}

// Publish serializes publishes on the shared channel.
func (p *publisherImpl) Publish(ctx context.Context, message Message) error {
	publishing, err := message.ToPublishing()
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, message.RoutingKey, false, false, publishing); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.exchange, err)
	}

	return nil
}

func (p *publisherImpl) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close rabbitmq channel")
	}

	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("failed to close rabbitmq connection: %w", err)
	}

	return nil
}
