package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/muhammadheryan/e-voting/model"
)

// EventPublisher publishes realtime change events and payment expiry messages.
type EventPublisher interface {
	PublishChange(ctx context.Context, ev model.ChangeEvent) error
	PublishPaymentExpiration(ctx context.Context, msg PaymentExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

type PaymentExpirationMessage struct {
	Reference string    `json:"reference"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishChange(ctx context.Context, ev model.ChangeEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		ChangeExchange,
		ChangeRoutingKey(ev.Collection, string(ev.Action)),
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
}

func (p *Publisher) PublishPaymentExpiration(ctx context.Context, msg PaymentExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	delayMs := time.Until(msg.ExpiresAt).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		PaymentExpirationExchange,
		PaymentExpirationRoutingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Headers: amqp091.Table{
				"x-delay": delayMs,
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
