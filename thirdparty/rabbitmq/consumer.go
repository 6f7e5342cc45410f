package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	"github.com/muhammadheryan/e-voting/utils/logger"
)

// ChangeHandler receives decoded change events.
type ChangeHandler interface {
	Apply(ctx context.Context, ev model.ChangeEvent) error
}

type Consumer struct {
	conn        *amqp091.Connection
	channel     *amqp091.Channel
	changeQueue string
	apiURL      string
	apiKey      string
	httpClient  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	// Each instance keeps its own projection, so it gets its own exclusive queue.
	q, err := channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	for _, collection := range []string{constant.CollectionNominees, constant.CollectionAppConfig} {
		if err := channel.QueueBind(q.Name, collection+".*", ChangeExchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, err
		}
	}

	return &Consumer{
		conn:        conn,
		channel:     channel,
		changeQueue: q.Name,
		apiURL:      apiURL,
		apiKey:      apiKey,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Start consumes change events into handler and payment expiry messages into the
// internal expire API until ctx is done.
func (c *Consumer) Start(ctx context.Context, handler ChangeHandler) error {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	changes, err := c.channel.Consume(c.changeQueue, "", false, true, false, false, nil)
	if err != nil {
		return err
	}
	expirations, err := c.channel.Consume(
		PaymentExpirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-changes:
				if !ok {
					return
				}
				c.handleChange(ctx, handler, msg)
			case msg, ok := <-expirations:
				if !ok {
					return
				}
				c.handleExpiration(msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handleChange(ctx context.Context, handler ChangeHandler, msg amqp091.Delivery) {
	var ev model.ChangeEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		logger.Warn("[Consumer] drop malformed change event", zap.Error(err))
		_ = msg.Ack(false)
		return
	}
	if err := handler.Apply(ctx, ev); err != nil {
		logger.Error("[Consumer] apply change event", zap.String("collection", ev.Collection), zap.Error(err))
	}
	_ = msg.Ack(false)
}

func (c *Consumer) handleExpiration(msg amqp091.Delivery) {
	var expMsg PaymentExpirationMessage
	if err := json.Unmarshal(msg.Body, &expMsg); err != nil {
		logger.Warn("[Consumer] drop malformed payment expiration", zap.Error(err))
		_ = msg.Ack(false)
		return
	}

	if err := c.callExpirePaymentAPI(expMsg.Reference); err != nil {
		logger.Error("[Consumer] expire payment", zap.String("reference", expMsg.Reference), zap.Error(err))
		// Negative ack to requeue
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] payment attempt expired", zap.String("reference", expMsg.Reference))
}

func (c *Consumer) callExpirePaymentAPI(reference string) error {
	endpoint := fmt.Sprintf("%s/internal/v1/payment/%s/expire", c.apiURL, url.PathEscape(reference))

	req, err := http.NewRequest(http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "payment-expiration-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
