package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	ChangeExchange = "voting_events"

	PaymentExpirationExchange   = "payment_expiration_exchange"
	PaymentExpirationQueue      = "payment_expiration_queue"
	PaymentExpirationRoutingKey = "payment_expiration"
)

// ChangeRoutingKey returns the routing key of a change event, e.g. "nominees.update".
func ChangeRoutingKey(collection string, action string) string {
	return collection + "." + action
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	// Realtime change events
	err := channel.ExchangeDeclare(
		ChangeExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-delete
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return err
	}

	// Delayed exchange for payment attempt expiry
	err = channel.ExchangeDeclare(
		PaymentExpirationExchange,
		"x-delayed-message",
		true,
		false,
		false,
		false,
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		PaymentExpirationQueue, // name
		true,                   // durable
		false,                  // auto-delete
		false,                  // exclusive
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		PaymentExpirationQueue,
		PaymentExpirationRoutingKey,
		PaymentExpirationExchange,
		false,
		nil,
	)
}
