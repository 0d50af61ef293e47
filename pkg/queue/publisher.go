// Package queue publishes lifecycle notifications to RabbitMQ. Messages are
// informational, a failed publish never fails the request that triggered it.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connect dials RabbitMQ and declares the topic exchange notifications are
// published to. The caller owns both returned handles and closes them on
// shutdown.
func Connect(url string, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, nil, fmt.Errorf("failed to open AMQP channel: %v", err)
	}

	err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		_ = channel.Close()
		_ = connection.Close()
		return nil, nil, fmt.Errorf("failed to declare exchange %q: %v", exchange, err)
	}

	return connection, channel, nil
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewPublisher(logger *slog.Logger, channel Channel, exchange string) *publisher {
	return &publisher{logger, channel, exchange}
}

type publisher struct {
	logger   *slog.Logger
	channel  Channel
	exchange string
}

type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

func (p publisher) Publish(ctx context.Context, routingKey string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message for routing key %q: %v", routingKey, err)
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message with routing key %q: %v", routingKey, err)
	}

	p.logger.DebugContext(ctx, "Published message", "routingKey", routingKey)
	return nil
}
