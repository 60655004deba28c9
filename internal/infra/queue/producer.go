package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

// Publisher is satisfied by *amqp.Channel.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Producer hands notifications to the broker. A successful publish counts as
// a delivered notification; the Worker does the actual sending.
type Producer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) Notify(ctx context.Context, n usecase.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	return nil
}
