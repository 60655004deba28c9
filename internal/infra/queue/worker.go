package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

const ConsumerTag = "inquiry-notifier"

// Consumer is satisfied by *amqp.Channel.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Worker drains the notification queue and sends each message through the
// wrapped Notifier (normally the SMTP sender).
type Worker struct {
	Channel  Consumer
	Notifier usecase.Notifier
	OnError  func(service string)
}

func NewWorker(ch Consumer, notifier usecase.Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

// Start consumes until ctx is cancelled or the delivery channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(queueName, ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	log.Printf("[WORKER] waiting on queue %q", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[WORKER] stopping")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var n usecase.Notification
	if err := json.Unmarshal(d.Body, &n); err != nil {
		log.Printf("[WORKER] malformed message: %v", err)
		w.failed()
		_ = d.Nack(false, false)
		return
	}

	// No requeue: failed notifications are dead-lettered for manual follow-up.
	if err := w.Notifier.Notify(ctx, n); err != nil {
		log.Printf("[WORKER] notification for inquiry %s failed: %v", n.Fields["id"], err)
		w.failed()
		_ = d.Nack(false, false)
		return
	}

	log.Printf("[WORKER] notification for inquiry %s sent", n.Fields["id"])
	_ = d.Ack(false)
}

func (w *Worker) failed() {
	if w.OnError != nil {
		w.OnError("queue")
	}
}
