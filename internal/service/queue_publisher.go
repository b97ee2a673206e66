package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/eco-rental-booking/internal/queue"
)

// AMQPPublisher publishes booking events to RabbitMQ.  It dials per
// publish so it survives broker restarts without connection management.
// Messages are persistent and queues durable.
type AMQPPublisher struct {
	url string
}

// NewAMQPPublisher builds a publisher for the broker resolved from the
// environment.
func NewAMQPPublisher() *AMQPPublisher {
	return &AMQPPublisher{url: queue.BrokerURL()}
}

// PublishBookingConfirmed sends the event to the booking.confirmed queue.
func (p *AMQPPublisher) PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error {
	return p.publish(ctx, queue.BookingConfirmedQueue, ev)
}

// PublishBookingCancelled sends the event to the booking.cancelled queue.
func (p *AMQPPublisher) PublishBookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent) error {
	return p.publish(ctx, queue.BookingCancelledQueue, ev)
}

func (p *AMQPPublisher) publish(ctx context.Context, queueName string, ev any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publisher and consumer can start in any order.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
