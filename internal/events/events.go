// Package events publishes reservation lifecycle events. Publishing is
// best-effort: a failed publish never undoes a committed booking.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event types
const (
	ReservationBooked    = "reservation.booked"
	ReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is the JSON payload sent for every booking and cancellation.
type ReservationEvent struct {
	Type          string  `json:"type"`
	ReservationID uint    `json:"reservation_id"`
	CustomerID    uint    `json:"customer_id"`
	RoomID        uint    `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalPrice    float64 `json:"total_price"`
	OccurredAt    string  `json:"occurred_at"`
}

// Publisher delivers reservation events.
type Publisher interface {
	Publish(ctx context.Context, ev ReservationEvent) error
	Close() error
}

// Nop discards events. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, ReservationEvent) error { return nil }
func (Nop) Close() error                                    { return nil }

// AMQP publishes events to a durable RabbitMQ queue.
type AMQP struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// DialAMQP connects to the broker and declares the queue (idempotent).
func DialAMQP(url, queue string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	return &AMQP{conn: conn, ch: ch, queue: queue}, nil
}

// Publish sends ev as a persistent JSON message on the default exchange.
func (a *AMQP) Publish(ctx context.Context, ev ReservationEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ch.PublishWithContext(ctx,
		"",      // default exchange
		a.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent, // store on disk
			Timestamp:    time.Now().UTC(),
			Type:         ev.Type,
			Body:         body,
		})
}

// Close releases the channel and connection.
func (a *AMQP) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_ = a.ch.Close()
	return a.conn.Close()
}
