// Package rabbitmq publishes booking lifecycle events to a RabbitMQ queue.
// Publication is advisory: the booking operations themselves stay synchronous
// and never depend on the broker being reachable.
package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	amqp "github.com/streadway/amqp"
)

const bookingQueue = "booking_events"

// Event types emitted by the booking engine.
const (
	EventBookingCreated  = "booking.created"
	EventBookingApproved = "booking.approved"
	EventBookingRejected = "booking.rejected"
)

// BookingEvent is the message body published on booking transitions.
type BookingEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	ItemID     int64     `json:"itemId"`
	BookerID   int64     `json:"bookerId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewBookingEvent builds an event with a fresh id and timestamp.
func NewBookingEvent(eventType string, bookingID, itemID, bookerID int64, status string) BookingEvent {
	return BookingEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		BookingID:  bookingID,
		ItemID:     itemID,
		BookerID:   bookerID,
		Status:     status,
		OccurredAt: time.Now(),
	}
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewClient connects to RabbitMQ and declares the booking events queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		bookingQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", bookingQueue, err)
	}

	return &Client{conn: conn, channel: ch}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishBookingEvent publishes one booking event, persistent, JSON-encoded.
func (c *Client) PublishBookingEvent(event BookingEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	err = c.channel.Publish(
		"",           // default exchange
		bookingQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}
	return nil
}

// ConsumeBookingEvents delivers each queued booking event to the handler,
// acking on success and requeueing on failure.
func (c *Client) ConsumeBookingEvents(handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		bookingQueue,
		"",    // consumer tag
		false, // auto-ack off, acked per message below
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := handler(msg); err != nil {
				log.Warn().Err(err).Uint64("tag", msg.DeliveryTag).Msg("failed to process booking event")
				if nackErr := msg.Nack(false, true); nackErr != nil {
					log.Warn().Err(nackErr).Uint64("tag", msg.DeliveryTag).Msg("failed to nack booking event")
				}
			} else if ackErr := msg.Ack(false); ackErr != nil {
				log.Warn().Err(ackErr).Uint64("tag", msg.DeliveryTag).Msg("failed to ack booking event")
			}
		}
	}()

	return nil
}
