package queue

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// brokerURL resolves the broker address from RABBITMQ_URL or AMQP_URL.
// An empty result means event publishing is disabled.
func brokerURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

// PublishBookingCreated publishes a BookingCreatedEvent to the
// booking.created queue. Publishing is best effort: errors are logged and
// returned so the caller can ignore them without failing the booking
// itself. When no broker is configured the event is silently dropped.
// Messages are persistent so they survive broker restarts.
func PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	url := brokerURL()
	if url == "" {
		return nil
	}
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("queue: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("queue: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Declare is idempotent; durable so messages outlive the broker.
	if _, err := ch.QueueDeclare(BookingCreatedQueue, true, false, false, false, nil); err != nil {
		log.Printf("queue: declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("queue: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", BookingCreatedQueue, false, false, pub); err != nil {
		log.Printf("queue: publish failed: %v", err)
		return err
	}
	return nil
}
