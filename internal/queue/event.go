// Package queue defines the domain events exchanged over the message broker
// and the publisher/consumer that move them.
package queue

// BookingCreatedQueue is the queue bookings are announced on.
const BookingCreatedQueue = "booking.created"

// BookingCreatedEvent is published after a booking row has been written.
// It carries enough context for downstream consumers (notifications,
// analytics) to act without querying the backend. EventID is a UUID
// assigned by the publisher so consumers can deduplicate redeliveries.
type BookingCreatedEvent struct {
	EventID    string `json:"event_id"`
	BookingID  int64  `json:"booking_id"`
	FamilyID   int64  `json:"family_id"`
	ActivityID int64  `json:"activity_id"`
	ChildID    int64  `json:"child_id"`
	Status     string `json:"status"`
	StartDate  string `json:"start_date"`
	CreatedAt  string `json:"created_at"`
}
