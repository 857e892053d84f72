package model

import "time"

// Booking statuses. New bookings are always created pending; confirmation
// and any further states are owned by the backend.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

// Booking records one child's enrolment in an activity. It is created in
// pending status by the booking writer and read back by the dashboard
// filtered to confirmed, future-dated rows with the activity and child
// embedded.
//
// Fields:
//  ID         – primary key identifier.
//  FamilyID   – booking family.
//  ActivityID – booked activity.
//  ChildID    – child attending.
//  Status     – "pending", "confirmed" or another backend-defined state.
//  StartDate  – when the activity starts.
//  CreatedAt  – creation timestamp.
type Booking struct {
	ID         int64     `json:"id"`                   // bookings.id
	FamilyID   int64     `json:"family_id"`            // bookings.family_id
	ActivityID int64     `json:"activity_id"`          // bookings.activity_id
	ChildID    int64     `json:"child_id"`             // bookings.child_id
	Status     string    `json:"status"`               // bookings.status
	StartDate  time.Time `json:"start_date"`           // bookings.start_date
	Activity   *Activity `json:"activities,omitempty"` // embedded activities(*)
	Child      *Child    `json:"children,omitempty"`   // embedded children(*)
	CreatedAt  time.Time `json:"created_at"`           // bookings.created_at
}
