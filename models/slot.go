package models

import "time"

// SlotStatus enumerates the lifecycle of an interview slot. Transitions move
// forward along available -> pending_payment -> booked -> completed, with
// cancelled as the fallback path. A slot is never deleted once booked.
type SlotStatus string

const (
	SlotAvailable      SlotStatus = "available"
	SlotPendingPayment SlotStatus = "pending_payment"
	SlotBooked         SlotStatus = "booked"
	SlotCompleted      SlotStatus = "completed"
	SlotCancelled      SlotStatus = "cancelled"
)

// Slot represents a bookable interview time window offered by an interviewer.
type Slot struct {
	ID            string     `bson:"id" json:"id"`
	InterviewerID string     `bson:"interviewerId" json:"interviewerId"`
	ScheduledDate time.Time  `bson:"scheduledDate" json:"scheduledDate"`
	StartTime     string     `bson:"startTime" json:"startTime"` // e.g. "14:30"
	Duration      int        `bson:"duration" json:"duration"`   // minutes
	Price         float64    `bson:"price" json:"price"`
	Currency      string     `bson:"currency" json:"currency"`
	Status        SlotStatus `bson:"status" json:"status"`

	// CurrentBookingID back-references the single active booking while the
	// slot is pending_payment or booked.
	CurrentBookingID string `bson:"currentBookingId,omitempty" json:"currentBookingId,omitempty"`

	// Version is the optimistic-concurrency token checked by the reservation
	// compare-and-swap. Incremented on every status transition.
	Version int `bson:"version" json:"version"`

	MeetLink  string    `bson:"meetLink,omitempty" json:"meetLink,omitempty"`
	Feedback  string    `bson:"feedback,omitempty" json:"feedback,omitempty"` // interviewer -> candidate
	Rating    int       `bson:"rating,omitempty" json:"rating,omitempty"`     // candidate -> interviewer
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
