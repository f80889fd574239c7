package models

import "time"

// BookingStatus enumerates a booking's lifecycle. Terminal states are
// cancelled, completed and no_show.
type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingCancelled   BookingStatus = "cancelled"
	BookingRescheduled BookingStatus = "rescheduled"
	BookingCompleted   BookingStatus = "completed"
	BookingNoShow      BookingStatus = "no_show"
)

// Booking represents a candidate's claim on a slot. At most one booking may
// be pending or confirmed per slot at any time.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	SlotID        string        `bson:"slotId" json:"slotId"`
	InterviewerID string        `bson:"interviewerId" json:"interviewerId"`
	CandidateID   string        `bson:"candidateId" json:"candidateId"`
	BookingDate   time.Time     `bson:"bookingDate" json:"bookingDate"`
	// ScheduledStartTime is denormalized from the slot at reservation time so
	// the booking stays self-describing even if the slot is later edited.
	ScheduledStartTime string        `bson:"scheduledStartTime" json:"scheduledStartTime"`
	Status             BookingStatus `bson:"status" json:"status"`
	Price              float64       `bson:"price" json:"price"`
	Currency           string        `bson:"currency" json:"currency"`
	PaymentID          string        `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}
