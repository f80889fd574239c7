package models

import "time"

// PaymentStatus enumerates payment attempt states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ProviderRazorpay is the only payment provider currently wired.
const ProviderRazorpay = "razorpay"

// Payment represents one payment attempt for a booking. At most one
// non-failed payment exists per booking. PlatformFee + InterviewerAmount
// always equals Amount after rounding.
type Payment struct {
	ID            string  `bson:"id" json:"id"`
	BookingID     string  `bson:"bookingId" json:"bookingId"`
	CandidateID   string  `bson:"candidateId" json:"candidateId"`
	InterviewerID string  `bson:"interviewerId" json:"interviewerId"`
	Amount        float64 `bson:"amount" json:"amount"`
	Currency      string  `bson:"currency" json:"currency"`
	Provider      string  `bson:"provider" json:"provider"`

	// Provider-side identifiers. OrderID is written best-effort after the
	// reservation commits; a pending payment without an order id is a
	// recoverable state, picked up by reconciliation.
	OrderID           string `bson:"orderId,omitempty" json:"orderId,omitempty"`
	ProviderPaymentID string `bson:"providerPaymentId,omitempty" json:"providerPaymentId,omitempty"`
	Signature         string `bson:"signature,omitempty" json:"-"`

	PlatformFee       float64       `bson:"platformFee" json:"platformFee"`
	InterviewerAmount float64       `bson:"interviewerAmount" json:"interviewerAmount"`
	Status            PaymentStatus `bson:"status" json:"status"`
	RefundID          string        `bson:"refundId,omitempty" json:"refundId,omitempty"`
	TransferID        string        `bson:"transferId,omitempty" json:"transferId,omitempty"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
}
