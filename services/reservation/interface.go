package reservation

import (
	"context"

	"mockview/models"
)

// Coordinator orchestrates the reservation of interview slots and the
// payment lifecycle attached to them. The acting user is always passed in
// explicitly; the coordinator never reads identity from ambient state.
type Coordinator interface {
	// ReserveSlot atomically reserves an available slot for the candidate,
	// creating the linked booking and payment records, then creates a
	// provider-side payment order. On GATEWAY_ORDER_FAILED the returned
	// result still carries the committed booking and payment ids so the
	// client can resume the payment step.
	ReserveSlot(ctx context.Context, candidateUserID, slotID string) (*models.ReservationResult, error)

	// ConfirmPayment captures a pending payment from the checkout callback:
	// verifies the provider signature, then atomically completes the
	// payment, confirms the booking, books the slot and credits the
	// interviewer payout.
	ConfirmPayment(ctx context.Context, candidateUserID string, conf models.PaymentConfirmation) error

	// ReleaseExpired returns a slot whose reservation never got paid back to
	// available, cancelling the booking and failing the payment. A no-op
	// when the payment completed in the meantime.
	ReleaseExpired(ctx context.Context, bookingID string) error
}

// ExpiryScheduler schedules the delayed release of an unpaid reservation.
type ExpiryScheduler interface {
	ScheduleRelease(ctx context.Context, bookingID string) error
}
