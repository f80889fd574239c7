package bookingRepo

import (
	"context"
	"errors"

	"mockview/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// ErrInvalidTransition is returned when a guarded status transition matched
// no document.
var ErrInvalidTransition = errors.New("booking is not in the expected state")

// Repository defines data access for bookings. All methods honour a
// transactional context produced by the unit of work.
type Repository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	SetPayment(ctx context.Context, bookingID, paymentID string) error

	// TransitionStatus moves a booking from one status to another, guarded
	// on the current status. Returns ErrInvalidTransition when the booking
	// is no longer in the from state.
	TransitionStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) error

	EnsureIndexes() error
}
