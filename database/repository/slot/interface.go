package slotRepo

import (
	"context"
	"errors"

	"mockview/models"
)

// ErrNotFound is returned when no slot matches the given id.
var ErrNotFound = errors.New("slot not found")

// ErrNotReservable is returned when a guarded status transition matched no
// document: the slot moved out of the expected state since it was read.
var ErrNotReservable = errors.New("slot is not in the expected state")

// Repository defines data access for interview slots. All methods honour a
// transactional context produced by the unit of work.
type Repository interface {
	Create(ctx context.Context, slot *models.Slot) error
	GetByID(ctx context.Context, id string) (*models.Slot, error)

	// Reserve is the reservation compare-and-swap: it moves the slot from
	// available to pending_payment and records the booking back-reference,
	// but only if the slot is still available at the observed version.
	// Returns ErrNotReservable when the guard fails.
	Reserve(ctx context.Context, slotID, bookingID string, expectedVersion int) error

	// ConfirmBooked moves a pending_payment slot to booked. The guard on the
	// booking back-reference keeps a stale callback from confirming a slot
	// that was released and re-reserved.
	ConfirmBooked(ctx context.Context, slotID, bookingID string) error

	// Release returns a pending_payment slot to available and clears the
	// booking back-reference. Used by the expiry sweep and failed captures.
	Release(ctx context.Context, slotID, bookingID string) error

	EnsureIndexes() error
}
