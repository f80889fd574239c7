package paymentRepo

import (
	"context"
	"errors"

	"mockview/models"
)

// ErrNotFound is returned when no payment matches the lookup.
var ErrNotFound = errors.New("payment not found")

// ErrInvalidTransition is returned when a guarded status transition matched
// no document.
var ErrInvalidTransition = errors.New("payment is not in the expected state")

// Repository defines data access for payment records. All methods honour a
// transactional context produced by the unit of work.
type Repository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error)

	// SetProviderOrder records the gateway order id on a payment. Called
	// outside the reservation transaction, best-effort.
	SetProviderOrder(ctx context.Context, paymentID, orderID string) error

	// Complete captures a pending payment, storing the provider payment id
	// and signature. Guarded on status pending.
	Complete(ctx context.Context, paymentID, providerPaymentID, signature string) error

	// Fail marks a pending payment as failed. Guarded on status pending.
	Fail(ctx context.Context, paymentID string) error

	EnsureIndexes() error
}
