package reservation

import (
	"context"
	"errors"

	"go.uber.org/zap"

	bookingRepo "mockview/database/repository/booking"
	paymentRepo "mockview/database/repository/payment"
	slotRepo "mockview/database/repository/slot"
	"mockview/models"
)

// ReleaseExpired cancels a reservation whose payment never completed and
// returns the slot to available. Safe to call for any booking: anything past
// pending is left untouched.
func (c *DefaultCoordinator) ReleaseExpired(ctx context.Context, bookingID string) error {
	booking, err := c.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if booking.Status != models.BookingPending {
		return nil
	}

	payment, err := c.Payments.GetByBookingID(ctx, bookingID)
	if err != nil && !errors.Is(err, paymentRepo.ErrNotFound) {
		return err
	}
	// Only a completed payment keeps the reservation; a failed one still
	// needs the slot handed back.
	if payment != nil && payment.Status == models.PaymentCompleted {
		return nil
	}

	txErr := c.UoW.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := c.Bookings.TransitionStatus(txCtx, bookingID, models.BookingPending, models.BookingCancelled); err != nil {
			return err
		}
		if payment != nil && payment.Status == models.PaymentPending {
			if err := c.Payments.Fail(txCtx, payment.ID); err != nil {
				return err
			}
		}
		return c.Slots.Release(txCtx, booking.SlotID, bookingID)
	})
	if txErr != nil {
		// A guard miss means the capture won the race after our pre-read;
		// the reservation is no longer ours to release.
		if errors.Is(txErr, bookingRepo.ErrInvalidTransition) ||
			errors.Is(txErr, paymentRepo.ErrInvalidTransition) ||
			errors.Is(txErr, slotRepo.ErrNotReservable) {
			c.Logger.Info("skipping expiry, reservation progressed concurrently",
				zap.String("bookingId", bookingID))
			return nil
		}
		return txErr
	}

	c.Logger.Info("expired reservation released",
		zap.String("bookingId", bookingID),
		zap.String("slotId", booking.SlotID),
	)
	return nil
}
