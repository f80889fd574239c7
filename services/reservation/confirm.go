package reservation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	candidateRepo "mockview/database/repository/candidate"
	paymentRepo "mockview/database/repository/payment"
	"mockview/models"
)

// ConfirmPayment captures a pending payment after checkout. The provider
// signature binds the order id to the provider payment id; only a valid
// signature moves the payment, booking and slot forward, in one transaction.
func (c *DefaultCoordinator) ConfirmPayment(ctx context.Context, candidateUserID string, conf models.PaymentConfirmation) error {
	if candidateUserID == "" {
		return newError(CodeUnauthorized, "not authenticated as a candidate")
	}

	payment, err := c.Payments.GetByOrderID(ctx, conf.OrderID)
	if errors.Is(err, paymentRepo.ErrNotFound) {
		return newError(CodeNotFound, "no payment found for order %s", conf.OrderID)
	}
	if err != nil {
		return newError(CodeReservationFailed, "payment lookup failed: %v", err)
	}

	candidate, err := c.Candidates.FindByUserID(ctx, candidateUserID)
	if errors.Is(err, candidateRepo.ErrNotFound) || (err == nil && candidate.ID != payment.CandidateID) {
		return newError(CodeUnauthorized, "payment does not belong to this candidate")
	}
	if err != nil {
		return newError(CodeReservationFailed, "candidate lookup failed: %v", err)
	}

	// Repeated callback for an already captured payment is a success, not an
	// error; the gateway retries webhooks.
	if payment.Status == models.PaymentCompleted {
		return nil
	}
	if payment.Status != models.PaymentPending {
		return newError(CodeInvalidSignature, "payment %s is %s and cannot be captured", payment.ID, payment.Status)
	}

	if !c.Gateway.VerifyPaymentSignature(conf.OrderID, conf.ProviderPaymentID, conf.Signature) {
		if failErr := c.Payments.Fail(ctx, payment.ID); failErr != nil {
			c.Logger.Error("failed to mark payment failed after bad signature",
				zap.String("paymentId", payment.ID), zap.Error(failErr))
		}
		return newError(CodeInvalidSignature, "payment signature verification failed")
	}

	booking, err := c.Bookings.GetByID(ctx, payment.BookingID)
	if err != nil {
		return newError(CodeReservationFailed, "booking lookup failed: %v", err)
	}

	txErr := c.UoW.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := c.Payments.Complete(txCtx, payment.ID, conf.ProviderPaymentID, conf.Signature); err != nil {
			return err
		}
		if err := c.Bookings.TransitionStatus(txCtx, booking.ID, models.BookingPending, models.BookingConfirmed); err != nil {
			return err
		}
		if err := c.Slots.ConfirmBooked(txCtx, booking.SlotID, booking.ID); err != nil {
			return err
		}
		return c.Interviewers.CreditBalance(txCtx, payment.InterviewerID, payment.InterviewerAmount)
	})
	if txErr != nil {
		return newError(CodeReservationFailed, "payment capture did not commit: %v", txErr)
	}

	c.Logger.Info("payment captured",
		zap.String("paymentId", payment.ID),
		zap.String("bookingId", booking.ID),
		zap.String("slotId", booking.SlotID),
	)

	c.notifyConfirmation(ctx, booking, payment)
	return nil
}

// notifyConfirmation emails both parties after a successful capture.
// Best-effort: failures are logged only.
func (c *DefaultCoordinator) notifyConfirmation(ctx context.Context, booking *models.Booking, payment *models.Payment) {
	if c.Notifier == nil {
		return
	}

	send := func(userID, subject, body string) {
		user, err := c.Users.GetByID(ctx, userID)
		if err != nil {
			c.Logger.Warn("skipping confirmation email, user lookup failed",
				zap.String("userId", userID), zap.Error(err))
			return
		}
		if err := c.Notifier.Send(ctx, user.Email, subject, body); err != nil {
			c.Logger.Warn("confirmation email failed",
				zap.String("userId", userID), zap.Error(err))
		}
	}

	if candidate, err := c.Candidates.GetByID(ctx, booking.CandidateID); err == nil {
		send(candidate.UserID,
			"Your mock interview is confirmed",
			fmt.Sprintf("Your interview at %s is confirmed. Booking reference: %s.", booking.ScheduledStartTime, booking.ID))
	}
	if interviewer, err := c.Interviewers.GetByID(ctx, booking.InterviewerID); err == nil {
		send(interviewer.UserID,
			"New interview booked",
			fmt.Sprintf("A candidate booked your slot at %s. Payout of %.2f %s is pending completion.", booking.ScheduledStartTime, payment.InterviewerAmount, payment.Currency))
	}
}
