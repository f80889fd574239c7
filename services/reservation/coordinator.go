package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "mockview/database/repository/booking"
	candidateRepo "mockview/database/repository/candidate"
	interviewerRepo "mockview/database/repository/interviewer"
	paymentRepo "mockview/database/repository/payment"
	slotRepo "mockview/database/repository/slot"
	txnRepo "mockview/database/repository/txn"
	userRepo "mockview/database/repository/user"
	"mockview/models"
	"mockview/services/gateway"
	"mockview/services/notification"
)

// DefaultCoordinator is the production reservation coordinator.
type DefaultCoordinator struct {
	UoW          txnRepo.UnitOfWork
	Slots        slotRepo.Repository
	Bookings     bookingRepo.Repository
	Payments     paymentRepo.Repository
	Candidates   candidateRepo.Repository
	Interviewers interviewerRepo.Repository
	Users        userRepo.Repository
	Gateway      gateway.PaymentGateway
	Expiry       ExpiryScheduler
	Notifier     notification.Service
	Logger       *zap.Logger
}

// ReserveSlot implements the reservation sequence: validate, atomically
// reserve (slot CAS + booking + payment in one transaction), then create the
// gateway order post-commit.
func (c *DefaultCoordinator) ReserveSlot(ctx context.Context, candidateUserID, slotID string) (*models.ReservationResult, error) {
	if candidateUserID == "" {
		return nil, newError(CodeUnauthorized, "not authenticated as a candidate")
	}
	if slotID == "" {
		return nil, newError(CodeNotFound, "slot id is required")
	}

	// Validation happens before the transaction opens; failures here leave
	// no trace in any store.
	candidate, err := c.Candidates.FindByUserID(ctx, candidateUserID)
	if errors.Is(err, candidateRepo.ErrNotFound) {
		return nil, newError(CodeProfileIncomplete, "complete your candidate profile before booking")
	}
	if err != nil {
		return nil, newError(CodeReservationFailed, "candidate lookup failed: %v", err)
	}
	if !candidate.ProfileComplete() {
		return nil, newError(CodeProfileIncomplete, "complete your candidate profile before booking")
	}

	slot, err := c.Slots.GetByID(ctx, slotID)
	if errors.Is(err, slotRepo.ErrNotFound) {
		return nil, newError(CodeNotFound, "slot %s not found", slotID)
	}
	if err != nil {
		return nil, newError(CodeReservationFailed, "slot lookup failed: %v", err)
	}
	if slot.Status != models.SlotAvailable {
		return nil, newError(CodeSlotUnavailable, "slot %s is not available for booking", slotID)
	}

	currency := slot.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	platformFee, interviewerAmount := splitFee(slot.Price)

	bookingID := uuid.New().String()
	paymentID := uuid.New().String()
	now := time.Now()

	booking := &models.Booking{
		ID:                 bookingID,
		SlotID:             slot.ID,
		InterviewerID:      slot.InterviewerID,
		CandidateID:        candidate.ID,
		BookingDate:        now,
		ScheduledStartTime: slot.StartTime,
		Status:             models.BookingPending,
		Price:              slot.Price,
		Currency:           currency,
	}
	payment := &models.Payment{
		ID:                paymentID,
		BookingID:         bookingID,
		CandidateID:       candidate.ID,
		InterviewerID:     slot.InterviewerID,
		Amount:            slot.Price,
		Currency:          currency,
		Provider:          models.ProviderRazorpay,
		PlatformFee:       platformFee,
		InterviewerAmount: interviewerAmount,
		Status:            models.PaymentPending,
	}

	// Steps inside the unit of work are all-or-nothing. The slot reserve is
	// the compare-and-swap where racing reservations serialize: it re-checks
	// status and version inside the transaction, so of N concurrent attempts
	// exactly one commits and the rest surface SLOT_UNAVAILABLE.
	txErr := c.UoW.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := c.Bookings.Create(txCtx, booking); err != nil {
			return err
		}
		if err := c.Payments.Create(txCtx, payment); err != nil {
			return err
		}
		if err := c.Slots.Reserve(txCtx, slot.ID, bookingID, slot.Version); err != nil {
			return err
		}
		return c.Bookings.SetPayment(txCtx, bookingID, paymentID)
	})
	if txErr != nil {
		if errors.Is(txErr, slotRepo.ErrNotReservable) {
			return nil, newError(CodeSlotUnavailable, "slot %s was reserved by another candidate", slotID)
		}
		return nil, newError(CodeReservationFailed, "reservation did not commit: %v", txErr)
	}

	c.Logger.Info("slot reserved",
		zap.String("slotId", slot.ID),
		zap.String("bookingId", bookingID),
		zap.String("paymentId", paymentID),
	)

	result := &models.ReservationResult{BookingID: bookingID, PaymentID: paymentID}

	// The reservation holds the slot for a bounded window whether or not the
	// gateway call below succeeds.
	if c.Expiry != nil {
		if err := c.Expiry.ScheduleRelease(ctx, bookingID); err != nil {
			c.Logger.Error("failed to schedule reservation expiry",
				zap.String("bookingId", bookingID), zap.Error(err))
		}
	}

	// Post-commit, best-effort: the gateway order. A failure here never
	// touches the committed reservation; the caller gets the ids back and
	// can retry order creation against the existing booking.
	amountMinor := minorUnits(slot.Price)
	order, err := c.Gateway.CreateOrder(ctx, amountMinor, currency, bookingID)
	if err != nil {
		c.Logger.Error("gateway order creation failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		return result, newError(CodeGatewayOrderFailed, "payment order could not be created, retry payment setup")
	}
	if order.Amount != amountMinor {
		c.Logger.Error("gateway order amount mismatch",
			zap.String("bookingId", bookingID),
			zap.Int64("requested", amountMinor),
			zap.Int64("returned", order.Amount),
		)
		return result, newError(CodeGatewayOrderFailed, "payment order amount mismatch, retry payment setup")
	}

	// A payment row without an order id is recoverable: reconciliation finds
	// it via the pending status, so this write stays best-effort.
	if err := c.Payments.SetProviderOrder(ctx, paymentID, order.ID); err != nil {
		c.Logger.Error("failed to persist gateway order id",
			zap.String("paymentId", paymentID),
			zap.String("orderId", order.ID),
			zap.Error(err),
		)
	}

	result.Order = &models.GatewayOrder{
		KeyID:    c.Gateway.KeyID(),
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}
	return result, nil
}
