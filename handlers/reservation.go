package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	slotRepo "mockview/database/repository/slot"
	"mockview/middleware"
	"mockview/models"
	"mockview/services/reservation"
	"mockview/utils"
)

// ReservationHandler exposes the reservation coordinator over HTTP.
type ReservationHandler struct {
	coordinator reservation.Coordinator
	slots       slotRepo.Repository
	logger      *zap.Logger
}

func NewReservationHandler(coordinator reservation.Coordinator, slots slotRepo.Repository, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{coordinator: coordinator, slots: slots, logger: logger}
}

// BookSlot handles POST /api/v1/slots/:slotId/book. The acting candidate
// comes from the auth middleware and is passed explicitly to the coordinator.
func (h *ReservationHandler) BookSlot(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	slotID := c.Param("slotId")

	result, err := h.coordinator.ReserveSlot(c.Request.Context(), userID, slotID)
	if err != nil {
		code := reservation.CodeOf(err)
		// The reservation committed; hand the ids back so the client can
		// resume the payment step instead of booking again.
		if code == reservation.CodeGatewayOrderFailed && result != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"code":      code,
				"message":   "Booking reserved but payment setup failed - retry payment",
				"bookingId": result.BookingID,
				"paymentId": result.PaymentID,
			})
			return
		}
		utils.JSONError(c, reservationStatus(code), code, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking initiated - complete payment to confirm slot",
		"bookingId": result.BookingID,
		"paymentId": result.PaymentID,
		"razorpay":  result.Order,
	})
}

// VerifyPayment handles POST /api/v1/payments/verify, the checkout callback.
func (h *ReservationHandler) VerifyPayment(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	var conf models.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "INVALID_INPUT", "invalid confirmation payload: "+err.Error())
		return
	}

	if err := h.coordinator.ConfirmPayment(c.Request.Context(), userID, conf); err != nil {
		code := reservation.CodeOf(err)
		utils.JSONError(c, reservationStatus(code), code, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment captured - booking confirmed"})
}

// GetSlot handles GET /api/v1/slots/:slotId.
func (h *ReservationHandler) GetSlot(c *gin.Context) {
	slot, err := h.slots.GetByID(c.Request.Context(), c.Param("slotId"))
	if errors.Is(err, slotRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, reservation.CodeNotFound, "slot not found")
		return
	}
	if err != nil {
		h.logger.Error("slot fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL", "could not fetch slot")
		return
	}
	c.JSON(http.StatusOK, slot)
}

// reservationStatus maps coordinator error codes to HTTP statuses. Every
// code maps distinctly so clients can tell pre-commit failures (safe to
// retry the whole booking) from post-commit ones (resume payment instead).
func reservationStatus(code string) int {
	switch code {
	case reservation.CodeUnauthorized:
		return http.StatusUnauthorized
	case reservation.CodeProfileIncomplete:
		return http.StatusUnprocessableEntity
	case reservation.CodeNotFound:
		return http.StatusNotFound
	case reservation.CodeSlotUnavailable:
		return http.StatusConflict
	case reservation.CodeInvalidSignature:
		return http.StatusBadRequest
	case reservation.CodeGatewayOrderFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
