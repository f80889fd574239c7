package reservation

import (
	"errors"
	"fmt"
)

// Error codes returned by the reservation coordinator. Each maps to a
// distinct HTTP status in the handler layer.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeProfileIncomplete  = "PROFILE_INCOMPLETE"
	CodeNotFound           = "NOT_FOUND"
	CodeSlotUnavailable    = "SLOT_UNAVAILABLE"
	CodeReservationFailed  = "RESERVATION_FAILED"
	CodeGatewayOrderFailed = "GATEWAY_ORDER_FAILED"
	CodeInvalidSignature   = "INVALID_SIGNATURE"
)

// Error is a typed coordinator error carrying a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the reservation error code, or empty string for foreign
// errors.
func CodeOf(err error) string {
	var resErr *Error
	if errors.As(err, &resErr) {
		return resErr.Code
	}
	return ""
}
