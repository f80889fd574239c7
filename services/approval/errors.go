package approval

import (
	"errors"
	"fmt"
)

// Error codes returned by the approval workflow.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeAlreadyProcessed = "ALREADY_PROCESSED"
	CodeAlreadyVerified  = "ALREADY_VERIFIED"
	CodeRequestPending   = "REQUEST_PENDING"
	CodeApprovalFailed   = "APPROVAL_FAILED"
)

// Error is a typed workflow error carrying a stable code.
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

// CodeOf extracts the approval error code, or empty string for foreign
// errors.
func CodeOf(err error) string {
	var aprErr *Error
	if errors.As(err, &aprErr) {
		return aprErr.Code
	}
	return ""
}
