package approval

import (
	"context"

	"mockview/models"
)

// Service manages interviewer verification requests: a small state machine
// pending -> approved | rejected, with terminal states guarded against
// reprocessing.
type Service interface {
	// Submit files a verification request for the interviewer behind the
	// given user account. Rejected when the profile is already verified or a
	// request is already pending.
	Submit(ctx context.Context, interviewerUserID string) (*models.ApprovalRequest, error)

	// Approve marks the request approved and the linked interviewer profile
	// verified, atomically, then notifies the interviewer best-effort.
	Approve(ctx context.Context, requestID string) error

	// Reject marks the request rejected and the linked interviewer profile
	// rejected, atomically, then notifies the interviewer best-effort.
	Reject(ctx context.Context, requestID string) error
}
