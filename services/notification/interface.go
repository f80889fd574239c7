package notification

import "context"

// Service sends email notifications. Delivery is fire-and-forget from the
// caller's point of view: failures are logged, never propagated into the
// transaction that triggered them.
type Service interface {
	Send(ctx context.Context, to, subject, body string) error
}
