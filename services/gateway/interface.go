package gateway

import "context"

// Order is a provider-side payment order.
type Order struct {
	ID       string
	Amount   int64 // minor currency units
	Currency string
}

// PaymentGateway is the client to the external payment processor. CreateOrder
// takes the amount in minor units and a receipt string used as the
// idempotency key, so a retried call maps to the same booking.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*Order, error)

	// VerifyPaymentSignature checks the checkout callback signature binding
	// an order id to a provider payment id.
	VerifyPaymentSignature(orderID, paymentID, signature string) bool

	// KeyID returns the public key id the client needs to open checkout.
	KeyID() string
}
