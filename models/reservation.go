package models

// GatewayOrder carries the provider-side order details a client needs to
// open the payment checkout.
type GatewayOrder struct {
	KeyID    string `json:"keyId"`
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
}

// ReservationResult is the success payload of a slot reservation. The
// booking and payment ids are always populated once the reservation commits,
// even when the gateway order could not be created.
type ReservationResult struct {
	BookingID string        `json:"bookingId"`
	PaymentID string        `json:"paymentId"`
	Order     *GatewayOrder `json:"razorpay,omitempty"`
}

// PaymentConfirmation is the checkout callback payload used to capture a
// pending payment.
type PaymentConfirmation struct {
	OrderID           string `json:"razorpayOrderId" binding:"required"`
	ProviderPaymentID string `json:"razorpayPaymentId" binding:"required"`
	Signature         string `json:"razorpaySignature" binding:"required"`
}
