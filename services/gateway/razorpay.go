package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	razorpayUtils "github.com/razorpay/razorpay-go/utils"
	"go.uber.org/zap"
)

// RazorpayGateway implements PaymentGateway over the Razorpay Orders API.
type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
	secret string
	logger *zap.Logger
}

func NewRazorpayGateway(keyID, secret string, logger *zap.Logger) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, secret),
		keyID:  keyID,
		secret: secret,
		logger: logger,
	}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder creates a Razorpay order with auto-capture enabled. The receipt
// is the booking id, which makes a retried call traceable to one booking on
// the provider side.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create failed: %w", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}
	amount, err := toInt64(body["amount"])
	if err != nil {
		return nil, fmt.Errorf("razorpay order response has invalid amount: %w", err)
	}
	respCurrency, _ := body["currency"].(string)

	// The provider must echo the requested amount; a mismatch means the
	// order cannot be trusted to settle what was reserved.
	if amount != amountMinor {
		g.logger.Error("razorpay order amount mismatch",
			zap.String("receipt", receipt),
			zap.Int64("requested", amountMinor),
			zap.Int64("returned", amount),
		)
		return nil, fmt.Errorf("razorpay order amount mismatch: requested %d, got %d", amountMinor, amount)
	}

	return &Order{ID: orderID, Amount: amount, Currency: respCurrency}, nil
}

func (g *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return razorpayUtils.VerifyPaymentSignature(params, signature, g.secret)
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case json.Number:
		return n.Int64()
	default:
		return 0, fmt.Errorf("unexpected amount type %T", v)
	}
}
