package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFee(t *testing.T) {
	cases := []struct {
		amount      float64
		fee         float64
		payout      float64
	}{
		{500, 100, 400},
		{333, 66.6, 266.4},
		{0, 0, 0},
		{0.01, 0, 0.01},
		{999.99, 200, 799.99},
		{1249.95, 249.99, 999.96},
	}
	for _, tc := range cases {
		fee, payout := splitFee(tc.amount)
		assert.Equal(t, tc.fee, fee, "fee for %.2f", tc.amount)
		assert.Equal(t, tc.payout, payout, "payout for %.2f", tc.amount)
	}
}

func TestSplitFeeSumsToAmount(t *testing.T) {
	// In minor units the rounded parts must reassemble the gross amount for
	// every price expressible in paise.
	for cents := int64(1); cents <= 200000; cents += 7 {
		amount := float64(cents) / 100
		fee, payout := splitFee(amount)
		assert.Equal(t, cents, minorUnits(fee)+minorUnits(payout), "amount %.2f", amount)
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(33300), minorUnits(333))
	assert.Equal(t, int64(9999), minorUnits(99.99))
	assert.Equal(t, int64(1055), minorUnits(10.55))
	assert.Equal(t, int64(0), minorUnits(0))
}
