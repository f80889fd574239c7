package reservation

import "math"

// platformFeeRate is the marketplace cut of every interview payment. The
// remainder is the interviewer payout.
const platformFeeRate = 0.20

// defaultCurrency applies when a slot has no currency set.
const defaultCurrency = "INR"

// splitFee computes the platform fee and interviewer payout for a gross
// amount, rounded half-up to 2 decimal places. The rounded parts always sum
// back to the amount: the payout is derived from the rounded fee, not
// rounded independently.
func splitFee(amount float64) (platformFee, interviewerAmount float64) {
	platformFee = roundMoney(amount * platformFeeRate)
	interviewerAmount = roundMoney(amount - platformFee)
	return platformFee, interviewerAmount
}

// minorUnits converts a major-unit amount to the currency's minor units
// (e.g. INR 333.00 -> 33300 paise), as required by the payment gateway.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
