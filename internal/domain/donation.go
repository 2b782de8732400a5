package domain

import "time"

// PaymentStatus tracks a donation through the payment provider. Pledges stay
// pending; settlement happens on the provider's side.
type PaymentStatus string

const PaymentStatusPending PaymentStatus = "pending"

// Donation is a pledge of funds. TreesPlanted is always derived from Amount.
type Donation struct {
	ID               string        `json:"id" db:"donation_id"`
	Amount           int64         `json:"amount" db:"amount"`
	TierID           string        `json:"tierId,omitempty" db:"tier_id"`
	DonorName        string        `json:"donorName,omitempty" db:"donor_name"`
	DonorEmail       string        `json:"donorEmail,omitempty" db:"donor_email"`
	Message          string        `json:"message,omitempty" db:"message"`
	TreesPlanted     int64         `json:"treesPlanted" db:"trees_planted"`
	Timestamp        time.Time     `json:"timestamp" db:"created_at"`
	PaymentStatus    PaymentStatus `json:"paymentStatus,omitempty" db:"payment_status"`
	PaymentReference string        `json:"paymentReference,omitempty" db:"payment_reference"`
}

// DonationTier is a named fixed-price donation package
type DonationTier struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Trees    int      `json:"trees"`
	Benefits []string `json:"benefits"`
	Popular  bool     `json:"popular,omitempty"`
}

// ImpactEstimate is the expected yearly effect of a donation amount
type ImpactEstimate struct {
	Amount             int64 `json:"amount"`
	Trees              int64 `json:"trees"`
	CarbonOffsetKg     int64 `json:"carbonOffsetKgPerYear"`
	OxygenProductionKg int64 `json:"oxygenKgPerYear"`
}

// TreesForAmount returns how many trees an amount funds (floored)
func TreesForAmount(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return amount / AmountPerTree
}

// EstimateImpact computes the impact figures shown next to a custom amount
func EstimateImpact(amount int64) ImpactEstimate {
	trees := TreesForAmount(amount)
	return ImpactEstimate{
		Amount:             amount,
		Trees:              trees,
		CarbonOffsetKg:     trees * CarbonOffsetKgPerTree,
		OxygenProductionKg: trees * OxygenKgPerTree,
	}
}

// DonationRequest is what a donor submits. Amount is nil when omitted.
type DonationRequest struct {
	Amount     *int64
	TierID     string
	DonorName  string
	DonorEmail string
	Message    string
}

// DonationReceipt is the result of a successful pledge
type DonationReceipt struct {
	Donation   Donation
	Message    string
	PaymentURL string
}
