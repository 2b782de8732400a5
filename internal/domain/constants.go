package domain

// Donation economics
const (
	// MinimumDonationAmount is the smallest accepted donation in naira
	MinimumDonationAmount int64 = 5000

	// MaximumDonationAmount is the largest single pledge accepted, ₦100 billion
	MaximumDonationAmount int64 = 100_000_000_000

	// AmountPerTree is the cost of planting one tree in naira
	AmountPerTree int64 = 5000

	CarbonOffsetKgPerTree int64 = 22
	OxygenKgPerTree       int64 = 118
)

// Payment reference prefix, followed by unix milliseconds
const PaymentReferencePrefix = "DNT-"

// Timestamp layout used for PlantedDate and LastUpdated on server-assigned values
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
