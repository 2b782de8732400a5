package donation

// Defaults
const (
	// DefaultListLimit is used when the caller gives no usable limit
	DefaultListLimit = 10

	// DefaultCheckoutBaseURL is where the payment reference is appended
	DefaultCheckoutBaseURL = "https://checkout.paystack.com/ref"

	// AnonymousDonor is shown when a donor leaves their name blank
	AnonymousDonor = "Anonymous"
)

// User-facing message formats, rendered with a locale-aware printer
const (
	MsgFmtMinimumAmount = "Minimum donation amount is ₦%d"
	MsgFmtMaximumAmount = "Maximum donation amount is ₦%d"
	MsgFmtThankYou      = "Thank you for your donation! You will plant %d %s."
)

// Error message formats
const (
	ErrFmtUnknownTier      = "%w: unknown tier '%s'"
	ErrMsgGenerateIDFailed = "failed to generate donation id"
)

// Log messages
const (
	LogMsgDonationCreated    = "Donation created"
	LogMsgEventPublishFailed = "Failed to publish donation event"
)
