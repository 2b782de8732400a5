package donation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

var printer = message.NewPrinter(language.English)

// MinimumAmountMessage is the error shown for pledges below the minimum
func MinimumAmountMessage() string {
	return printer.Sprintf(MsgFmtMinimumAmount, domain.MinimumDonationAmount)
}

// MaximumAmountMessage is the error shown for pledges above the maximum
func MaximumAmountMessage() string {
	return printer.Sprintf(MsgFmtMaximumAmount, domain.MaximumDonationAmount)
}

// ThankYouMessage pluralises "tree" for the confirmation shown after a pledge
func ThankYouMessage(trees int64) string {
	noun := "tree"
	if trees > 1 {
		noun = "trees"
	}
	return printer.Sprintf(MsgFmtThankYou, trees, noun)
}

// FormatNaira renders an amount with thousands separators, e.g. ₦50,000
func FormatNaira(amount int64) string {
	return printer.Sprintf("₦%d", amount)
}
