package model

import (
	"strings"
	"unicode"
)

const referenceFragmentLength = 8

// SplitAmount returns what is due now and what remains for a plan. A deposit
// is half the price rounded up.
func SplitAmount(price int64, plan string) (dueNow, remaining int64) {
	dueNow = price
	if plan == PlanDeposit50 {
		dueNow = (price + 1) / 2
	}

	return dueNow, max(0, price-dueNow)
}

// RemainingAfter is what is still owed once paid has been received.
func RemainingAfter(price, paid int64) int64 {
	return max(0, price-paid)
}

// IsValidPlan reports whether plan is one of the supported payment plans.
func IsValidPlan(plan string) bool {
	return plan == PlanFull || plan == PlanDeposit50
}

// BankReference derives the transfer reference customers quote on a manual
// bank transfer: the prefix plus the first eight alphanumerics of the id.
func BankReference(prefix, bookingID string) string {
	var fragment strings.Builder

	for _, r := range bookingID {
		if fragment.Len() == referenceFragmentLength {
			break
		}

		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			fragment.WriteRune(unicode.ToUpper(r))
		}
	}

	if fragment.Len() == 0 {
		return prefix + "-BOOKING"
	}

	return prefix + "-" + fragment.String()
}
