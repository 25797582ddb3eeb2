package shared

import (
	"strconv"
	"strings"

	"salon/shared/dto"
)

const cacheKeySeparator = ":"

// NormalizeEmail is the canonical form used whenever an email acts as a
// credential or lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailMatches compares two addresses case-insensitively, ignoring
// surrounding whitespace. Empty addresses never match.
func EmailMatches(stored, supplied string) bool {
	supplied = NormalizeEmail(supplied)

	return supplied != "" && NormalizeEmail(stored) == supplied
}

// IsTruthy accepts the checkbox spellings sent by the booking form.
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// FirstNonEmpty returns the first value that is not blank after trimming.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}

// FormatAmount renders a whole-naira amount with thousands separators,
// e.g. 12500 becomes "12,500".
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder

	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(d)
	}

	return sign + b.String()
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return FilterByField(fieldID, id, table)
}

func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
