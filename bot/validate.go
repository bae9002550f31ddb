package bot

import (
	"strings"
	"time"
)

const rentalTimeLayout = "02.01 15:04"

// ValidateRentalTimeFormat reports whether the input parses as
// "ДД.ММ ЧЧ:ММ".
func ValidateRentalTimeFormat(s string) bool {
	_, err := time.Parse(rentalTimeLayout, s)
	return err == nil
}

// ValidateRentalTime reports whether the rental start is recent
// enough to file a report for. The input carries no year, the
// current one is assumed. Future timestamps are accepted, riders
// often mix up day and month and support sorts it out manually.
func ValidateRentalTime(s string) bool {
	return validateRentalTimeAt(s, time.Now())
}

func validateRentalTimeAt(s string, now time.Time) bool {
	parsed, err := time.Parse(rentalTimeLayout, s)
	if err != nil {
		return false
	}

	rental := time.Date(now.Year(), parsed.Month(), parsed.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location())

	return !rental.Before(now.AddDate(0, 0, -30))
}

// isDigits reports whether s is non-empty and consists of ASCII
// digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateScooterNumber accepts exactly four digits.
func ValidateScooterNumber(s string) bool {
	return isDigits(s) && len(s) == 4
}

// ValidateCardSuffix accepts the last four digits of a card number.
func ValidateCardSuffix(s string) bool {
	return isDigits(s) && len(s) == 4
}

// ValidatePhone accepts Russian numbers in +7XXXXXXXXXX, 7XXXXXXXXXX
// or 8XXXXXXXXXX form.
func ValidatePhone(s string) bool {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "+7"):
		if len(s) != 12 {
			return false
		}
	case strings.HasPrefix(s, "7"), strings.HasPrefix(s, "8"):
		if len(s) != 11 {
			return false
		}
	default:
		return false
	}

	digits := s
	if strings.HasPrefix(s, "+") {
		digits = s[1:]
	}
	return isDigits(digits)
}

// NormalizePhone converts an accepted phone into canonical
// +7XXXXXXXXXX form. The second return is false when the input
// cannot be normalized.
func NormalizePhone(s string) (string, bool) {
	s = strings.TrimSpace(s)

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 11 && strings.HasPrefix(d, "7"):
		return "+" + d, true
	case len(d) == 11 && strings.HasPrefix(d, "8"):
		return "+7" + d[1:], true
	case len(d) == 10:
		return "+7" + d, true
	}
	return "", false
}
