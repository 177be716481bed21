package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Unified card number pattern - exactly 12 digits
	CardNumberPattern = `^\d{12}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	CardNumber *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	CardNumber: regexp.MustCompile(CardNumberPattern),
}

// NormalizeEmail lower-cases and trims an email address. All email
// comparisons in the system go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeCardNumber strips whitespace from a unified card number.
func NormalizeCardNumber(card string) string {
	return strings.ReplaceAll(strings.TrimSpace(card), " ", "")
}

// ValidCardNumber reports whether a normalized card number is acceptable.
// An empty value is allowed; a present value must be exactly 12 digits.
func ValidCardNumber(card string) bool {
	if card == "" {
		return true
	}
	return CompiledPatterns.CardNumber.MatchString(card)
}

// ValidEmail reports whether an email address has an acceptable format.
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(NormalizeEmail(email))
}
