package utils

import (
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Password policy checks, one per required character class. RE2 has no
	// lookahead, so the policy is a conjunction of separate matches.
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[#?!@$%^&*-]`)
)

// ValidUsername accepts letters and spaces only.
func ValidUsername(username string) bool {
	return usernameRegex.MatchString(strings.TrimSpace(username))
}

func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPassword requires at least 8 characters with an upper, a lower, a
// digit and a special character, evaluated on the trimmed input.
func ValidPassword(password string) bool {
	p := strings.TrimSpace(password)
	if len(p) < 8 {
		return false
	}
	return hasUpper.MatchString(p) &&
		hasLower.MatchString(p) &&
		hasDigit.MatchString(p) &&
		hasSpecial.MatchString(p)
}
