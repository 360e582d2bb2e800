package validation

import (
	"strings"
	"unicode"
)

// Password strength tiers returned by ClassifyPassword.
const (
	PasswordWeak   = "weak"
	PasswordMedium = "medium"
	PasswordStrong = "strong"
)

// strongSymbols is the punctuation set counted toward the strong tier.
const strongSymbols = "!@#$%^&*()_+-=[]{};':\",.<>/?\\|`~"

// MinPasswordLength is the hard minimum length for registration.
const MinPasswordLength = 8

// MeetsPasswordPolicy reports whether the password satisfies the hard
// acceptance rule for registration: at least MinPasswordLength characters
// with at least one letter and one digit. The strength tiering in
// ClassifyPassword is advisory and enforced nowhere.
func MeetsPasswordPolicy(raw string) bool {
	if len(raw) < MinPasswordLength {
		return false
	}

	var hasLetter, hasDigit bool
	for _, c := range raw {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// ClassifyPassword grades a password as weak, medium or strong. The grade is
// advisory UI feedback only; registration acceptance is decided by
// MeetsPasswordPolicy.
func ClassifyPassword(raw string) string {
	if len(raw) < MinPasswordLength {
		return PasswordWeak
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range raw {
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(strongSymbols, c):
			hasSymbol = true
		}
	}

	if hasLower && hasUpper && hasDigit && hasSymbol {
		return PasswordStrong
	}
	if (hasLower || hasUpper) && hasDigit {
		return PasswordMedium
	}
	return PasswordWeak
}
