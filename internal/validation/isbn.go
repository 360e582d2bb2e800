package validation

import "strings"

// NormalizeISBN strips separator characters (hyphens and spaces) from a raw
// ISBN so that books are stored and compared in canonical digit-only form.
func NormalizeISBN(raw string) string {
	s := strings.ReplaceAll(raw, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// ValidISBN reports whether the raw value is a well-formed ISBN: after
// stripping separators it must be exactly 10 or exactly 13 digits.
func ValidISBN(raw string) bool {
	s := NormalizeISBN(raw)
	if len(s) != 10 && len(s) != 13 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ISBN13ChecksumOK verifies the ISBN-13 check digit: the first 12 digits are
// weighted alternately by 1 and 3, and the 13th digit must equal
// (10 - sum mod 10) mod 10. The result is advisory feedback, not a hard
// acceptance rule; callers log a warning instead of rejecting on mismatch.
// Returns true for anything that is not a 13-digit ISBN.
func ISBN13ChecksumOK(raw string) bool {
	s := NormalizeISBN(raw)
	if len(s) != 13 || !ValidISBN(raw) {
		return true
	}

	sum := 0
	for i := 0; i < 12; i++ {
		d := int(s[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	check := (10 - sum%10) % 10

	return check == int(s[12]-'0')
}
