package validation

import (
	"net/mail"
	"regexp"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// ValidUsername reports whether the username is 3-20 characters of
// letters, digits and underscores.
func ValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// ValidEmail reports whether the value is a bare, well-formed email address.
// Display-name forms such as "John <john@example.com>" are rejected.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
