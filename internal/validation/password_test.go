package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetsPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{name: "letters and digits", password: "abcd1234", expected: true},
		{name: "too short", password: "ab1", expected: false},
		{name: "letters only", password: "abcdefgh", expected: false},
		{name: "digits only", password: "12345678", expected: false},
		{name: "strong password accepted", password: "Abcd123!", expected: true},
		{name: "empty", password: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeetsPasswordPolicy(tt.password))
		})
	}
}

func TestClassifyPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected string
	}{
		{name: "short is weak", password: "abc", expected: PasswordWeak},
		{name: "letters and digits is medium", password: "abcd1234", expected: PasswordMedium},
		{name: "mixed case with symbol is strong", password: "Abcd123!", expected: PasswordStrong},
		{name: "long letters only is weak", password: "abcdefghij", expected: PasswordWeak},
		{name: "mixed case without symbol is medium", password: "Abcd1234", expected: PasswordMedium},
		{name: "empty is weak", password: "", expected: PasswordWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPassword(tt.password))
		})
	}
}
