// Package validation provides the predicates used to accept customer input.
// Callers normalize case before validating.
package validation

import (
	"slices"
	"strings"
	"unicode"
)

var provinces = []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"}

// Provinces returns the accepted province and territory codes in alphabetical order.
func Provinces() []string {
	return slices.Clone(provinces)
}

// IsValidProvince reports whether code is one of the accepted two-letter codes.
// The match is exact; callers upper-case the input first.
func IsValidProvince(code string) bool {
	return slices.Contains(provinces, code)
}

// IsValidPostalCode reports whether code has the form A9A 9A9.
func IsValidPostalCode(code string) bool {
	r := []rune(code)
	if len(r) != 7 {
		return false
	}
	return isLetter(r[0]) && isDigit(r[1]) && isLetter(r[2]) &&
		r[3] == ' ' &&
		isDigit(r[4]) && isLetter(r[5]) && isDigit(r[6])
}

// IsValidPhoneNumber reports whether raw is exactly ten decimal digits.
func IsValidPhoneNumber(raw string) bool {
	if len(raw) != 10 {
		return false
	}
	for _, c := range raw {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// FormatPhoneNumber renders a validated ten-digit number as 999-999-9999.
func FormatPhoneNumber(raw string) string {
	return raw[:3] + "-" + raw[3:6] + "-" + raw[6:]
}

// NormalizeProvince trims and upper-cases a province code.
func NormalizeProvince(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizePostalCode trims and upper-cases a postal code, keeping the inner space.
func NormalizePostalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
