package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidProvince(t *testing.T) {
	for _, code := range Provinces() {
		assert.True(t, IsValidProvince(code), code)
		assert.True(t, IsValidProvince(NormalizeProvince(" "+strings.ToLower(code)+" ")), code)
	}
	assert.Len(t, Provinces(), 13)

	for _, code := range []string{"XX", "", "ONT", "on", "O N", "PQ", "NF"} {
		assert.False(t, IsValidProvince(code), code)
	}
}

func TestProvinces_ReturnsCopy(t *testing.T) {
	p := Provinces()
	p[0] = "XX"
	assert.True(t, IsValidProvince("AB"))
	assert.False(t, IsValidProvince("XX"))
}

func TestIsValidPostalCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "A1A 1A1", want: true},
		{code: "K1A 0B1", want: true},
		{code: "X9X 9X9", want: true},
		{code: "A1A1A1", want: false},
		{code: "A1A-1A1", want: false},
		{code: "11A 1A1", want: false},
		{code: "AAA 1A1", want: false},
		{code: "A11 1A1", want: false},
		{code: "A1A A1A", want: false},
		{code: "A1A 111", want: false},
		{code: "A1A 1AA", want: false},
		{code: "A1A 1A1 ", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPostalCode(tt.code))
		})
	}
}

func TestNormalizePostalCode(t *testing.T) {
	assert.Equal(t, "A1A 1A1", NormalizePostalCode("  a1a 1a1 "))
	assert.True(t, IsValidPostalCode(NormalizePostalCode("k1a 0b1")))
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "5551234567", want: true},
		{raw: "0000000000", want: true},
		{raw: "555123456", want: false},
		{raw: "55512345678", want: false},
		{raw: "555-123-45", want: false},
		{raw: "555123456a", want: false},
		{raw: "555 123 45", want: false},
		{raw: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhoneNumber(tt.raw))
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "555-123-4567", FormatPhoneNumber("5551234567"))
	assert.Equal(t, "709-555-0100", FormatPhoneNumber("7095550100"))
}
