package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		code        string
		expected    PaymentMethod
		installment bool
		down        bool
	}{
		{code: "F", expected: PaymentFull},
		{code: "f", expected: PaymentFull},
		{code: "M", expected: PaymentMonthly, installment: true},
		{code: " d ", expected: PaymentDownPayment, installment: true, down: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParsePaymentMethod(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.installment, got.IsInstallment())
			assert.Equal(t, tt.down, got.RequiresDownPayment())
		})
	}

	for _, code := range []string{"", "X", "Full", "FM"} {
		_, err := ParsePaymentMethod(code)
		assert.ErrorIs(t, err, ErrInvalidChoice, code)
	}
}

func TestPaymentMethod_String(t *testing.T) {
	assert.Equal(t, "Full", PaymentFull.String())
	assert.Equal(t, "Monthly", PaymentMonthly.String())
	assert.Equal(t, "Down Payment", PaymentDownPayment.String())
}

func TestParseYesNo(t *testing.T) {
	for _, code := range []string{"Y", "y", " Y"} {
		v, err := ParseYesNo(code)
		require.NoError(t, err)
		assert.True(t, bool(v))
		assert.Equal(t, "Yes", v.String())
	}
	for _, code := range []string{"N", "n"} {
		v, err := ParseYesNo(code)
		require.NoError(t, err)
		assert.False(t, bool(v))
		assert.Equal(t, "No", v.String())
	}
	for _, code := range []string{"", "yes", "no", "1"} {
		_, err := ParseYesNo(code)
		assert.ErrorIs(t, err, ErrInvalidChoice, code)
	}
}

func TestPolicyRecord_HasDownPayment(t *testing.T) {
	assert.False(t, PolicyRecord{}.HasDownPayment())
	assert.False(t, PolicyRecord{DownPayment: decimal.Zero}.HasDownPayment())
	assert.True(t, PolicyRecord{DownPayment: decimal.RequireFromString("0.01")}.HasDownPayment())
}

func TestCustomer_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Customer{FirstName: "Jane", LastName: "Doe"}.FullName())
}
