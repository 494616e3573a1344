package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoice is returned when a single-letter answer is not one of the accepted codes.
var ErrInvalidChoice = errors.New("invalid choice")

// PaymentMethod indicates how the customer pays for the policy.
type PaymentMethod string

// Payment method constants.
const (
	PaymentFull        PaymentMethod = "Full"
	PaymentMonthly     PaymentMethod = "Monthly"
	PaymentDownPayment PaymentMethod = "Down Payment"
)

// ParsePaymentMethod converts the F/M/D code entered at the prompt into a PaymentMethod.
func ParsePaymentMethod(code string) (PaymentMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "F":
		return PaymentFull, nil
	case "M":
		return PaymentMonthly, nil
	case "D":
		return PaymentDownPayment, nil
	default:
		return "", fmt.Errorf("%w: payment method %q", ErrInvalidChoice, code)
	}
}

// String returns the display name of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsInstallment reports whether the method is paid over the monthly schedule.
func (m PaymentMethod) IsInstallment() bool {
	return m == PaymentMonthly || m == PaymentDownPayment
}

// RequiresDownPayment reports whether a down payment amount must be collected.
func (m PaymentMethod) RequiresDownPayment() bool {
	return m == PaymentDownPayment
}

// YesNo is a coverage flag answered with Y or N.
type YesNo bool

// ParseYesNo converts a Y/N answer into a YesNo.
func ParseYesNo(code string) (YesNo, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected Y or N, got %q", ErrInvalidChoice, code)
	}
}

// String renders the flag the way receipts and records show it.
func (y YesNo) String() string {
	if y {
		return "Yes"
	}
	return "No"
}
