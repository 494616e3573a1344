// Package storage appends completed policy records to the policy file.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/onestop/osic/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrInvalidRecord = errors.New("invalid policy record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecord checks the fields a record cannot be written without.
func validateRecord(record *model.PolicyRecord) error {
	if record.PolicyNumber < 1 {
		return fmt.Errorf("%w: policy number %d", ErrInvalidRecord, record.PolicyNumber)
	}
	if record.Coverage.NumCars < 1 {
		return fmt.Errorf("%w: number of cars %d", ErrInvalidRecord, record.Coverage.NumCars)
	}
	if record.PaymentMethod == "" {
		return fmt.Errorf("%w: missing payment method", ErrInvalidRecord)
	}
	if len(record.Customer.Phone) != 10 {
		return fmt.Errorf("%w: phone number must hold 10 digits", ErrInvalidRecord)
	}
	return nil
}
