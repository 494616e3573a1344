// Package testutil provides shared fixtures for policy tests.
package testutil

import (
	"context"
	"sync"

	"github.com/onestop/osic/internal/model"
	"github.com/shopspring/decimal"
)

// Constants returns the pricing constants shipped in the sample Const.dat.
func Constants() model.PricingConstants {
	return model.PricingConstants{
		NextPolicyNumber:  1944,
		BasicPremium:      decimal.RequireFromString("869.00"),
		DiscountRate:      decimal.RequireFromString("0.25"),
		LiabilityCost:     decimal.RequireFromString("130.00"),
		GlassCoverageCost: decimal.RequireFromString("86.00"),
		LoanerCarCost:     decimal.RequireFromString("58.00"),
		HSTRate:           decimal.RequireFromString("0.13"),
		ProcessingFee:     decimal.RequireFromString("39.99"),
	}
}

// Record returns a fully paid two-car policy with liability and loaner coverage,
// priced with Constants.
func Record(policyNumber int) model.PolicyRecord {
	return model.PolicyRecord{
		PolicyNumber: policyNumber,
		Customer: model.Customer{
			FirstName:  "Jane",
			LastName:   "Doe",
			Address:    "12 Water Street",
			City:       "St. John's",
			Province:   "NL",
			PostalCode: "A1C 5M2",
			Phone:      "7095551234",
		},
		Coverage: model.PricingInput{
			NumCars:   2,
			Liability: true,
			LoanerCar: true,
		},
		PaymentMethod: model.PaymentFull,
		Quote: model.QuoteResult{
			TotalPremium: decimal.RequireFromString("1462.25"),
			HST:          decimal.RequireFromString("190.0925"),
			TotalCost:    decimal.RequireFromString("1652.3425"),
		},
	}
}

// RecordingWriter keeps appended records in memory. When Err is set every append fails with it.
type RecordingWriter struct {
	Err     error
	records []model.PolicyRecord
	mu      sync.Mutex
}

// AppendPolicyRecord records the policy or returns Err.
func (w *RecordingWriter) AppendPolicyRecord(_ context.Context, record model.PolicyRecord) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.records = append(w.records, record)
	return nil
}

// Records returns the policies appended so far.
func (w *RecordingWriter) Records() []model.PolicyRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]model.PolicyRecord(nil), w.records...)
}
