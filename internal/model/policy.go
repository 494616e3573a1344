// Package model defines the policy, customer and pricing types shared across the application.
package model

import "github.com/shopspring/decimal"

// PricingInput is the coverage selection a premium is computed from.
type PricingInput struct {
	NumCars       int
	Liability     YesNo
	GlassCoverage YesNo
	LoanerCar     YesNo
}

// PricingConstants are the rates loaded from the constants file at startup.
type PricingConstants struct {
	BasicPremium      decimal.Decimal
	DiscountRate      decimal.Decimal
	LiabilityCost     decimal.Decimal
	GlassCoverageCost decimal.Decimal
	LoanerCarCost     decimal.Decimal
	HSTRate           decimal.Decimal
	ProcessingFee     decimal.Decimal
	NextPolicyNumber  int
}

// QuoteResult is the computed cost of a policy.
// TotalCost always equals TotalPremium plus HST.
type QuoteResult struct {
	TotalPremium   decimal.Decimal
	HST            decimal.Decimal
	TotalCost      decimal.Decimal
	MonthlyPayment decimal.Decimal
}

// PolicyRecord is the snapshot of one completed transaction. It is written once and never updated.
type PolicyRecord struct {
	Customer      Customer
	PaymentMethod PaymentMethod
	DownPayment   decimal.Decimal
	Claims        []Claim
	Quote         QuoteResult
	Coverage      PricingInput
	PolicyNumber  int
}

// HasDownPayment reports whether a positive down payment was made.
func (r PolicyRecord) HasDownPayment() bool {
	return r.DownPayment.IsPositive()
}
