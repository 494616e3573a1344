// Package service defines the interfaces the policy session is built from.
package service

import (
	"context"

	"github.com/onestop/osic/internal/model"
	"github.com/shopspring/decimal"
)

// Pricer computes policy costs.
type Pricer interface {
	Quote(in model.PricingInput, method model.PaymentMethod, downPayment decimal.Decimal) model.QuoteResult
	MaxDownPayment(totalCost decimal.Decimal) decimal.Decimal
}

// RecordWriter persists completed policies.
type RecordWriter interface {
	AppendPolicyRecord(ctx context.Context, record model.PolicyRecord) error
}

// Prompter collects policy details from the operator and shows results.
type Prompter interface {
	PromptCustomer(ctx context.Context) (model.Customer, error)
	PromptCoverage(ctx context.Context) (model.PricingInput, error)
	PromptPaymentMethod(ctx context.Context) (model.PaymentMethod, error)
	PromptDownPayment(ctx context.Context, maxAmount decimal.Decimal) (decimal.Decimal, error)
	PromptClaims(ctx context.Context) ([]model.Claim, error)
	ShowReceipt(record model.PolicyRecord) error
	ShowSaving(ctx context.Context) error
	ConfirmAnother(ctx context.Context) (bool, error)
}
