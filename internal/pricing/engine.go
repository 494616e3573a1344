// Package pricing computes policy premiums, HST and installment payments.
package pricing

import (
	"github.com/onestop/osic/internal/model"
	"github.com/shopspring/decimal"
)

// Installments is the number of monthly payments in an installment schedule.
const Installments = 8

var installments = decimal.NewFromInt(Installments)

// ComputePremium returns the pre-tax premium for the given coverage.
// The first car costs BasicPremium and every additional car costs
// BasicPremium*DiscountRate. Each enabled optional coverage adds its
// per-car cost times the number of cars. NumCars must be at least 1.
func ComputePremium(in model.PricingInput, c model.PricingConstants) decimal.Decimal {
	cars := decimal.NewFromInt(int64(in.NumCars))

	additional := cars.Sub(decimal.NewFromInt(1)).Mul(c.BasicPremium).Mul(c.DiscountRate)
	base := c.BasicPremium.Add(additional)

	extras := decimal.Zero
	if in.Liability {
		extras = extras.Add(c.LiabilityCost.Mul(cars))
	}
	if in.GlassCoverage {
		extras = extras.Add(c.GlassCoverageCost.Mul(cars))
	}
	if in.LoanerCar {
		extras = extras.Add(c.LoanerCarCost.Mul(cars))
	}

	return base.Add(extras)
}

// ComputeTax returns the HST owed on a premium.
func ComputeTax(premium, hstRate decimal.Decimal) decimal.Decimal {
	return premium.Mul(hstRate)
}

// ComputeMonthlyPayment spreads the remaining cost over the installment schedule.
// The result is not clamped; callers keep downPayment within totalCost+processingFee.
func ComputeMonthlyPayment(totalCost, processingFee, downPayment decimal.Decimal) decimal.Decimal {
	return totalCost.Add(processingFee).Sub(downPayment).Div(installments)
}

// Quote computes the full cost breakdown for a policy. Full payments carry no
// monthly amount.
func Quote(in model.PricingInput, method model.PaymentMethod, downPayment decimal.Decimal, c model.PricingConstants) model.QuoteResult {
	premium := ComputePremium(in, c)
	hst := ComputeTax(premium, c.HSTRate)
	total := premium.Add(hst)

	monthly := decimal.Zero
	if method.IsInstallment() {
		monthly = ComputeMonthlyPayment(total, c.ProcessingFee, downPayment)
	}

	return model.QuoteResult{
		TotalPremium:   premium,
		HST:            hst,
		TotalCost:      total,
		MonthlyPayment: monthly,
	}
}

// MaxDownPayment is the largest down payment that keeps the monthly payment non-negative.
func MaxDownPayment(totalCost decimal.Decimal, c model.PricingConstants) decimal.Decimal {
	return totalCost.Add(c.ProcessingFee)
}

// Engine prices policies against a fixed set of constants.
type Engine struct {
	constants model.PricingConstants
}

// NewEngine creates an engine for the given constants.
func NewEngine(constants model.PricingConstants) *Engine {
	return &Engine{constants: constants}
}

// Quote computes the cost breakdown for a policy.
func (e *Engine) Quote(in model.PricingInput, method model.PaymentMethod, downPayment decimal.Decimal) model.QuoteResult {
	return Quote(in, method, downPayment, e.constants)
}

// MaxDownPayment returns the upper bound for a down payment on a policy costing totalCost.
func (e *Engine) MaxDownPayment(totalCost decimal.Decimal) decimal.Decimal {
	return MaxDownPayment(totalCost, e.constants)
}
