package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/onestop/osic/internal/model"
	"github.com/onestop/osic/internal/validation"
	"github.com/shopspring/decimal"
)

const (
	receiptWidth     = 46
	claimColumnWidth = 15
	amountWidth      = 10
)

var (
	receiptRule     = strings.Repeat("=", receiptWidth)
	receiptDivider  = strings.Repeat("-", receiptWidth)
	receiptHeadline = TitleStyle.Width(receiptWidth).Align(lipgloss.Center)
)

// RenderReceipt lays out the customer receipt for a completed policy.
func RenderReceipt(record model.PolicyRecord) string {
	c := record.Customer
	q := record.Quote

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	field := func(label, value string) {
		line(LabelStyle.Render(label) + value)
	}
	amount := func(label string, d decimal.Decimal) {
		line(AmountLabelStyle.Render(label) + amountColumn(money(d)))
	}
	section := func(title string) {
		line(SectionStyle.Render(title))
		line(strings.Repeat("-", len(title)))
	}

	line(receiptRule)
	line(receiptHeadline.Render("One Stop Insurance Co."))
	line(receiptRule)

	section("Policy Information:")
	field("Policy Number:", strconv.Itoa(record.PolicyNumber))
	field("Customer Name:", c.FullName())
	field("Address:", c.Address)
	field("", c.City+", "+c.Province+", "+c.PostalCode)
	field("Phone Number:", validation.FormatPhoneNumber(c.Phone))
	line(receiptDivider)

	section("Coverage Details:")
	field("Number of Cars:", strconv.Itoa(record.Coverage.NumCars))
	field("Extra Liability:", record.Coverage.Liability.String())
	field("Glass Coverage:", record.Coverage.GlassCoverage.String())
	field("Loaner Car:", record.Coverage.LoanerCar.String())
	line(receiptDivider)

	section("Payment Information:")
	field("Payment Method:", record.PaymentMethod.String())
	if record.HasDownPayment() {
		amount("Down Payment:", record.DownPayment)
	}
	line(receiptDivider)
	amount("Total Premium (pre-tax):", q.TotalPremium)
	amount("HST:", q.HST)
	amount("Total Cost:", q.TotalCost)
	if q.MonthlyPayment.IsPositive() {
		amount("Monthly Payment:", q.MonthlyPayment)
	}
	line(receiptDivider)

	section("Previous Claims:")
	line(claimRow("Claim #", "Claim Date", "Amount"))
	line(receiptDivider)
	if len(record.Claims) == 0 {
		line(SubtleStyle.Render("No previous claims"))
	}
	for _, claim := range record.Claims {
		line(claimRow(claim.Number, claim.Date.Format(model.ClaimDateLayout), money(claim.Amount)))
	}
	line(receiptRule)

	return b.String()
}

// claimRow pads the claim columns. Wide values push the rest of the row right.
func claimRow(number, date, amount string) string {
	return fmt.Sprintf("%-*s %-*s %s", claimColumnWidth, number, claimColumnWidth, date, amountColumn(amount))
}

func amountColumn(s string) string {
	return fmt.Sprintf("%*s", amountWidth, s)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
