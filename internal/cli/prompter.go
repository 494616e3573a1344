package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/onestop/osic/internal/model"
	"github.com/onestop/osic/internal/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClaimsSentinel ends the list of previous claims.
const ClaimsSentinel = "done"

// Prompter implements the interactive prompts of a policy session.
type Prompter struct {
	writer    io.Writer
	reader    *NonBlockingReader
	title     cases.Caser
	saveSteps int
	saveDelay time.Duration
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithSaveAnimation sets the number of steps and the delay per step of the
// progress bar shown while a policy is saved. Zero steps disables the bar.
func WithSaveAnimation(steps int, delay time.Duration) Option {
	return func(p *Prompter) {
		p.saveSteps = steps
		p.saveDelay = delay
	}
}

// NewCLIPrompter creates a new CLI prompter with the given reader and writer.
func NewCLIPrompter(reader io.Reader, writer io.Writer, opts ...Option) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	p := &Prompter{
		reader:    NewNonBlockingReader(reader),
		writer:    writer,
		title:     cases.Title(language.English),
		saveSteps: 50,
		saveDelay: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PromptCustomer collects the customer's name, address and phone number.
func (p *Prompter) PromptCustomer(ctx context.Context) (model.Customer, error) {
	if _, err := fmt.Fprintln(p.writer, FormatTitle("New Customer")); err != nil {
		return model.Customer{}, fmt.Errorf("failed to write title: %w", err)
	}

	var c model.Customer
	var err error

	if c.FirstName, err = promptField(ctx, p, "Enter customer's first name: ", p.titleText("First name")); err != nil {
		return model.Customer{}, err
	}
	if c.LastName, err = promptField(ctx, p, "Enter customer's last name: ", p.titleText("Last name")); err != nil {
		return model.Customer{}, err
	}
	if c.Address, err = promptField(ctx, p, "Enter address: ", p.titleText("Address")); err != nil {
		return model.Customer{}, err
	}
	if c.City, err = promptField(ctx, p, "Enter city: ", p.titleText("City")); err != nil {
		return model.Customer{}, err
	}
	if c.Province, err = promptField(ctx, p, "Enter province (e.g., ON): ", parseProvince); err != nil {
		return model.Customer{}, err
	}
	if c.PostalCode, err = promptField(ctx, p, "Enter postal code (e.g., X9X 9X9): ", parsePostalCode); err != nil {
		return model.Customer{}, err
	}
	if c.Phone, err = promptField(ctx, p, "Enter phone number (e.g., 9999999999): ", parsePhoneNumber); err != nil {
		return model.Customer{}, err
	}

	return c, nil
}

// PromptCoverage collects the number of cars and the optional coverages.
func (p *Prompter) PromptCoverage(ctx context.Context) (model.PricingInput, error) {
	var in model.PricingInput
	var err error

	if in.NumCars, err = promptField(ctx, p, "Enter number of cars being insured: ", parseCarCount); err != nil {
		return model.PricingInput{}, err
	}
	if in.Liability, err = promptField(ctx, p, "Extra liability coverage (Y/N): ", parseYesNo); err != nil {
		return model.PricingInput{}, err
	}
	if in.GlassCoverage, err = promptField(ctx, p, "Glass coverage (Y/N): ", parseYesNo); err != nil {
		return model.PricingInput{}, err
	}
	if in.LoanerCar, err = promptField(ctx, p, "Loaner car (Y/N): ", parseYesNo); err != nil {
		return model.PricingInput{}, err
	}

	return in, nil
}

// PromptPaymentMethod asks how the customer pays.
func (p *Prompter) PromptPaymentMethod(ctx context.Context) (model.PaymentMethod, error) {
	return promptField(ctx, p, "Payment method - Full(F) Monthly(M) Down Pay(D): ", parsePaymentMethod)
}

// PromptDownPayment asks for a down payment between zero and maxAmount.
func (p *Prompter) PromptDownPayment(ctx context.Context, maxAmount decimal.Decimal) (decimal.Decimal, error) {
	return promptField(ctx, p, "Enter down payment amount: ", parseAmount("Down payment", &maxAmount))
}

// PromptClaims collects previous claims until the operator enters the sentinel.
func (p *Prompter) PromptClaims(ctx context.Context) ([]model.Claim, error) {
	var claims []model.Claim

	for {
		number, err := promptField(ctx, p, fmt.Sprintf("Enter claim number (or '%s' to finish): ", ClaimsSentinel), parseClaimNumber)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(number, ClaimsSentinel) {
			return claims, nil
		}

		date, err := promptField(ctx, p, "Enter claim date (YYYY-MM-DD): ", parseClaimDate)
		if err != nil {
			return nil, err
		}

		amount, err := promptField(ctx, p, "Enter claim amount: ", parseAmount("Claim amount", nil))
		if err != nil {
			return nil, err
		}

		claims = append(claims, model.Claim{Number: number, Date: date, Amount: amount})
	}
}

// ShowReceipt prints the receipt for a completed policy.
func (p *Prompter) ShowReceipt(record model.PolicyRecord) error {
	if _, err := fmt.Fprint(p.writer, "\n\n"+RenderReceipt(record)); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return nil
}

// ShowSaving runs the save progress bar.
func (p *Prompter) ShowSaving(ctx context.Context) error {
	return RunSaveProgress(ctx, p.writer, p.saveSteps, p.saveDelay)
}

// ShowSaved confirms a policy was written.
func (p *Prompter) ShowSaved(policyNumber int, path string) {
	msg := fmt.Sprintf("Policy %d saved to %s", policyNumber, path)
	if _, err := fmt.Fprintln(p.writer, FormatSuccess(msg)); err != nil {
		slog.Warn("Failed to write save confirmation", "error", err)
	}
}

// ConfirmAnother asks whether to enter another customer. Any answer other than Y ends the session.
func (p *Prompter) ConfirmAnother(ctx context.Context) (bool, error) {
	input, err := p.readLine(ctx, "Do you want to enter another customer? (Y/N): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(input, "Y"), nil
}

// ShowGoodbye prints the closing message.
func (p *Prompter) ShowGoodbye() {
	if _, err := fmt.Fprintln(p.writer, FormatInfo("Thank you for using One Stop Insurance Company system!")); err != nil {
		slog.Warn("Failed to write goodbye message", "error", err)
	}
}

func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return p.reader.ReadLine(ctx)
}

func (p *Prompter) titleText(field string) parseFunc[string] {
	return func(input string) (string, error) {
		if input == "" {
			return "", invalid(field+" cannot be empty. Please enter again.", nil)
		}
		return p.title.String(input), nil
	}
}

func parseProvince(input string) (string, error) {
	code := validation.NormalizeProvince(input)
	if !validation.IsValidProvince(code) {
		return "", invalid("Invalid province. Use one of "+strings.Join(validation.Provinces(), ", ")+".", nil)
	}
	return code, nil
}

func parsePostalCode(input string) (string, error) {
	code := validation.NormalizePostalCode(input)
	if !validation.IsValidPostalCode(code) {
		return "", invalid("Invalid postal code. Please enter again.", nil)
	}
	return code, nil
}

func parsePhoneNumber(input string) (string, error) {
	if !validation.IsValidPhoneNumber(input) {
		return "", invalid("Invalid phone number. Please enter again.", nil)
	}
	return input, nil
}

func parseCarCount(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, invalid("Number of cars must be a whole number. Please enter again.", err)
	}
	if n < 1 {
		return 0, invalid("At least one car must be insured. Please enter again.", nil)
	}
	return n, nil
}

func parseYesNo(input string) (model.YesNo, error) {
	v, err := model.ParseYesNo(input)
	if err != nil {
		return false, invalid("Invalid input. Please enter 'Y' for Yes or 'N' for No.", err)
	}
	return v, nil
}

func parsePaymentMethod(input string) (model.PaymentMethod, error) {
	m, err := model.ParsePaymentMethod(input)
	if err != nil {
		return "", invalid("Invalid payment method. Please enter again.", err)
	}
	return m, nil
}

// parseAmount accepts a non-negative dollar amount, bounded by maxAmount when it is set.
func parseAmount(field string, maxAmount *decimal.Decimal) parseFunc[decimal.Decimal] {
	return func(input string) (decimal.Decimal, error) {
		amount, err := decimal.NewFromString(strings.TrimPrefix(input, "$"))
		if err != nil {
			return decimal.Decimal{}, invalid(field+" must be a number. Please enter again.", err)
		}
		if amount.IsNegative() {
			return decimal.Decimal{}, invalid(field+" cannot be negative. Please enter again.", nil)
		}
		if maxAmount != nil && amount.GreaterThan(*maxAmount) {
			return decimal.Decimal{}, invalid(fmt.Sprintf("%s cannot exceed $%s. Please enter again.", field, maxAmount.StringFixed(2)), nil)
		}
		return amount, nil
	}
}

func parseClaimNumber(input string) (string, error) {
	if input == "" {
		return "", invalid(fmt.Sprintf("Claim number cannot be empty. Enter '%s' to finish.", ClaimsSentinel), nil)
	}
	return input, nil
}

func parseClaimDate(input string) (time.Time, error) {
	date, err := time.Parse(model.ClaimDateLayout, input)
	if err != nil {
		return time.Time{}, invalid("Invalid claim date. Please use YYYY-MM-DD.", err)
	}
	return date, nil
}
