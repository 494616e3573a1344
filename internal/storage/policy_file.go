package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/onestop/osic/internal/common"
	"github.com/onestop/osic/internal/model"
	"github.com/onestop/osic/internal/validation"
)

// RecordSeparator terminates every record in the policy file.
var RecordSeparator = strings.Repeat("-", 52)

// PolicyFile appends human-readable policy records to a text file.
type PolicyFile struct {
	path string
	mu   sync.Mutex
}

// NewPolicyFile creates a policy file writer, creating the parent directory if needed.
func NewPolicyFile(path string) (*PolicyFile, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create policy directory: %w", err)
	}

	return &PolicyFile{path: path}, nil
}

// Path returns the location of the policy file.
func (p *PolicyFile) Path() string {
	return p.path
}

// AppendPolicyRecord writes record as a new block at the end of the file.
func (p *PolicyFile) AppendPolicyRecord(ctx context.Context, record model.PolicyRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateRecord(&record); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrRecordWrite, err)
	}

	if _, err := f.WriteString(FormatPolicyRecord(record)); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", common.ErrRecordWrite, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrRecordWrite, err)
	}

	return nil
}

// FormatPolicyRecord renders the text block written for a record.
func FormatPolicyRecord(record model.PolicyRecord) string {
	c := record.Customer

	var b strings.Builder
	fmt.Fprintf(&b, "Policy Number: %d\n", record.PolicyNumber)
	fmt.Fprintf(&b, "Customer Name: %s\n", c.FullName())
	fmt.Fprintf(&b, "Address: %s, %s, %s, %s\n", c.Address, c.City, c.Province, c.PostalCode)
	fmt.Fprintf(&b, "Phone Number: %s\n", validation.FormatPhoneNumber(c.Phone))
	fmt.Fprintf(&b, "Number of Cars: %d\n", record.Coverage.NumCars)
	fmt.Fprintf(&b, "Extra Liability: %s\n", record.Coverage.Liability)
	fmt.Fprintf(&b, "Glass Coverage: %s\n", record.Coverage.GlassCoverage)
	fmt.Fprintf(&b, "Loaner Car: %s\n", record.Coverage.LoanerCar)
	fmt.Fprintf(&b, "Payment Method: %s\n", record.PaymentMethod)
	if record.HasDownPayment() {
		fmt.Fprintf(&b, "Down Payment: $%s\n", record.DownPayment.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total Premium (pre-tax): $%s\n", record.Quote.TotalPremium.StringFixed(2))
	b.WriteString(RecordSeparator + "\n")

	return b.String()
}
