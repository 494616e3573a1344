package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer holds the contact details collected for a policy.
// Province and PostalCode are stored upper-cased; Phone holds the raw 10 digits.
type Customer struct {
	FirstName  string
	LastName   string
	Address    string
	City       string
	Province   string
	PostalCode string
	Phone      string
}

// FullName returns the first and last name separated by a space.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ClaimDateLayout is the layout claim dates are entered and printed in.
const ClaimDateLayout = "2006-01-02"

// Claim is a previous insurance claim reported by the customer.
type Claim struct {
	Date   time.Time
	Number string
	Amount decimal.Decimal
}
