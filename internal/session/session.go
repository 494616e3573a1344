// Package session drives the policy entry loop: prompting, pricing, receipt and record.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/onestop/osic/internal/common"
	"github.com/onestop/osic/internal/model"
	"github.com/onestop/osic/internal/service"
	"github.com/shopspring/decimal"
)

// Session runs policy transactions one after another.
type Session struct {
	prompter service.Prompter
	pricer   service.Pricer
	writer   service.RecordWriter
	onSaved  func(model.PolicyRecord)
}

// Option configures a Session.
type Option func(*Session)

// WithSavedHook registers a function called after each record is written.
func WithSavedHook(fn func(model.PolicyRecord)) Option {
	return func(s *Session) {
		s.onSaved = fn
	}
}

// New creates a session from its collaborators.
func New(prompter service.Prompter, pricer service.Pricer, writer service.RecordWriter, opts ...Option) *Session {
	s := &Session{
		prompter: prompter,
		pricer:   pricer,
		writer:   writer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary describes a finished session.
type Summary struct {
	PoliciesWritten  int
	NextPolicyNumber int
}

// Run enters policies starting at firstPolicyNumber until the operator declines
// another customer. The next policy number is kept in memory only.
func (s *Session) Run(ctx context.Context, firstPolicyNumber int) (Summary, error) {
	summary := Summary{NextPolicyNumber: firstPolicyNumber}

	for {
		next, err := s.RunOnce(ctx, summary.NextPolicyNumber)
		if err != nil {
			return summary, err
		}
		summary.NextPolicyNumber = next
		summary.PoliciesWritten++

		another, err := s.prompter.ConfirmAnother(ctx)
		if err != nil {
			return summary, err
		}
		if !another {
			return summary, nil
		}
	}
}

// RunOnce enters, prices, shows and records a single policy under policyNumber
// and returns the policy number to use next.
func (s *Session) RunOnce(ctx context.Context, policyNumber int) (int, error) {
	record, err := s.collect(ctx, policyNumber)
	if err != nil {
		return policyNumber, err
	}

	if err := s.prompter.ShowReceipt(record); err != nil {
		return policyNumber, err
	}
	if err := s.prompter.ShowSaving(ctx); err != nil {
		return policyNumber, err
	}

	if err := s.writer.AppendPolicyRecord(ctx, record); err != nil {
		return policyNumber, common.NewUserError(
			fmt.Sprintf("Policy %d could not be saved", policyNumber), err)
	}

	slog.Debug("Policy recorded",
		"policy_number", policyNumber,
		"payment_method", record.PaymentMethod,
		"total_premium", record.Quote.TotalPremium.StringFixed(2))

	if s.onSaved != nil {
		s.onSaved(record)
	}

	return policyNumber + 1, nil
}

func (s *Session) collect(ctx context.Context, policyNumber int) (model.PolicyRecord, error) {
	customer, err := s.prompter.PromptCustomer(ctx)
	if err != nil {
		return model.PolicyRecord{}, err
	}

	coverage, err := s.prompter.PromptCoverage(ctx)
	if err != nil {
		return model.PolicyRecord{}, err
	}

	method, err := s.prompter.PromptPaymentMethod(ctx)
	if err != nil {
		return model.PolicyRecord{}, err
	}

	downPayment := decimal.Zero
	if method.RequiresDownPayment() {
		// The premium does not depend on the down payment, so price first to bound it.
		preview := s.pricer.Quote(coverage, method, decimal.Zero)
		downPayment, err = s.prompter.PromptDownPayment(ctx, s.pricer.MaxDownPayment(preview.TotalCost))
		if err != nil {
			return model.PolicyRecord{}, err
		}
	}

	claims, err := s.prompter.PromptClaims(ctx)
	if err != nil {
		return model.PolicyRecord{}, err
	}

	return model.PolicyRecord{
		PolicyNumber:  policyNumber,
		Customer:      customer,
		Coverage:      coverage,
		PaymentMethod: method,
		DownPayment:   downPayment,
		Claims:        claims,
		Quote:         s.pricer.Quote(coverage, method, downPayment),
	}, nil
}
