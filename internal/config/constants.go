package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/onestop/osic/internal/common"
	"github.com/onestop/osic/internal/model"
	"github.com/shopspring/decimal"
)

// constantNames lists the constants file entries in the order they appear.
var constantNames = []string{
	"next policy number",
	"basic premium",
	"discount rate",
	"liability cost",
	"glass coverage cost",
	"loaner car cost",
	"HST rate",
	"processing fee",
}

// maxPolicyNumber keeps policy numbers within a 32-bit int on every platform.
var maxPolicyNumber = decimal.NewFromInt(math.MaxInt32)

// ConstantCount is the number of values a constants file must hold.
var ConstantCount = len(constantNames)

// LoadConstants reads the pricing constants file at path.
func LoadConstants(path string) (model.PricingConstants, error) {
	f, err := os.Open(ExpandPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.PricingConstants{}, fmt.Errorf("%w: constants file %s not found", common.ErrMissingConfig, path)
		}
		return model.PricingConstants{}, fmt.Errorf("failed to open constants file: %w", err)
	}
	defer func() { _ = f.Close() }()

	constants, err := ParseConstants(f)
	if err != nil {
		return model.PricingConstants{}, fmt.Errorf("constants file %s: %w", path, err)
	}
	return constants, nil
}

// ParseConstants reads one number per line in the fixed constants order.
// Blank lines are ignored; any other deviation is an error.
func ParseConstants(r io.Reader) (model.PricingConstants, error) {
	values := make([]decimal.Decimal, 0, ConstantCount)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if len(values) == ConstantCount {
			return model.PricingConstants{}, fmt.Errorf("%w: expected %d values, found more at line %d",
				common.ErrInvalidConfig, ConstantCount, line)
		}

		name := constantNames[len(values)]
		value, err := decimal.NewFromString(text)
		if err != nil {
			return model.PricingConstants{}, fmt.Errorf("%w: line %d (%s) is not a number: %q",
				common.ErrInvalidConfig, line, name, text)
		}
		if value.IsNegative() {
			return model.PricingConstants{}, fmt.Errorf("%w: line %d (%s) must not be negative",
				common.ErrInvalidConfig, line, name)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return model.PricingConstants{}, fmt.Errorf("failed to read constants: %w", err)
	}

	if len(values) != ConstantCount {
		return model.PricingConstants{}, fmt.Errorf("%w: expected %d values, found %d",
			common.ErrInvalidConfig, ConstantCount, len(values))
	}

	policy := values[0]
	if !policy.IsInteger() || !policy.IsPositive() {
		return model.PricingConstants{}, fmt.Errorf("%w: next policy number must be a positive whole number, got %s",
			common.ErrInvalidConfig, policy)
	}

	if policy.GreaterThan(maxPolicyNumber) {
		return model.PricingConstants{}, fmt.Errorf("%w: next policy number %s exceeds %s",
			common.ErrInvalidConfig, policy, maxPolicyNumber)
	}

	return model.PricingConstants{
		NextPolicyNumber:  int(policy.IntPart()),
		BasicPremium:      values[1],
		DiscountRate:      values[2],
		LiabilityCost:     values[3],
		GlassCoverageCost: values[4],
		LoanerCarCost:     values[5],
		HSTRate:           values[6],
		ProcessingFee:     values[7],
	}, nil
}
