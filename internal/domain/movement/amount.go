package movement

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	transferAmountMin = decimal.NewFromInt(10)
	transferAmountMax = decimal.NewFromInt(10000)
)

// Deposit amounts arrive as a literal "EUR DDDD.DD" string.
var depositAmountPattern = regexp.MustCompile(`^EUR [0-9]{4}\.[0-9]{2}$`)

// ValidateTransferAmount validates a transfer amount: numeric, at most two
// decimal digits, inside the closed range [10.00, 10000.00].
func ValidateTransferAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("%w: %q has more than 2 decimal digits", ErrInvalidAmount, raw)
	}
	if amount.LessThan(transferAmountMin) || amount.GreaterThan(transferAmountMax) {
		return decimal.Zero, fmt.Errorf("%w: %s outside [10.00, 10000.00]", ErrInvalidAmount, amount.StringFixed(2))
	}
	return amount, nil
}

// ValidateDepositAmount validates a deposit amount: literal "EUR DDDD.DD"
// with a numeric value strictly greater than zero.
func ValidateDepositAmount(raw string) (decimal.Decimal, error) {
	if !depositAmountPattern.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidDepositAmount, raw)
	}
	amount, err := decimal.NewFromString(raw[len("EUR "):])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidDepositAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: deposit must be greater than 0", ErrInvalidDepositAmount)
	}
	return amount, nil
}
