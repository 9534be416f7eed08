// Package transaction models the external transactions ledger. This module
// only reads it; entries are produced by an upstream component.
package transaction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one raw ledger transaction. Amount is a signed, string-parseable
// decimal as written by the producer.
type Entry struct {
	IBAN   string `json:"IBAN"`
	Amount string `json:"amount"`
}

// SignedAmount parses the entry amount for aggregation.
func (e Entry) SignedAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(e.Amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable transaction amount %q for %s: %w", e.Amount, e.IBAN, err)
	}
	return amount, nil
}
