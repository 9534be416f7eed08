// Package balance defines the balance snapshot produced by each balance
// computation and its append-only persistence contract.
package balance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot records one balance observation for an IBAN. Time is a Unix epoch
// with fractional seconds.
type Snapshot struct {
	IBAN    string          `json:"IBAN"`
	Time    float64         `json:"time"`
	Balance decimal.Decimal `json:"BALANCE"`
}

// NewSnapshot builds a snapshot for the given IBAN and aggregated balance at
// the current UTC instant.
func NewSnapshot(iban string, total decimal.Decimal) *Snapshot {
	return &Snapshot{
		IBAN:    iban,
		Time:    float64(time.Now().UTC().UnixMicro()) / 1e6,
		Balance: total,
	}
}
