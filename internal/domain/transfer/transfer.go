// Package transfer defines the account-to-account transfer record and its
// persistence contract.
package transfer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/movements-ledger/internal/domain/movement"
)

const codeAlgorithm = "SHA-256"

// Record is an immutable, validated transfer. Code is derived from the
// business fields and never enters duplicate comparison.
type Record struct {
	FromIBAN string                `json:"from_iban"`
	ToIBAN   string                `json:"to_iban"`
	Concept  string                `json:"transfer_concept"`
	Type     movement.TransferType `json:"transfer_type"`
	Date     string                `json:"transfer_date"`
	Amount   decimal.Decimal       `json:"transfer_amount"`
	Code     string                `json:"transfer_code"`
}

// New validates the raw fields in order (from IBAN, to IBAN, concept, type,
// date, amount), short-circuiting on the first failure, and assembles the
// record with its derived transfer code. No partial record is ever built.
func New(fromIBAN, toIBAN, concept, transferType, date, amount string) (*Record, error) {
	from, err := movement.ValidateIBAN(fromIBAN)
	if err != nil {
		return nil, err
	}
	to, err := movement.ValidateIBAN(toIBAN)
	if err != nil {
		return nil, err
	}
	validConcept, err := movement.ValidateConcept(concept)
	if err != nil {
		return nil, err
	}
	validType, err := movement.ParseTransferType(transferType)
	if err != nil {
		return nil, err
	}
	validDate, err := movement.ValidateTransferDate(date)
	if err != nil {
		return nil, err
	}
	validAmount, err := movement.ValidateTransferAmount(amount)
	if err != nil {
		return nil, err
	}

	r := &Record{
		FromIBAN: from,
		ToIBAN:   to,
		Concept:  validConcept,
		Type:     validType,
		Date:     validDate,
		Amount:   validAmount,
	}
	r.Code = r.deriveCode()
	return r, nil
}

// deriveCode hashes the canonical field string. Identical business fields
// always produce an identical code.
func (r *Record) deriveCode() string {
	canonical := fmt.Sprintf(
		"{alg:%s,typ:TRANSFER,from_iban:%s,to_iban:%s,concept:%s,transfer_type:%s,transfer_date:%s,amount:%s}",
		codeAlgorithm, r.FromIBAN, r.ToIBAN, r.Concept, r.Type, r.Date, r.Amount.StringFixed(2),
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// SameBusinessFields reports whether two records are duplicates: all business
// fields equal, the derived code excluded.
func (r *Record) SameBusinessFields(other *Record) bool {
	return r.FromIBAN == other.FromIBAN &&
		r.ToIBAN == other.ToIBAN &&
		r.Concept == other.Concept &&
		r.Type == other.Type &&
		r.Date == other.Date &&
		r.Amount.Equal(other.Amount)
}
