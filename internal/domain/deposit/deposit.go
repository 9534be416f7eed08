// Package deposit defines the incoming deposit record and its persistence
// contract.
package deposit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	signatureAlgorithm = "SHA-256"
	recordType         = "DEPOSIT"
)

// Record is an immutable deposit. Date is the creation instant as a Unix
// epoch with fractional seconds; because it enters the signature, two
// deposits with identical business fields are still distinct records.
type Record struct {
	Alg       string          `json:"alg"`
	Type      string          `json:"type"`
	ToIBAN    string          `json:"to_iban"`
	Amount    decimal.Decimal `json:"deposit_amount"`
	Date      float64         `json:"deposit_date"`
	Signature string          `json:"deposit_signature"`
}

// New builds a deposit record for an already validated IBAN and amount,
// capturing the current UTC instant and deriving the signature.
func New(toIBAN string, amount decimal.Decimal) *Record {
	now := time.Now().UTC()
	return newAt(toIBAN, amount, float64(now.UnixMicro())/1e6)
}

func newAt(toIBAN string, amount decimal.Decimal, date float64) *Record {
	r := &Record{
		Alg:    signatureAlgorithm,
		Type:   recordType,
		ToIBAN: toIBAN,
		Amount: amount,
		Date:   date,
	}
	r.Signature = r.deriveSignature()
	return r
}

func (r *Record) deriveSignature() string {
	canonical := fmt.Sprintf(
		"{alg:%s,typ:%s,iban:%s,amount:%s,deposit_date:%s}",
		r.Alg, r.Type, r.ToIBAN, r.Amount.StringFixed(2),
		strconv.FormatFloat(r.Date, 'f', -1, 64),
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
