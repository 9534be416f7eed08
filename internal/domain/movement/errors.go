// Package movement holds the validated value types shared by every account
// movement: IBANs, concepts, transfer types, value dates and amounts. Each
// validator is a pure function returning the typed value or a rejection.
package movement

import "errors"

// Validation errors
var (
	ErrInvalidFormat        = errors.New("invalid IBAN format")
	ErrInvalidChecksum      = errors.New("invalid IBAN control digit")
	ErrInvalidConcept       = errors.New("invalid concept format")
	ErrInvalidType          = errors.New("invalid transfer type")
	ErrInvalidDate          = errors.New("invalid transfer date")
	ErrInvalidAmount        = errors.New("invalid transfer amount")
	ErrInvalidDepositAmount = errors.New("invalid deposit amount")
)
