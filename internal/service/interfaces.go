package service

import (
	"context"

	"github.com/movements-ledger/internal/domain/balance"
)

// TransferRequest carries the raw fields of a transfer submission. All
// validation happens inside the service; every field arrives as supplied by
// the caller.
type TransferRequest struct {
	FromIBAN string
	ToIBAN   string
	Concept  string
	Type     string
	Date     string
	Amount   string
}

// AccountService defines the interface for account movement operations
type AccountService interface {
	// SubmitTransfer validates the request, persists the transfer and
	// returns its derived code.
	// Returns transfer.ErrDuplicateTransfer if the business fields are
	// already persisted.
	SubmitTransfer(ctx context.Context, request TransferRequest) (string, error)

	// SubmitDeposit decodes an externally supplied {"IBAN":…, "AMOUNT":…}
	// document, validates both fields, persists the deposit and returns its
	// signature.
	// Returns ErrMissingField if either key is absent.
	SubmitDeposit(ctx context.Context, input []byte) (string, error)

	// ComputeBalance aggregates the transaction history of the IBAN and
	// appends one balance snapshot.
	// Returns balance.ErrAccountNotFound if no transaction mentions the IBAN.
	ComputeBalance(ctx context.Context, iban string) (*balance.Snapshot, error)
}
