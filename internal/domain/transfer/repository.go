package transfer

import "context"

// Repository defines transfer persistence operations
type Repository interface {
	// Add appends a transfer to the ledger.
	// Returns ErrDuplicateTransfer if a record with the same business fields exists.
	Add(ctx context.Context, record *Record) error

	// List returns all persisted transfers in ledger order.
	List(ctx context.Context) ([]Record, error)
}

// ErrDuplicateTransfer indicates a transfer whose business fields are already persisted
type ErrDuplicateTransfer struct {
	Code string
}

func (e ErrDuplicateTransfer) Error() string {
	return "duplicated transfer in transfer ledger: " + e.Code
}
