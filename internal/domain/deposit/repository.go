package deposit

import "context"

// Repository defines deposit persistence operations. Deposits append
// unconditionally; the timestamped signature already distinguishes records.
type Repository interface {
	Add(ctx context.Context, record *Record) error

	// List returns all persisted deposits in ledger order.
	List(ctx context.Context) ([]Record, error)
}
