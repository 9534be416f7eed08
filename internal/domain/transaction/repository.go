package transaction

import "context"

// Repository defines read-only access to the external transactions ledger
type Repository interface {
	// FindByIBAN returns all entries for the given IBAN, preserving ledger order.
	FindByIBAN(ctx context.Context, iban string) ([]Entry, error)
}
