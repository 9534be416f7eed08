package balance

import "context"

// Repository defines balance snapshot persistence. Snapshots append
// unconditionally; every computation is a new observation.
type Repository interface {
	Add(ctx context.Context, snapshot *Snapshot) error

	// List returns all persisted snapshots in ledger order.
	List(ctx context.Context) ([]Snapshot, error)
}

// ErrAccountNotFound indicates an IBAN with no transaction history
type ErrAccountNotFound struct {
	IBAN string
}

func (e ErrAccountNotFound) Error() string {
	return "no transactions found for IBAN: " + e.IBAN
}
