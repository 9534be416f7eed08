package jsonfile

import (
	"context"
	"log/slog"

	"github.com/movements-ledger/internal/domain/balance"
	"github.com/movements-ledger/internal/platform/persistence/jsonstore"
)

// BalanceRepository implements balance.Repository over a JSON file
type BalanceRepository struct {
	store  *jsonstore.Store[balance.Snapshot]
	logger *slog.Logger
}

// NewBalanceRepository creates a new JSON-file balance repository
func NewBalanceRepository(logger *slog.Logger, store *jsonstore.Store[balance.Snapshot]) balance.Repository {
	return &BalanceRepository{
		store:  store,
		logger: logger,
	}
}

// Add appends the snapshot unconditionally. Snapshots are never deduplicated.
func (r *BalanceRepository) Add(ctx context.Context, snapshot *balance.Snapshot) error {
	return r.store.Append(ctx, *snapshot)
}

// List returns all persisted snapshots in ledger order.
func (r *BalanceRepository) List(ctx context.Context) ([]balance.Snapshot, error) {
	return r.store.Load(ctx)
}
