package jsonfile

import (
	"context"
	"log/slog"

	"github.com/movements-ledger/internal/domain/deposit"
	"github.com/movements-ledger/internal/platform/persistence/jsonstore"
)

// DepositRepository implements deposit.Repository over a JSON file
type DepositRepository struct {
	store  *jsonstore.Store[deposit.Record]
	logger *slog.Logger
}

// NewDepositRepository creates a new JSON-file deposit repository
func NewDepositRepository(logger *slog.Logger, store *jsonstore.Store[deposit.Record]) deposit.Repository {
	return &DepositRepository{
		store:  store,
		logger: logger,
	}
}

// Add appends the record unconditionally.
func (r *DepositRepository) Add(ctx context.Context, record *deposit.Record) error {
	return r.store.Append(ctx, *record)
}

// List returns all persisted deposits in ledger order.
func (r *DepositRepository) List(ctx context.Context) ([]deposit.Record, error) {
	return r.store.Load(ctx)
}
