// Package jsonfile implements the domain repository interfaces on top of the
// generic JSON store, one backing file per repository.
package jsonfile

import (
	"context"
	"log/slog"

	"github.com/movements-ledger/internal/domain/transfer"
	"github.com/movements-ledger/internal/platform/persistence/jsonstore"
)

// TransferRepository implements transfer.Repository over a JSON file
type TransferRepository struct {
	store  *jsonstore.Store[transfer.Record]
	logger *slog.Logger
}

// NewTransferRepository creates a new JSON-file transfer repository
func NewTransferRepository(logger *slog.Logger, store *jsonstore.Store[transfer.Record]) transfer.Repository {
	return &TransferRepository{
		store:  store,
		logger: logger,
	}
}

// Add appends the record unless a persisted record shares all its business
// fields. The scan and the append run inside the store's serialized section,
// so no concurrent submission can slip between them.
func (r *TransferRepository) Add(ctx context.Context, record *transfer.Record) error {
	return r.store.Update(ctx, func(items []transfer.Record) ([]transfer.Record, error) {
		for i := range items {
			if items[i].SameBusinessFields(record) {
				r.logger.Info("Rejected duplicate transfer", "transfer_code", record.Code)
				return nil, transfer.ErrDuplicateTransfer{Code: record.Code}
			}
		}
		return append(items, *record), nil
	})
}

// List returns all persisted transfers in ledger order.
func (r *TransferRepository) List(ctx context.Context) ([]transfer.Record, error) {
	return r.store.Load(ctx)
}
