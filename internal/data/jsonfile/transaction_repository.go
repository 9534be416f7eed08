package jsonfile

import (
	"context"
	"log/slog"

	"github.com/movements-ledger/internal/domain/transaction"
	"github.com/movements-ledger/internal/platform/persistence/jsonstore"
)

// TransactionRepository implements transaction.Repository over a JSON file.
// The file is owned by an external producer; this repository never writes it.
type TransactionRepository struct {
	store  *jsonstore.Store[transaction.Entry]
	logger *slog.Logger
}

// NewTransactionRepository creates a new JSON-file transaction repository
func NewTransactionRepository(logger *slog.Logger, store *jsonstore.Store[transaction.Entry]) transaction.Repository {
	return &TransactionRepository{
		store:  store,
		logger: logger,
	}
}

// FindByIBAN returns all entries whose IBAN matches, preserving ledger order.
func (r *TransactionRepository) FindByIBAN(ctx context.Context, iban string) ([]transaction.Entry, error) {
	entries, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var matches []transaction.Entry
	for _, entry := range entries {
		if entry.IBAN == iban {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}
