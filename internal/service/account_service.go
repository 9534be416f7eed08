// Package service orchestrates validation, record construction and store
// mutation for the three account movement operations.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/movements-ledger/internal/domain/balance"
	"github.com/movements-ledger/internal/domain/deposit"
	"github.com/movements-ledger/internal/domain/movement"
	"github.com/movements-ledger/internal/domain/transaction"
	"github.com/movements-ledger/internal/domain/transfer"
)

// ErrMissingField indicates a deposit input without a required key
var ErrMissingField = errors.New("missing field in deposit input")

// depositInput is the externally supplied deposit document. Pointer fields
// distinguish an absent key from an empty value.
type depositInput struct {
	IBAN   *string `json:"IBAN" validate:"required"`
	Amount *string `json:"AMOUNT" validate:"required"`
}

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	transfers    transfer.Repository
	deposits     deposit.Repository
	transactions transaction.Repository
	balances     balance.Repository
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewAccountService creates a new account service with its store dependencies
// injected by the caller.
func NewAccountService(
	logger *slog.Logger,
	transfers transfer.Repository,
	deposits deposit.Repository,
	transactions transaction.Repository,
	balances balance.Repository,
) AccountService {
	return &AccountServiceImpl{
		transfers:    transfers,
		deposits:     deposits,
		transactions: transactions,
		balances:     balances,
		validate:     validator.New(),
		logger:       logger,
	}
}

// SubmitTransfer validates the raw fields, builds the record and persists it.
// The first validation failure short-circuits; nothing is written on failure.
func (s *AccountServiceImpl) SubmitTransfer(ctx context.Context, request TransferRequest) (string, error) {
	logger := s.logger.With("correlation_id", uuid.NewString())

	record, err := transfer.New(
		request.FromIBAN,
		request.ToIBAN,
		request.Concept,
		request.Type,
		request.Date,
		request.Amount,
	)
	if err != nil {
		logger.Info("Transfer request rejected", "error", err)
		return "", err
	}

	if err := s.transfers.Add(ctx, record); err != nil {
		var dup transfer.ErrDuplicateTransfer
		if errors.As(err, &dup) {
			logger.Info("Duplicate transfer rejected", "transfer_code", record.Code)
		} else {
			logger.Error("Failed to persist transfer", "transfer_code", record.Code, "error", err)
		}
		return "", err
	}

	logger.Info("Transfer recorded",
		"transfer_code", record.Code,
		"from_iban", record.FromIBAN,
		"to_iban", record.ToIBAN,
		"amount", record.Amount.StringFixed(2),
	)
	return record.Code, nil
}

// SubmitDeposit decodes the externally supplied input, validates its fields
// and persists the deposit.
func (s *AccountServiceImpl) SubmitDeposit(ctx context.Context, input []byte) (string, error) {
	logger := s.logger.With("correlation_id", uuid.NewString())

	var in depositInput
	if err := json.Unmarshal(input, &in); err != nil {
		logger.Info("Deposit input rejected", "error", err)
		return "", fmt.Errorf("decode deposit input: %w", err)
	}

	// Missing keys fail before any field validation runs.
	if err := s.validate.Struct(in); err != nil {
		logger.Info("Deposit input rejected", "error", err)
		return "", fmt.Errorf("%w: %v", ErrMissingField, err)
	}

	iban, err := movement.ValidateIBAN(*in.IBAN)
	if err != nil {
		logger.Info("Deposit rejected", "error", err)
		return "", err
	}
	amount, err := movement.ValidateDepositAmount(*in.Amount)
	if err != nil {
		logger.Info("Deposit rejected", "iban", iban, "error", err)
		return "", err
	}

	record := deposit.New(iban, amount)
	if err := s.deposits.Add(ctx, record); err != nil {
		logger.Error("Failed to persist deposit", "deposit_signature", record.Signature, "error", err)
		return "", err
	}

	logger.Info("Deposit recorded",
		"deposit_signature", record.Signature,
		"to_iban", record.ToIBAN,
		"amount", record.Amount.StringFixed(2),
	)
	return record.Signature, nil
}

// ComputeBalance sums the signed amounts of all transactions for the IBAN and
// appends one snapshot. An IBAN with zero transaction history is reported as
// not found; nothing is appended in that case.
func (s *AccountServiceImpl) ComputeBalance(ctx context.Context, iban string) (*balance.Snapshot, error) {
	logger := s.logger.With("correlation_id", uuid.NewString())

	validIBAN, err := movement.ValidateIBAN(iban)
	if err != nil {
		logger.Info("Balance request rejected", "error", err)
		return nil, err
	}

	entries, err := s.transactions.FindByIBAN(ctx, validIBAN)
	if err != nil {
		logger.Error("Failed to read transactions", "iban", validIBAN, "error", err)
		return nil, err
	}
	if len(entries) == 0 {
		logger.Info("No transactions for IBAN", "iban", validIBAN)
		return nil, balance.ErrAccountNotFound{IBAN: validIBAN}
	}

	total := decimal.Zero
	for _, entry := range entries {
		amount, err := entry.SignedAmount()
		if err != nil {
			logger.Error("Unparseable transaction entry", "iban", validIBAN, "error", err)
			return nil, err
		}
		total = total.Add(amount)
	}

	snapshot := balance.NewSnapshot(validIBAN, total)
	if err := s.balances.Add(ctx, snapshot); err != nil {
		logger.Error("Failed to persist balance snapshot", "iban", validIBAN, "error", err)
		return nil, err
	}

	logger.Info("Balance computed",
		"iban", validIBAN,
		"balance", total.StringFixed(2),
		"entries", len(entries),
	)
	return snapshot, nil
}
