package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/movements-ledger/internal/config"
	"github.com/movements-ledger/internal/data/jsonfile"
	"github.com/movements-ledger/internal/domain/balance"
	"github.com/movements-ledger/internal/domain/deposit"
	"github.com/movements-ledger/internal/domain/transaction"
	"github.com/movements-ledger/internal/domain/transfer"
	"github.com/movements-ledger/internal/logger"
	"github.com/movements-ledger/internal/platform/persistence/jsonstore"
	"github.com/movements-ledger/internal/service"
)

const usage = `usage: movements <command> [flags]

commands:
  transfer  -from IBAN -to IBAN -concept TEXT -type TYPE -date DD/MM/YYYY -amount N
  deposit   -input FILE
  balance   -iban IBAN
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig("movements")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	if err := os.MkdirAll(cfg.Stores.Dir, 0o755); err != nil {
		log.Error("Failed to create stores directory", "dir", cfg.Stores.Dir, "error", err)
		os.Exit(1)
	}

	// Initialize stores, one file per ledger
	transferStore, err := jsonstore.New[transfer.Record](log, cfg.Stores.TransfersPath())
	if err != nil {
		log.Error("Failed to initialize transfer store", "error", err)
		os.Exit(1)
	}
	defer transferStore.Close()

	depositStore, err := jsonstore.New[deposit.Record](log, cfg.Stores.DepositsPath())
	if err != nil {
		log.Error("Failed to initialize deposit store", "error", err)
		os.Exit(1)
	}
	defer depositStore.Close()

	transactionStore, err := jsonstore.New[transaction.Entry](log, cfg.Stores.TransactionsPath())
	if err != nil {
		log.Error("Failed to initialize transaction store", "error", err)
		os.Exit(1)
	}
	defer transactionStore.Close()

	balanceStore, err := jsonstore.New[balance.Snapshot](log, cfg.Stores.BalancesPath())
	if err != nil {
		log.Error("Failed to initialize balance store", "error", err)
		os.Exit(1)
	}
	defer balanceStore.Close()

	// Initialize repositories and the account service
	accountService := service.NewAccountService(
		log,
		jsonfile.NewTransferRepository(log, transferStore),
		jsonfile.NewDepositRepository(log, depositStore),
		jsonfile.NewTransactionRepository(log, transactionStore),
		jsonfile.NewBalanceRepository(log, balanceStore),
	)

	ctx := context.Background()

	switch os.Args[1] {
	case "transfer":
		err = runTransfer(ctx, accountService, os.Args[2:])
	case "deposit":
		err = runDeposit(ctx, accountService, os.Args[2:])
	case "balance":
		err = runBalance(ctx, accountService, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runTransfer(ctx context.Context, svc service.AccountService, args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	var req service.TransferRequest
	fs.StringVar(&req.FromIBAN, "from", "", "ordering IBAN")
	fs.StringVar(&req.ToIBAN, "to", "", "beneficiary IBAN")
	fs.StringVar(&req.Concept, "concept", "", "transfer concept")
	fs.StringVar(&req.Type, "type", "", "transfer type (ORDINARY, IMMEDIATE, URGENT)")
	fs.StringVar(&req.Date, "date", "", "value date DD/MM/YYYY")
	fs.StringVar(&req.Amount, "amount", "", "amount in EUR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	code, err := svc.SubmitTransfer(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println(code)
	return nil
}

func runDeposit(ctx context.Context, svc service.AccountService, args []string) error {
	fs := flag.NewFlagSet("deposit", flag.ExitOnError)
	inputPath := fs.String("input", "", "path of the deposit input file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := os.ReadFile(*inputPath)
	if err != nil {
		return fmt.Errorf("read deposit input: %w", err)
	}

	signature, err := svc.SubmitDeposit(ctx, input)
	if err != nil {
		return err
	}
	fmt.Println(signature)
	return nil
}

func runBalance(ctx context.Context, svc service.AccountService, args []string) error {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	iban := fs.String("iban", "", "account IBAN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	snapshot, err := svc.ComputeBalance(ctx, *iban)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", snapshot.IBAN, snapshot.Balance.StringFixed(2))
	return nil
}
