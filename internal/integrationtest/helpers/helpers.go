// Package helpers provides seeders shared by integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/operationrepo"
	"github.com/go-petr/bank-ledger/pkg/dbpkg"
	"github.com/go-petr/bank-ledger/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// SeedAccount creates an account with the given balance inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, balance decimal.Decimal) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), balance)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v) returned error: %v", balance, err)
	}

	return account
}

// SeedOperation creates a ledger entry for the account inside a test transaction.
func SeedOperation(t *testing.T, tx dbpkg.SQLInterface, account domain.Account, opType domain.OperationType, amount decimal.Decimal) domain.Operation {
	t.Helper()

	operationRepo := operationrepo.NewTxRepoPGS(tx)

	operation, err := operationRepo.Create(context.Background(), domain.NewOperation(account, opType, amount))
	if err != nil {
		t.Fatalf("operationRepo.Create(context.Background(), ...) returned error: %v", err)
	}

	return operation
}

// SeedOperations creates ledger entries with random amounts inside a test transaction.
func SeedOperations(t *testing.T, tx dbpkg.SQLInterface, account domain.Account, count int) []domain.Operation {
	t.Helper()

	operations := make([]domain.Operation, count)

	for i := range operations {
		operations[i] = SeedOperation(t, tx, account, domain.Debit, randompkg.MoneyAmountBetween(1, 1_000))
	}

	return operations
}
