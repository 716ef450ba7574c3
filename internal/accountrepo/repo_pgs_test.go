//go:build integration

package accountrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/integrationtest"
	"github.com/go-petr/bank-ledger/internal/integrationtest/helpers"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/randompkg"
	"github.com/shopspring/decimal"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name    string
		balance decimal.Decimal
		wantErr error
	}{
		{
			name:    "OK",
			balance: randompkg.MoneyAmountBetween(0, 10_000),
		},
		{
			name:    "ZeroBalance",
			balance: decimal.Zero,
		},
		{
			name:    "ConstraintViolation:accounts_balance_check",
			balance: decimal.RequireFromString("-1"),
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			accountRepo := accountrepo.NewRepoPGS(tx)

			got, err := accountRepo.Create(context.Background(), tc.balance)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf("accountRepo.Create(context.Background(), %v) returned error: %v", tc.balance, err)
			}

			if !got.Balance.Equal(tc.balance) {
				t.Errorf("got.Balance = %s, want %s", got.Balance, tc.balance)
			}

			if got.ID == 0 {
				t.Error("got.ID = 0, want non-zero")
			}

			if time.Since(got.CreatedAt) > time.Minute {
				t.Errorf("got.CreatedAt = %v, want recent", got.CreatedAt)
			}
		})
	}
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name        string
		wantAccount func(tx *sql.Tx) domain.Account
		wantErr     error
	}{
		{
			name: "OK",
			wantAccount: func(tx *sql.Tx) domain.Account {
				return helpers.SeedAccount(t, tx, randompkg.MoneyAmountBetween(0, 10_000))
			},
		},
		{
			name: "ErrAccountNotFound",
			wantAccount: func(tx *sql.Tx) domain.Account {
				return domain.Account{ID: -100500}
			},
			wantErr: domain.ErrAccountNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			want := tc.wantAccount(tx)
			accountRepo := accountrepo.NewRepoPGS(tx)

			got, err := accountRepo.Get(context.Background(), want.ID)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf("accountRepo.Get(context.Background(), %v) returned error: %v", want.ID, err)
			}

			if got.ID != want.ID || !got.Balance.Equal(want.Balance) {
				t.Errorf("got = %+v, want %+v", got, want)
			}
		})
	}
}

func TestGetForUpdate(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	want := helpers.SeedAccount(t, tx, randompkg.MoneyAmountBetween(0, 10_000))
	accountRepo := accountrepo.NewRepoPGS(tx)

	got, err := accountRepo.GetForUpdate(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("accountRepo.GetForUpdate(context.Background(), %v) returned error: %v", want.ID, err)
	}

	if got.ID != want.ID || !got.Balance.Equal(want.Balance) {
		t.Errorf("got = %+v, want %+v", got, want)
	}

	if _, err := accountRepo.GetForUpdate(context.Background(), -100500); err != domain.ErrAccountNotFound {
		t.Errorf("err = %v, want %v", err, domain.ErrAccountNotFound)
	}
}

func TestSetBalance(t *testing.T) {
	testCases := []struct {
		name       string
		newBalance decimal.Decimal
		account    func(tx *sql.Tx) domain.Account
		wantErr    error
	}{
		{
			name:       "OK",
			newBalance: decimal.RequireFromString("179.01"),
			account: func(tx *sql.Tx) domain.Account {
				return helpers.SeedAccount(t, tx, decimal.RequireFromString("200"))
			},
		},
		{
			name:       "ErrAccountNotFound",
			newBalance: decimal.RequireFromString("179.01"),
			account: func(tx *sql.Tx) domain.Account {
				return domain.Account{ID: -100500}
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name:       "ConstraintViolation:accounts_balance_check",
			newBalance: decimal.RequireFromString("-0.01"),
			account: func(tx *sql.Tx) domain.Account {
				return helpers.SeedAccount(t, tx, decimal.Zero)
			},
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			account := tc.account(tx)
			accountRepo := accountrepo.NewRepoPGS(tx)

			got, err := accountRepo.SetBalance(context.Background(), tc.newBalance, account.ID)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf("accountRepo.SetBalance(context.Background(), %v, %v) returned error: %v",
					tc.newBalance, account.ID, err)
			}

			if !got.Balance.Equal(tc.newBalance) {
				t.Errorf("got.Balance = %s, want %s", got.Balance, tc.newBalance)
			}
		})
	}
}
