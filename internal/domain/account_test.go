package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestDebit(t *testing.T) {
	testCases := []struct {
		name        string
		balance     string
		amount      string
		wantBalance string
		wantError   error
	}{
		{
			name:        "OK",
			balance:     "0",
			amount:      "200.00",
			wantBalance: "200",
		},
		{
			name:        "ZeroAmount",
			balance:     "10.50",
			amount:      "0",
			wantBalance: "10.5",
		},
		{
			name:        "ExactCents",
			balance:     "0.10",
			amount:      "0.20",
			wantBalance: "0.3",
		},
		{
			name:        "NegativeAmount",
			balance:     "200.00",
			amount:      "-1",
			wantBalance: "200",
			wantError:   ErrInvalidAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			account := Account{ID: 1, Balance: mustDecimal(t, tc.balance)}

			err := account.Debit(mustDecimal(t, tc.amount))

			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
			} else {
				require.NoError(t, err)
			}

			require.True(t, account.Balance.Equal(mustDecimal(t, tc.wantBalance)),
				"balance = %s, want %s", account.Balance, tc.wantBalance)
		})
	}
}

func TestCredit(t *testing.T) {
	testCases := []struct {
		name        string
		balance     string
		amount      string
		wantBalance string
		wantError   error
	}{
		{
			name:        "OK",
			balance:     "200.00",
			amount:      "20.99",
			wantBalance: "179.01",
		},
		{
			name:        "FullBalance",
			balance:     "99.99",
			amount:      "99.99",
			wantBalance: "0",
		},
		{
			name:        "NegativeAmount",
			balance:     "200.00",
			amount:      "-1",
			wantBalance: "200",
			wantError:   ErrInvalidAmount,
		},
		{
			name:        "InsufficientBalance",
			balance:     "0",
			amount:      "1.00",
			wantBalance: "0",
			wantError:   ErrInsufficientBalance,
		},
		{
			name:        "InsufficientByOneCent",
			balance:     "100.00",
			amount:      "100.01",
			wantBalance: "100",
			wantError:   ErrInsufficientBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			account := Account{ID: 1, Balance: mustDecimal(t, tc.balance)}

			err := account.Credit(mustDecimal(t, tc.amount))

			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
			} else {
				require.NoError(t, err)
			}

			require.True(t, account.Balance.Equal(mustDecimal(t, tc.wantBalance)),
				"balance = %s, want %s", account.Balance, tc.wantBalance)
		})
	}
}

func TestDebitCreditRoundTrip(t *testing.T) {
	account := Account{ID: 1, Balance: mustDecimal(t, "57.31")}
	amount := mustDecimal(t, "13.07")

	require.NoError(t, account.Debit(amount))
	require.NoError(t, account.Credit(amount))

	require.True(t, account.Balance.Equal(mustDecimal(t, "57.31")))
}
