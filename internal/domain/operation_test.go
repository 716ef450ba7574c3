package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseOperationType(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      OperationType
		wantError error
	}{
		{name: "Debit", input: "DEBIT", want: Debit},
		{name: "Credit", input: "CREDIT", want: Credit},
		{name: "Empty", input: "", wantError: ErrInvalidOperationType},
		{name: "Unknown", input: "TRANSFER", wantError: ErrInvalidOperationType},
		{name: "Lowercase", input: "debit", wantError: ErrInvalidOperationType},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseOperationType(tc.input)

			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNewOperation(t *testing.T) {
	account := Account{ID: 7, Balance: mustDecimal(t, "179.01")}
	amount := mustDecimal(t, "20.99")

	op := NewOperation(account, Credit, amount)

	require.Equal(t, account.ID, op.AccountID)
	require.Equal(t, Credit, op.Type)
	require.True(t, op.Amount.Equal(amount))
	require.True(t, op.BalanceAfter.Equal(account.Balance))
	require.WithinDuration(t, time.Now().UTC(), op.OccurredAt, time.Second)
}
