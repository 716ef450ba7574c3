package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidOperationType indicates a missing or unrecognized operation type.
	ErrInvalidOperationType = errors.New("invalid operation type")
	// ErrNoOperationsFound indicates that the account has no recorded operations.
	ErrNoOperationsFound = errors.New("no operations found")
)

// OperationType distinguishes the two balance-changing operations.
// DEBIT increases the account balance, CREDIT decreases it.
type OperationType string

// Constants for all supported operation types.
const (
	Debit  OperationType = "DEBIT"
	Credit OperationType = "CREDIT"
)

// ParseOperationType converts the wire representation of an operation type.
func ParseOperationType(s string) (OperationType, error) {
	switch OperationType(s) {
	case Debit, Credit:
		return OperationType(s), nil
	default:
		return "", ErrInvalidOperationType
	}
}

// Operation is an immutable ledger entry recording one balance change
// and the balance that resulted from it.
type Operation struct {
	ID           int64           `json:"id"`
	AccountID    int64           `json:"account_id"`
	Type         OperationType   `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// NewOperation builds the ledger entry for an already mutated account.
// BalanceAfter snapshots the balance observed at call time.
func NewOperation(account Account, opType OperationType, amount decimal.Decimal) Operation {
	return Operation{
		AccountID:    account.ID,
		Type:         opType,
		Amount:       amount,
		BalanceAfter: account.Balance,
		OccurredAt:   time.Now().UTC(),
	}
}

// PerformOperationParams is the input data for the operation transaction.
type PerformOperationParams struct {
	AccountID int64
	Type      OperationType
	Amount    decimal.Decimal
}

// OperationPage holds one page of an account's ledger along with
// total-count metadata for the whole history.
type OperationPage struct {
	Operations []Operation `json:"operations"`
	Page       int32       `json:"page"`
	PageSize   int32       `json:"page_size"`
	TotalCount int64       `json:"total_count"`
	TotalPages int32       `json:"total_pages"`
}
