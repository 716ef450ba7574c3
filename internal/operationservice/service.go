// Package operationservice manages business logic layer of ledger operations.
package operationservice

import (
	"context"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by operation service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package operationservice
type Repo interface {
	PerformTx(ctx context.Context, arg domain.PerformOperationParams) (domain.Operation, error)
	ListPage(ctx context.Context, accountID int64, limit, offset int32) ([]domain.Operation, int64, error)
}

// Service facilitates operation service layer logic.
type Service struct {
	repo Repo
}

// New returns operation service struct to manage operation bussines logic.
func New(or Repo) *Service {
	return &Service{repo: or}
}

// Perform applies the requested operation to the account and returns the
// created ledger entry. The balance change and the entry commit together.
func (s *Service) Perform(ctx context.Context, accountID int64, opType, amount string) (domain.Operation, error) {
	l := zerolog.Ctx(ctx)

	parsedType, err := domain.ParseOperationType(opType)
	if err != nil {
		l.Info().Err(err).Str("type", opType).Send()
		return domain.Operation{}, err
	}

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.Operation{}, domain.ErrInvalidAmount
	}

	arg := domain.PerformOperationParams{
		AccountID: accountID,
		Type:      parsedType,
		Amount:    amountDecimal,
	}

	operation, err := s.repo.PerformTx(ctx, arg)
	if err != nil {
		return domain.Operation{}, err
	}

	return operation, nil
}

// ListByAccount returns the requested zero-based page of the account's ledger.
// An account with no recorded operations yields ErrNoOperationsFound rather
// than an empty page.
func (s *Service) ListByAccount(ctx context.Context, accountID int64, page, pageSize int32) (domain.OperationPage, error) {
	limit := pageSize
	offset := page * pageSize

	operations, total, err := s.repo.ListPage(ctx, accountID, limit, offset)
	if err != nil {
		return domain.OperationPage{}, err
	}

	if total == 0 {
		return domain.OperationPage{}, domain.ErrNoOperationsFound
	}

	totalPages := int32((total + int64(pageSize) - 1) / int64(pageSize))

	return domain.OperationPage{
		Operations: operations,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}
