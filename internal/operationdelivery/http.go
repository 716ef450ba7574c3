// Package operationdelivery manages delivery layer of ledger operations.
package operationdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"
	"github.com/go-petr/bank-ledger/pkg/web"
)

// Defaults for the history read path.
const (
	DefaultPageSize int32 = 10
	MaxPageSize     int32 = 100
)

// Service provides service layer interface needed by operation delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package operationdelivery
type Service interface {
	Perform(ctx context.Context, accountID int64, opType, amount string) (domain.Operation, error)
	ListByAccount(ctx context.Context, accountID int64, page, pageSize int32) (domain.OperationPage, error)
}

// Handler facilitates operation delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns operation handler.
func NewHandler(os Service) Handler {
	return Handler{service: os}
}

type data struct {
	Operation domain.Operation `json:"operation"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type accountURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type performRequest struct {
	Type   string `json:"type" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}

// Perform handles http request to debit or credit an account.
func (h *Handler) Perform(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ErrorMsg(bindingErrorMsg(err)))

		return
	}

	var req performRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ErrorMsg(bindingErrorMsg(err)))

		return
	}

	operation, err := h.service.Perform(ctx, uri.ID, req.Type, req.Amount)
	if err != nil {
		switch err {
		case domain.ErrInvalidOperationType, domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{operation},
	}

	gctx.JSON(http.StatusOK, res)
}

type listRequest struct {
	Page     int32 `form:"page" binding:"omitempty,min=0"`
	PageSize int32 `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type dataPage struct {
	Page domain.OperationPage `json:"page"`
}
type responsePage struct {
	Data dataPage `json:"data,omitempty"`
}

// List handles http request to read a page of the account's ledger.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ErrorMsg(bindingErrorMsg(err)))

		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ErrorMsg(bindingErrorMsg(err)))

		return
	}

	if req.PageSize == 0 {
		req.PageSize = DefaultPageSize
	}

	page, err := h.service.ListByAccount(ctx, uri.ID, req.Page, req.PageSize)
	if err != nil {
		switch err {
		case domain.ErrNoOperationsFound, domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responsePage{
		Data: dataPage{page},
	}

	gctx.JSON(http.StatusOK, res)
}
