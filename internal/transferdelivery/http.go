// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/errorspkg"
	"github.com/go-petr/mini-bank/pkg/moneypkg"
	"github.com/go-petr/mini-bank/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, senderNo, receiverNo string, amount decimal.Decimal) (domain.TransferResult, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type request struct {
	SenderAccountNo   string         `json:"sender_account_no"`
	ReceiverAccountNo string         `json:"receiver_account_no"`
	Amount            moneypkg.Input `json:"amount" binding:"required,amount"`
}

type data struct {
	Transfer domain.TransferView `json:"transfer"`
}

var errorKinds = []errorspkg.Kind{
	{Err: domain.ErrValidation, Status: http.StatusBadRequest},
	{Err: domain.ErrInsufficientFunds, Status: http.StatusBadRequest},
	{Err: domain.ErrAccountNotFound, Status: http.StatusNotFound},
	{Err: domain.ErrKYCRequired, Status: http.StatusForbidden},
}

// Create handles http request to create a transfer between two accounts.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	amount, err := domain.ParseAmount(domain.EntryTypeTransfer, string(req.Amount))
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	result, err := h.service.Transfer(ctx, req.SenderAccountNo, req.ReceiverAccountNo, amount)
	if err != nil {
		status := errorspkg.Status(err, errorKinds...)
		if status >= http.StatusInternalServerError {
			l.Error().Err(err).Send()
		}

		gctx.JSON(status, web.Error(errorspkg.Public(err, status)))

		return
	}

	gctx.JSON(http.StatusOK, web.Data(data{result.View()}))
}
