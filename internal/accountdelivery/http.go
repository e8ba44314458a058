// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

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

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	CreateAccount(ctx context.Context, holderName string, initialBalance decimal.Decimal, isKYCVerified bool) (domain.Account, error)
	GetAccount(ctx context.Context, accountNo string) (domain.Account, error)
	ListAccounts(ctx context.Context) []domain.Account
	Deposit(ctx context.Context, accountNo string, amount decimal.Decimal) (domain.Account, error)
	Withdraw(ctx context.Context, accountNo string, amount decimal.Decimal) (domain.Account, error)
	Summary(ctx context.Context) domain.Summary
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.AccountView `json:"account"`
}

type dataAccounts struct {
	Accounts []domain.AccountView `json:"accounts"`
}

type dataSummary struct {
	Summary domain.SummaryView `json:"summary"`
}

var errorKinds = []errorspkg.Kind{
	{Err: domain.ErrValidation, Status: http.StatusBadRequest},
	{Err: domain.ErrInsufficientFunds, Status: http.StatusBadRequest},
	{Err: domain.ErrAccountNotFound, Status: http.StatusNotFound},
}

// respondError writes err with the status matching its kind.
func respondError(gctx *gin.Context, err error) {
	status := errorspkg.Status(err, errorKinds...)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
	}

	gctx.JSON(status, web.Error(errorspkg.Public(err, status)))
}

type createRequest struct {
	HolderName     string         `json:"holder_name"`
	InitialBalance moneypkg.Input `json:"initial_balance"`
	IsKYCVerified  bool           `json:"is_kyc_verified"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != "" {
		var err error

		initialBalance, err = domain.ParseAmount(domain.EntryTypeCreateAccount, string(req.InitialBalance))
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}
	}

	acc, err := h.service.CreateAccount(ctx, req.HolderName, initialBalance, req.IsKYCVerified)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(data{acc.View()}))
}

type accountURI struct {
	AccountNo string `uri:"account_no" binding:"required"`
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	acc, err := h.service.GetAccount(ctx, uri.AccountNo)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(data{acc.View()}))
}

type listQuery struct {
	KYCVerified *bool `form:"kyc_verified"`
}

// List handles http request to list accounts in creation order.
//
// With kyc_verified set only accounts with that KYC status are listed, which is
// how clients offer transfer senders.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var query listQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	accounts := h.service.ListAccounts(ctx)

	if query.KYCVerified != nil {
		filtered := make([]domain.Account, 0, len(accounts))
		for _, a := range accounts {
			if a.IsKYCVerified == *query.KYCVerified {
				filtered = append(filtered, a)
			}
		}

		accounts = filtered
	}

	gctx.JSON(http.StatusOK, web.Data(dataAccounts{domain.Views(accounts)}))
}

// Summary handles http request to get totals over all accounts.
func (h *Handler) Summary(gctx *gin.Context) {
	s := h.service.Summary(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Data(dataSummary{s.View()}))
}

type amountRequest struct {
	Amount moneypkg.Input `json:"amount" binding:"required,amount"`
}

type moveFunc func(ctx context.Context, accountNo string, amount decimal.Decimal) (domain.Account, error)

func (h *Handler) move(gctx *gin.Context, op domain.EntryType, fn moveFunc) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	amount, err := domain.ParseAmount(op, string(req.Amount))
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	acc, err := fn(ctx, uri.AccountNo, amount)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(data{acc.View()}))
}

// Deposit handles http request to deposit money into the account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.move(gctx, domain.EntryTypeDeposit, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from the account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.move(gctx, domain.EntryTypeWithdrawal, h.service.Withdraw)
}
