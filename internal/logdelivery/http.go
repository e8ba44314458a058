// Package logdelivery manages delivery layer of the operation log.
package logdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/web"
)

// Service provides service layer interface needed by log delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package logdelivery
type Service interface {
	Log(ctx context.Context) []domain.LogEntry
	ClearLog(ctx context.Context)
}

// Handler facilitates log delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns log handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

type dataEntries struct {
	Entries []domain.LogEntry `json:"entries"`
}

type dataCleared struct {
	Cleared bool `json:"cleared"`
}

// List handles http request to read the log, newest entry first.
func (h *Handler) List(gctx *gin.Context) {
	entries := h.service.Log(gctx.Request.Context())
	if entries == nil {
		entries = []domain.LogEntry{}
	}

	gctx.JSON(http.StatusOK, web.Data(dataEntries{entries}))
}

// Clear handles http request to empty the log.
func (h *Handler) Clear(gctx *gin.Context) {
	h.service.ClearLog(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Data(dataCleared{true}))
}
