// Package ledgerdelivery manages delivery layer of ledgers.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/amountpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Ledger, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Ledger, error)
	List(ctx context.Context, ownerID uuid.NullUUID) []*domain.Ledger
	PostTransaction(ctx context.Context, ledgerID uuid.UUID, amount int64, txType domain.TransactionType) (domain.Transaction, error)
	Transactions(ctx context.Context, ledgerID uuid.UUID) ([]domain.Transaction, error)
	Balance(ctx context.Context, ledgerID uuid.UUID) (domain.Balance, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

// Ledger is the JSON representation of a ledger.
type Ledger struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

func newLedger(l *domain.Ledger) Ledger {
	return Ledger{
		ID:     l.ID(),
		UserID: l.OwnerID(),
		Name:   l.Name(),
	}
}

type ledgerData struct {
	Ledger Ledger `json:"ledger"`
}

type ledgersData struct {
	Ledgers []Ledger `json:"ledgers"`
}

type transactionData struct {
	Transaction domain.Transaction `json:"transaction"`
}

type transactionsData struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type balanceData struct {
	Balance domain.Balance `json:"balance"`
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type createRequest struct {
	Name   string `json:"name" binding:"required,notblank"`
	UserID string `json:"user_id" binding:"required,uuid"`
}

// Create handles http request to create ledger.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	ledger, err := h.service.Create(ctx, req.Name, uuid.MustParse(req.UserID))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: ledgerData{newLedger(ledger)}})
}

// Get handles http request to get ledger.
func (h *Handler) Get(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	ledger, err := h.service.Get(gctx.Request.Context(), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: ledgerData{newLedger(ledger)}})
}

type listRequest struct {
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

// List handles http request to list ledgers, optionally filtered by owner.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	var ownerID uuid.NullUUID
	if req.UserID != "" {
		ownerID = uuid.NullUUID{UUID: uuid.MustParse(req.UserID), Valid: true}
	}

	ledgers := h.service.List(gctx.Request.Context(), ownerID)

	items := make([]Ledger, 0, len(ledgers))
	for _, l := range ledgers {
		items = append(items, newLedger(l))
	}

	gctx.JSON(http.StatusOK, web.Response{Data: ledgersData{items}})
}

type postTransactionRequest struct {
	TransactionType string              `json:"transaction_type" binding:"required,txtype"`
	Amount          decimal.NullDecimal `json:"amount"`
}

// PostTransaction handles http request to post a deposit or withdrawal.
func (h *Handler) PostTransaction(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req postTransactionRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	amount, err := amountpkg.Parse(req.Amount)
	if err != nil {
		badRequest(gctx, err)
		return
	}

	tx, err := h.service.PostTransaction(gctx.Request.Context(), id, amount, domain.TransactionType(req.TransactionType))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: transactionData{tx}})
}

// Transactions handles http request to list ledger transactions.
func (h *Handler) Transactions(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	txs, err := h.service.Transactions(gctx.Request.Context(), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{txs}})
}

// Balance handles http request to get ledger balance.
func (h *Handler) Balance(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	balance, err := h.service.Balance(gctx.Request.Context(), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{balance}})
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		badRequest(gctx, err)
		return uuid.Nil, false
	}

	return uuid.MustParse(req.ID), true
}

func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func respondError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEntityNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInvalidTransactionType):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrAlreadyExists):
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
