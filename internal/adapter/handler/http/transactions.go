package http

import (
	"fmt"

	"wallet-status/internal/domain/entity"
	"wallet-status/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

type statusUpdateRequest struct {
	Status entity.TxStatus `json:"status"`
}

type accountTransactionsResponse struct {
	Account    string               `json:"account"`
	Pending    []entity.Transaction `json:"pending"`
	Confirmed  []entity.Transaction `json:"confirmed"`
	HasPending bool                 `json:"hasPending"`
}

// AddTransaction starts tracking a submitted transaction.
func (h *Handler) AddTransaction(ctx *fasthttp.RequestCtx) {
	var tx entity.Transaction
	if err := json.Unmarshal(ctx.PostBody(), &tx); err != nil {
		h.writeError(ctx, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err))
		return
	}
	if err := h.txs.Add(ctx, tx); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusCreated)
}

// UpdateTransactionStatus moves a transaction to a new status.
func (h *Handler) UpdateTransactionStatus(ctx *fasthttp.RequestCtx) {
	hash, ok := pathParam(ctx, "hash")
	if !ok {
		h.writeError(ctx, fmt.Errorf("%w: missing transaction hash", apperrors.ErrInvalidInput))
		return
	}
	var req statusUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err))
		return
	}
	if err := h.txs.UpdateStatus(ctx, hash, req.Status); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// GetAccountTransactions returns the pending and confirmed transactions of an account.
func (h *Handler) GetAccountTransactions(ctx *fasthttp.RequestCtx) {
	account, ok := pathParam(ctx, "account")
	if !ok {
		h.writeError(ctx, fmt.Errorf("%w: missing account", apperrors.ErrInvalidInput))
		return
	}
	pending, err := h.txs.GetPendingTransactions(ctx, account)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	confirmed, err := h.txs.GetConfirmedTransactions(ctx, account)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, accountTransactionsResponse{
		Account:    account,
		Pending:    pending,
		Confirmed:  confirmed,
		HasPending: len(pending) > 0,
	})
}
