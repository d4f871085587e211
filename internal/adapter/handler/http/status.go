package http

import (
	"fmt"

	"wallet-status/internal/domain/entity"
	"wallet-status/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// GetStatus returns the resolved connection status.
func (h *Handler) GetStatus(ctx *fasthttp.RequestCtx) {
	view, err := h.status.Resolve(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, view)
}

// GetContext returns one connection context snapshot.
func (h *Handler) GetContext(ctx *fasthttp.RequestCtx) {
	name, err := contextNameParam(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	state, err := h.providers.GetContext(ctx, name)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, state)
}

// PutContext replaces a connection context snapshot reported by the provider layer.
func (h *Handler) PutContext(ctx *fasthttp.RequestCtx) {
	name, err := contextNameParam(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	var state entity.NetworkState
	if err := json.Unmarshal(ctx.PostBody(), &state); err != nil {
		h.writeError(ctx, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err))
		return
	}
	if err := h.providers.PutContext(ctx, name, state); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// ToggleWalletModal flips the wallet modal.
func (h *Handler) ToggleWalletModal(ctx *fasthttp.RequestCtx) {
	open := h.status.ToggleWalletModal(ctx)
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]bool{"walletModalOpen": open})
}

// GetNetworks lists the supported networks.
func (h *Handler) GetNetworks(ctx *fasthttp.RequestCtx) {
	supported, err := h.networks.SupportedChainIDs(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	networks, err := h.networks.Networks(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, struct {
		SupportedChainIDs []int64          `json:"supportedChainIds"`
		Networks          []entity.Network `json:"networks"`
	}{supported.IDs(), networks})
}

func contextNameParam(ctx *fasthttp.RequestCtx) (entity.ContextName, error) {
	raw, _ := pathParam(ctx, "name")
	name, ok := entity.ParseContextName(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown connection context %q", apperrors.ErrNotFound, raw)
	}
	return name, nil
}
