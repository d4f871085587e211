package http

import (
	"fmt"
	"strings"

	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"

	"github.com/agnivade/levenshtein"
	"github.com/valyala/fasthttp"
)

// maxSuggestDistance bounds how different a suggested symbol may be.
const maxSuggestDistance = 2

type enableStateResponse struct {
	Symbol    entity.TokenSymbol `json:"symbol"`
	State     entity.EnableState `json:"state"`
	Confirmed bool               `json:"confirmed"`
}

// GetEnableState returns the enable state of a token.
func (h *Handler) GetEnableState(ctx *fasthttp.RequestCtx) {
	raw, _ := pathParam(ctx, "symbol")
	symbol := entity.TokenSymbol(raw)

	state, err := h.enable.State(ctx, symbol)
	if err != nil {
		h.writeUnknownSymbol(ctx, symbol)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, enableStateResponse{
		Symbol:    symbol,
		State:     state,
		Confirmed: state == entity.EnableStateConfirmed,
	})
}

// ContinueEnable records that the user pressed Continue on the enable prompt.
func (h *Handler) ContinueEnable(ctx *fasthttp.RequestCtx) {
	raw, _ := pathParam(ctx, "symbol")
	symbol := entity.TokenSymbol(raw)

	h.enable.Confirm(ctx, symbol)

	if !h.knownSymbol(symbol) {
		h.writeUnknownSymbol(ctx, symbol)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusAccepted)
}

func (h *Handler) knownSymbol(symbol entity.TokenSymbol) bool {
	for _, s := range h.enable.Symbols() {
		if s == symbol {
			return true
		}
	}
	return false
}

func (h *Handler) writeUnknownSymbol(ctx *fasthttp.RequestCtx, symbol entity.TokenSymbol) {
	resp := errorResponse{
		Error:   "not_found",
		Message: fmt.Errorf("%w: %q", domain.ErrUnknownTokenSymbol, symbol).Error(),
	}
	if suggestion, ok := suggestSymbol(string(symbol), h.enable.Symbols()); ok {
		resp.Suggestion = string(suggestion)
	}
	h.writeJSON(ctx, fasthttp.StatusNotFound, resp)
}

// suggestSymbol returns the known symbol closest to raw, if any is close enough.
func suggestSymbol(raw string, known []entity.TokenSymbol) (entity.TokenSymbol, bool) {
	needle := strings.ToUpper(strings.TrimSpace(raw))
	var best entity.TokenSymbol
	bestDistance := maxSuggestDistance + 1
	for _, symbol := range known {
		d := levenshtein.ComputeDistance(needle, strings.ToUpper(string(symbol)))
		if d < bestDistance {
			best, bestDistance = symbol, d
		}
	}
	return best, bestDistance <= maxSuggestDistance
}
