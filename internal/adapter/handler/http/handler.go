package http

import (
	"errors"

	"wallet-status/internal/application/port"
	"wallet-status/internal/domain"
	domainRepo "wallet-status/internal/domain/repository"
	domainService "wallet-status/internal/domain/service"
	"wallet-status/internal/pkg/apperrors"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Handler serves the wallet status API.
type Handler struct {
	status    port.StatusService
	networks  port.NetworkService
	providers domainRepo.ProviderRepository
	txs       domainRepo.TransactionRepository
	enable    *domainService.EnableStateController
	logger    *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	status port.StatusService,
	networks port.NetworkService,
	providers domainRepo.ProviderRepository,
	txs domainRepo.TransactionRepository,
	enable *domainService.EnableStateController,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		status:    status,
		networks:  networks,
		providers: providers,
		txs:       txs,
		enable:    enable,
		logger:    logger.Named("Handler"),
	}
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, code := classify(err)
	if status >= fasthttp.StatusInternalServerError {
		h.logger.Error("Request failed", zap.ByteString("uri", ctx.RequestURI()), zap.Error(err))
	} else {
		h.logger.Debug("Request rejected", zap.ByteString("uri", ctx.RequestURI()), zap.Error(err))
	}
	h.writeJSON(ctx, status, errorResponse{Error: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingChainID):
		return fasthttp.StatusConflict, "missing_chain_id"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return fasthttp.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrUnknownContext),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrUnknownTokenSymbol),
		errors.Is(err, apperrors.ErrNotFound):
		return fasthttp.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrConflict):
		return fasthttp.StatusConflict, "conflict"
	default:
		return fasthttp.StatusInternalServerError, "internal"
	}
}

func pathParam(ctx *fasthttp.RequestCtx, name string) (string, bool) {
	v, ok := ctx.UserValue(name).(string)
	return v, ok && v != ""
}
