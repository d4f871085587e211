package http

import (
	"time"

	handler "wallet-status/internal/adapter/handler/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// RegisterRoutes sets up the API routes and the health check.
func RegisterRoutes(r *router.Router, h *handler.Handler, logger *zap.Logger) {
	logger.Info("Setting up application-specific routes...")

	r.GET("/status", h.GetStatus)
	r.POST("/modal/wallet/toggle", h.ToggleWalletModal)

	r.GET("/contexts/{name}", h.GetContext)
	r.PUT("/contexts/{name}", h.PutContext)

	r.POST("/transactions", h.AddTransaction)
	r.PUT("/transactions/{hash}/status", h.UpdateTransactionStatus)
	r.GET("/accounts/{account}/transactions", h.GetAccountTransactions)

	r.GET("/tokens/{symbol}/enable", h.GetEnableState)
	r.POST("/tokens/{symbol}/enable/continue", h.ContinueEnable)

	r.GET("/networks", h.GetNetworks)

	logger.Info("Setting up health check route...")
	r.GET("/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})

	logger.Info("All routes registered.")
}

// LoggingMiddleware logs every request with its status and latency.
func LoggingMiddleware(logger *zap.Logger, next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		next(ctx)
		logger.Info("Request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("uri", ctx.RequestURI()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("latency", time.Since(ctx.Time())),
		)
	}
}
