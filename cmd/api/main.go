package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fasthttp/router"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	deliveryHTTP "wallet-status/internal/adapter/delivery/http"
	"wallet-status/internal/adapter/delivery/ws"
	handlerHTTP "wallet-status/internal/adapter/handler/http"
	"wallet-status/internal/adapter/storage/chainlist"
	"wallet-status/internal/adapter/storage/memory"
	"wallet-status/internal/adapter/storage/networks"
	"wallet-status/internal/application"
	"wallet-status/internal/config"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"
	domainService "wallet-status/internal/domain/service"
	"wallet-status/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "wallet-status",
		Short:         "Resolve and stream wallet connection status",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfgPath)
		},
	}
	rootCmd.Flags().StringVar(&cfgPath, "config", "configs", "directory containing config.yaml")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("wallet-status: %v", err)
	}
}

func run(ctx context.Context, cfgPath string) error {
	// --- Configuration ---
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", cfgPath, err)
	}

	// --- Logger ---
	appLogger, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer appLogger.Sync()
	appLogger.Info("Logger initialized", zap.Any("config", cfg.Logger))

	// --- Dependency Injection (Manual) ---
	appLogger.Info("Initializing dependencies...")

	notifier := memory.NewNotifier()
	providerStore := memory.NewProviderStore(notifier, appLogger)
	txStore := memory.NewTransactionStore(*cfg, notifier, appLogger)

	symbols := make([]entity.TokenSymbol, len(cfg.Tokens.Symbols))
	for i, s := range cfg.Tokens.Symbols {
		symbols[i] = entity.TokenSymbol(s)
	}
	enableStore := memory.NewEnableStateStore(symbols, entity.EnableState(cfg.Tokens.InitialState), appLogger)

	var chainRepo domainRepo.ChainRepository
	if cfg.Chainlist.Enabled {
		chainRepo = chainlist.NewRepository(cfg.Chainlist, appLogger)
	}
	networkService, err := application.NewNetworkService(
		ctx,
		networks.NewFileSource(cfg.Networks, appLogger),
		chainRepo,
		memory.NewCacheRepository(*cfg, appLogger),
		appLogger,
		*cfg,
	)
	if err != nil {
		return err
	}

	statusService := application.NewStatusService(providerStore, txStore, networkService, notifier, appLogger)
	enableController := domainService.NewEnableStateController(enableStore, appLogger)

	handler := handlerHTTP.NewHandler(statusService, networkService, providerStore, txStore, enableController, appLogger)

	go statusService.Run(ctx)

	// --- Status stream ---
	streamServer := ws.NewServer(ws.NewStream(statusService, cfg.Stream, appLogger))
	go func() {
		appLogger.Info("Starting status stream server", zap.String("address", streamServer.Addr))
		if err := streamServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Status stream server failed", zap.Error(err))
		}
	}()

	// --- HTTP Router & Server ---
	appLogger.Info("Setting up HTTP router...")
	r := router.New()
	deliveryHTTP.RegisterRoutes(r, handler, appLogger)

	server := &fasthttp.Server{
		Handler: deliveryHTTP.LoggingMiddleware(appLogger, r.Handler),
		Name:    cfg.App.Name,
	}
	serverAddr := ":" + cfg.Server.Port
	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("address", serverAddr))
		serveErr <- server.ListenAndServe(serverAddr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		appLogger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := streamServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("Status stream server shutdown failed", zap.Error(err))
	}
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Warn("HTTP server shutdown failed", zap.Error(err))
	}
	appLogger.Info("Shutdown complete")
	return nil
}
