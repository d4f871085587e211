package service

import (
	"context"

	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"

	"go.uber.org/zap"
)

// EnableStateController advances a token's enable flow when the user presses Continue.
type EnableStateController struct {
	repo   domainRepo.EnableStateRepository
	logger *zap.Logger
}

// NewEnableStateController creates a controller writing to repo.
func NewEnableStateController(repo domainRepo.EnableStateRepository, logger *zap.Logger) *EnableStateController {
	return &EnableStateController{
		repo:   repo,
		logger: logger.Named("EnableStateController"),
	}
}

// Confirm moves the symbol's slot to EnableStateConfirmed.
// Unknown symbols are ignored: no slot changes and no error is returned.
func (c *EnableStateController) Confirm(ctx context.Context, symbol entity.TokenSymbol) {
	if err := c.repo.Set(ctx, symbol, entity.EnableStateConfirmed); err != nil {
		c.logger.Warn("Ignoring enable confirmation", zap.String("symbol", string(symbol)), zap.Error(err))
		return
	}
	c.logger.Debug("Enable state confirmed", zap.String("symbol", string(symbol)))
}

// State returns the current enable state for symbol.
func (c *EnableStateController) State(ctx context.Context, symbol entity.TokenSymbol) (entity.EnableState, error) {
	return c.repo.Get(ctx, symbol)
}

// Symbols lists the tokens that have a slot.
func (c *EnableStateController) Symbols() []entity.TokenSymbol {
	return c.repo.Symbols()
}
