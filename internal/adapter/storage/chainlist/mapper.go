package chainlist

import (
	dto "wallet-status/internal/adapter/storage/chainlist/dto"
	"wallet-status/internal/domain/entity"

	"go.uber.org/zap"
)

// mapNetworkType converts a raw DTO network type to its domain entity counterpart.
func mapNetworkType(rawType dto.NetworkTypeRaw) entity.NetworkType {
	switch rawType {
	case dto.NetworkMainnetRaw:
		return entity.NetworkMainnet
	case dto.NetworkTestnetRaw:
		return entity.NetworkTestnet
	default:
		return entity.NetworkType(rawType)
	}
}

// preferredExplorer picks the EIP-3091 explorer when there is one.
func preferredExplorer(explorers []dto.ExplorerRaw) string {
	for _, e := range explorers {
		if e.Standard == "EIP3091" && e.URL != "" {
			return e.URL
		}
	}
	for _, e := range explorers {
		if e.URL != "" {
			return e.URL
		}
	}
	return ""
}

// toDomainNetworks converts raw Chainlist entries to networks, skipping entries without a usable chain id
// and entries flagged with red flags.
func toDomainNetworks(rawChains []dto.ChainRaw, logger *zap.Logger) []entity.Network {
	if rawChains == nil {
		return nil
	}
	networks := make([]entity.Network, 0, len(rawChains))
	for _, raw := range rawChains {
		if raw.ChainID <= 0 {
			if logger != nil {
				logger.Warn("Skipping chain with invalid id during mapping", zap.String("name", raw.Name))
			}
			continue
		}
		if len(raw.RedFlags) > 0 {
			if logger != nil {
				logger.Debug("Skipping red-flagged chain", zap.Int64("chainId", raw.ChainID), zap.Strings("redFlags", raw.RedFlags))
			}
			continue
		}
		networks = append(networks, entity.Network{
			ChainID:     raw.ChainID,
			Name:        raw.Name,
			ShortName:   raw.ShortName,
			ExplorerURL: preferredExplorer(raw.Explorers),
			InfoURL:     raw.InfoURL,
			Currency: entity.Currency{
				Name:     raw.Currency.Name,
				Symbol:   raw.Currency.Symbol,
				Decimals: raw.Currency.Decimals,
			},
			Network: mapNetworkType(raw.Network),
		})
	}
	return networks
}
