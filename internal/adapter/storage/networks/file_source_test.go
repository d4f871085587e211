package networks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallet-status/internal/config"
	"wallet-status/internal/domain/entity"
	"wallet-status/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleNetworks = `
networks:
  - chainId: 1
    name: Ethereum Mainnet
    shortName: eth
    explorer: https://etherscan.io
    network: mainnet
    nativeCurrency:
      name: Ether
      symbol: ETH
      decimals: 18
  - chainId: 4
    name: Rinkeby
`

func TestFileSource_LoadNetworks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleNetworks), 0o600))

	src := NewFileSource(config.NetworksConfig{File: path, SupportedChainIDs: []int64{137}}, zap.NewNop())
	networks, err := src.LoadNetworks(context.Background())
	require.NoError(t, err)

	require.Len(t, networks, 2)
	assert.Equal(t, entity.Network{
		ChainID:     1,
		Name:        "Ethereum Mainnet",
		ShortName:   "eth",
		ExplorerURL: "https://etherscan.io",
		Network:     entity.NetworkMainnet,
		Currency:    entity.Currency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	}, networks[0])
	assert.Equal(t, int64(4), networks[1].ChainID)
}

func TestFileSource_FallsBackToConfiguredIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	src := NewFileSource(config.NetworksConfig{File: path, SupportedChainIDs: []int64{4, 1}}, zap.NewNop())

	networks, err := src.LoadNetworks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Network{{ChainID: 1}, {ChainID: 4}}, networks)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid chain id", "networks:\n  - chainId: 0\n"},
		{"duplicate chain id", "networks:\n  - chainId: 1\n  - chainId: 1\n"},
		{"unknown field", "networks:\n  - chainId: 1\n    rpc: https://example.org\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	networks, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, networks)
}
