package entity

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ShortenAddress renders a checksummed address as 0xAbCd...1234, keeping chars hex digits on each side.
func ShortenAddress(address string, chars int) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address %q", address)
	}
	if chars <= 0 || chars > 20 {
		return "", fmt.Errorf("invalid chars %d", chars)
	}
	checksummed := common.HexToAddress(address).Hex()
	return checksummed[:chars+2] + "..." + checksummed[len(checksummed)-chars:], nil
}
