package networks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"wallet-status/internal/config"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"
	"wallet-status/internal/pkg/apperrors"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Compile-time check
var _ domainRepo.NetworkSource = (*FileSource)(nil)

// fileDocument is the layout of the networks file.
type fileDocument struct {
	Networks []entity.Network `yaml:"networks"`
}

// FileSource reads supported networks from a YAML file.
// When the file does not exist the configured chain ids are used without metadata.
type FileSource struct {
	path        string
	fallbackIDs []int64
	logger      *zap.Logger
}

// NewFileSource creates a source for cfg.File.
func NewFileSource(cfg config.NetworksConfig, logger *zap.Logger) *FileSource {
	return &FileSource{
		path:        cfg.File,
		fallbackIDs: cfg.SupportedChainIDs,
		logger:      logger.Named("NetworkFileSource"),
	}
}

// LoadNetworks returns the declared networks.
func (s *FileSource) LoadNetworks(_ context.Context) ([]entity.Network, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("Networks file not found, using configured chain ids",
				zap.String("path", s.path), zap.Int64s("chainIds", s.fallbackIDs),
			)
			return s.fallback(), nil
		}
		return nil, fmt.Errorf("read networks file %s: %w", s.path, err)
	}

	networks, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("networks file %s: %w", s.path, err)
	}
	s.logger.Info("Loaded networks file", zap.String("path", s.path), zap.Int("count", len(networks)))
	return networks, nil
}

func (s *FileSource) fallback() []entity.Network {
	networks := make([]entity.Network, 0, len(s.fallbackIDs))
	for _, id := range entity.NewChainSet(s.fallbackIDs...).IDs() {
		networks = append(networks, entity.Network{ChainID: id})
	}
	return networks
}

// Decode parses a networks document and validates chain ids.
func Decode(r io.Reader) ([]entity.Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fileDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	seen := make(entity.ChainSet, len(doc.Networks))
	for _, n := range doc.Networks {
		if n.ChainID <= 0 {
			return nil, fmt.Errorf("%w: network %q has invalid chain id %d", apperrors.ErrInvalidInput, n.Name, n.ChainID)
		}
		if seen.Contains(n.ChainID) {
			return nil, fmt.Errorf("%w: duplicate chain id %d", apperrors.ErrInvalidInput, n.ChainID)
		}
		seen[n.ChainID] = struct{}{}
	}
	return doc.Networks, nil
}
