package application

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"wallet-status/internal/application/port"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"
	domainService "wallet-status/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time check to ensure statusService implements StatusService
var _ port.StatusService = (*statusService)(nil)

// addressChars is how many hex digits ShortenAddress keeps on each side.
const addressChars = 4

type subscriber struct {
	ch   chan entity.StatusView
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// statusService wires the stores to the connection status resolver.
type statusService struct {
	providers domainRepo.ProviderRepository
	txs       domainRepo.TransactionRepository
	networks  port.NetworkService
	notifier  domainRepo.ChangeNotifier
	logger    *zap.Logger

	modalOpen *atomic.Bool
	changes   chan entity.ChangeEvent

	subsMu      sync.Mutex
	subscribers map[string]*subscriber
	stopped     bool
}

// NewStatusService creates the status service. Call Run to start publishing.
func NewStatusService(
	providers domainRepo.ProviderRepository,
	txs domainRepo.TransactionRepository,
	networks port.NetworkService,
	notifier domainRepo.ChangeNotifier,
	logger *zap.Logger,
) port.StatusService {
	return &statusService{
		providers:   providers,
		txs:         txs,
		networks:    networks,
		notifier:    notifier,
		logger:      logger.Named("StatusService"),
		modalOpen:   new(atomic.Bool),
		changes:     make(chan entity.ChangeEvent, 1),
		subscribers: make(map[string]*subscriber),
	}
}

// Resolve reads the current snapshots and resolves them into a view.
func (s *statusService) Resolve(ctx context.Context) (entity.StatusView, error) {
	snapshot, err := s.providers.Snapshot(ctx)
	if err != nil {
		return entity.StatusView{}, fmt.Errorf("failed to read provider snapshot: %w", err)
	}
	txs, err := s.txs.All(ctx)
	if err != nil {
		return entity.StatusView{}, fmt.Errorf("failed to read transactions: %w", err)
	}
	supported, err := s.networks.SupportedChainIDs(ctx)
	if err != nil {
		return entity.StatusView{}, fmt.Errorf("failed to read supported chain ids: %w", err)
	}

	status, err := domainService.ResolveConnectionStatus(domainService.ResolverInput{
		Active:            snapshot.Active,
		Injected:          snapshot.Injected,
		Backup:            snapshot.Backup,
		SupportedChainIDs: supported,
		Transactions:      txs,
	})
	if err != nil {
		return entity.StatusView{}, fmt.Errorf("failed to resolve connection status: %w", err)
	}

	view := entity.StatusView{
		Version:         snapshot.Version,
		Status:          status,
		WalletModalOpen: s.modalOpen.Load(),
	}
	if status.Account != "" {
		display, err := entity.ShortenAddress(status.Account, addressChars)
		if err != nil {
			s.logger.Debug("Account is not a hex address, displaying as is",
				zap.String("account", status.Account), zap.Error(err),
			)
			display = status.Account
		}
		view.DisplayAccount = display
	}
	if chainID, ok := snapshot.Injected.ChainIDValue(); ok && status.Kind != entity.StatusHidden {
		if network, found := s.networks.Lookup(ctx, chainID); found {
			view.Network = &network
		}
	}
	return view, nil
}

// ToggleWalletModal flips the modal state and schedules a publish.
func (s *statusService) ToggleWalletModal(_ context.Context) bool {
	for {
		current := s.modalOpen.Load()
		if s.modalOpen.CompareAndSwap(current, !current) {
			s.notifier.Publish(entity.ChangeModal)
			s.logger.Debug("Wallet modal toggled", zap.Bool("open", !current))
			return !current
		}
	}
}

// Subscribe registers a stream consumer. Once Run has stopped the returned channel is already closed.
func (s *statusService) Subscribe(buffer int) (string, <-chan entity.StatusView, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	id := uuid.NewString()
	sub := &subscriber{ch: make(chan entity.StatusView, buffer)}

	s.subsMu.Lock()
	if s.stopped {
		s.subsMu.Unlock()
		sub.close()
		return id, sub.ch, func() {}
	}
	s.subscribers[id] = sub
	s.subsMu.Unlock()

	return id, sub.ch, func() { s.unsubscribe(id) }
}

func (s *statusService) unsubscribe(id string) {
	s.subsMu.Lock()
	sub, ok := s.subscribers[id]
	delete(s.subscribers, id)
	s.subsMu.Unlock()
	if ok {
		sub.close()
	}
}

// Run listens for change notifications and publishes re-resolved views.
// Bursts of changes coalesce into a single resolution.
func (s *statusService) Run(ctx context.Context) {
	_, cancel := s.notifier.Subscribe(func(event entity.ChangeEvent) {
		select {
		case s.changes <- event:
		default:
		}
	})
	defer cancel()

	s.logger.Info("Status publisher started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Status publisher stopping due to context cancellation.")
			s.closeAll()
			return
		case event := <-s.changes:
			s.publish(ctx, event)
		}
	}
}

func (s *statusService) publish(ctx context.Context, event entity.ChangeEvent) {
	view, err := s.Resolve(ctx)
	if err != nil {
		s.logger.Warn("Skipping publish, status could not be resolved",
			zap.String("source", string(event.Source)), zap.Uint64("version", event.Version), zap.Error(err),
		)
		return
	}

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for id, sub := range s.subscribers {
		select {
		case sub.ch <- view:
		default:
			s.logger.Warn("Dropping slow status subscriber", zap.String("subscriber", id))
			delete(s.subscribers, id)
			sub.close()
		}
	}
	s.logger.Debug("Status published",
		zap.String("kind", string(view.Status.Kind)),
		zap.Uint64("version", view.Version),
		zap.Int("subscribers", len(s.subscribers)),
	)
}

func (s *statusService) closeAll() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.stopped = true
	for id, sub := range s.subscribers {
		delete(s.subscribers, id)
		sub.close()
	}
}
