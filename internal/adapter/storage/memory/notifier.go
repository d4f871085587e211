package memory

import (
	"sync"
	"sync/atomic"

	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"

	"github.com/google/uuid"
)

// Compile-time check
var _ domainRepo.ChangeNotifier = (*Notifier)(nil)

// Notifier fans change events out to subscribers and keeps a global version counter.
type Notifier struct {
	mu          sync.RWMutex
	subscribers map[string]func(entity.ChangeEvent)
	version     atomic.Uint64
}

// NewNotifier creates a notifier with no subscribers.
func NewNotifier() *Notifier {
	return &Notifier{subscribers: make(map[string]func(entity.ChangeEvent))}
}

// Subscribe registers fn. Callbacks run on the publishing goroutine, possibly while a store
// holds its lock, so they must not block or call back into the stores.
func (n *Notifier) Subscribe(fn func(entity.ChangeEvent)) (string, func()) {
	id := uuid.NewString()

	n.mu.Lock()
	n.subscribers[id] = fn
	n.mu.Unlock()

	return id, func() {
		n.mu.Lock()
		delete(n.subscribers, id)
		n.mu.Unlock()
	}
}

// Publish increments the version and delivers the event to every subscriber.
func (n *Notifier) Publish(source entity.ChangeSource) uint64 {
	version := n.version.Add(1)
	event := entity.ChangeEvent{Source: source, Version: version}

	n.mu.RLock()
	fns := make([]func(entity.ChangeEvent), 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
	return version
}

// Version returns the latest published version.
func (n *Notifier) Version() uint64 {
	return n.version.Load()
}
