package repository

import (
	"context"
	"sync"

	"kampung_chill/internal/usecase/interfaces"
)

// MemoryStateRepository is an in-process IStateStore. It backs tests and
// single-replica runs where durability across restarts is not needed.

type MemoryStateRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

var _ interfaces.IStateStore = (*MemoryStateRepository)(nil)

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{records: make(map[string][]byte)}
}

func (r *MemoryStateRepository) Load(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (r *MemoryStateRepository) Save(_ context.Context, key string, raw []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]byte, len(raw))
	copy(stored, raw)
	r.records[key] = stored
	return nil
}

// MemoryChangeFeed is an in-process IChangeFeed. Publishes are delivered
// synchronously to the subscribers of OTHER feed instances sharing the same
// hub, matching the same-origin suppression of the real feed.

type MemoryFeedHub struct {
	mu    sync.Mutex
	feeds []*MemoryChangeFeed
}

func NewMemoryFeedHub() *MemoryFeedHub {
	return &MemoryFeedHub{}
}

func (h *MemoryFeedHub) NewFeed() *MemoryChangeFeed {
	h.mu.Lock()
	defer h.mu.Unlock()
	f := &MemoryChangeFeed{hub: h}
	h.feeds = append(h.feeds, f)
	return f
}

func (h *MemoryFeedHub) broadcast(origin *MemoryChangeFeed, key string) {
	h.mu.Lock()
	feeds := make([]*MemoryChangeFeed, len(h.feeds))
	copy(feeds, h.feeds)
	h.mu.Unlock()

	for _, f := range feeds {
		if f == origin {
			continue
		}
		f.deliver(key)
	}
}

type MemoryChangeFeed struct {
	hub      *MemoryFeedHub
	mu       sync.Mutex
	handlers []func(key string)
}

var _ interfaces.IChangeFeed = (*MemoryChangeFeed)(nil)

func (f *MemoryChangeFeed) Publish(_ context.Context, key string) error {
	f.hub.broadcast(f, key)
	return nil
}

func (f *MemoryChangeFeed) Subscribe(_ context.Context, handler func(key string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, handler)
}

func (f *MemoryChangeFeed) deliver(key string) {
	f.mu.Lock()
	handlers := make([]func(string), len(f.handlers))
	copy(handlers, f.handlers)
	f.mu.Unlock()

	for _, h := range handlers {
		h(key)
	}
}
