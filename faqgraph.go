package faqgraph

import (
	"log/slog"
	"sync"

	"github.com/soundprediction/faqgraph/pkg/factstore"
)

// Client is the main implementation of the KnowledgeBase interface. It owns
// the fact store and serializes all access to it; see the package
// documentation for the synchronization contract.
type Client struct {
	mu     sync.RWMutex
	store  factstore.Store
	logger *slog.Logger
}

// NewClient creates a client over the given store. A nil store gets a fresh
// in-memory store; a nil logger falls back to slog.Default.
func NewClient(store factstore.Store, logger *slog.Logger) *Client {
	if store == nil {
		store = factstore.NewMemoryStore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		store:  store,
		logger: logger,
	}
}

// Stats returns record counts per fact kind.
func (c *Client) Stats() factstore.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Stats()
}
