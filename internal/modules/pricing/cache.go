package pricing

import "sync"

// ListingCache keeps per-provider listings between mutations. Mutation
// handlers call Invalidate synchronously after a successful write, so a
// subsequent list for the same provider always reflects the change. The
// cache is process-local; coherence across processes is the database's job.
type ListingCache[T any] struct {
	mu      sync.Mutex
	entries map[string][]T
}

func NewListingCache[T any]() *ListingCache[T] {
	return &ListingCache[T]{entries: make(map[string][]T)}
}

// Get returns the cached listing for a provider, if still valid.
func (c *ListingCache[T]) Get(providerID string) ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, ok := c.entries[providerID]
	return items, ok
}

// Put stores a freshly fetched listing.
func (c *ListingCache[T]) Put(providerID string, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[providerID] = items
}

// Invalidate drops the provider's listing so the next read refetches.
func (c *ListingCache[T]) Invalidate(providerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, providerID)
}
