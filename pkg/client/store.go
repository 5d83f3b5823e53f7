package client

import (
	"context"
	"sync"
	"time"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/domain/models"
)

// CatalogStore caches a fetched catalog page and re-applies the filter
// contract locally, so narrowing a search or re-sorting does not need
// another round trip. It is safe for concurrent use.
type CatalogStore struct {
	mu        sync.RWMutex
	items     []models.Sculpture
	fetchedAt time.Time
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Refresh fetches a page from the server and replaces the cached items.
func (s *CatalogStore) Refresh(ctx context.Context, c *Client, f catalog.Filter) error {
	list, err := c.GetSculptures(ctx, f)
	if err != nil {
		return err
	}

	s.Replace(list.Sculptures)

	return nil
}

// Replace swaps the cached items for a copy of the given slice.
func (s *CatalogStore) Replace(items []models.Sculpture) {
	copied := make([]models.Sculpture, len(items))
	copy(copied, items)

	s.mu.Lock()
	s.items = copied
	s.fetchedAt = time.Now()
	s.mu.Unlock()
}

// Items returns a copy of the cached items.
func (s *CatalogStore) Items() []models.Sculpture {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Sculpture, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Stale reports whether the cache is older than ttl. An empty store is
// always stale.
func (s *CatalogStore) Stale(ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt.IsZero() || time.Since(s.fetchedAt) > ttl
}

// Refine filters the cached items with the widened text predicate and
// applies the filter's pagination window. The cache is not modified.
func (s *CatalogStore) Refine(f catalog.Filter) []models.Sculpture {
	matched := catalog.ApplyText(s.Items(), f)
	return catalog.Paginate(matched, f.Limit, f.Offset)
}

// Sorted returns the cached items ordered by the given key.
func (s *CatalogStore) Sorted(key catalog.SortKey) []models.Sculpture {
	return catalog.SortBy(s.Items(), key)
}
