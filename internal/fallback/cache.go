// Package fallback keeps a local copy of the order list for the case when
// the remote order store is unreachable. Reads always prefer the live store;
// the cache is only consulted on the degraded path.
package fallback

import (
	"github.com/ryazanov/inkstudio/internal/localstore"
	"github.com/ryazanov/inkstudio/internal/models"
)

const ordersKey = "orders"

// Cache persists the last known order list
type Cache struct {
	store *localstore.Store
}

// NewCache creates new Cache instance over a local store
func NewCache(store *localstore.Store) *Cache {
	return &Cache{store: store}
}

// Read returns the cached order list, empty if never written
func (c *Cache) Read() ([]models.Order, error) {
	orders := []models.Order{}

	if _, err := c.store.Get(ordersKey, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Write replaces the cached order list
func (c *Cache) Write(orders []models.Order) error {
	return c.store.Put(ordersKey, orders)
}

// Clear drops the cached order list
func (c *Cache) Clear() error {
	return c.store.Delete(ordersKey)
}
