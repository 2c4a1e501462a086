package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/parvecare/storefront/internal/logger"
	"github.com/parvecare/storefront/internal/model"
)

// Wishlist maintains the shopper's saved-for-later product IDs locally and
// on the backend. Unlike the cart, a failed mirror call rolls the local
// state back to the pre-call list, trading a UI flicker for consistency.
type Wishlist struct {
	mu       sync.Mutex
	items    []model.WishlistItem
	products map[string]model.Product
	loading  bool

	backend model.Backend
	gate    SessionGate
	snaps   model.Snapshots
	logger  *logger.Logger
}

// NewWishlist creates the wishlist store and restores any persisted items.
func NewWishlist(ctx context.Context, backend model.Backend, gate SessionGate, snaps model.Snapshots, logger *logger.Logger) *Wishlist {
	w := &Wishlist{
		products: make(map[string]model.Product),
		backend:  backend,
		gate:     gate,
		snaps:    snaps,
		logger:   logger,
	}
	w.hydrate(ctx)
	return w
}

func (w *Wishlist) hydrate(ctx context.Context) {
	data, err := w.snaps.Load(ctx, model.SnapshotWishlist)
	if errors.Is(err, model.ErrNotFound) {
		return
	}
	if err != nil {
		w.logger.Error("wishlist: failed to load snapshot", "error", err.Error())
		return
	}
	if err := json.Unmarshal(data, &w.items); err != nil {
		w.logger.Error("wishlist: failed to decode snapshot", "error", err.Error())
		w.items = nil
	}
}

// AddItem saves a product ID. Adding one already present is a no-op. When a
// session exists the add is mirrored; a mirror failure restores the
// pre-call item list.
func (w *Wishlist) AddItem(ctx context.Context, productID string) {
	w.mu.Lock()

	if w.containsLocked(productID) {
		w.mu.Unlock()
		return
	}
	prev := make([]model.WishlistItem, len(w.items))
	copy(prev, w.items)

	w.items = append(w.items, model.WishlistItem{ProductID: productID, AddedAt: time.Now()})
	w.persistLocked(ctx)
	authed := w.gate.Authenticated()
	w.mu.Unlock()

	if !authed {
		return
	}
	mctx := context.WithoutCancel(ctx)
	go func() {
		if err := w.backend.AddWishlistItem(mctx, productID); err != nil {
			w.logger.Error("wishlist: failed to mirror add, rolling back",
				"product_id", productID,
				"error", err.Error())
			w.rollback(mctx, prev)
		}
	}()
}

// RemoveItem drops a product ID. Removing an absent product is a no-op.
// A mirror failure restores the pre-call item list.
func (w *Wishlist) RemoveItem(ctx context.Context, productID string) {
	w.mu.Lock()

	idx := -1
	for i, item := range w.items {
		if item.ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.mu.Unlock()
		return
	}
	prev := make([]model.WishlistItem, len(w.items))
	copy(prev, w.items)

	w.items = append(w.items[:idx], w.items[idx+1:]...)
	w.persistLocked(ctx)
	authed := w.gate.Authenticated()
	w.mu.Unlock()

	if !authed {
		return
	}
	mctx := context.WithoutCancel(ctx)
	go func() {
		if err := w.backend.RemoveWishlistItem(mctx, productID); err != nil {
			w.logger.Error("wishlist: failed to mirror remove, rolling back",
				"product_id", productID,
				"error", err.Error())
			w.rollback(mctx, prev)
		}
	}()
}

func (w *Wishlist) rollback(ctx context.Context, prev []model.WishlistItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = prev
	w.persistLocked(ctx)
}

// IsInWishlist reports membership by product ID.
func (w *Wishlist) IsInWishlist(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.containsLocked(productID)
}

// SyncWithBackend replaces the local set and the product-detail cache with
// the server's wishlist. Known AddedAt timestamps survive the replacement.
// On failure the prior local state stays intact and the error is returned.
func (w *Wishlist) SyncWithBackend(ctx context.Context) error {
	if !w.gate.Authenticated() {
		return nil
	}

	w.mu.Lock()
	w.loading = true
	w.mu.Unlock()

	products, err := w.backend.FetchWishlist(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false
	if err != nil {
		w.logger.Error("wishlist: failed to sync with backend", "error", err.Error())
		return fmt.Errorf("failed to fetch wishlist: %w", err)
	}

	added := make(map[string]time.Time, len(w.items))
	for _, item := range w.items {
		added[item.ProductID] = item.AddedAt
	}

	items := make([]model.WishlistItem, 0, len(products))
	cache := make(map[string]model.Product, len(products))
	now := time.Now()
	for _, p := range products {
		at, ok := added[p.ID]
		if !ok {
			at = now
		}
		items = append(items, model.WishlistItem{ProductID: p.ID, AddedAt: at})
		cache[p.ID] = p
	}

	w.items = items
	w.products = cache
	w.persistLocked(ctx)
	return nil
}

// SetItems replaces the collection and product cache outright. Used by the
// auth store's logout cascade.
func (w *Wishlist) SetItems(ctx context.Context, items []model.WishlistItem, products map[string]model.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = items
	if products == nil {
		products = make(map[string]model.Product)
	}
	w.products = products
	w.persistLocked(ctx)
}

// Items returns a copy of the current wishlist entries.
func (w *Wishlist) Items() []model.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]model.WishlistItem, len(w.items))
	copy(items, w.items)
	return items
}

// ProductDetail returns the cached product for a wishlist entry, if the
// last sync delivered one.
func (w *Wishlist) ProductDetail(productID string) (model.Product, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.products[productID]
	return p, ok
}

// Loading reports whether a full sync is in flight.
func (w *Wishlist) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

func (w *Wishlist) containsLocked(productID string) bool {
	for _, item := range w.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) persistLocked(ctx context.Context) {
	if len(w.items) == 0 {
		if err := w.snaps.Clear(ctx, model.SnapshotWishlist); err != nil {
			w.logger.Error("wishlist: failed to clear snapshot", "error", err.Error())
		}
		return
	}
	data, err := json.Marshal(w.items)
	if err != nil {
		w.logger.Error("wishlist: failed to encode snapshot", "error", err.Error())
		return
	}
	if err := w.snaps.Save(ctx, model.SnapshotWishlist, data); err != nil {
		w.logger.Error("wishlist: failed to save snapshot", "error", err.Error())
	}
}
