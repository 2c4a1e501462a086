// Package store implements the client-side state-synchronization core: the
// cart, wishlist, and auth stores. Each store owns its collection, applies
// mutations optimistically, persists a snapshot after every change, and
// mirrors the change to the backend when a session exists.
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

// SessionGate reports whether a backend session is currently established.
// Satisfied by *session.Manager.
type SessionGate interface {
	Authenticated() bool
}

// mirrorOp is one queued backend call for a single product. Absolute ops
// overwrite server state and may be coalesced; delta ops must all be sent.
// ctx is the enqueuing call's context detached from cancellation, so a
// caller going away does not abort an already-committed local mutation's
// mirror.
type mirrorOp struct {
	name     string
	absolute bool
	ctx      context.Context
	call     func(context.Context) error
}

// Cart maintains the shopper's current selection locally and on the backend.
//
// Mirror calls are serialized per product through a FIFO queue, so two rapid
// quantity updates for the same product cannot reach the backend out of
// order: the last local intent always wins server-side. Mirror failures are
// logged and never roll back the optimistic local state.
type Cart struct {
	mu      sync.Mutex
	items   []model.CartItem
	loading bool
	queues  map[string][]mirrorOp
	active  map[string]bool

	backend model.Backend
	gate    SessionGate
	snaps   model.Snapshots
	logger  *logger.Logger
}

// NewCart creates the cart store and restores any persisted guest cart.
func NewCart(ctx context.Context, backend model.Backend, gate SessionGate, snaps model.Snapshots, logger *logger.Logger) *Cart {
	c := &Cart{
		queues:  make(map[string][]mirrorOp),
		active:  make(map[string]bool),
		backend: backend,
		gate:    gate,
		snaps:   snaps,
		logger:  logger,
	}
	c.hydrate(ctx)
	return c
}

func (c *Cart) hydrate(ctx context.Context) {
	data, err := c.snaps.Load(ctx, model.SnapshotCart)
	if errors.Is(err, model.ErrNotFound) {
		return
	}
	if err != nil {
		c.logger.Error("cart: failed to load snapshot", "error", err.Error())
		return
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		c.logger.Error("cart: failed to decode snapshot", "error", err.Error())
		c.items = nil
	}
}

// AddItem inserts a new line or accumulates quantity onto an existing one.
// The local mutation is applied synchronously; the backend add is mirrored
// asynchronously when a session exists.
func (c *Cart) AddItem(ctx context.Context, product model.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOfLocked(product.ID); idx >= 0 {
		c.items[idx].Quantity += quantity
	} else {
		c.items = append(c.items, model.CartItem{Product: product, Quantity: quantity})
	}
	c.persistLocked(ctx)

	if !c.gate.Authenticated() {
		return
	}
	productID := product.ID
	c.enqueueLocked(productID, mirrorOp{
		name: "add",
		ctx:  context.WithoutCancel(ctx),
		call: func(ctx context.Context) error {
			return c.backend.AddCartItem(ctx, productID, quantity)
		},
	})
}

// RemoveItem deletes the matching line. Removing an absent product is a
// no-op and nothing is mirrored.
func (c *Cart) RemoveItem(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOfLocked(productID)
	if idx < 0 {
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.persistLocked(ctx)

	if !c.gate.Authenticated() {
		return
	}
	c.enqueueLocked(productID, mirrorOp{
		name: "remove",
		ctx:  context.WithoutCancel(ctx),
		call: func(ctx context.Context) error {
			return c.backend.RemoveCartItem(ctx, productID)
		},
	})
}

// UpdateQuantity overwrites the line's quantity. The caller keeps quantity
// >= 1; no line is created when the product is absent.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOfLocked(productID)
	if idx < 0 {
		return
	}
	c.items[idx].Quantity = quantity
	c.persistLocked(ctx)

	if !c.gate.Authenticated() {
		return
	}
	c.enqueueLocked(productID, mirrorOp{
		name:     "update",
		absolute: true,
		ctx:      context.WithoutCancel(ctx),
		call: func(ctx context.Context) error {
			return c.backend.UpdateCartItem(ctx, productID, quantity)
		},
	})
}

// Clear empties the cart and mirrors a bulk clear. Queued per-product
// mirrors are dropped since the bulk clear supersedes them; an in-flight
// call may still land after the clear, an accepted inconsistency.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	c.items = nil
	c.persistLocked(ctx)
	for id := range c.queues {
		delete(c.queues, id)
	}
	authed := c.gate.Authenticated()
	c.mu.Unlock()

	if !authed {
		return
	}
	mctx := context.WithoutCancel(ctx)
	go func() {
		if err := c.backend.ClearCart(mctx); err != nil {
			c.logger.Error("cart: failed to mirror clear", "error", err.Error())
		}
	}()
}

// SetItems replaces the collection outright. Used by the auth store's
// logout cascade; pending mirrors are dropped.
func (c *Cart) SetItems(ctx context.Context, items []model.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	c.persistLocked(ctx)
	for id := range c.queues {
		delete(c.queues, id)
	}
}

// SyncWithBackend replaces the local cart with the server's snapshot.
// Last-write-wins from the server, no merge. On failure the prior local
// state stays intact and the error is returned so the UI can surface it.
func (c *Cart) SyncWithBackend(ctx context.Context) error {
	if !c.gate.Authenticated() {
		return nil
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.backend.FetchCart(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logger.Error("cart: failed to sync with backend", "error", err.Error())
		return fmt.Errorf("failed to fetch cart: %w", err)
	}

	c.items = items
	c.persistLocked(ctx)
	return nil
}

// Items returns a copy of the current cart lines.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Loading reports whether a full sync is in flight.
func (c *Cart) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the cart total using each product's effective unit
// price at the current time.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	total := 0.0
	for _, item := range c.items {
		total += item.Product.EffectiveUnitPrice(now) * float64(item.Quantity)
	}
	return total
}

func (c *Cart) indexOfLocked(productID string) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) persistLocked(ctx context.Context) {
	if len(c.items) == 0 {
		if err := c.snaps.Clear(ctx, model.SnapshotCart); err != nil {
			c.logger.Error("cart: failed to clear snapshot", "error", err.Error())
		}
		return
	}
	data, err := json.Marshal(c.items)
	if err != nil {
		c.logger.Error("cart: failed to encode snapshot", "error", err.Error())
		return
	}
	if err := c.snaps.Save(ctx, model.SnapshotCart, data); err != nil {
		c.logger.Error("cart: failed to save snapshot", "error", err.Error())
	}
}

// enqueueLocked appends a mirror op to the product's queue and starts a
// drainer if none is running. Consecutive absolute ops coalesce: a queued
// quantity overwrite that has not been sent yet is replaced by the newer
// one.
func (c *Cart) enqueueLocked(productID string, op mirrorOp) {
	q := c.queues[productID]
	if op.absolute && len(q) > 0 && q[len(q)-1].absolute {
		q[len(q)-1] = op
	} else {
		q = append(q, op)
	}
	c.queues[productID] = q

	if !c.active[productID] {
		c.active[productID] = true
		go c.drain(productID)
	}
}

func (c *Cart) drain(productID string) {
	for {
		c.mu.Lock()
		q := c.queues[productID]
		if len(q) == 0 {
			c.active[productID] = false
			c.mu.Unlock()
			return
		}
		op := q[0]
		c.queues[productID] = q[1:]
		c.mu.Unlock()

		if err := op.call(op.ctx); err != nil {
			c.logger.Error("cart: failed to mirror "+op.name,
				"product_id", productID,
				"error", err.Error())
		}
	}
}
