package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parvecare/storefront/internal/mocks"
	"github.com/parvecare/storefront/internal/model"
	"github.com/parvecare/storefront/internal/testutil"
)

func TestWishlist_AddItem_Idempotent(t *testing.T) {
	ctx := context.Background()
	w := NewWishlist(ctx, &mocks.Backend{}, &stubGate{}, testutil.NewMemorySnapshots(), testutil.MakeNoopLogger())

	w.AddItem(ctx, "p1")
	w.AddItem(ctx, "p1")

	assert.Len(t, w.Items(), 1)
	assert.True(t, w.IsInWishlist("p1"))
	assert.False(t, w.IsInWishlist("p2"))
}

func TestWishlist_AddItem_DuplicateDoesNotMirror(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	calls := make(chan struct{}, 2)
	backend.On("AddWishlistItem", mock.Anything, "p1").Run(func(mock.Arguments) {
		calls <- struct{}{}
	}).Return(nil)

	w := NewWishlist(ctx, backend, &stubGate{authed: true}, testutil.NewMemorySnapshots(), testutil.MakeNoopLogger())
	w.AddItem(ctx, "p1")
	w.AddItem(ctx, "p1")

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("backend add was never mirrored")
	}
	select {
	case <-calls:
		t.Fatal("duplicate add reached the backend")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWishlist_AddItem_MirrorFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	backend.On("AddWishlistItem", mock.Anything, "p1").Return(errors.New("backend down"))

	snaps := testutil.NewMemorySnapshots()
	w := NewWishlist(ctx, backend, &stubGate{authed: true}, snaps, testutil.MakeNoopLogger())
	w.AddItem(ctx, "p1")

	// rollback restores the pre-call (empty) list and drops the snapshot
	assert.Eventually(t, func() bool {
		return len(w.Items()) == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, snaps.Has(model.SnapshotWishlist))
}

func TestWishlist_RemoveItem_MirrorFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	backend.On("AddWishlistItem", mock.Anything, "p1").Return(nil)
	backend.On("RemoveWishlistItem", mock.Anything, "p1").Return(errors.New("backend down"))

	w := NewWishlist(ctx, backend, &stubGate{authed: true}, testutil.NewMemorySnapshots(), testutil.MakeNoopLogger())
	w.AddItem(ctx, "p1")
	w.RemoveItem(ctx, "p1")

	assert.Eventually(t, func() bool {
		return w.IsInWishlist("p1")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWishlist_RemoveItem_AbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	w := NewWishlist(ctx, backend, &stubGate{authed: true}, testutil.NewMemorySnapshots(), testutil.MakeNoopLogger())

	w.RemoveItem(ctx, "ghost")

	assert.Empty(t, w.Items())
	time.Sleep(50 * time.Millisecond)
	backend.AssertNotCalled(t, "RemoveWishlistItem", mock.Anything, "ghost")
}

func TestWishlist_SyncWithBackend_ReplacesAndCaches(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	gate := &stubGate{}
	w := NewWishlist(ctx, backend, gate, testutil.NewMemorySnapshots(), testutil.MakeNoopLogger())

	// guest item that the server does not know about
	w.AddItem(ctx, "local-only")

	gate.set(true)
	serverProducts := []model.Product{
		{ID: "p1", Name: "Saffron Serum", Price: 1200},
		{ID: "p2", Name: "Neem Facewash", Price: 400},
	}
	backend.On("FetchWishlist", mock.Anything).Return(serverProducts, nil)

	require.NoError(t, w.SyncWithBackend(ctx))

	items := w.Items()
	require.Len(t, items, 2)
	assert.True(t, w.IsInWishlist("p1"))
	assert.True(t, w.IsInWishlist("p2"))
	assert.False(t, w.IsInWishlist("local-only"))

	p, ok := w.ProductDetail("p1")
	require.True(t, ok)
	assert.Equal(t, "Saffron Serum", p.Name)
	assert.False(t, w.Loading())
}

func TestWishlist_SyncWithBackend_FailureKeepsLocalState(t *testing.T) {
	ctx := context.Background()
	backend := &mocks.Backend{}
	backend.On("AddWishlistItem", mock.Anything, mock.Anything).Return(nil)
	backend.On("FetchWishlist", mock.Anything).Return(nil, errors.New("backend down"))

	w := NewWishlist(ctx, backend, &stubGate{authed: true}, testutil.NewMemorySnapshots(), testutil.MakeNoopLogger())
	w.AddItem(ctx, "p1")

	err := w.SyncWithBackend(ctx)
	require.Error(t, err)
	assert.True(t, w.IsInWishlist("p1"))
	assert.False(t, w.Loading())
}

func TestWishlist_SetItems_EmptyClearsSnapshot(t *testing.T) {
	ctx := context.Background()
	snaps := testutil.NewMemorySnapshots()
	w := NewWishlist(ctx, &mocks.Backend{}, &stubGate{}, snaps, testutil.MakeNoopLogger())

	w.AddItem(ctx, "p1")
	require.True(t, snaps.Has(model.SnapshotWishlist))

	w.SetItems(ctx, nil, nil)
	assert.Empty(t, w.Items())
	assert.False(t, snaps.Has(model.SnapshotWishlist))
}

func TestWishlist_HydratesFromSnapshot(t *testing.T) {
	ctx := context.Background()
	snaps := testutil.NewMemorySnapshots()

	stored := []model.WishlistItem{{ProductID: "p1", AddedAt: time.Now()}}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, snaps.Save(ctx, model.SnapshotWishlist, data))

	w := NewWishlist(ctx, &mocks.Backend{}, &stubGate{}, snaps, testutil.MakeNoopLogger())

	assert.True(t, w.IsInWishlist("p1"))
}
