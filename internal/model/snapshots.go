package model

import "context"

// Snapshot namespaces. Each store persists under its own key so a reload
// restores guest state independently per store.
const (
	SnapshotCart     = "parve-cart"
	SnapshotWishlist = "parve-wishlist"
	SnapshotAuth     = "parve-auth"
)

// Snapshots persists namespaced state blobs between sessions. Load returns
// ErrNotFound when no snapshot exists under the key.
type Snapshots interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Clear(ctx context.Context, key string) error
}
