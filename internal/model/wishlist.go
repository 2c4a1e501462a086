package model

import "time"

// WishlistItem is a saved-for-later product reference. Items are unique by
// product ID; adding a duplicate is a no-op.
type WishlistItem struct {
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}
