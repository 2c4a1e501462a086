package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/parvecare/storefront/internal/model"
)

type wishlistEnvelope struct {
	Wishlist []model.Product `json:"wishlist"`
}

type wishlistItemRequest struct {
	ProductID string `json:"productId"`
}

// FetchWishlist returns the authenticated user's server-side wishlist as
// full products, so the UI can render saved items without a second fetch.
func (c *Client) FetchWishlist(ctx context.Context) ([]model.Product, error) {
	var env wishlistEnvelope
	if err := c.do(ctx, http.MethodGet, "/users/wishlist", nil, &env, true); err != nil {
		return nil, err
	}
	return env.Wishlist, nil
}

// AddWishlistItem adds a product to the server-side wishlist.
func (c *Client) AddWishlistItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodPost, "/users/wishlist", wishlistItemRequest{ProductID: productID}, nil, true)
}

// RemoveWishlistItem deletes a product from the server-side wishlist.
func (c *Client) RemoveWishlistItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/users/wishlist/"+url.PathEscape(productID), nil, nil, true)
}
