package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/parvecare/storefront/internal/model"
)

type cartEnvelope struct {
	Cart []model.CartItem `json:"cart"`
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// FetchCart returns the authenticated user's server-side cart.
func (c *Client) FetchCart(ctx context.Context) ([]model.CartItem, error) {
	var env cartEnvelope
	if err := c.do(ctx, http.MethodGet, "/users/cart", nil, &env, true); err != nil {
		return nil, err
	}
	return env.Cart, nil
}

// AddCartItem adds or increments a cart line on the server.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) error {
	return c.do(ctx, http.MethodPost, "/users/cart", cartItemRequest{ProductID: productID, Quantity: quantity}, nil, true)
}

// UpdateCartItem overwrites a cart line's quantity on the server.
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	return c.do(ctx, http.MethodPut, "/users/cart/"+url.PathEscape(productID), quantityRequest{Quantity: quantity}, nil, true)
}

// RemoveCartItem deletes a cart line on the server.
func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/users/cart/"+url.PathEscape(productID), nil, nil, true)
}

// ClearCart empties the server-side cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/users/cart", nil, nil, true)
}
