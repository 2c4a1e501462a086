package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/parvecare/storefront/internal/model"
)

type ordersEnvelope struct {
	Orders []model.Order `json:"orders"`
}

type orderEnvelope struct {
	Order model.Order `json:"order"`
}

type orderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// MyOrders returns the authenticated user's orders.
func (c *Client) MyOrders(ctx context.Context) ([]model.Order, error) {
	var env ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", nil, &env, true); err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// OrderByID returns a single order the user is allowed to see.
func (c *Client) OrderByID(ctx context.Context, id string) (model.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &env, true); err != nil {
		return model.Order{}, err
	}
	return env.Order, nil
}

// AllOrders returns every order. Admin only; the backend enforces the role.
func (c *Client) AllOrders(ctx context.Context) ([]model.Order, error) {
	var env ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders/admin", nil, &env, true); err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Admin only.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return c.do(ctx, http.MethodPut, "/orders/admin/status/"+url.PathEscape(id), orderStatusRequest{Status: status}, nil, true)
}
