package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/parvecare/storefront/internal/model"
)

type productsEnvelope struct {
	Products []model.Product `json:"products"`
}

// FetchProducts returns the catalog for browsing.
func (c *Client) FetchProducts(ctx context.Context) ([]model.Product, error) {
	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/products", nil, &env, false); err != nil {
		return nil, err
	}
	return env.Products, nil
}

// FetchProduct returns a single product by ID.
func (c *Client) FetchProduct(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &p, false); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// CreateProduct adds a catalog product. Admin only.
func (c *Client) CreateProduct(ctx context.Context, p model.Product) error {
	return c.do(ctx, http.MethodPost, "/products/add", p, nil, true)
}

// UpdateProduct overwrites a catalog product. Admin only.
func (c *Client) UpdateProduct(ctx context.Context, p model.Product) error {
	return c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(p.ID), p, nil, true)
}

// DeleteProduct removes a catalog product. Admin only.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/delete/"+url.PathEscape(id), nil, nil, true)
}
