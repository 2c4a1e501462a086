// Package mocks provides testify mocks for the store ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/parvecare/storefront/internal/model"
)

// Backend is a mock of model.Backend.
type Backend struct {
	mock.Mock
}

func (m *Backend) FetchCart(ctx context.Context) ([]model.CartItem, error) {
	args := m.Called(ctx)
	var items []model.CartItem
	if v := args.Get(0); v != nil {
		items = v.([]model.CartItem)
	}
	return items, args.Error(1)
}

func (m *Backend) AddCartItem(ctx context.Context, productID string, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *Backend) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *Backend) RemoveCartItem(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *Backend) ClearCart(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Backend) FetchWishlist(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	var products []model.Product
	if v := args.Get(0); v != nil {
		products = v.([]model.Product)
	}
	return products, args.Error(1)
}

func (m *Backend) AddWishlistItem(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *Backend) RemoveWishlistItem(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *Backend) Signup(ctx context.Context, req model.SignupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *Backend) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	args := m.Called(ctx, email, password)
	var res model.LoginResult
	if v := args.Get(0); v != nil {
		res = v.(model.LoginResult)
	}
	return res, args.Error(1)
}
