package model

import "context"

// SignupRequest carries the fields the signup endpoint expects.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginResult is a successful login response: the session token plus the
// user's profile.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Backend defines the remote operations the stores mirror local state to.
// Implemented by the REST client; the backend itself is an external
// collaborator.
type Backend interface {
	FetchCart(ctx context.Context) ([]CartItem, error)
	AddCartItem(ctx context.Context, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error

	FetchWishlist(ctx context.Context) ([]Product, error)
	AddWishlistItem(ctx context.Context, productID string) error
	RemoveWishlistItem(ctx context.Context, productID string) error

	Signup(ctx context.Context, req SignupRequest) error
	Login(ctx context.Context, email, password string) (LoginResult, error)
}
