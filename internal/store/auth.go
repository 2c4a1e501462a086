package store

import (
	"context"
	"sync"

	"github.com/parvecare/storefront/internal/logger"
	"github.com/parvecare/storefront/internal/model"
	"github.com/parvecare/storefront/internal/session"
)

// Auth owns the session lifecycle and fans session transitions out to the
// cart and wishlist stores: a successful login triggers their backend
// syncs, a logout wipes them. The cascade is one-directional; the other
// stores never mutate the session.
type Auth struct {
	mu    sync.Mutex
	state model.AuthState

	session  *session.Manager
	backend  model.Backend
	cart     *Cart
	wishlist *Wishlist
	logger   *logger.Logger
}

// NewAuth creates the auth store. A session restored from storage starts
// the store in the authenticated state.
func NewAuth(sess *session.Manager, backend model.Backend, cart *Cart, wishlist *Wishlist, logger *logger.Logger) *Auth {
	state := model.Anonymous
	if sess.Authenticated() {
		state = model.Authenticated
	}
	return &Auth{
		state:    state,
		session:  sess,
		backend:  backend,
		cart:     cart,
		wishlist: wishlist,
		logger:   logger,
	}
}

// Signup registers a new account and reports success. It does not establish
// a session; the shopper logs in afterwards.
func (a *Auth) Signup(ctx context.Context, req model.SignupRequest) bool {
	a.setState(model.Authenticating)

	if err := a.backend.Signup(ctx, req); err != nil {
		a.logger.Info("auth: signup failed", "email", req.Email, "error", err.Error())
		a.setState(model.Anonymous)
		return false
	}

	a.logger.Info("auth: signup succeeded", "email", req.Email)
	a.setState(model.Anonymous)
	return true
}

// Login exchanges credentials for a session and reports success. On success
// the token and profile are persisted and both the cart and wishlist kick
// off best-effort backend syncs without blocking the transition. On failure
// no state changes.
func (a *Auth) Login(ctx context.Context, email, password string) bool {
	a.setState(model.Authenticating)

	res, err := a.backend.Login(ctx, email, password)
	if err != nil {
		a.logger.Info("auth: login failed", "email", email, "error", err.Error())
		a.setState(model.Anonymous)
		return false
	}

	if err := a.session.Establish(ctx, res.Token, res.User); err != nil {
		a.logger.Error("auth: failed to persist session", "email", email, "error", err.Error())
		a.setState(model.Anonymous)
		return false
	}
	a.setState(model.Authenticated)
	a.logger.Info("auth: login succeeded", "email", email)

	sctx := context.WithoutCancel(ctx)
	go func() {
		if err := a.cart.SyncWithBackend(sctx); err != nil {
			a.logger.Error("auth: post-login cart sync failed", "error", err.Error())
		}
	}()
	go func() {
		if err := a.wishlist.SyncWithBackend(sctx); err != nil {
			a.logger.Error("auth: post-login wishlist sync failed", "error", err.Error())
		}
	}()

	return true
}

// LoginAdmin logs in and then enforces the admin role: a successful
// credential check for a non-admin user is logged out again and reported as
// model.ErrAdminOnly, so authorization failure looks like login failure to
// the caller.
func (a *Auth) LoginAdmin(ctx context.Context, email, password string) error {
	a.setState(model.Authenticating)

	res, err := a.backend.Login(ctx, email, password)
	if err != nil {
		a.logger.Info("auth: admin login failed", "email", email, "error", err.Error())
		a.setState(model.Anonymous)
		return err
	}

	if err := a.session.Establish(ctx, res.Token, res.User); err != nil {
		a.logger.Error("auth: failed to persist session", "email", email, "error", err.Error())
		a.setState(model.Anonymous)
		return err
	}
	a.setState(model.Authenticated)

	if res.User.Role != model.RoleAdmin {
		a.logger.Info("auth: admin login rejected for non-admin user", "email", email)
		a.Logout(ctx)
		return model.ErrAdminOnly
	}

	a.logger.Info("auth: admin login succeeded", "email", email)
	return nil
}

// Logout always succeeds: it clears the session and cascades empty resets
// into the cart and wishlist, discarding their in-memory and persisted
// contents unconditionally.
func (a *Auth) Logout(ctx context.Context) {
	a.session.Clear(ctx)
	a.cart.SetItems(ctx, nil)
	a.wishlist.SetItems(ctx, nil, nil)
	a.setState(model.Anonymous)
	a.logger.Info("auth: logged out")
}

// State returns the current lifecycle state.
func (a *Auth) State() model.AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// IsLoggedIn reports whether a session is established.
func (a *Auth) IsLoggedIn() bool {
	return a.State() == model.Authenticated
}

// User returns the current profile and whether one is held.
func (a *Auth) User() (model.User, bool) {
	return a.session.User()
}

func (a *Auth) setState(s model.AuthState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = s
}
