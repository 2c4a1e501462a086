// Package session owns the persisted session token and user profile and is
// the single place the rest of the client asks "is someone logged in".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/parvecare/storefront/internal/logger"
	"github.com/parvecare/storefront/internal/model"
	"github.com/parvecare/storefront/internal/token"
)

type persistedSession struct {
	Token string      `json:"token"`
	User  *model.User `json:"user,omitempty"`
}

// Manager holds the current session and persists it under the auth
// namespace. Token presence is the sole logged-in signal; the profile is
// present iff a token is.
type Manager struct {
	mu     sync.RWMutex
	token  string
	user   *model.User
	snaps  model.Snapshots
	logger *logger.Logger
}

// NewManager creates a Manager and restores any persisted session. A stored
// token whose parsed expiry is already in the past is discarded, so a stale
// login does not resurrect as an authenticated session.
func NewManager(ctx context.Context, snaps model.Snapshots, logger *logger.Logger) *Manager {
	m := &Manager{
		snaps:  snaps,
		logger: logger,
	}
	m.hydrate(ctx)
	return m
}

func (m *Manager) hydrate(ctx context.Context) {
	data, err := m.snaps.Load(ctx, model.SnapshotAuth)
	if errors.Is(err, model.ErrNotFound) {
		return
	}
	if err != nil {
		m.logger.Error("session: failed to load snapshot", "error", err.Error())
		return
	}

	var s persistedSession
	if err := json.Unmarshal(data, &s); err != nil {
		m.logger.Error("session: failed to decode snapshot", "error", err.Error())
		return
	}
	if s.Token == "" {
		return
	}

	if claims, err := token.Inspect(s.Token); err == nil && claims.Expired(time.Now()) {
		m.logger.Info("session: stored token expired, treating as logged out")
		if err := m.snaps.Clear(ctx, model.SnapshotAuth); err != nil {
			m.logger.Error("session: failed to clear expired snapshot", "error", err.Error())
		}
		return
	}

	m.token = s.Token
	m.user = s.User
}

// Establish stores a fresh token and profile and persists them.
func (m *Manager) Establish(ctx context.Context, tok string, user model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(persistedSession{Token: tok, User: &user})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.snaps.Save(ctx, model.SnapshotAuth, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.token = tok
	m.user = &user
	return nil
}

// Clear drops the session from memory and storage. It never fails; a
// storage error is logged and the in-memory session is gone regardless.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.user = nil
	if err := m.snaps.Clear(ctx, model.SnapshotAuth); err != nil {
		m.logger.Error("session: failed to clear snapshot", "error", err.Error())
	}
}

// Authenticated reports whether a session token is present.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// Token returns the current session token, empty when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the current profile and whether one is held.
func (m *Manager) User() (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}
