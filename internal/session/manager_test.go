package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parvecare/storefront/internal/model"
	"github.com/parvecare/storefront/internal/testutil"
)

func seedSession(t *testing.T, snaps model.Snapshots, tok string, user *model.User) {
	t.Helper()
	data, err := json.Marshal(persistedSession{Token: tok, User: user})
	require.NoError(t, err)
	require.NoError(t, snaps.Save(context.Background(), model.SnapshotAuth, data))
}

func signExpiredToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestNewManager_Empty(t *testing.T) {
	m := NewManager(context.Background(), testutil.NewMemorySnapshots(), testutil.MakeNoopLogger())

	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())
	_, ok := m.User()
	assert.False(t, ok)
}

func TestNewManager_RestoresSession(t *testing.T) {
	snaps := testutil.NewMemorySnapshots()
	seedSession(t, snaps, "opaque-token", &model.User{Name: "Asha", Email: "asha@example.com"})

	m := NewManager(context.Background(), snaps, testutil.MakeNoopLogger())

	assert.True(t, m.Authenticated())
	assert.Equal(t, "opaque-token", m.Token())
	user, ok := m.User()
	require.True(t, ok)
	assert.Equal(t, "asha@example.com", user.Email)
}

func TestNewManager_ExpiredTokenDiscarded(t *testing.T) {
	snaps := testutil.NewMemorySnapshots()
	seedSession(t, snaps, signExpiredToken(t), &model.User{Email: "old@example.com"})

	m := NewManager(context.Background(), snaps, testutil.MakeNoopLogger())

	assert.False(t, m.Authenticated())
	assert.False(t, snaps.Has(model.SnapshotAuth))
}

func TestManager_EstablishAndClear(t *testing.T) {
	ctx := context.Background()
	snaps := testutil.NewMemorySnapshots()
	m := NewManager(ctx, snaps, testutil.MakeNoopLogger())

	require.NoError(t, m.Establish(ctx, "tok", model.User{Name: "Asha"}))
	assert.True(t, m.Authenticated())
	assert.True(t, snaps.Has(model.SnapshotAuth))

	m.Clear(ctx)
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())
	assert.False(t, snaps.Has(model.SnapshotAuth))
}

func TestManager_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	snaps := testutil.NewMemorySnapshots()

	m := NewManager(ctx, snaps, testutil.MakeNoopLogger())
	require.NoError(t, m.Establish(ctx, "tok", model.User{Email: "asha@example.com"}))

	// a fresh manager over the same storage sees the session
	m2 := NewManager(ctx, snaps, testutil.MakeNoopLogger())
	assert.True(t, m2.Authenticated())
	user, ok := m2.User()
	require.True(t, ok)
	assert.Equal(t, "asha@example.com", user.Email)
}
