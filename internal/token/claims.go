package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the subset of backend JWT claims the client reads.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Inspect parses a session token without verifying its signature. The
// backend is the only party that validates tokens; the client just needs to
// read expiry and identity claims out of what it stored. Opaque non-JWT
// tokens fail to parse and stay uninspectable.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return claims, nil
}

// Expired reports whether the claims carry an expiry before the given time.
// Claims without an expiry never report expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(now)
}
