package model

import "errors"

var (
	// ErrNotFound is returned when a snapshot or entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the backend rejects the session token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAdminOnly is returned when a non-admin user passes the credential
	// check on the admin login path.
	ErrAdminOnly = errors.New("admin access only")
)
