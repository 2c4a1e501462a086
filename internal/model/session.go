package model

// AuthState enumerates the session lifecycle states.
type AuthState int

const (
	// Anonymous means no session token is present.
	Anonymous AuthState = iota
	// Authenticating means a login or signup call is in flight.
	Authenticating
	// Authenticated means a session token and user profile are held.
	Authenticated
)

// String returns the state name for logs.
func (s AuthState) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}
