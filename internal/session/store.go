// Package session persists the device's auth session: an opaque token and
// the ID of the logged-in user.
package session

import "context"

// Storage keys for the two persisted entries. These are fixed and documented;
// other installations of the app rely on them surviving upgrades.
const (
	KeyAuthToken = "splitmacha_auth_token"
	KeyUserID    = "splitmacha_user_id"
)

// Session is the {token, userID} pair identifying the authenticated user on
// this device. At most one session is active at a time.
type Session struct {
	Token  string
	UserID string
}

// Store defines the interface for session persistence.
// This abstraction allows swapping backends (SQLite on device, in-memory in
// tests) without changing the auth or client layers.
//
// Implementations must keep the pair atomic: a session is either fully
// present (both token and user ID) or absent. A partially written session is
// treated as absent.
type Store interface {
	// LoadSession returns the stored session. ok is false when no complete
	// session is present.
	LoadSession(ctx context.Context) (s Session, ok bool, err error)

	// SaveSession persists both entries together. Either both are written or
	// the previous state is left intact.
	SaveSession(ctx context.Context, s Session) error

	// ClearSession removes both entries. Clearing an empty store is not an
	// error.
	ClearSession(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
