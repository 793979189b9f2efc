// Package auth owns the client-side session lifecycle. The Manager is the
// single source of truth for "who is logged in" and the only writer of the
// session store.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/splitmacha/splitmacha/internal/apiclient"
	"github.com/splitmacha/splitmacha/internal/models"
	"github.com/splitmacha/splitmacha/internal/session"
)

// AuthAPI is the slice of the auth repository the Manager needs.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// UserAPI is the slice of the user repository the Manager needs.
type UserAPI interface {
	ByID(ctx context.Context, userID string) (*models.User, error)
}

// State is a snapshot of the session as observed by subscribers.
type State struct {
	// User is the current profile, nil when logged out.
	User *models.User
	// Authenticated is derived from User presence, never stored separately.
	Authenticated bool
	// Error is the last displayable failure message, empty when none.
	Error string
}

// Manager holds the current session and serializes every mutation behind one
// mutex. Login racing logout resolves to whichever acquires the lock last,
// with both operations seeing consistent state.
type Manager struct {
	authAPI  AuthAPI
	users    UserAPI
	sessions session.Store
	logger   *slog.Logger

	mu     sync.Mutex
	user   *models.User
	errMsg string

	subMu   sync.Mutex
	subs    map[int]chan State
	nextSub int
}

// NewManager creates a session manager over the given repositories and store.
func NewManager(authAPI AuthAPI, users UserAPI, sessions session.Store, logger *slog.Logger) *Manager {
	return &Manager{
		authAPI:  authAPI,
		users:    users,
		sessions: sessions,
		logger:   logger,
		subs:     make(map[int]chan State),
	}
}

// CheckSession restores the session on process start. When a stored session
// exists, the real profile is fetched by the stored user ID; if that fetch
// fails the session is cleared and no session is reported. Restoration never
// fabricates a placeholder user.
func (m *Manager) CheckSession(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok, err := m.sessions.LoadSession(ctx)
	if err != nil {
		m.logger.Warn("Session read failed, clearing", "error", err)
		if clearErr := m.sessions.ClearSession(ctx); clearErr != nil {
			m.logger.Error("Failed to clear unreadable session", "error", clearErr)
		}
		m.setUser(nil)
		return nil
	}
	if !ok {
		m.setUser(nil)
		return nil
	}

	user, err := m.users.ByID(ctx, sess.UserID)
	if err != nil {
		m.logger.Warn("Stored session is stale, clearing", "user_id", sess.UserID, "error", err)
		if clearErr := m.sessions.ClearSession(ctx); clearErr != nil {
			m.logger.Error("Failed to clear stale session", "error", clearErr)
		}
		m.setUser(nil)
		return nil
	}

	m.setUser(user)
	m.logger.Info("Session restored", "user_id", user.ID, "email", user.Email)
	return nil
}

// Login authenticates with email and password. The email is normalized
// (lowercased, trimmed) before sending; validation failures are resolved
// locally without a network call. On success both session entries are
// persisted together; on failure the prior session is left untouched and the
// error is rethrown for the caller to display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errMsg = ""
	email = normalizeEmail(email)

	if err := validateEmail(email); err != nil {
		return m.fail(err)
	}
	if err := validatePassword(password); err != nil {
		return m.fail(err)
	}

	resp, err := m.authAPI.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.logger.Warn("Login failed", "email", email, "error", err)
		return m.fail(err)
	}

	if err := m.sessions.SaveSession(ctx, session.Session{Token: resp.Token, UserID: resp.User.ID}); err != nil {
		m.logger.Error("Failed to persist session", "error", err)
		return m.fail(err)
	}

	user := resp.User
	m.setUser(&user)
	m.logger.Info("Login successful", "user_id", user.ID, "email", user.Email)
	return nil
}

// Register creates an account and starts a session, with the same contract
// as Login. A duplicate email surfaces as a conflict error.
func (m *Manager) Register(ctx context.Context, name, email, password, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errMsg = ""
	email = normalizeEmail(email)

	if name == "" {
		return m.fail(ErrNameRequired)
	}
	if err := validateEmail(email); err != nil {
		return m.fail(err)
	}
	if err := validatePassword(password); err != nil {
		return m.fail(err)
	}

	resp, err := m.authAPI.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	})
	if err != nil {
		m.logger.Warn("Registration failed", "email", email, "error", err)
		return m.fail(err)
	}

	if err := m.sessions.SaveSession(ctx, session.Session{Token: resp.Token, UserID: resp.User.ID}); err != nil {
		m.logger.Error("Failed to persist session", "error", err)
		return m.fail(err)
	}

	user := resp.User
	m.setUser(&user)
	m.logger.Info("Registration successful", "user_id", user.ID, "email", user.Email)
	return nil
}

// Logout clears the session store and local state unconditionally. A failing
// remote invalidation never fails the caller; the local clear is
// authoritative. Idempotent.
//
// If clearing the store itself fails, the error is returned but in-memory
// state is still reset: the user is logged out as observed, and the next
// CheckSession re-validates the leftover store entry and clears it.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.authAPI.Logout(ctx); err != nil {
		m.logger.Warn("Remote logout failed, clearing locally anyway", "error", err)
	}

	if err := m.sessions.ClearSession(ctx); err != nil {
		m.logger.Error("Failed to clear session store", "error", err)
		m.setUser(nil)
		m.errMsg = ""
		return err
	}

	m.setUser(nil)
	m.errMsg = ""
	m.logger.Info("Logged out")
	return nil
}

// RefreshUser re-fetches the current profile. A no-op when logged out.
func (m *Manager) RefreshUser(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil
	}

	user, err := m.users.ByID(ctx, m.user.ID)
	if err != nil {
		m.logger.Warn("User refresh failed", "user_id", m.user.ID, "error", err)
		return m.fail(err)
	}
	m.setUser(user)
	return nil
}

// CurrentUser returns the logged-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated is derived from user presence on every call so it can
// never diverge from the user state.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// ErrorMessage returns the last displayable failure message, empty when none.
func (m *Manager) ErrorMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// ClearError resets the failure message.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = ""
	m.notify(m.snapshot())
}

// Subscribe registers an observer of session state. The returned channel
// receives a snapshot after every state change; slow receivers see the
// latest snapshot only. The cancel function releases the subscription.
func (m *Manager) Subscribe() (<-chan State, func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan State, 1)
	m.subs[id] = ch

	cancel := func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// fail records a displayable message, notifies subscribers, and rethrows.
// Callers must hold m.mu.
func (m *Manager) fail(err error) error {
	m.errMsg = displayMessage(err)
	m.notify(m.snapshot())
	return err
}

// setUser swaps the current user and notifies subscribers.
// Callers must hold m.mu.
func (m *Manager) setUser(user *models.User) {
	m.user = user
	m.notify(m.snapshot())
}

// snapshot builds the observable state. Callers must hold m.mu.
func (m *Manager) snapshot() State {
	return State{
		User:          m.user,
		Authenticated: m.user != nil,
		Error:         m.errMsg,
	}
}

// notify delivers a snapshot to every subscriber. Callers hold m.mu, so
// snapshots arrive in mutation order; the coalescing below then guarantees a
// lagging subscriber's channel holds the newest snapshot, never a stale one.
func (m *Manager) notify(state State) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		// Coalesce: drop a stale undelivered snapshot for the latest one.
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}

// displayMessage extracts a non-empty, user-displayable message: the
// classified API message if present, then the raw error text, then a fixed
// default. A raw unclassified error object never reaches the UI.
func displayMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "An unexpected error occurred"
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
