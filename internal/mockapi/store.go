// Package mockapi is a development stand-in for the real SplitMacha backend.
// It answers the same HTTP routes against seeded in-memory collections and is
// never deployed to production.
package mockapi

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/splitmacha/splitmacha/internal/models"
)

// NewID returns a collision-resistant record identifier with a type prefix,
// e.g. "user-1b4e28ba-...". Rapid successive creates never collide.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// RecordStore holds the seeded collections. Lookups are linear scans: the
// dataset is fixture-sized and the scan policies are part of the fixture's
// contract. Email matches are case-insensitive and whitespace-trimmed; ID
// matches are exact and case-sensitive.
type RecordStore struct {
	mu          sync.Mutex
	users       []models.User
	groups      []models.Group
	expenses    []models.Expense
	friends     []models.Friend
	settlements []models.Settlement

	// passwords maps user ID to bcrypt hash for users created through
	// registration. Seeded users have no entry and accept any password.
	passwords map[string]string
}

// NewRecordStore creates a store populated with the given seed.
func NewRecordStore(seed SeedData) *RecordStore {
	return &RecordStore{
		users:       append([]models.User(nil), seed.Users...),
		groups:      append([]models.Group(nil), seed.Groups...),
		expenses:    append([]models.Expense(nil), seed.Expenses...),
		friends:     append([]models.Friend(nil), seed.Friends...),
		settlements: append([]models.Settlement(nil), seed.Settlements...),
		passwords:   make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindUserByEmail scans for a user by normalized email.
func (s *RecordStore) FindUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := normalizeEmail(email)
	for _, u := range s.users {
		if normalizeEmail(u.Email) == want {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUserByID scans for a user by exact ID.
func (s *RecordStore) FindUserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// ListUsers returns a copy of all users.
func (s *RecordStore) ListUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

// SearchUsers scans for users whose name or email contains the query,
// case-insensitively.
func (s *RecordStore) SearchUsers(query string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	matches := []models.User{}
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			matches = append(matches, u)
		}
	}
	return matches
}

// InsertUser appends a user, optionally with a password hash for later
// login verification.
func (s *RecordStore) InsertUser(u models.User, passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, u)
	if passwordHash != "" {
		s.passwords[u.ID] = passwordHash
	}
}

// PasswordHash returns the stored hash for a registered user. Seeded users
// have none.
func (s *RecordStore) PasswordHash(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hash, ok := s.passwords[userID]
	return hash, ok
}

// UpdateUser patches the non-empty fields of req onto the stored user and
// stamps updatedAt.
func (s *RecordStore) UpdateUser(id string, req models.UpdateUserRequest) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Phone != "" {
			u.Phone = req.Phone
		}
		if req.AvatarURL != "" {
			u.AvatarURL = req.AvatarURL
		}
		if req.PreferredCurrency != "" {
			u.PreferredCurrency = req.PreferredCurrency
		}
		u.UpdatedAt = nowStamp()
		return *u, true
	}
	return models.User{}, false
}

// ListGroups returns a copy of all groups.
func (s *RecordStore) ListGroups() []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Group(nil), s.groups...)
}

// InsertGroup appends a group.
func (s *RecordStore) InsertGroup(g models.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, g)
}

// ListExpenses returns a copy of all expenses. Soft-deleted expenses are not
// filtered out; the status field is returned as stored.
func (s *RecordStore) ListExpenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Expense(nil), s.expenses...)
}

// InsertExpense appends an expense.
func (s *RecordStore) InsertExpense(e models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

// ListFriends returns a copy of all friend connections.
func (s *RecordStore) ListFriends() []models.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Friend(nil), s.friends...)
}

// ListSettlements returns a copy of all settlements.
func (s *RecordStore) ListSettlements() []models.Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Settlement(nil), s.settlements...)
}

// InsertSettlement appends a settlement.
func (s *RecordStore) InsertSettlement(st models.Settlement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settlements = append(s.settlements, st)
}
