package mockapi

import (
	"testing"

	"github.com/splitmacha/splitmacha/internal/models"
)

func TestFindUserByEmail(t *testing.T) {
	store := NewRecordStore(DefaultSeed())

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		user, found := store.FindUserByEmail("  YOU@Example.COM ")
		if !found {
			t.Fatal("expected seeded user to match")
		}
		if user.Email != "you@example.com" {
			t.Errorf("matched wrong user: %s", user.Email)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		if _, found := store.FindUserByEmail("missing@nowhere.com"); found {
			t.Error("expected no match")
		}
	})
}

func TestFindUserByID(t *testing.T) {
	store := NewRecordStore(DefaultSeed())

	t.Run("exact match", func(t *testing.T) {
		user, found := store.FindUserByID("user-you")
		if !found {
			t.Fatal("expected seeded user to match")
		}
		if user.Name != "You" {
			t.Errorf("matched wrong user: %s", user.Name)
		}
	})

	t.Run("ID match is case-sensitive", func(t *testing.T) {
		if _, found := store.FindUserByID("USER-YOU"); found {
			t.Error("expected no match for different casing")
		}
	})
}

func TestNewIDUniqueness(t *testing.T) {
	// Rapid successive creates within the same millisecond must not collide.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("expense")
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestSearchUsers(t *testing.T) {
	store := NewRecordStore(DefaultSeed())

	t.Run("matches name case-insensitively", func(t *testing.T) {
		matches := store.SearchUsers("PRIYA")
		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}
		if matches[0].Name != "Priya Sharma" {
			t.Errorf("wrong match: %s", matches[0].Name)
		}
	})

	t.Run("matches email substring", func(t *testing.T) {
		matches := store.SearchUsers("arjun@")
		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		matches := store.SearchUsers("zzz-nobody")
		if matches == nil || len(matches) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", matches)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	store := NewRecordStore(DefaultSeed())

	updated, found := store.UpdateUser("user-you", models.UpdateUserRequest{Name: "New Name"})
	if !found {
		t.Fatal("expected user to be found")
	}
	if updated.Name != "New Name" {
		t.Errorf("name not updated: %s", updated.Name)
	}
	if updated.Email != "you@example.com" {
		t.Errorf("untouched field changed: %s", updated.Email)
	}
	if updated.UpdatedAt == updated.CreatedAt {
		t.Error("expected updatedAt to move")
	}

	if _, found := store.UpdateUser("user-nobody", models.UpdateUserRequest{Name: "X"}); found {
		t.Error("expected no match for unknown ID")
	}
}

func TestListExpensesKeepsDeletedStatus(t *testing.T) {
	seed := DefaultSeed()
	seed.Expenses[0].Status = models.ExpenseDeleted
	store := NewRecordStore(seed)

	// Soft-deleted expenses are returned as stored; no route filters them.
	expenses := store.ListExpenses()
	var sawDeleted bool
	for _, e := range expenses {
		if e.Status == models.ExpenseDeleted {
			sawDeleted = true
		}
	}
	if !sawDeleted {
		t.Error("expected deleted expense to remain listed")
	}
}
