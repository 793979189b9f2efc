package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "splitmacha-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "session.db")
	store, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("empty store reports no session", func(t *testing.T) {
		_, ok, err := store.LoadSession(ctx)
		if err != nil {
			t.Fatalf("LoadSession failed: %v", err)
		}
		if ok {
			t.Error("expected no session in fresh store")
		}
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		want := Session{Token: "tok-abc", UserID: "user-1"}
		if err := store.SaveSession(ctx, want); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		got, ok, err := store.LoadSession(ctx)
		if err != nil {
			t.Fatalf("LoadSession failed: %v", err)
		}
		if !ok {
			t.Fatal("expected session after save")
		}
		if got != want {
			t.Errorf("session mismatch: got %+v, want %+v", got, want)
		}
	})

	t.Run("save overwrites previous session", func(t *testing.T) {
		if err := store.SaveSession(ctx, Session{Token: "tok-new", UserID: "user-2"}); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		got, ok, err := store.LoadSession(ctx)
		if err != nil || !ok {
			t.Fatalf("LoadSession failed: ok=%t err=%v", ok, err)
		}
		if got.Token != "tok-new" || got.UserID != "user-2" {
			t.Errorf("expected overwritten session, got %+v", got)
		}
	})

	t.Run("partial session is rejected", func(t *testing.T) {
		if err := store.SaveSession(ctx, Session{Token: "tok-only"}); err == nil {
			t.Error("expected error saving session without user ID")
		}
		if err := store.SaveSession(ctx, Session{UserID: "user-only"}); err == nil {
			t.Error("expected error saving session without token")
		}

		// Previous complete session must survive the rejected writes.
		got, ok, err := store.LoadSession(ctx)
		if err != nil || !ok {
			t.Fatalf("LoadSession failed: ok=%t err=%v", ok, err)
		}
		if got.Token != "tok-new" {
			t.Errorf("prior session was disturbed: %+v", got)
		}
	})

	t.Run("clear removes both entries and is idempotent", func(t *testing.T) {
		if err := store.ClearSession(ctx); err != nil {
			t.Fatalf("ClearSession failed: %v", err)
		}
		if _, ok, _ := store.LoadSession(ctx); ok {
			t.Error("expected no session after clear")
		}

		// Clearing again must not fail.
		if err := store.ClearSession(ctx); err != nil {
			t.Errorf("second ClearSession failed: %v", err)
		}
	})

	t.Run("session survives reopen", func(t *testing.T) {
		if err := store.SaveSession(ctx, Session{Token: "tok-persist", UserID: "user-3"}); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		reopened, err := NewSQLite(dbPath)
		if err != nil {
			t.Fatalf("failed to reopen store: %v", err)
		}
		defer reopened.Close()

		got, ok, err := reopened.LoadSession(ctx)
		if err != nil || !ok {
			t.Fatalf("LoadSession after reopen failed: ok=%t err=%v", ok, err)
		}
		if got.Token != "tok-persist" || got.UserID != "user-3" {
			t.Errorf("persisted session mismatch: %+v", got)
		}
	})
}
