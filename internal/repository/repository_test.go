package repository

import (
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/splitmacha/splitmacha/internal/apiclient"
	"github.com/splitmacha/splitmacha/internal/mockapi"
	"github.com/splitmacha/splitmacha/internal/models"
	"github.com/splitmacha/splitmacha/internal/session"
)

// The repositories are pass-throughs; these tests pin the paths and shapes
// against the mock backend rather than re-asserting backend behavior.
func setupRepos(t *testing.T) (*apiclient.Client, session.Store) {
	t.Helper()

	store := mockapi.NewRecordStore(mockapi.DefaultSeed())
	api := mockapi.New(mockapi.Config{
		Latency:     0,
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
	}, store, slog.New(slog.DiscardHandler))
	server := httptest.NewServer(api.Handler())
	t.Cleanup(server.Close)

	sessions := session.NewMemory()
	return apiclient.New(server.URL, sessions, slog.New(slog.DiscardHandler)), sessions
}

func TestAuthRepository(t *testing.T) {
	client, _ := setupRepos(t)
	auth := NewAuth(client)
	ctx := context.Background()

	resp, err := auth.Login(ctx, models.LoginRequest{Email: "you@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.User.Email != "you@example.com" || resp.Token == "" {
		t.Errorf("unexpected auth response: %+v", resp)
	}

	_, err = auth.Login(ctx, models.LoginRequest{Email: "missing@nowhere.com", Password: "pw"})
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) || apiErr.Category != apiclient.NotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUsersRepository(t *testing.T) {
	client, sessions := setupRepos(t)
	auth := NewAuth(client)
	users := NewUsers(client)
	ctx := context.Background()

	t.Run("list and lookup", func(t *testing.T) {
		all, err := users.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) == 0 {
			t.Fatal("expected seeded users")
		}

		byID, err := users.ByID(ctx, all[0].ID)
		if err != nil {
			t.Fatalf("ByID failed: %v", err)
		}
		if byID.ID != all[0].ID {
			t.Errorf("ByID mismatch: %s", byID.ID)
		}

		byEmail, err := users.ByEmail(ctx, "priya@example.com")
		if err != nil {
			t.Fatalf("ByEmail failed: %v", err)
		}
		if byEmail.ID != "user-priya" {
			t.Errorf("ByEmail mismatch: %s", byEmail.ID)
		}
	})

	t.Run("me uses stored token", func(t *testing.T) {
		resp, err := auth.Login(ctx, models.LoginRequest{Email: "you@example.com", Password: "pw"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if err := sessions.SaveSession(ctx, session.Session{Token: resp.Token, UserID: resp.User.ID}); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		me, err := users.Me(ctx)
		if err != nil {
			t.Fatalf("Me failed: %v", err)
		}
		if me.ID != resp.User.ID {
			t.Errorf("Me: got %s, want %s", me.ID, resp.User.ID)
		}
	})

	t.Run("search escapes the query", func(t *testing.T) {
		matches, err := users.Search(ctx, "priya sharma")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(matches) != 1 {
			t.Errorf("expected 1 match, got %d", len(matches))
		}
	})
}

func TestRecordRepositories(t *testing.T) {
	client, _ := setupRepos(t)
	ctx := context.Background()

	t.Run("groups", func(t *testing.T) {
		groups := NewGroups(client)
		created, err := groups.Create(ctx, models.CreateGroupRequest{
			Name:    "Trek",
			Members: []string{"user-you", "user-meera"},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID == "" {
			t.Error("expected assigned ID")
		}

		all, err := groups.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		var found bool
		for _, g := range all {
			if g.ID == created.ID {
				found = true
			}
		}
		if !found {
			t.Error("created group missing from list")
		}
	})

	t.Run("expenses", func(t *testing.T) {
		expenses := NewExpenses(client)
		created, err := expenses.Create(ctx, models.CreateExpenseRequest{
			GroupID:     "group-flat",
			Description: "Snacks",
			Amount:      120,
			Currency:    "INR",
			Category:    "food",
			PaidBy:      "user-you",
			SplitMethod: models.SplitEqual,
			SplitAmong:  []string{"user-you", "user-priya"},
			ExpenseDate: "2024-03-01T12:00:00Z",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.Status != models.ExpenseActive {
			t.Errorf("status: %s", created.Status)
		}
	})

	t.Run("friends", func(t *testing.T) {
		friends := NewFriends(client)
		all, err := friends.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) == 0 {
			t.Error("expected seeded friends")
		}
	})

	t.Run("settlements", func(t *testing.T) {
		settlements := NewSettlements(client)
		created, err := settlements.Record(ctx, models.RecordSettlementRequest{
			GroupID:       "group-goa",
			FromUserID:    "user-you",
			ToUserID:      "user-meera",
			Amount:        2500,
			Currency:      "INR",
			PaymentMethod: models.PaymentGPay,
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if created.Status != models.SettlementCompleted {
			t.Errorf("status: %s", created.Status)
		}
	})

	t.Run("health", func(t *testing.T) {
		health := NewHealth(client)
		resp, err := health.Check(ctx)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if resp.Status != "UP" {
			t.Errorf("status: %s", resp.Status)
		}
	})
}
