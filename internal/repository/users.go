package repository

import (
	"context"
	"net/url"

	"github.com/splitmacha/splitmacha/internal/models"
)

// Users talks to the user endpoints.
type Users struct {
	client Doer
}

// NewUsers creates a user repository.
func NewUsers(client Doer) *Users {
	return &Users{client: client}
}

// Me calls GET /api/v1/users/me.
func (r *Users) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := r.client.Get(ctx, apiPrefix+"/users/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByID calls GET /api/v1/users/:id.
func (r *Users) ByID(ctx context.Context, userID string) (*models.User, error) {
	var out models.User
	if err := r.client.Get(ctx, apiPrefix+"/users/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByEmail calls GET /api/v1/users/email/:email.
func (r *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var out models.User
	if err := r.client.Get(ctx, apiPrefix+"/users/email/"+url.PathEscape(email), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create calls POST /api/v1/users.
func (r *Users) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	var out models.User
	if err := r.client.Post(ctx, apiPrefix+"/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update calls PUT /api/v1/users/:id.
func (r *Users) Update(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error) {
	var out models.User
	if err := r.client.Put(ctx, apiPrefix+"/users/"+url.PathEscape(userID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search calls GET /api/v1/users/search?q=query.
func (r *Users) Search(ctx context.Context, query string) ([]models.User, error) {
	var out []models.User
	if err := r.client.Get(ctx, apiPrefix+"/users/search?q="+url.QueryEscape(query), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List calls GET /api/v1/users.
func (r *Users) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := r.client.Get(ctx, apiPrefix+"/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}
