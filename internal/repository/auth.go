package repository

import (
	"context"

	"github.com/splitmacha/splitmacha/internal/models"
)

// Auth talks to the authentication endpoints.
type Auth struct {
	client Doer
}

// NewAuth creates an auth repository.
func NewAuth(client Doer) *Auth {
	return &Auth{client: client}
}

// Login calls POST /api/v1/auth/login.
func (r *Auth) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := r.client.Post(ctx, apiPrefix+"/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register calls POST /api/v1/auth/register.
func (r *Auth) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := r.client.Post(ctx, apiPrefix+"/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout is a remote no-op today: token invalidation is not implemented
// server-side, and the authoritative logout is the local session clear.
func (r *Auth) Logout(ctx context.Context) error {
	return nil
}
