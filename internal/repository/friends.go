package repository

import (
	"context"

	"github.com/splitmacha/splitmacha/internal/models"
)

// Friends talks to the friend endpoints.
type Friends struct {
	client Doer
}

// NewFriends creates a friend repository.
func NewFriends(client Doer) *Friends {
	return &Friends{client: client}
}

// List calls GET /api/v1/friends.
func (r *Friends) List(ctx context.Context) ([]models.Friend, error) {
	var out []models.Friend
	if err := r.client.Get(ctx, apiPrefix+"/friends", &out); err != nil {
		return nil, err
	}
	return out, nil
}
