package repository

import (
	"context"

	"github.com/splitmacha/splitmacha/internal/models"
)

// Groups talks to the group endpoints.
type Groups struct {
	client Doer
}

// NewGroups creates a group repository.
func NewGroups(client Doer) *Groups {
	return &Groups{client: client}
}

// List calls GET /api/v1/groups.
func (r *Groups) List(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	if err := r.client.Get(ctx, apiPrefix+"/groups", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create calls POST /api/v1/groups.
func (r *Groups) Create(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error) {
	var out models.Group
	if err := r.client.Post(ctx, apiPrefix+"/groups", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
