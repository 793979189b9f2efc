// Package repository exposes one typed method per backend operation.
//
// Repositories carry no business logic: no branching, no retries, no field
// defaulting. Request and response shapes pass through the wire contract
// verbatim; defaults belong to the backend.
package repository

import (
	"context"

	"github.com/splitmacha/splitmacha/internal/models"
)

// Doer is the subset of the API client the repositories need.
type Doer interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
}

const apiPrefix = "/api/v1"

// Health reports backend availability.
type Health struct {
	client Doer
}

// NewHealth creates a health repository.
func NewHealth(client Doer) *Health {
	return &Health{client: client}
}

// Check calls GET /api/v1/health.
func (r *Health) Check(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := r.client.Get(ctx, apiPrefix+"/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
