package repository

import (
	"context"

	"github.com/splitmacha/splitmacha/internal/models"
)

// Settlements talks to the settlement endpoints.
type Settlements struct {
	client Doer
}

// NewSettlements creates a settlement repository.
func NewSettlements(client Doer) *Settlements {
	return &Settlements{client: client}
}

// List calls GET /api/v1/settlements.
func (r *Settlements) List(ctx context.Context) ([]models.Settlement, error) {
	var out []models.Settlement
	if err := r.client.Get(ctx, apiPrefix+"/settlements", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Record calls POST /api/v1/settlements.
func (r *Settlements) Record(ctx context.Context, req models.RecordSettlementRequest) (*models.Settlement, error) {
	var out models.Settlement
	if err := r.client.Post(ctx, apiPrefix+"/settlements", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
