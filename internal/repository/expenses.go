package repository

import (
	"context"

	"github.com/splitmacha/splitmacha/internal/models"
)

// Expenses talks to the expense endpoints.
type Expenses struct {
	client Doer
}

// NewExpenses creates an expense repository.
func NewExpenses(client Doer) *Expenses {
	return &Expenses{client: client}
}

// List calls GET /api/v1/expenses.
func (r *Expenses) List(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	if err := r.client.Get(ctx, apiPrefix+"/expenses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create calls POST /api/v1/expenses.
func (r *Expenses) Create(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	var out models.Expense
	if err := r.client.Post(ctx, apiPrefix+"/expenses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
