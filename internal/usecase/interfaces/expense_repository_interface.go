package interfaces

import (
	"context"

	"lavajato/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense.

type IExpenseRepository interface {
	List(ctx context.Context) ([]entities.Expense, error)
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}
