package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrExpenseNotFound           = errors.New("expense not found")
	ErrInvalidExpenseID          = errors.New("invalid expense id")
	ErrInvalidExpenseDescription = errors.New("invalid expense description")
	ErrInvalidExpenseAmount      = errors.New("invalid expense amount")
	ErrMissingUser               = errors.New("missing authenticated user")
)

// IExpenseUseCase exposes daily cash-register expense operations.

type IExpenseUseCase interface {
	Refresh(ctx context.Context) error
	Expenses() []entities.Expense
	Create(ctx context.Context, description string, amount float64, createdBy string) (entities.Expense, error)
	Update(ctx context.Context, id, description string, amount float64, updatedBy string) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ExpenseUseCase follows the same discipline as the order store: the
// in-memory list changes only after the repository confirms the write.
type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
	log  *zap.Logger

	mu       sync.RWMutex
	expenses []entities.Expense
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository, log *zap.Logger) *ExpenseUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpenseUseCase{repo: repo, log: log}
}

func (u *ExpenseUseCase) Refresh(ctx context.Context) error {
	expenses, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("refreshing expenses failed", zap.Error(err))
		return err
	}

	u.mu.Lock()
	u.expenses = expenses
	u.mu.Unlock()

	u.log.Info("expenses refreshed", zap.Int("count", len(expenses)))
	return nil
}

// Expenses returns the list newest first. Insertion order carries no meaning
// beyond display.
func (u *ExpenseUseCase) Expenses() []entities.Expense {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entities.Expense, len(u.expenses))
	copy(out, u.expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (u *ExpenseUseCase) Create(ctx context.Context, description string, amount float64, createdBy string) (entities.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Expense{}, ErrInvalidExpenseDescription
	}
	if amount < 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return entities.Expense{}, ErrMissingUser
	}

	e := entities.Expense{
		Description: description,
		Amount:      amount,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.log.Error("creating expense failed", zap.Error(err))
		return entities.Expense{}, err
	}

	u.mu.Lock()
	u.expenses = append(u.expenses, created)
	u.mu.Unlock()

	u.log.Info("expense created", zap.String("expense_id", created.ID))
	return created, nil
}

func (u *ExpenseUseCase) Update(ctx context.Context, id, description string, amount float64, updatedBy string) (entities.Expense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Expense{}, ErrInvalidExpenseDescription
	}
	if amount < 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i, e := range u.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Expense{}, ErrExpenseNotFound
	}

	e := u.expenses[idx]
	e.Description = description
	e.Amount = amount
	e.UpdatedBy = strings.TrimSpace(updatedBy)

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		u.log.Error("updating expense failed", zap.String("expense_id", id), zap.Error(err))
		return entities.Expense{}, err
	}

	u.expenses[idx] = updated
	u.log.Info("expense updated", zap.String("expense_id", id))
	return updated, nil
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidExpenseID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i, e := range u.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrExpenseNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Error("deleting expense failed", zap.String("expense_id", id), zap.Error(err))
		return err
	}

	u.expenses = append(u.expenses[:idx], u.expenses[idx+1:]...)
	u.log.Info("expense deleted", zap.String("expense_id", id))
	return nil
}
