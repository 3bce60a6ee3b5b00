package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lavajato/internal/domain/entities"
	mock_interfaces "lavajato/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seededExpenseUseCase(t *testing.T, repo *mock_interfaces.MockIExpenseRepository, expenses []entities.Expense) *ExpenseUseCase {
	t.Helper()
	uc := NewExpenseUseCase(repo, nil)
	repo.EXPECT().List(gomock.Any()).Return(expenses, nil)
	if err := uc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	return uc
}

func TestExpenseUseCase_Create(t *testing.T) {
	t.Run("trims and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := seededExpenseUseCase(t, repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.Description != "Sabão automotivo" {
					t.Fatalf("description not trimmed: %q", e.Description)
				}
				e.ID = "expense-1"
				return e, nil
			})

		created, err := uc.Create(context.Background(), "  Sabão automotivo  ", 75.9, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "expense-1" || created.CreatedBy != "user-1" {
			t.Fatalf("unexpected expense: %+v", created)
		}
		if len(uc.Expenses()) != 1 {
			t.Fatal("expense not in the store")
		}
	})

	t.Run("input validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := seededExpenseUseCase(t, repo, nil)

		if _, err := uc.Create(context.Background(), "   ", 10, "user-1"); !errors.Is(err, ErrInvalidExpenseDescription) {
			t.Fatalf("expected ErrInvalidExpenseDescription, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "Sabão", -1, "user-1"); !errors.Is(err, ErrInvalidExpenseAmount) {
			t.Fatalf("expected ErrInvalidExpenseAmount, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "Sabão", 10, "  "); !errors.Is(err, ErrMissingUser) {
			t.Fatalf("expected ErrMissingUser, got %v", err)
		}
	})

	t.Run("repository failure leaves the store unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := seededExpenseUseCase(t, repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Expense{}, errors.New("dynamo down"))

		if _, err := uc.Create(context.Background(), "Sabão", 10, "user-1"); err == nil {
			t.Fatal("expected error")
		}
		if len(uc.Expenses()) != 0 {
			t.Fatal("store mutated on repository failure")
		}
	})
}

func TestExpenseUseCase_Expenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIExpenseRepository(ctrl)

	old := entities.Expense{ID: "old", CreatedAt: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}
	recent := entities.Expense{ID: "recent", CreatedAt: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)}
	uc := seededExpenseUseCase(t, repo, []entities.Expense{old, recent})

	got := uc.Expenses()
	if got[0].ID != "recent" || got[1].ID != "old" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestExpenseUseCase_Update(t *testing.T) {
	seed := entities.Expense{ID: "expense-1", Description: "Sabão", Amount: 10, CreatedBy: "user-1"}

	t.Run("updates in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := seededExpenseUseCase(t, repo, []entities.Expense{seed})

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				return e, nil
			})

		updated, err := uc.Update(context.Background(), "expense-1", "Cera", 50, "user-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Description != "Cera" || updated.Amount != 50 || updated.UpdatedBy != "user-2" {
			t.Fatalf("unexpected expense: %+v", updated)
		}
		if updated.CreatedBy != "user-1" {
			t.Fatalf("created_by must be preserved: %+v", updated)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := seededExpenseUseCase(t, repo, nil)

		if _, err := uc.Update(context.Background(), "missing", "Cera", 50, "user-2"); !errors.Is(err, ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}

func TestExpenseUseCase_Delete(t *testing.T) {
	seed := entities.Expense{ID: "expense-1", Description: "Sabão", Amount: 10}

	t.Run("removes after the repository confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := seededExpenseUseCase(t, repo, []entities.Expense{seed})

		repo.EXPECT().Delete(gomock.Any(), "expense-1").Return(nil)

		if err := uc.Delete(context.Background(), "expense-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.Expenses()) != 0 {
			t.Fatal("expense still in the store")
		}
	})

	t.Run("repository failure keeps the expense", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := seededExpenseUseCase(t, repo, []entities.Expense{seed})

		repo.EXPECT().Delete(gomock.Any(), "expense-1").Return(errors.New("dynamo down"))

		if err := uc.Delete(context.Background(), "expense-1"); err == nil {
			t.Fatal("expected error")
		}
		if len(uc.Expenses()) != 1 {
			t.Fatal("expense vanished despite the failure")
		}
	})
}
