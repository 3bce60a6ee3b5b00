package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidExpenseDescription = errors.New("invalid expense description")
	ErrInvalidExpenseAmount      = errors.New("invalid expense amount")
)

type ExpenseRequest struct {
	Description string   `json:"descricao_gasto" binding:"required"`
	Amount      *float64 `json:"valor_gasto" binding:"required"`
}

func (r ExpenseRequest) ResolveDescription() (string, error) {
	v := strings.TrimSpace(r.Description)
	if v == "" {
		return "", ErrInvalidExpenseDescription
	}
	return v, nil
}

func (r ExpenseRequest) ResolveAmount() (float64, error) {
	if r.Amount == nil || *r.Amount <= 0 {
		return 0, ErrInvalidExpenseAmount
	}
	return *r.Amount, nil
}
