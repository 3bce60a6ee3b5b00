package handlers

import (
	"errors"
	"net/http"

	request "lavajato/internal/adapter/http/dto/request"
	response "lavajato/internal/adapter/http/dto/response"
	"lavajato/internal/usecase"
	"lavajato/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)
)

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromExpenses(h.usecase.Expenses()))
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	description, amount, ok := h.bindExpense(c)
	if !ok {
		return
	}

	expense, err := h.usecase.Create(c.Request.Context(), description, amount, userID(c))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	description, amount, ok := h.bindExpense(c)
	if !ok {
		return
	}

	expense, err := h.usecase.Update(c.Request.Context(), c.Param("id"), description, amount, userID(c))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(expense))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) bindExpense(c *gin.Context) (description string, amount float64, ok bool) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return "", 0, false
	}

	description, err := payload.ResolveDescription()
	if err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return "", 0, false
	}

	amount, err = payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return "", 0, false
	}

	return description, amount, true
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseID), errors.Is(err, usecase.ErrInvalidExpenseDescription),
		errors.Is(err, usecase.ErrInvalidExpenseAmount), errors.Is(err, usecase.ErrMissingUser):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
