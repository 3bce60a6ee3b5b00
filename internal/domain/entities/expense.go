package entities

import "time"

// Expense is a daily cash-register expense.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Expenses have no lifecycle beyond existence: they are created, edited in
// place and deleted.

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
