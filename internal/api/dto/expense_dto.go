package dto

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// ExpenseRequest payload for recording an expense.
type ExpenseRequest struct {
	Description string     `json:"description"`
	Category    string     `json:"category"`
	AmountCents int64      `json:"amount_cents"`
	SpentAt     *time.Time `json:"spent_at,omitempty"`
	GymID       int64      `json:"gym_id,omitempty"`
}

// ExpenseResponse projection of an expense.
type ExpenseResponse struct {
	ID          int64     `json:"id"`
	GymID       int64     `json:"gym_id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	SpentAt     time.Time `json:"spent_at"`
}

// FromExpense maps a domain expense onto the response shape.
func FromExpense(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		GymID:       expense.GymID,
		Description: expense.Description,
		Category:    expense.Category,
		AmountCents: expense.AmountCents,
		SpentAt:     expense.SpentAt,
	}
}

// FromExpenses maps a slice of expenses.
func FromExpenses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, FromExpense(&expenses[i]))
	}
	return out
}
