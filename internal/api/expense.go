package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Expense is the JSON representation of an expense.
type Expense struct {
	Id          uuid.UUID  `json:"id"`
	TripId      uuid.UUID  `json:"trip_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func FromExpense(e domain.Expense) Expense {
	out := Expense{
		Id:          e.ID,
		TripId:      e.TripID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
	}
	if !e.CreatedAt.IsZero() {
		out.CreatedAt = &e.CreatedAt
	}
	return out
}

func (e Expense) ToDomain() domain.Expense {
	return domain.Expense{
		ID:          e.Id,
		TripID:      e.TripId,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		CreatedAt:   deref(e.CreatedAt),
	}
}

// ExpensePatch is the body of PATCH /expenses/{id}.
type ExpensePatch struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

func (p ExpensePatch) ToDomain() domain.ExpensePatch {
	return domain.ExpensePatch{Description: p.Description, Amount: p.Amount, Category: p.Category}
}

// CategoryTotal is one row of a budget breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Budget is the body of GET /trips/{tripId}/budget.
type Budget struct {
	TripId     uuid.UUID       `json:"trip_id"`
	Total      float64         `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

func FromBudget(tripID uuid.UUID, b domain.Budget) Budget {
	out := Budget{TripId: tripID, Total: b.Total, Categories: make([]CategoryTotal, len(b.ByCategory))}
	for i, c := range b.ByCategory {
		out.Categories[i] = CategoryTotal{Category: c.Category, Total: c.Total, Count: c.Count}
	}
	return out
}
