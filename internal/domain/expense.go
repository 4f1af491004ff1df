package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Expense is a single budget line on a trip.
// Negative amounts are accepted (refunds); only Activity prices are checked
// for sign.
type Expense struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Description string
	Amount      float64
	Category    string
	CreatedAt   time.Time
}

func (e Expense) RecordID() uuid.UUID { return e.ID }
func (e Expense) ParentID() uuid.UUID { return e.TripID }

func (e Expense) WithRecordID(id uuid.UUID) Expense {
	e.ID = id
	return e
}

func (e Expense) WithParentID(tripID uuid.UUID) Expense {
	e.TripID = tripID
	return e
}

// MsgInvalidAmount is reported when an amount does not parse as a finite number.
const MsgInvalidAmount = "Please enter a valid amount"

// ParseAmount parses user-entered amount text ("12.50", " -5 ") into a finite
// float64. Empty, non-numeric, NaN and infinite inputs are rejected.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, NewValidationError([]string{MsgInvalidAmount})
	}
	return v, nil
}

// NewExpense builds an Expense from form input, parsing the amount text.
// It returns a *ValidationError when the amount does not parse.
func NewExpense(tripID uuid.UUID, description, amount, category string) (Expense, error) {
	v, err := ParseAmount(amount)
	if err != nil {
		return Expense{}, err
	}
	return Expense{TripID: tripID, Description: description, Amount: v, Category: category}, nil
}

// ValidateExpense returns every rule the expense violates.
func ValidateExpense(e Expense) []string {
	var msgs []string
	if strings.TrimSpace(e.Description) == "" {
		msgs = append(msgs, "Description is required")
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		msgs = append(msgs, MsgInvalidAmount)
	}
	return msgs
}

// ExpensePatch is a partial update of an Expense.
type ExpensePatch struct {
	Description *string
	Amount      *float64
	Category    *string
}

func (p ExpensePatch) Apply(e Expense) Expense {
	setIf(&e.Description, p.Description)
	setIf(&e.Amount, p.Amount)
	setIf(&e.Category, p.Category)
	return e
}

func (p ExpensePatch) Fields() map[string]any {
	f := map[string]any{}
	putIf(f, "description", p.Description)
	putIf(f, "amount", p.Amount)
	putIf(f, "category", p.Category)
	return f
}

// CategoryTotal is the summed amount of one expense category.
type CategoryTotal struct {
	Category string
	Total    float64
	Count    int
}

// Budget summarises a trip's expenses.
type Budget struct {
	Total      float64
	ByCategory []CategoryTotal // first-seen category order
}

// SumExpenses totals expenses overall and per category.
func SumExpenses(expenses []Expense) Budget {
	var b Budget
	idx := map[string]int{}
	for _, e := range expenses {
		b.Total += e.Amount
		i, ok := idx[e.Category]
		if !ok {
			i = len(b.ByCategory)
			idx[e.Category] = i
			b.ByCategory = append(b.ByCategory, CategoryTotal{Category: e.Category})
		}
		b.ByCategory[i].Total += e.Amount
		b.ByCategory[i].Count++
	}
	return b
}
