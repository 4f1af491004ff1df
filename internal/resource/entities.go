package resource

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ActivityPageSize is the number of activities shown per page of a trip.
const ActivityPageSize = 5

// Per-entity managers, built by the constructors below.
type (
	ActivityManager    = Manager[domain.Activity, domain.ActivityPatch]
	ExpenseManager     = Manager[domain.Expense, domain.ExpensePatch]
	PackingItemManager = Manager[domain.PackingItem, domain.PackingItemPatch]
	FlightManager      = Manager[domain.Flight, domain.FlightPatch]
	HotelManager       = Manager[domain.Hotel, domain.HotelPatch]
)

// NewActivityManager returns a confirmed manager paging activities by date, ActivityPageSize at a time.
func NewActivityManager(s Store[domain.Activity], n Notifier, log *slog.Logger) *ActivityManager {
	return NewManager[domain.Activity, domain.ActivityPatch](Config[domain.Activity]{
		Noun:       "Activity",
		Collection: "activities",
		PageSize:   ActivityPageSize,
		OrderBy:    "date",
		Policy:     Confirmed,
		Validate:   domain.ValidateActivity,
	}, s, n, log)
}

// NewExpenseManager returns a confirmed, unpaged manager for expenses.
func NewExpenseManager(s Store[domain.Expense], n Notifier, log *slog.Logger) *ExpenseManager {
	return NewManager[domain.Expense, domain.ExpensePatch](Config[domain.Expense]{
		Noun:       "Expense",
		Collection: "expenses",
		OrderBy:    "created_at",
		Policy:     Confirmed,
		Validate:   domain.ValidateExpense,
	}, s, n, log)
}

// NewPackingItemManager returns a confirmed, unpaged manager for the packing list.
func NewPackingItemManager(s Store[domain.PackingItem], n Notifier, log *slog.Logger) *PackingItemManager {
	return NewManager[domain.PackingItem, domain.PackingItemPatch](Config[domain.PackingItem]{
		Noun:       "Item",
		Collection: "packing list",
		OrderBy:    "created_at",
		Policy:     Confirmed,
		Validate:   domain.ValidatePackingItem,
	}, s, n, log)
}

// NewFlightManager returns an optimistic, unpaged manager for flights.
func NewFlightManager(s Store[domain.Flight], n Notifier, log *slog.Logger) *FlightManager {
	return NewManager[domain.Flight, domain.FlightPatch](Config[domain.Flight]{
		Noun:       "Flight",
		Collection: "flights",
		OrderBy:    "departure_date",
		Policy:     Optimistic,
		Validate:   domain.ValidateFlight,
	}, s, n, log)
}

// NewHotelManager returns an optimistic, unpaged manager for hotel stays.
func NewHotelManager(s Store[domain.Hotel], n Notifier, log *slog.Logger) *HotelManager {
	return NewManager[domain.Hotel, domain.HotelPatch](Config[domain.Hotel]{
		Noun:       "Hotel",
		Collection: "hotels",
		OrderBy:    "check_in_date",
		Policy:     Optimistic,
		Validate:   domain.ValidateHotel,
	}, s, n, log)
}

// AddExpense parses the user-entered amount and creates the expense.
// An amount that does not parse is notified and rejected before any store call.
func AddExpense(ctx context.Context, m *ExpenseManager, description, amount, category string) (domain.Expense, error) {
	e, err := domain.NewExpense(m.Parent(), description, amount, category)
	if err != nil {
		m.notify.Error(domain.MsgInvalidAmount)
		return domain.Expense{}, err
	}
	return m.Create(ctx, e)
}

// Budget totals the manager's local expenses.
func Budget(m *ExpenseManager) domain.Budget {
	return domain.SumExpenses(m.Items())
}

// TogglePacked flips the packed flag of a packing item.
func TogglePacked(ctx context.Context, m *PackingItemManager, id uuid.UUID) error {
	for _, it := range m.Items() {
		if it.ID == id {
			packed := !it.Packed
			return m.Update(ctx, id, domain.PackingItemPatch{Packed: &packed})
		}
	}
	return fmt.Errorf("resource.TogglePacked: %w", domain.ErrNotFound)
}
