package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func TestValidateActivity_OK(t *testing.T) {
	a := domain.Activity{Title: "Museum", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Price: 10}
	assert.Empty(t, domain.ValidateActivity(a))
}

func TestValidateActivity_CollectsAllViolations(t *testing.T) {
	a := domain.Activity{Title: "   ", Price: -1}

	msgs := domain.ValidateActivity(a)

	assert.Equal(t, []string{"Title is required", "Date is required", "Price cannot be negative"}, msgs)
}

func TestValidateActivity_ZeroPriceAllowed(t *testing.T) {
	a := domain.Activity{Title: "Walk", Date: time.Now()}
	assert.Empty(t, domain.ValidateActivity(a))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12.50", want: 12.5},
		{in: " -5 ", want: -5},
		{in: "0", want: 0},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseAmount(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Negative expense amounts pass validation; only activity prices are sign-checked.
func TestNewExpense_NegativeAmountAccepted(t *testing.T) {
	e, err := domain.NewExpense(uuid.New(), "Taxi", "-5", "Transport")

	require.NoError(t, err)
	assert.Equal(t, -5.0, e.Amount)
	assert.Empty(t, domain.ValidateExpense(e))
}

func TestValidateExpense_DescriptionRequired(t *testing.T) {
	assert.Equal(t, []string{"Description is required"}, domain.ValidateExpense(domain.Expense{Amount: 3}))
}

func TestValidatePackingItem(t *testing.T) {
	assert.NotEmpty(t, domain.ValidatePackingItem(domain.PackingItem{Text: " \t"}))
	assert.Empty(t, domain.ValidatePackingItem(domain.PackingItem{Text: "Socks"}))
}

func TestNormalize_TrimsPackingText(t *testing.T) {
	got := domain.Normalize(domain.PackingItem{Text: "  Passport "})
	assert.Equal(t, "Passport", got.Text)

	// Types without a Normalize method pass through unchanged.
	a := domain.Activity{Title: "  spaced  "}
	assert.Equal(t, a, domain.Normalize(a))
}

func TestNormalize_TrimsPackingPatch(t *testing.T) {
	text := "  Passport "
	p := domain.Normalize(domain.PackingItemPatch{Text: &text})
	assert.Equal(t, map[string]any{"text": "Passport"}, p.Fields())
	assert.Equal(t, "  Passport ", text, "the caller's value is not modified")

	packed := true
	assert.Equal(t, map[string]any{"packed": true}, domain.Normalize(domain.PackingItemPatch{Packed: &packed}).Fields())
}

func TestFlightAndHotel_NoRules(t *testing.T) {
	assert.Empty(t, domain.ValidateFlight(domain.Flight{}))
	assert.Empty(t, domain.ValidateHotel(domain.Hotel{}))
}

func TestValidationError(t *testing.T) {
	assert.NoError(t, domain.NewValidationError(nil))

	err := domain.NewValidationError([]string{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "validation error: a, b", err.Error())

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"a", "b"}, ve.Messages)
}

func TestActivityPatch_ApplyAndFields(t *testing.T) {
	title := "Louvre"
	price := 22.0
	p := domain.ActivityPatch{Title: &title, Price: &price}

	got := p.Apply(domain.Activity{Title: "Museum", Location: "Paris", Price: 10})

	assert.Equal(t, "Louvre", got.Title)
	assert.Equal(t, "Paris", got.Location)
	assert.Equal(t, 22.0, got.Price)
	assert.Equal(t, map[string]any{"title": "Louvre", "price": 22.0}, p.Fields())
}

func TestFlightPatch_CopiesDates(t *testing.T) {
	d := time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC)
	p := domain.FlightPatch{DepartureDate: &d}

	got := p.Apply(domain.Flight{Airline: "VN"})
	d = d.AddDate(0, 0, 1) // mutating the patch source must not leak into the result

	require.NotNil(t, got.DepartureDate)
	assert.Equal(t, 3, got.DepartureDate.Day())
	assert.Equal(t, "VN", got.Airline)
}

func TestSumExpenses(t *testing.T) {
	b := domain.SumExpenses([]domain.Expense{
		{Amount: 10, Category: "Food"},
		{Amount: 25.5, Category: "Transport"},
		{Amount: -5, Category: "Food"},
	})

	assert.InDelta(t, 30.5, b.Total, 1e-9)
	require.Len(t, b.ByCategory, 2)
	assert.Equal(t, domain.CategoryTotal{Category: "Food", Total: 5, Count: 2}, b.ByCategory[0])
	assert.Equal(t, "Transport", b.ByCategory[1].Category)
}
