// Package travel provides the currency converter and weather forecast used by
// the planner. Both are backed by static tables; no external service is called.
package travel

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownCurrency is returned for a currency code missing from the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrLocationRequired is returned when a forecast is requested without a location.
var ErrLocationRequired = errors.New("location is required")

// usdRates holds units of each currency per US dollar.
var usdRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 150,
	"AUD": 1.52,
	"CAD": 1.36,
	"CHF": 0.88,
	"CNY": 7.2,
	"SEK": 10.5,
	"NZD": 1.65,
	"VND": 23000,
}

// Currencies returns the supported currency codes, sorted.
func Currencies() []string {
	return slices.Sorted(maps.Keys(usdRates))
}

// Conversion is the result of converting Amount from one currency to another.
type Conversion struct {
	Amount float64
	From   string
	To     string
	Rate   float64
	Result float64
}

// Convert converts amount between two currency codes. Codes are
// case-insensitive.
func Convert(amount float64, from, to string) (Conversion, error) {
	from, to = strings.ToUpper(strings.TrimSpace(from)), strings.ToUpper(strings.TrimSpace(to))
	fromRate, ok := usdRates[from]
	if !ok {
		return Conversion{}, fmt.Errorf("travel.Convert: %w: %q", ErrUnknownCurrency, from)
	}
	toRate, ok := usdRates[to]
	if !ok {
		return Conversion{}, fmt.Errorf("travel.Convert: %w: %q", ErrUnknownCurrency, to)
	}
	rate := toRate / fromRate
	return Conversion{Amount: amount, From: from, To: to, Rate: rate, Result: amount * rate}, nil
}

// ForecastDay is one day of a forecast. Temp is in degrees Celsius.
type ForecastDay struct {
	Date        time.Time
	Temp        int
	Description string
}

// Forecast is a five-day forecast for a location.
type Forecast struct {
	Location string
	Days     []ForecastDay
}

var mockDays = []struct {
	temp int
	desc string
}{
	{25, "Sunny"},
	{23, "Cloudy"},
	{22, "Rainy"},
	{20, "Windy"},
	{18, "Snowy"},
}

// Weather returns the five-day forecast for location starting on the day of
// from. Every location gets the same sample data.
func Weather(location string, from time.Time) (Forecast, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Forecast{}, fmt.Errorf("travel.Weather: %w", ErrLocationRequired)
	}
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	// Casers carry state, so each call gets its own.
	f := Forecast{Location: cases.Title(language.Und).String(location), Days: make([]ForecastDay, len(mockDays))}
	for i, d := range mockDays {
		f.Days[i] = ForecastDay{Date: start.AddDate(0, 0, i), Temp: d.temp, Description: d.desc}
	}
	return f, nil
}
